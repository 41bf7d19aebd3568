package onetree

import "go.uber.org/zap"

// The package logger is silent by default so that library use and
// tests stay quiet; the CLI installs a real logger at startup.
var log = zap.NewNop().Sugar()

// SetLogger installs the logger used for progress output.
func SetLogger(logger *zap.Logger) {
	log = logger.Sugar()
}
