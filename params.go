package onetree

import (
	"math"

	"github.com/cockroachdb/errors"
)

// VCParams describes how the vector commitment splits its leaves into
// subtrees: T0 subtrees of depth K0 and T1 subtrees of depth K1.
type VCParams struct {
	T0 int
	K0 int
	T1 int
	K1 int
}

// DeriveVCParams derives the subtree layout from the security
// parameter csp and the number of openings tau.
func DeriveVCParams(csp, tau int) (VCParams, error) {
	if tau <= 0 {
		return VCParams{}, errors.Newf("tau must be positive, got %d", tau)
	}
	if csp < 0 {
		return VCParams{}, errors.Newf("csp must be non-negative, got %d", csp)
	}
	return VCParams{
		T0: csp % tau,
		K0: (csp + tau - 1) / tau,
		T1: tau - csp%tau,
		K1: csp / tau,
	}, nil
}

// Leaves returns the total initial leaf count, t0*2^k0 + t1*2^k1.
func (p VCParams) Leaves() (int, error) {
	w0, err := pow2(p.K0)
	if err != nil {
		return 0, err
	}
	w1, err := pow2(p.K1)
	if err != nil {
		return 0, err
	}
	leaves := p.T0*w0 + p.T1*w1
	if leaves < 0 || leaves > math.MaxInt32 {
		return 0, errors.Newf("leaf count t0*2^k0 + t1*2^k1 overflows for %+v", p)
	}
	return leaves, nil
}

// OpeningSize returns Topen = t0*k0 + t1*k1, the worst-case number of
// authentication-path nodes across all openings.
func (p VCParams) OpeningSize() int {
	return p.T0*p.K0 + p.T1*p.K1
}

// RoundToByte rounds a bit count up to the nearest multiple of 8.
func RoundToByte(n int) int {
	return (n + 7) / 8 * 8
}
