package onetree

import (
	"math/big"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxOpenSubtrees returns an upper bound on the total open-subtree
// count of any configuration reachable after the given number of
// steps. One split of a subtree of size s yields at most
// depthOf(2s-1) open subtrees, and the total count can never exceed
// the leaf count.
func MaxOpenSubtrees(leaves, steps int) int {
	if leaves <= 0 || steps < 0 {
		return 0
	}
	perSplit := depthOf(2*leaves - 1)
	bound := 1 + steps*perSplit
	if bound > leaves {
		return leaves
	}
	return bound
}

// ConfigSpaceBound bounds the number of distinct configurations
// reachable after the given number of steps: multisets of at most m
// entries drawn from sizes 1..leaves, counted as binomial(leaves+m, m).
// The reachable state space is far smaller, but the bound gives a
// sense of scale before a run.
func ConfigSpaceBound(leaves, steps int) int {
	m := MaxOpenSubtrees(leaves, steps)
	return combin.Binomial(leaves+m, m)
}

// ConfigSpaceBound2 is ConfigSpaceBound for parameter ranges whose
// bound exceeds the int range.
func ConfigSpaceBound2(leaves, steps int) *big.Int {
	m := MaxOpenSubtrees(leaves, steps)
	result := big.NewInt(1)
	return result.Binomial(int64(leaves+m), int64(m))
}
