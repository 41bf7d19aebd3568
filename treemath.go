package onetree

import (
	"math"
	"math/bits"

	"github.com/cockroachdb/errors"
)

// Index calculus for a flat binary tree layout: root at index 1, the
// children of node i at 2i and 2i+1. A tree holding n leaves occupies
// leaf indices n through 2n-1, so the shape of the tree is a pure
// function of n and no tree is ever materialized.

// depthOf returns the depth of a node index, with the root at depth 0.
// Negative or zero indices are invalid and return -1.
func depthOf(index int) int {
	if index <= 0 {
		return -1
	}
	return bits.Len(uint(index)) - 1
}

// levelBounds returns the inclusive index range occupied by the level
// at the given relative depth below rootIndex.
func levelBounds(rootIndex, depth int) (left, right int) {
	if rootIndex <= 0 || depth < 0 {
		return -1, -1
	}
	width := 1 << depth
	left = width * rootIndex
	right = left + width - 1
	return left, right
}

// inSubtree reports whether leafIndex lies in the subtree rooted at
// rootIndex.
func inSubtree(rootIndex, leafIndex int) bool {
	if rootIndex <= 0 || leafIndex <= 0 {
		return false
	}
	relative := depthOf(leafIndex) - depthOf(rootIndex)
	if relative < 0 {
		return false
	}
	left, right := levelBounds(rootIndex, relative)
	return leafIndex >= left && leafIndex <= right
}

// pow2 returns 2^k. Exponents that would wrap are an error, never a
// silent truncation.
func pow2(k int) (int, error) {
	if k < 0 {
		return 0, nil
	}
	if k >= 62 {
		return 0, errors.Newf("exponent %d overflows subtree size", k)
	}
	return 1 << k, nil
}

// checkLeafRange rejects leaf counts whose index range 2n-1 is not
// representable.
func checkLeafRange(n int) error {
	if n > (math.MaxInt-1)/2 {
		return errors.Newf("leaf count %d overflows the tree index range", n)
	}
	return nil
}
