package onetree

// SplitDistribution returns the exact probability distribution over
// configurations produced by fully revealing the internal split
// structure of one subtree holding n leaves. Every branch is
// enumerated; probabilities are weights, not draws. n <= 0 yields an
// empty distribution.
func SplitDistribution(n int) (Distribution, error) {
	return splitOnce(n)
}

func splitOnce(n int) (Distribution, error) {
	dist := Distribution{}
	if n <= 0 {
		return dist, nil
	}
	if err := checkLeafRange(n); err != nil {
		return nil, err
	}
	// Leaves occupy indices n..2n-1 in the flat layout.
	deepest := depthOf(2*n - 1)
	shallowest := depthOf(n)

	// A power-of-two subtree is perfectly balanced and splits
	// deterministically: one open subtree of size 2^i per level above
	// the chosen leaf.
	if deepest == shallowest {
		cfg := make(Config, 0, deepest)
		for i := 0; i < deepest; i++ {
			size, err := pow2(i)
			if err != nil {
				return nil, err
			}
			cfg = append(cfg, SizeCount{Size: size, Count: 1})
		}
		dist.add(cfg, 1.0)
		return dist, nil
	}

	// Otherwise exactly one child is a full tree; which one depends on
	// how many leaves the shallow level accounts for.
	deepestWidth, err := pow2(deepest)
	if err != nil {
		return nil, err
	}
	halfShallow, err := pow2(shallowest - 1)
	if err != nil {
		return nil, err
	}
	halfDeep, err := pow2(deepest - 1)
	if err != nil {
		return nil, err
	}
	numShallow := deepestWidth - n
	var left, right int
	if numShallow <= halfShallow {
		left = halfDeep
		right = n - left
	} else {
		right = halfShallow
		left = n - right
	}

	// The chosen leaf lands on a side with probability proportional to
	// that side's leaf count; the other side stays open as a single
	// unresolved subtree.
	for _, side := range [2]int{left, right} {
		rest := Config{{Size: n - side, Count: 1}}
		sideProb := float64(side) / float64(n)
		sub, err := splitOnce(side)
		if err != nil {
			return nil, err
		}
		for _, out := range sub {
			dist.add(out.Config.Merge(rest), sideProb*out.Prob)
		}
	}
	return dist, nil
}

// splitCache memoizes single-split distributions by subtree size. It
// is created fresh for every propagation run; split structure depends
// only on the size, so entries never go stale within a run.
type splitCache map[int]Distribution

func (c splitCache) get(n int) (Distribution, error) {
	if dist, ok := c[n]; ok {
		return dist, nil
	}
	dist, err := splitOnce(n)
	if err != nil {
		return nil, err
	}
	c[n] = dist
	return dist, nil
}
