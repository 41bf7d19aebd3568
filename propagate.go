package onetree

import (
	"github.com/cockroachdb/errors"
)

// Propagate computes the exact distribution over configurations after
// the given number of split steps, starting from a single open subtree
// of the given leaf count. Each step picks one of the remaining
// unresolved leaves uniformly at random and fully reveals the split
// structure of the open subtree containing it.
//
// Invalid input (leaves <= 0 or steps < 0) yields an empty
// distribution and no error; callers must treat an empty result as
// "no data".
func Propagate(leaves, steps int) (Distribution, error) {
	dist := Distribution{}
	if leaves <= 0 || steps < 0 {
		return dist, nil
	}
	cache := splitCache{}
	dist.add(Config{{Size: leaves, Count: 1}}, 1.0)

	for i := 0; i < steps; i++ {
		remaining := leaves - i
		next := Distribution{}
		for _, out := range dist {
			// A configuration with no open subtrees has nothing left
			// to split; its mass carries through unchanged.
			if len(out.Config) == 0 || remaining <= 0 {
				next.add(out.Config, out.Prob)
				continue
			}
			for _, sc := range out.Config {
				sub, err := cache.get(sc.Size)
				if err != nil {
					return nil, err
				}
				pickProb := out.Prob * float64(sc.Size*sc.Count) / float64(remaining)
				if pickProb == 0 {
					continue
				}
				base, ok := out.Config.decrement(sc.Size)
				if !ok {
					// The size was just read out of the configuration;
					// a miss means the bookkeeping is corrupt.
					return nil, errors.AssertionFailedf(
						"open subtree size %d missing from configuration %s", sc.Size, out.Config)
				}
				for _, split := range sub {
					next.add(base.Merge(split.Config), pickProb*split.Prob)
				}
			}
		}
		dist = next
		log.Debugf("step %d of %d: %d configurations, %d cached split sizes",
			i+1, steps, len(dist), len(cache))
	}
	log.Infof("propagated %d steps over %d leaves: %d final configurations",
		steps, leaves, len(dist))
	return dist, nil
}
