package onetree

import (
	"slices"
	"strconv"
	"strings"
)

// SizeCount records how many open subtrees of a given leaf count a
// configuration holds.
type SizeCount struct {
	Size  int
	Count int
}

// Config is a multiset of open-subtree sizes in canonical form:
// sorted by Size ascending, each size at most once, counts >= 1.
// A Config is a value; transforms return a fresh Config and never
// modify one that may already be used as a distribution key.
type Config []SizeCount

// makeConfig builds a canonical Config from an arbitrary list of
// size/count pairs: sort by size, coalesce duplicate sizes, and drop
// entries whose count ends up at zero.
func makeConfig(pairs []SizeCount) Config {
	cfg := slices.Clone(pairs)
	slices.SortFunc(cfg, func(a, b SizeCount) int { return a.Size - b.Size })
	out := cfg[:0]
	for _, sc := range cfg {
		if n := len(out); n > 0 && out[n-1].Size == sc.Size {
			out[n-1].Count += sc.Count
			continue
		}
		out = append(out, sc)
	}
	out = slices.DeleteFunc(out, func(sc SizeCount) bool { return sc.Count == 0 })
	return Config(out)
}

// Merge returns the union of two configurations, summing the counts of
// shared sizes. Both inputs are already canonical, so a single pass
// over the two sorted slices suffices.
func (c Config) Merge(other Config) Config {
	merged := make(Config, 0, len(c)+len(other))
	i, j := 0, 0
	for i < len(c) && j < len(other) {
		switch {
		case c[i].Size < other[j].Size:
			merged = append(merged, c[i])
			i++
		case c[i].Size > other[j].Size:
			merged = append(merged, other[j])
			j++
		default:
			merged = append(merged, SizeCount{Size: c[i].Size, Count: c[i].Count + other[j].Count})
			i, j = i+1, j+1
		}
	}
	merged = append(merged, c[i:]...)
	merged = append(merged, other[j:]...)
	return merged
}

// decrement removes exactly one open subtree of the given size.
// An entry whose count reaches zero is dropped. The second return
// value is false if the size is absent; the caller must treat that as
// a bookkeeping bug, not as a recoverable condition.
func (c Config) decrement(size int) (Config, bool) {
	idx := -1
	for i, sc := range c {
		if sc.Size == size {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	if c[idx].Count == 1 {
		out := make(Config, 0, len(c)-1)
		out = append(out, c[:idx]...)
		return append(out, c[idx+1:]...), true
	}
	out := slices.Clone(c)
	out[idx].Count--
	return out, true
}

// Total returns the number of open subtrees, counting multiplicities.
func (c Config) Total() int {
	total := 0
	for _, sc := range c {
		total += sc.Count
	}
	return total
}

// String renders the canonical form, e.g. "{1x2 4x1}". It is unique
// per configuration and serves as the distribution map key.
func (c Config) String() string {
	var builder strings.Builder
	builder.WriteByte('{')
	for i, sc := range c {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(sc.Size))
		builder.WriteByte('x')
		builder.WriteString(strconv.Itoa(sc.Count))
	}
	builder.WriteByte('}')
	return builder.String()
}

// Outcome pairs a configuration with its probability mass.
type Outcome struct {
	Config Config
	Prob   float64
}

// Distribution maps a configuration (by its canonical string form) to
// its probability mass. Masses from distinct derivation paths that
// reach the same configuration are summed.
type Distribution map[string]Outcome

func (d Distribution) add(cfg Config, prob float64) {
	key := cfg.String()
	out, ok := d[key]
	if !ok {
		out.Config = cfg
	}
	out.Prob += prob
	d[key] = out
}

// TotalMass sums the probability over all configurations. Any
// distribution produced from valid input sums to 1.0 within floating
// tolerance.
func (d Distribution) TotalMass() float64 {
	mass := 0.0
	for _, out := range d {
		mass += out.Prob
	}
	return mass
}
