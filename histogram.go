package onetree

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Bin holds the aggregated probability that the process ends with
// exactly Nodes open subtrees.
type Bin struct {
	Nodes int
	Prob  float64
}

// Histogram is a distribution over total open-subtree counts, sorted
// by node count ascending.
type Histogram []Bin

// NewHistogram collapses a configuration distribution to a histogram
// over the total open-subtree count of each configuration.
func NewHistogram(dist Distribution) Histogram {
	acc := make(map[int]float64, len(dist))
	for _, out := range dist {
		acc[out.Config.Total()] += out.Prob
	}
	hist := make(Histogram, 0, len(acc))
	for nodes, prob := range acc {
		hist = append(hist, Bin{Nodes: nodes, Prob: prob})
	}
	slices.SortFunc(hist, func(a, b Bin) int { return a.Nodes - b.Nodes })
	return hist
}

// TotalMass sums the probability over all bins.
func (h Histogram) TotalMass() float64 {
	mass := 0.0
	for _, bin := range h {
		mass += bin.Prob
	}
	return mass
}

// ExpectedNodes returns the probability-weighted mean open-subtree
// count.
func (h Histogram) ExpectedNodes() float64 {
	if len(h) == 0 {
		return 0
	}
	nodes := make([]float64, len(h))
	weights := make([]float64, len(h))
	for i, bin := range h {
		nodes[i] = float64(bin.Nodes)
		weights[i] = bin.Prob
	}
	return stat.Mean(nodes, weights)
}

// TailBound returns the smallest node count n such that the process
// ends with at most n open subtrees with probability at least 1-q.
// It returns -1 for an empty histogram.
func (h Histogram) TailBound(q float64) int {
	cum := 0.0
	for _, bin := range h {
		cum += bin.Prob
		if cum >= 1-q {
			return bin.Nodes
		}
	}
	if len(h) == 0 {
		return -1
	}
	// Accumulated rounding error can leave cum marginally below 1-q;
	// the last bin is then the bound.
	return h[len(h)-1].Nodes
}
