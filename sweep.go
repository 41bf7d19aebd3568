package onetree

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Analysis is the full outcome of analyzing one (csp, tau) pair.
type Analysis struct {
	Csp    int
	Tau    int
	Params VCParams
	Leaves int
	Hist   Histogram
}

// Analyze derives the subtree layout for the given parameters, runs
// the propagation for tau steps over the derived leaf count, and
// collapses the result to a histogram. The caller applies any
// grinding to csp beforehand.
func Analyze(csp, tau int) (Analysis, error) {
	params, err := DeriveVCParams(csp, tau)
	if err != nil {
		return Analysis{}, err
	}
	leaves, err := params.Leaves()
	if err != nil {
		return Analysis{}, err
	}
	if leaves <= 0 {
		return Analysis{}, errors.Newf("derived leaf count %d for csp=%d tau=%d", leaves, csp, tau)
	}
	dist, err := Propagate(leaves, tau)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Csp:    csp,
		Tau:    tau,
		Params: params,
		Leaves: leaves,
		Hist:   NewHistogram(dist),
	}, nil
}

// SweepPoint is one row of a tau sweep: the tail bounds at 1/8, 1/4
// and 1/2 together with the expected open-subtree count.
type SweepPoint struct {
	Csp      int
	Tau      int
	Expected float64
	Tail8    int
	Tail4    int
	Tail2    int
}

// SweepTau analyzes every tau in [tauMin, tauMax] for a fixed csp,
// one goroutine per point, and returns the rows ordered by tau.
// grind is subtracted from csp before the derivation.
func SweepTau(csp, grind, tauMin, tauMax int) ([]SweepPoint, error) {
	if tauMin < 1 || tauMax < tauMin {
		return nil, errors.Newf("invalid tau range [%d, %d]", tauMin, tauMax)
	}
	type pointResult struct {
		point SweepPoint
		err   error
	}
	n := tauMax - tauMin + 1
	results := make(chan pointResult, n)
	for tau := tauMin; tau <= tauMax; tau++ {
		go func() {
			analysis, err := Analyze(csp-grind, tau)
			if err != nil {
				results <- pointResult{err: errors.Wrapf(err, "tau %d", tau)}
				return
			}
			results <- pointResult{point: SweepPoint{
				Csp:      analysis.Csp,
				Tau:      analysis.Tau,
				Expected: analysis.Hist.ExpectedNodes(),
				Tail8:    analysis.Hist.TailBound(1.0 / 8),
				Tail4:    analysis.Hist.TailBound(1.0 / 4),
				Tail2:    analysis.Hist.TailBound(1.0 / 2),
			}}
		}()
	}
	points := make([]SweepPoint, 0, n)
	for range n {
		r := <-results
		if r.err != nil {
			return nil, r.err
		}
		points = append(points, r.point)
	}
	slices.SortFunc(points, func(a, b SweepPoint) int { return a.Tau - b.Tau })
	return points, nil
}
