package onetree

import (
	"math"
	"testing"
)

func TestAnalyze(t *testing.T) {
	// csp=8, tau=1 derives a single full subtree of 256 leaves; one
	// step resolves it deterministically into 8 open subtrees.
	analysis, err := Analyze(8, 1)
	if err != nil {
		t.Fatal(err)
	}
	if analysis.Leaves != 256 {
		t.Errorf("Leaves = %d; want 256", analysis.Leaves)
	}
	if len(analysis.Hist) != 1 {
		t.Fatalf("histogram = %v; want a single bin", analysis.Hist)
	}
	if bin := analysis.Hist[0]; bin.Nodes != 8 || bin.Prob != 1.0 {
		t.Errorf("histogram bin = %+v; want {Nodes: 8, Prob: 1}", bin)
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	if _, err := Analyze(128, 0); err == nil {
		t.Error("Analyze(128, 0) succeeded; want error")
	}
}

func TestSweepTau(t *testing.T) {
	points, err := SweepTau(8, 0, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 3 {
		t.Fatalf("len(points) = %d; want 3", len(points))
	}
	for i, p := range points {
		if p.Tau != i+1 {
			t.Errorf("points[%d].Tau = %d; want %d", i, p.Tau, i+1)
		}
		if p.Csp != 8 {
			t.Errorf("points[%d].Csp = %d; want 8", i, p.Csp)
		}
		if p.Tail8 < p.Tail4 || p.Tail4 < p.Tail2 {
			t.Errorf("points[%d] tail bounds not monotone: 1/8=%d 1/4=%d 1/2=%d",
				i, p.Tail8, p.Tail4, p.Tail2)
		}
		if p.Expected <= 0 {
			t.Errorf("points[%d].Expected = %v; want > 0", i, p.Expected)
		}
	}
	// tau=1 resolves the single power-of-two subtree deterministically.
	if got := points[0].Expected; math.Abs(got-8) > 1e-9 {
		t.Errorf("points[0].Expected = %v; want 8", got)
	}
	if points[0].Tail2 != 8 {
		t.Errorf("points[0].Tail2 = %d; want 8", points[0].Tail2)
	}
}

func TestSweepTauInvalidRange(t *testing.T) {
	if _, err := SweepTau(8, 0, 0, 4); err == nil {
		t.Error("SweepTau with tauMin 0 succeeded; want error")
	}
	if _, err := SweepTau(8, 0, 5, 4); err == nil {
		t.Error("SweepTau with empty range succeeded; want error")
	}
}
