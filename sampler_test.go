package onetree

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSplitDistributionPowerOfTwo(t *testing.T) {
	for k := 0; k <= 6; k++ {
		n := 1 << k
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			dist, err := SplitDistribution(n)
			if err != nil {
				t.Fatal(err)
			}
			if len(dist) != 1 {
				t.Fatalf("len(dist) = %d; want 1", len(dist))
			}
			want := Config{}
			for i := 0; i < k; i++ {
				want = append(want, SizeCount{Size: 1 << i, Count: 1})
			}
			out, ok := dist[want.String()]
			if !ok {
				t.Fatalf("deterministic configuration %s missing from %v", want, dist)
			}
			if out.Prob != 1.0 {
				t.Errorf("Prob = %v; want 1.0", out.Prob)
			}
		})
	}
}

func TestSplitDistributionSmall(t *testing.T) {
	tests := []struct {
		n    int
		want map[string]float64
	}{
		{n: 1, want: map[string]float64{"{}": 1.0}},
		{n: 2, want: map[string]float64{"{1x1}": 1.0}},
		{n: 3, want: map[string]float64{"{1x2}": 2.0 / 3, "{2x1}": 1.0 / 3}},
		{n: 5, want: map[string]float64{"{1x2 2x1}": 2.0 / 5, "{2x2}": 1.0 / 5, "{1x1 3x1}": 2.0 / 5}},
		{n: 6, want: map[string]float64{"{1x1 2x2}": 2.0 / 3, "{1x1 4x1}": 1.0 / 3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			dist, err := SplitDistribution(tt.n)
			if err != nil {
				t.Fatal(err)
			}
			got := make(map[string]float64, len(dist))
			for key, out := range dist {
				got[key] = out.Prob
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
				t.Errorf("SplitDistribution(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestSplitDistributionMass(t *testing.T) {
	for n := 1; n <= 64; n++ {
		dist, err := SplitDistribution(n)
		if err != nil {
			t.Fatal(err)
		}
		if mass := dist.TotalMass(); math.Abs(mass-1.0) > 1e-9 {
			t.Errorf("SplitDistribution(%d) mass = %v; want 1.0", n, mass)
		}
	}
}

func TestSplitDistributionDegenerate(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		dist, err := SplitDistribution(n)
		if err != nil {
			t.Fatal(err)
		}
		if len(dist) != 0 {
			t.Errorf("SplitDistribution(%d) = %v; want empty", n, dist)
		}
	}
}

func TestSplitDistributionConfigsCanonical(t *testing.T) {
	for _, n := range []int{3, 7, 12, 33} {
		dist, err := SplitDistribution(n)
		if err != nil {
			t.Fatal(err)
		}
		for key, out := range dist {
			for i, sc := range out.Config {
				if sc.Count < 1 {
					t.Errorf("n=%d: config %s has count %d for size %d", n, key, sc.Count, sc.Size)
				}
				if i > 0 && out.Config[i-1].Size >= sc.Size {
					t.Errorf("n=%d: config %s not sorted by size", n, key)
				}
			}
		}
	}
}

func TestSplitCache(t *testing.T) {
	cache := splitCache{}
	first, err := cache.get(12)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cache.get(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(cache) != 1 {
		t.Errorf("len(cache) = %d; want 1", len(cache))
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cache returned different distributions (-first +second):\n%s", diff)
	}
}

func BenchmarkSplitDistribution(b *testing.B) {
	for _, n := range []int{64, 100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for range b.N {
				if _, err := SplitDistribution(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
