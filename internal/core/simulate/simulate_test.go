package simulate

import (
	"math/rand"
	"testing"

	"campaign-engine/internal/core/domain"
)

// TestFixedDrawTrace pins the full ten-step trace for a constant 0.5 draw.
func TestFixedDrawTrace(t *testing.T) {
	sim := NewWithRand(func() float64 { return 0.5 })

	want := []struct {
		views, clicks, conversions int64
	}{
		{10, 0, 0},
		{30, 2, 0},
		{60, 6, 0},
		{100, 13, 1},
		{150, 24, 2},
		{210, 39, 5},
		{280, 60, 11},
		{360, 87, 19},
		{450, 120, 31},
		{550, 161, 47},
	}

	var m domain.ExecutionMetrics
	for i := 1; i <= 10; i++ {
		next, err := sim.Step(m, i, 10)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		w := want[i-1]
		if next.Views != w.views || next.Clicks != w.clicks || next.Conversions != w.conversions {
			t.Fatalf("step %d: got {%d %d %d}, want {%d %d %d}",
				i, next.Views, next.Clicks, next.Conversions, w.views, w.clicks, w.conversions)
		}
		if next.LastTracked.IsZero() {
			t.Fatalf("step %d: last_tracked not set", i)
		}
		m = next
	}
}

// TestMonotonicMetrics checks that counters never decrease once their carry
// kicks in: views from step 2, clicks from step 3, conversions from step 6.
// Before that the draws are independent and early dips are expected.
func TestMonotonicMetrics(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		sim := NewWithRand(rand.New(rand.NewSource(seed)).Float64)

		var prev domain.ExecutionMetrics
		for i := 1; i <= 10; i++ {
			next, err := sim.Step(prev, i, 10)
			if err != nil {
				t.Fatalf("seed %d step %d: %v", seed, i, err)
			}
			if i > 1 && next.Views < prev.Views {
				t.Fatalf("seed %d step %d: views decreased %d -> %d", seed, i, prev.Views, next.Views)
			}
			if i > 2 && next.Clicks < prev.Clicks {
				t.Fatalf("seed %d step %d: clicks decreased %d -> %d", seed, i, prev.Clicks, next.Clicks)
			}
			if i > 5 && next.Conversions < prev.Conversions {
				t.Fatalf("seed %d step %d: conversions decreased %d -> %d", seed, i, prev.Conversions, next.Conversions)
			}
			prev = next
		}
	}
}

// TestFirstStepIgnoresCarry ensures step 1 never inherits stale counters.
func TestFirstStepIgnoresCarry(t *testing.T) {
	sim := NewWithRand(func() float64 { return 0 })

	stale := domain.ExecutionMetrics{Views: 999, Clicks: 999, Conversions: 999}
	next, err := sim.Step(stale, 1, 10)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if next.Views != 10 || next.Clicks != 0 || next.Conversions != 0 {
		t.Fatalf("got {%d %d %d}, want {10 0 0}", next.Views, next.Clicks, next.Conversions)
	}
}
