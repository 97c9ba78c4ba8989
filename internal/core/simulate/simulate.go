// Package simulate produces synthetic engagement metrics for a campaign
// execution run. The step function models organic traffic: each step adds a
// growing slice of views and converts a random fraction of them down the
// funnel. Randomness is injected so tests can fix the draw.
package simulate

import (
	"math"
	"math/rand"
	"time"

	"campaign-engine/internal/core/domain"
)

// Simulator implements port.MetricsSimulator. The zero value is not usable;
// construct with New or NewWithRand.
type Simulator struct {
	rnd func() float64
}

// New returns a Simulator seeded from the current time.
func New() *Simulator {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())).Float64)
}

// NewWithRand returns a Simulator drawing from rnd, a uniform [0,1) source.
// Tests pass a seeded or constant source for deterministic traces.
func NewWithRand(rnd func() float64) *Simulator {
	return &Simulator{rnd: rnd}
}

// Step advances metrics from step-1 to step. step is 1-based; totalSteps is
// the fixed length of the run. Prior counters carry over only once the run is
// past the corresponding warm-up step, mirroring how real campaigns pick up
// clicks and conversions later than views.
//
// Note: the click and conversion draws are not clamped to the funnel, so an
// adverse draw can in principle report clicks above views.
func (s *Simulator) Step(prev domain.ExecutionMetrics, step, totalSteps int) (domain.ExecutionMetrics, error) {
	ratio := float64(step) / float64(totalSteps)

	views := int64(math.Floor(100 * ratio))
	if step > 1 {
		views += prev.Views
	}

	var clickCarry, convCarry int64
	if step > 2 {
		clickCarry = prev.Clicks
	}
	if step > 5 {
		convCarry = prev.Conversions
	}

	clicks := int64(math.Floor(float64(views)*0.15*s.rnd() + float64(clickCarry)))
	conversions := int64(math.Floor(float64(clicks)*0.2*s.rnd() + float64(convCarry)))

	return domain.ExecutionMetrics{
		Views:       views,
		Clicks:      clicks,
		Conversions: conversions,
		LastTracked: time.Now().UTC(),
	}, nil
}
