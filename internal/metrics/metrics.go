// Package metrics exposes prometheus instrumentation for the execution
// engine. Collectors are registered on the default registry via promauto and
// served by Handler.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	runsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_engine_runs_started_total",
			Help: "Total number of execution runs started",
		},
	)

	runsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_engine_runs_completed_total",
			Help: "Total number of execution runs that reached success",
		},
	)

	runsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_engine_runs_failed_total",
			Help: "Total number of execution runs that ended in error",
		},
	)

	stepsExecuted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campaign_engine_steps_executed_total",
			Help: "Total number of execution steps completed",
		},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_engine_run_duration_seconds",
			Help:    "Wall time of execution runs from start to terminal status",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
	)

	activeRuns = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "campaign_engine_active_runs",
			Help: "Number of execution runs currently in flight",
		},
	)
)

// RunStarted records the start of an execution run.
func RunStarted() {
	runsStarted.Inc()
	activeRuns.Inc()
}

// RunCompleted records a successful terminal transition.
func RunCompleted(d time.Duration) {
	runsCompleted.Inc()
	activeRuns.Dec()
	runDuration.Observe(d.Seconds())
}

// RunFailed records an error terminal transition.
func RunFailed(d time.Duration) {
	runsFailed.Inc()
	activeRuns.Dec()
	runDuration.Observe(d.Seconds())
}

// StepExecuted records one completed execution step.
func StepExecuted() {
	stepsExecuted.Inc()
}

// Handler returns the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
