package port

import "campaign-engine/internal/core/domain"

// MetricsSimulator advances engagement metrics by one execution step. Step is
// pure with respect to its inputs apart from the injected random source; an
// error from Step is fatal to the run.
type MetricsSimulator interface {
	Step(prev domain.ExecutionMetrics, step, totalSteps int) (domain.ExecutionMetrics, error)
}
