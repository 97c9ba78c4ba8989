package domain

import "time"

// ExecutionStatus is the lifecycle state of a campaign execution run as seen
// by the engine. Success and Error are terminal; a campaign id may only be
// started again once the previous run reached a terminal status.
type ExecutionStatus string

const (
	StatusIdle    ExecutionStatus = "idle"
	StatusRunning ExecutionStatus = "running"
	StatusPaused  ExecutionStatus = "paused"
	StatusSuccess ExecutionStatus = "success"
	StatusError   ExecutionStatus = "error"
)

// Terminal reports whether the status ends the run.
func (s ExecutionStatus) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// Persisted execution_status values. The store uses its own vocabulary,
// which predates the engine's.
const (
	StoreInProgress = "in_progress"
	StorePaused     = "paused"
	StoreCompleted  = "completed"
	StoreFailed     = "failed"
)

// StoreValue maps the engine status onto the persisted execution_status
// vocabulary. Idle has no store representation; it maps to an empty string.
func (s ExecutionStatus) StoreValue() string {
	switch s {
	case StatusRunning:
		return StoreInProgress
	case StatusPaused:
		return StorePaused
	case StatusSuccess:
		return StoreCompleted
	case StatusError:
		return StoreFailed
	default:
		return ""
	}
}

// ExecutionMetrics holds the engagement counters accumulated by a run.
// Counters accumulate once their carry-over window starts; see the simulate
// package for the warm-up behavior.
type ExecutionMetrics struct {
	Views       int64     `json:"views"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	LastTracked time.Time `json:"last_tracked"`
}

// ExecutionState is a snapshot of a live run: status, percentage progress,
// the index of the last completed step and the current metrics. Progress is
// monotonically non-decreasing within a run.
type ExecutionState struct {
	Status    ExecutionStatus  `json:"status"`
	Progress  int              `json:"progress"`
	StepIndex int              `json:"step_index"`
	Metrics   ExecutionMetrics `json:"metrics"`
}

// ExecutionPatch is a partial update of a campaign's execution columns.
// Nil fields are left untouched by the store.
type ExecutionPatch struct {
	Status            *string
	Metrics           *ExecutionMetrics
	StepIndex         *int
	StartDate         *time.Time
	LastMetricsUpdate *time.Time
}

// CampaignExecution is the persisted execution record of a campaign as read
// back from the store.
type CampaignExecution struct {
	Metrics           ExecutionMetrics `json:"execution_metrics"`
	Status            string           `json:"execution_status"`
	StepIndex         int              `json:"execution_step_index"`
	StartDate         *time.Time       `json:"execution_start_date"`
	LastMetricsUpdate *time.Time       `json:"last_metrics_update"`
}
