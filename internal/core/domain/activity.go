package domain

import "time"

// Execution lifecycle event types written to the activity log.
const (
	EventExecutionStarted   = "EXECUTION_STARTED"
	EventExecutionStep      = "EXECUTION_STEP"
	EventExecutionPaused    = "EXECUTION_PAUSED"
	EventExecutionResumed   = "EXECUTION_RESUMED"
	EventExecutionCompleted = "EXECUTION_COMPLETED"
	EventExecutionError     = "EXECUTION_ERROR"
)

// Activity log severities.
const (
	SeverityInfo  = "info"
	SeverityError = "error"
)

// ActivityLogEntry is one row of the append-only audit trail. Writing an
// entry must never fail the run it describes.
type ActivityLogEntry struct {
	TenantID  string         `json:"tenant_id"`
	EventType string         `json:"event_type"`
	Message   string         `json:"message"`
	Meta      map[string]any `json:"meta,omitempty"`
	Severity  string         `json:"severity"`
	CreatedAt time.Time      `json:"created_at"`
}
