package domain

import "time"

// Campaign represents a marketing campaign owned by a tenant. Execution
// columns live on the same row; the engine is their only writer while a run
// is active.
type Campaign struct {
	ID                 int64
	TenantID           string
	Name               string
	Status             string // draft, active, archived
	ScheduleCron       string // optional cron spec for scheduled execution
	ExecutionStatus    string
	ExecutionStepIndex int
	ExecutionMetrics   ExecutionMetrics
	ExecutionStartDate *time.Time
	LastMetricsUpdate  *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ScheduledCampaign is the subset of a campaign the scheduler needs to
// register a cron-triggered execution.
type ScheduledCampaign struct {
	ID           int64
	TenantID     string
	Name         string
	ScheduleCron string
}
