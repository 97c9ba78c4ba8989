package port

import (
	"context"

	"campaign-engine/internal/core/domain"
)

// CampaignRepository defines the persistence layer for campaign execution
// state and derived KPI records. It is an outbound port in hexagonal
// architecture. Implementations must scope every write to tenant id +
// campaign id so a run can never touch another tenant's rows.
type CampaignRepository interface {
	// UpdateCampaignExecution applies a partial update to the campaign's
	// execution columns. Any error is fatal to the step that issued it.
	UpdateCampaignExecution(ctx context.Context, tenantID string, campaignID int64, patch domain.ExecutionPatch) error

	// InsertKPIMetric appends one derived KPI record. Inserts are
	// append-only; a failure is logged by the caller but does not roll
	// back the run.
	InsertKPIMetric(ctx context.Context, rec domain.KPIMetricRecord) error

	// ReadCampaignExecution returns the persisted execution record for a
	// campaign, or nil when the campaign does not exist.
	ReadCampaignExecution(ctx context.Context, tenantID string, campaignID int64) (*domain.CampaignExecution, error)

	// InsertActivityLog appends one audit-trail entry.
	InsertActivityLog(ctx context.Context, entry domain.ActivityLogEntry) error

	// ListScheduledCampaigns returns campaigns carrying a cron schedule,
	// across all tenants. Used by the scheduler.
	ListScheduledCampaigns(ctx context.Context) ([]domain.ScheduledCampaign, error)
}
