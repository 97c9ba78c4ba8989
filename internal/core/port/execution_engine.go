package port

import (
	"context"
	"errors"

	"campaign-engine/internal/core/domain"
)

var (
	// ErrNoTenantContext is returned when an operation is attempted
	// without a tenant id. No state is mutated.
	ErrNoTenantContext = errors.New("no tenant context")

	// ErrAlreadyRunning is returned by Start when a run is already active
	// for the same tenant and campaign.
	ErrAlreadyRunning = errors.New("execution already running")

	// ErrRunNotActive is returned by Pause and Resume when no live run
	// exists for the campaign.
	ErrRunNotActive = errors.New("no active execution")

	// ErrRunNotPaused is returned by Resume when the live run is not
	// paused.
	ErrRunNotPaused = errors.New("execution is not paused")

	// ErrCampaignNotFound is returned when the campaign row does not
	// exist for the tenant.
	ErrCampaignNotFound = errors.New("campaign not found")
)

// ExecutionEngine defines the business operations of the campaign execution
// core. This interface is the primary port into the application domain. Mock
// implementations are generated from it for testing.
type ExecutionEngine interface {
	// Start runs a campaign execution to a terminal status and returns
	// the final metrics. It drives the full step loop, persisting metrics
	// and progress after every step, and derives KPI records on
	// completion. A second Start for the same tenant and campaign while a
	// run is active returns ErrAlreadyRunning. If the store holds a
	// non-terminal run with no live loop (crash recovery), the loop
	// continues from the persisted step index.
	Start(ctx context.Context, tenantID string, campaignID int64) (domain.ExecutionMetrics, error)

	// Pause gates the live run before its next step and persists the
	// paused status. The in-flight step finishes first.
	Pause(ctx context.Context, tenantID string, campaignID int64) error

	// Resume releases a paused run; the loop continues from the next
	// unfinished step.
	Resume(ctx context.Context, tenantID string, campaignID int64) error

	// Metrics reads the persisted execution record. A lookup failure is
	// non-fatal: missing campaigns yield (nil, nil).
	Metrics(ctx context.Context, tenantID string, campaignID int64) (*domain.CampaignExecution, error)

	// Snapshot returns the live run state, if any.
	Snapshot(tenantID string, campaignID int64) (domain.ExecutionState, bool)
}
