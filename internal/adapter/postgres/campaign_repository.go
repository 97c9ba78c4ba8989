package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Every execution write is scoped to tenant_id + campaign_id so a
// run can never update another tenant's rows.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// UpdateCampaignExecution applies a partial update to the campaign's
// execution columns. Nil patch fields are left untouched. A patch that
// matches no row yields ErrCampaignNotFound.
func (r *CampaignRepository) UpdateCampaignExecution(ctx context.Context, tenantID string, campaignID int64, patch domain.ExecutionPatch) error {
	set := []string{"updated_at = now()"}
	args := []any{tenantID, campaignID}

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		add("execution_status", *patch.Status)
	}
	if patch.Metrics != nil {
		raw, err := json.Marshal(patch.Metrics)
		if err != nil {
			return fmt.Errorf("marshal execution metrics: %w", err)
		}
		add("execution_metrics", raw)
	}
	if patch.StepIndex != nil {
		add("execution_step_index", *patch.StepIndex)
	}
	if patch.StartDate != nil {
		add("execution_start_date", *patch.StartDate)
	}
	if patch.LastMetricsUpdate != nil {
		add("last_metrics_update", *patch.LastMetricsUpdate)
	}

	query := "UPDATE campaigns SET "
	for i, s := range set {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += " WHERE tenant_id = $1 AND id = $2"

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// InsertKPIMetric appends one derived KPI record. Rows are append-only.
func (r *CampaignRepository) InsertKPIMetric(ctx context.Context, rec domain.KPIMetricRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO kpi_metrics (tenant_id, campaign_id, metric_name, value, recorded_at) VALUES ($1,$2,$3,$4,$5)`,
		rec.TenantID, rec.CampaignID, rec.MetricName, rec.Value, rec.RecordedAt)
	return err
}

// ReadCampaignExecution returns the persisted execution record for a
// campaign, or nil when the campaign does not exist.
func (r *CampaignRepository) ReadCampaignExecution(ctx context.Context, tenantID string, campaignID int64) (*domain.CampaignExecution, error) {
	var (
		exec domain.CampaignExecution
		raw  []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(execution_status, ''), execution_step_index, execution_metrics, execution_start_date, last_metrics_update
		 FROM campaigns WHERE tenant_id = $1 AND id = $2`,
		tenantID, campaignID).
		Scan(&exec.Status, &exec.StepIndex, &raw, &exec.StartDate, &exec.LastMetricsUpdate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &exec.Metrics); err != nil {
			return nil, fmt.Errorf("unmarshal execution metrics: %w", err)
		}
	}
	return &exec, nil
}

// InsertActivityLog appends one audit-trail entry.
func (r *CampaignRepository) InsertActivityLog(ctx context.Context, entry domain.ActivityLogEntry) error {
	var meta []byte
	if entry.Meta != nil {
		raw, err := json.Marshal(entry.Meta)
		if err != nil {
			return fmt.Errorf("marshal activity meta: %w", err)
		}
		meta = raw
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activity_log (tenant_id, event_type, message, meta, severity, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		entry.TenantID, entry.EventType, entry.Message, meta, entry.Severity, entry.CreatedAt)
	return err
}

// ListScheduledCampaigns returns campaigns carrying a cron schedule.
func (r *CampaignRepository) ListScheduledCampaigns(ctx context.Context) ([]domain.ScheduledCampaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, tenant_id, name, schedule_cron FROM campaigns
		 WHERE status = 'active' AND schedule_cron <> ''`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduledCampaign, error) {
		var sc domain.ScheduledCampaign
		err := row.Scan(&sc.ID, &sc.TenantID, &sc.Name, &sc.ScheduleCron)
		return sc, err
	})
}
