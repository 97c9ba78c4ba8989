package domain

import "time"

// Names of the KPI metrics derived from terminal execution metrics.
const (
	KPIEngagementRate = "engagement_rate"
	KPIConversionRate = "conversion_rate"
)

// KPIMetricRecord is one derived KPI value. Records are an append-only time
// series; they are inserted, never updated, one per derived metric per run.
type KPIMetricRecord struct {
	TenantID   string    `json:"tenant_id"`
	CampaignID int64     `json:"campaign_id"`
	MetricName string    `json:"metric_name"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}
