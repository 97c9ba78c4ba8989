// Package kpi derives secondary rate metrics from the terminal metrics of an
// execution run.
package kpi

import (
	"time"

	"campaign-engine/internal/core/domain"
)

// Derive computes the KPI records for a finished run. Rates whose denominator
// is zero are absent from the result, not emitted as zero. Tenant and
// campaign scoping is left to the caller.
func Derive(m domain.ExecutionMetrics, now time.Time) []domain.KPIMetricRecord {
	var records []domain.KPIMetricRecord
	if m.Views > 0 {
		records = append(records, domain.KPIMetricRecord{
			MetricName: domain.KPIEngagementRate,
			Value:      float64(m.Clicks) / float64(m.Views) * 100,
			RecordedAt: now,
		})
	}
	if m.Clicks > 0 {
		records = append(records, domain.KPIMetricRecord{
			MetricName: domain.KPIConversionRate,
			Value:      float64(m.Conversions) / float64(m.Clicks) * 100,
			RecordedAt: now,
		})
	}
	return records
}
