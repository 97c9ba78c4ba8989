package kpi

import (
	"math"
	"testing"
	"time"

	"campaign-engine/internal/core/domain"
)

func TestDeriveBothRates(t *testing.T) {
	now := time.Now().UTC()
	m := domain.ExecutionMetrics{Views: 550, Clicks: 161, Conversions: 47}

	records := Derive(m, now)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	byName := map[string]domain.KPIMetricRecord{}
	for _, r := range records {
		byName[r.MetricName] = r
		if !r.RecordedAt.Equal(now) {
			t.Fatalf("recorded_at mismatch for %s", r.MetricName)
		}
	}

	eng := byName[domain.KPIEngagementRate]
	if math.Abs(eng.Value-float64(161)/550*100) > 1e-9 {
		t.Fatalf("engagement_rate: got %v", eng.Value)
	}
	conv := byName[domain.KPIConversionRate]
	if math.Abs(conv.Value-float64(47)/161*100) > 1e-9 {
		t.Fatalf("conversion_rate: got %v", conv.Value)
	}
}

func TestDeriveZeroViews(t *testing.T) {
	records := Derive(domain.ExecutionMetrics{}, time.Now())
	if len(records) != 0 {
		t.Fatalf("expected no records for zero metrics, got %d", len(records))
	}
}

func TestDeriveZeroClicks(t *testing.T) {
	records := Derive(domain.ExecutionMetrics{Views: 100}, time.Now())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].MetricName != domain.KPIEngagementRate {
		t.Fatalf("expected engagement_rate, got %s", records[0].MetricName)
	}
	if records[0].Value != 0 {
		t.Fatalf("expected 0%% engagement, got %v", records[0].Value)
	}
}
