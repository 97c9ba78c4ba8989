package scheduler

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// TestScheduledCampaignTriggers registers a tight schedule and checks the
// engine is invoked with the campaign's tenant scope.
func TestScheduledCampaignTriggers(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListScheduledCampaigns(mock.Anything).
		Return([]domain.ScheduledCampaign{
			{ID: 3, TenantID: "acme", Name: "wave 3", ScheduleCron: "@every 10ms"},
		}, nil)

	engine := mocks.NewMockExecutionEngine(t)
	triggered := make(chan struct{}, 8)
	engine.EXPECT().Start(mock.Anything, "acme", int64(3)).
		Run(func(ctx context.Context, tenantID string, campaignID int64) {
			select {
			case triggered <- struct{}{}:
			default:
			}
		}).
		Return(domain.ExecutionMetrics{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(repo, engine, testLogger(), time.Hour)
	go s.Run(ctx)

	select {
	case <-triggered:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled campaign never triggered")
	}
}

// TestOverlappingTickSkipped tolerates ErrAlreadyRunning from a tick that
// fires while the previous run is still in flight.
func TestOverlappingTickSkipped(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListScheduledCampaigns(mock.Anything).
		Return([]domain.ScheduledCampaign{
			{ID: 5, TenantID: "globex", ScheduleCron: "@every 10ms"},
		}, nil)

	engine := mocks.NewMockExecutionEngine(t)
	calls := make(chan struct{}, 8)
	engine.EXPECT().Start(mock.Anything, "globex", int64(5)).
		Run(func(ctx context.Context, tenantID string, campaignID int64) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(domain.ExecutionMetrics{}, port.ErrAlreadyRunning)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(repo, engine, testLogger(), time.Hour)
	go s.Run(ctx)

	// Two ticks must go through without the scheduler escalating or
	// dropping the entry.
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("tick never fired")
		}
	}
}

// TestInvalidSpecIgnored keeps the scheduler alive when a campaign carries a
// malformed cron expression.
func TestInvalidSpecIgnored(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListScheduledCampaigns(mock.Anything).
		Return([]domain.ScheduledCampaign{
			{ID: 9, TenantID: "acme", ScheduleCron: "not a cron spec"},
		}, nil)

	engine := mocks.NewMockExecutionEngine(t)

	s := New(repo, engine, testLogger(), time.Hour)
	s.reload(context.Background())

	if len(s.entries) != 0 {
		t.Fatalf("invalid spec registered: %v", s.entries)
	}
}
