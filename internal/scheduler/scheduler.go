// Package scheduler starts campaign executions on cron schedules. Campaigns
// carrying a schedule_cron expression are reloaded periodically and
// registered with a cron runner; each tick triggers a run through the engine.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

// Scheduler drives scheduled campaign executions.
type Scheduler struct {
	repo    port.CampaignRepository
	engine  port.ExecutionEngine
	logger  *slog.Logger
	refresh time.Duration

	cron *cron.Cron

	mu      sync.Mutex
	entries map[int64]cron.EntryID // campaign id -> cron entry
	specs   map[int64]string
}

// New creates a scheduler. refresh controls how often the campaign schedule
// list is reloaded from the store.
func New(repo port.CampaignRepository, engine port.ExecutionEngine, logger *slog.Logger, refresh time.Duration) *Scheduler {
	return &Scheduler{
		repo:    repo,
		engine:  engine,
		logger:  logger,
		refresh: refresh,
		cron:    cron.New(),
		entries: make(map[int64]cron.EntryID),
		specs:   make(map[int64]string),
	}
}

// Run reloads schedules until ctx is cancelled. It blocks; callers run it on
// its own goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.reload(ctx)
	s.cron.Start()
	defer s.cron.Stop()

	ticker := time.NewTicker(s.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reload(ctx)
		}
	}
}

// reload synchronizes cron entries with the stored schedules. Changed specs
// are re-registered, removed campaigns are dropped.
func (s *Scheduler) reload(ctx context.Context) {
	campaigns, err := s.repo.ListScheduledCampaigns(ctx)
	if err != nil {
		s.logger.Warn("reload campaign schedules failed", slog.Any("error", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int64]bool, len(campaigns))
	for _, c := range campaigns {
		seen[c.ID] = true
		if s.specs[c.ID] == c.ScheduleCron {
			continue
		}
		if id, ok := s.entries[c.ID]; ok {
			s.cron.Remove(id)
		}
		entryID, err := s.cron.AddFunc(c.ScheduleCron, s.trigger(c))
		if err != nil {
			s.logger.Warn("invalid campaign schedule",
				slog.Int64("campaign_id", c.ID),
				slog.String("spec", c.ScheduleCron),
				slog.Any("error", err))
			continue
		}
		s.entries[c.ID] = entryID
		s.specs[c.ID] = c.ScheduleCron
	}

	for id, entryID := range s.entries {
		if !seen[id] {
			s.cron.Remove(entryID)
			delete(s.entries, id)
			delete(s.specs, id)
		}
	}
}

// trigger returns the cron callback for one campaign. An overlapping tick is
// skipped: the engine rejects it with ErrAlreadyRunning.
func (s *Scheduler) trigger(c domain.ScheduledCampaign) func() {
	return func() {
		if _, err := s.engine.Start(context.Background(), c.TenantID, c.ID); err != nil {
			if errors.Is(err, port.ErrAlreadyRunning) {
				s.logger.Info("scheduled run skipped, execution in flight",
					slog.Int64("campaign_id", c.ID))
				return
			}
			s.logger.Error("scheduled run failed",
				slog.Int64("campaign_id", c.ID),
				slog.Any("error", err))
		}
	}
}
