package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"campaign-engine/internal/config/configs"
	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/kpi"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// runKey identifies a live run. All execution state is partitioned by tenant,
// so the campaign id alone is not enough.
type runKey struct {
	tenantID   string
	campaignID int64
}

// run is the live state of one execution. The engine goroutine driving the
// loop is the only writer of state; Pause and Resume flip the pause gate from
// other goroutines.
type run struct {
	id string

	mu     sync.Mutex
	state  domain.ExecutionState
	paused bool
	resume chan struct{}
	start  time.Time
}

func (r *run) snapshot() domain.ExecutionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *run) setStep(step, progress int, m domain.ExecutionMetrics) {
	r.mu.Lock()
	r.state.StepIndex = step
	r.state.Progress = progress
	r.state.Metrics = m
	r.mu.Unlock()
}

func (r *run) setStatus(s domain.ExecutionStatus) {
	r.mu.Lock()
	r.state.Status = s
	r.mu.Unlock()
}

// gate blocks while the run is paused. It returns early with the context
// error when the run is cancelled or times out.
func (r *run) gate(ctx context.Context) error {
	for {
		r.mu.Lock()
		if !r.paused {
			r.mu.Unlock()
			return nil
		}
		ch := r.resume
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
		}
	}
}

// ExecutionEngine drives campaign execution runs. It owns the state machine
// and step loop, persists progress through the campaign repository, records
// lifecycle events on the activity log, derives KPI metrics on completion and
// signals outcomes through the notifier. It implements port.ExecutionEngine.
type ExecutionEngine struct {
	repo     port.CampaignRepository
	sim      port.MetricsSimulator
	activity port.ActivityLogger
	notifier port.Notifier
	logger   *slog.Logger
	cfg      configs.Engine

	mu   sync.Mutex
	runs map[runKey]*run
}

// NewExecutionEngine creates an engine with the provided collaborators.
func NewExecutionEngine(
	repo port.CampaignRepository,
	sim port.MetricsSimulator,
	activity port.ActivityLogger,
	notifier port.Notifier,
	logger *slog.Logger,
	cfg configs.Engine,
) *ExecutionEngine {
	return &ExecutionEngine{
		repo:     repo,
		sim:      sim,
		activity: activity,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		runs:     make(map[runKey]*run),
	}
}

// Start runs a campaign execution to a terminal status and returns the final
// metrics. It blocks for the duration of the run; callers wanting an
// asynchronous start wrap it in a goroutine. Exactly one run per tenant and
// campaign may be in flight; concurrent starts are rejected with
// ErrAlreadyRunning and leave the first run untouched.
func (e *ExecutionEngine) Start(ctx context.Context, tenantID string, campaignID int64) (domain.ExecutionMetrics, error) {
	if tenantID == "" {
		return domain.ExecutionMetrics{}, port.ErrNoTenantContext
	}

	key := runKey{tenantID: tenantID, campaignID: campaignID}
	r := &run{
		id:     uuid.NewString(),
		resume: make(chan struct{}),
		start:  time.Now(),
	}
	r.state.Status = domain.StatusRunning

	e.mu.Lock()
	if _, exists := e.runs[key]; exists {
		e.mu.Unlock()
		return domain.ExecutionMetrics{}, port.ErrAlreadyRunning
	}
	e.runs[key] = r
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.runs, key)
		e.mu.Unlock()
	}()

	return e.execute(ctx, key, r)
}

// execute drives the step loop. The run is already registered under key.
func (e *ExecutionEngine) execute(ctx context.Context, key runKey, r *run) (domain.ExecutionMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.RunTimeout())
	defer cancel()

	total := e.cfg.TotalSteps
	metrics.RunStarted()

	stored, err := e.repo.ReadCampaignExecution(ctx, key.tenantID, key.campaignID)
	if err != nil {
		return domain.ExecutionMetrics{}, e.fail(ctx, key, r, 0, fmt.Errorf("read campaign execution: %w", err))
	}
	if stored == nil {
		metrics.RunFailed(time.Since(r.start))
		return domain.ExecutionMetrics{}, port.ErrCampaignNotFound
	}

	// Crash recovery: a non-terminal run left behind by a dead process is
	// continued from its persisted step index instead of restarting.
	startStep := 0
	var m domain.ExecutionMetrics
	if (stored.Status == domain.StoreInProgress || stored.Status == domain.StorePaused) &&
		stored.StepIndex > 0 && stored.StepIndex < total {
		startStep = stored.StepIndex
		m = stored.Metrics
		r.setStep(startStep, progressOf(startStep, total), m)
	}

	now := time.Now().UTC()
	status := domain.StoreInProgress
	patch := domain.ExecutionPatch{Status: &status, StepIndex: &startStep}
	if startStep == 0 {
		patch.StartDate = &now
		patch.Metrics = &domain.ExecutionMetrics{}
	}
	if err = e.repo.UpdateCampaignExecution(ctx, key.tenantID, key.campaignID, patch); err != nil {
		return m, e.fail(ctx, key, r, startStep, fmt.Errorf("persist execution start: %w", err))
	}

	e.activity.Log(domain.ActivityLogEntry{
		TenantID:  key.tenantID,
		EventType: domain.EventExecutionStarted,
		Message:   fmt.Sprintf("campaign %d execution started", key.campaignID),
		Meta:      e.runMeta(key, r, startStep),
		Severity:  domain.SeverityInfo,
		CreatedAt: now,
	})

	for i := startStep + 1; i <= total; i++ {
		// Cooperative yield point: cancellation, timeout and pause are
		// all observed here, before the step does any work.
		select {
		case <-ctx.Done():
			return m, e.fail(ctx, key, r, i, fmt.Errorf("run aborted: %w", ctx.Err()))
		case <-time.After(e.cfg.UpdateInterval):
		}
		if err = r.gate(ctx); err != nil {
			return m, e.fail(ctx, key, r, i, fmt.Errorf("run aborted: %w", err))
		}

		next, err := e.sim.Step(m, i, total)
		if err != nil {
			return m, e.fail(ctx, key, r, i, fmt.Errorf("simulate step %d: %w", i, err))
		}
		m = next

		stepTime := time.Now().UTC()
		if err = e.repo.UpdateCampaignExecution(ctx, key.tenantID, key.campaignID, domain.ExecutionPatch{
			Metrics:           &m,
			StepIndex:         &i,
			LastMetricsUpdate: &stepTime,
		}); err != nil {
			return m, e.fail(ctx, key, r, i, fmt.Errorf("persist step %d: %w", i, err))
		}

		e.activity.Log(domain.ActivityLogEntry{
			TenantID:  key.tenantID,
			EventType: domain.EventExecutionStep,
			Message:   fmt.Sprintf("step %d/%d completed", i, total),
			Meta: map[string]any{
				"run_id":      r.id,
				"campaign_id": key.campaignID,
				"step":        i,
				"total_steps": total,
				"views":       m.Views,
				"clicks":      m.Clicks,
				"conversions": m.Conversions,
			},
			Severity:  domain.SeverityInfo,
			CreatedAt: stepTime,
		})

		r.setStep(i, progressOf(i, total), m)
		metrics.StepExecuted()

		if i == total && e.cfg.KPITracking {
			for _, rec := range kpi.Derive(m, stepTime) {
				rec.TenantID = key.tenantID
				rec.CampaignID = key.campaignID
				// Append-only KPI inserts do not roll back the run.
				if kerr := e.repo.InsertKPIMetric(ctx, rec); kerr != nil {
					e.logger.Warn("kpi insert failed",
						slog.String("metric", rec.MetricName),
						slog.Int64("campaign_id", key.campaignID),
						slog.Any("error", kerr))
				}
			}
		}
	}

	r.setStatus(domain.StatusSuccess)
	done := domain.StoreCompleted
	if err = e.repo.UpdateCampaignExecution(ctx, key.tenantID, key.campaignID, domain.ExecutionPatch{Status: &done}); err != nil {
		return m, e.fail(ctx, key, r, total, fmt.Errorf("persist completion: %w", err))
	}

	metrics.RunCompleted(time.Since(r.start))
	e.activity.Log(domain.ActivityLogEntry{
		TenantID:  key.tenantID,
		EventType: domain.EventExecutionCompleted,
		Message:   fmt.Sprintf("campaign %d execution completed", key.campaignID),
		Meta:      e.runMeta(key, r, total),
		Severity:  domain.SeverityInfo,
		CreatedAt: time.Now().UTC(),
	})
	e.notifier.Success("Campaign execution completed",
		fmt.Sprintf("campaign %d finished all %d steps", key.campaignID, total))

	return m, nil
}

// fail moves the run to the error status, persists the failed state on a
// best-effort basis and notifies the caller-facing side. It returns cause so
// call sites can propagate it directly.
func (e *ExecutionEngine) fail(ctx context.Context, key runKey, r *run, step int, cause error) error {
	r.setStatus(domain.StatusError)

	// The triggering context may already be done; the terminal persist
	// still has to go through.
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	failed := domain.StoreFailed
	if perr := e.repo.UpdateCampaignExecution(pctx, key.tenantID, key.campaignID, domain.ExecutionPatch{Status: &failed}); perr != nil {
		e.logger.Error("persist failed status",
			slog.Int64("campaign_id", key.campaignID),
			slog.Any("error", perr))
	}

	e.activity.Log(domain.ActivityLogEntry{
		TenantID:  key.tenantID,
		EventType: domain.EventExecutionError,
		Message:   cause.Error(),
		Meta:      e.runMeta(key, r, step),
		Severity:  domain.SeverityError,
		CreatedAt: time.Now().UTC(),
	})
	e.notifier.Error("Campaign execution failed", cause.Error())
	metrics.RunFailed(time.Since(r.start))

	return cause
}

// Pause gates the live run before its next step and persists the paused
// status. An in-flight step runs to completion first; no progress is lost.
func (e *ExecutionEngine) Pause(ctx context.Context, tenantID string, campaignID int64) error {
	if tenantID == "" {
		return port.ErrNoTenantContext
	}
	r := e.lookup(runKey{tenantID: tenantID, campaignID: campaignID})
	if r == nil {
		return port.ErrRunNotActive
	}

	r.mu.Lock()
	if r.paused {
		r.mu.Unlock()
		return nil
	}
	r.paused = true
	r.resume = make(chan struct{})
	r.state.Status = domain.StatusPaused
	r.mu.Unlock()

	paused := domain.StorePaused
	if err := e.repo.UpdateCampaignExecution(ctx, tenantID, campaignID, domain.ExecutionPatch{Status: &paused}); err != nil {
		return fmt.Errorf("persist paused status: %w", err)
	}

	e.activity.Log(domain.ActivityLogEntry{
		TenantID:  tenantID,
		EventType: domain.EventExecutionPaused,
		Message:   fmt.Sprintf("campaign %d execution paused", campaignID),
		Meta:      e.runMeta(runKey{tenantID, campaignID}, r, r.snapshot().StepIndex),
		Severity:  domain.SeverityInfo,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Resume releases a paused run; the loop continues from the next unfinished
// step. Progress and metrics are exactly as they were at pause time.
func (e *ExecutionEngine) Resume(ctx context.Context, tenantID string, campaignID int64) error {
	if tenantID == "" {
		return port.ErrNoTenantContext
	}
	r := e.lookup(runKey{tenantID: tenantID, campaignID: campaignID})
	if r == nil {
		return port.ErrRunNotActive
	}

	r.mu.Lock()
	if !r.paused {
		r.mu.Unlock()
		return port.ErrRunNotPaused
	}
	r.mu.Unlock()

	running := domain.StoreInProgress
	if err := e.repo.UpdateCampaignExecution(ctx, tenantID, campaignID, domain.ExecutionPatch{Status: &running}); err != nil {
		return fmt.Errorf("persist resumed status: %w", err)
	}

	r.mu.Lock()
	if r.paused {
		r.paused = false
		r.state.Status = domain.StatusRunning
		close(r.resume)
	}
	r.mu.Unlock()

	e.activity.Log(domain.ActivityLogEntry{
		TenantID:  tenantID,
		EventType: domain.EventExecutionResumed,
		Message:   fmt.Sprintf("campaign %d execution resumed", campaignID),
		Meta:      e.runMeta(runKey{tenantID, campaignID}, r, r.snapshot().StepIndex),
		Severity:  domain.SeverityInfo,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Metrics reads the persisted execution record. Lookup failures are
// non-fatal: both a missing campaign and a store error yield (nil, nil), the
// latter with a logged warning.
func (e *ExecutionEngine) Metrics(ctx context.Context, tenantID string, campaignID int64) (*domain.CampaignExecution, error) {
	if tenantID == "" {
		return nil, port.ErrNoTenantContext
	}
	exec, err := e.repo.ReadCampaignExecution(ctx, tenantID, campaignID)
	if err != nil {
		e.logger.Warn("read execution metrics failed",
			slog.Int64("campaign_id", campaignID),
			slog.Any("error", err))
		return nil, nil
	}
	return exec, nil
}

// Snapshot returns the live state of a run, if one is in flight.
func (e *ExecutionEngine) Snapshot(tenantID string, campaignID int64) (domain.ExecutionState, bool) {
	r := e.lookup(runKey{tenantID: tenantID, campaignID: campaignID})
	if r == nil {
		return domain.ExecutionState{}, false
	}
	return r.snapshot(), true
}

func (e *ExecutionEngine) lookup(key runKey) *run {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runs[key]
}

func (e *ExecutionEngine) runMeta(key runKey, r *run, step int) map[string]any {
	return map[string]any{
		"run_id":      r.id,
		"campaign_id": key.campaignID,
		"step":        step,
		"total_steps": e.cfg.TotalSteps,
	}
}

// progressOf converts a completed step count into an integer percentage.
func progressOf(step, total int) int {
	return int(math.Round(float64(step) / float64(total) * 100))
}
