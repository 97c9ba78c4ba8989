package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
	"campaign-engine/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockExecutionEngine) {
	engine := mocks.NewMockExecutionEngine(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	return NewHandler(engine, logger), engine
}

func doRequest(h *Handler, method, path, tenant string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if tenant != "" {
		req.Header.Set(tenantHeader, tenant)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestStartAccepted(t *testing.T) {
	h, engine := newTestHandler(t)

	started := make(chan struct{})
	engine.EXPECT().Snapshot("acme", int64(7)).Return(domain.ExecutionState{}, false)
	engine.EXPECT().Start(mock.Anything, "acme", int64(7)).
		Run(func(ctx context.Context, tenantID string, campaignID int64) {
			close(started)
		}).
		Return(domain.ExecutionMetrics{}, nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/7/execution/start", "acme")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status %d, want 202", rec.Code)
	}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("background run never started")
	}
}

func TestStartMissingTenant(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/7/execution/start", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestStartConflictWhileRunning(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Snapshot("acme", int64(7)).
		Return(domain.ExecutionState{Status: domain.StatusRunning}, true)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/7/execution/start", "acme")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", rec.Code)
	}
}

func TestStartInvalidCampaignID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/banana/execution/start", "acme")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestPauseConflictWithoutRun(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Pause(mock.Anything, "acme", int64(7)).Return(port.ErrRunNotActive)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/7/execution/pause", "acme")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409", rec.Code)
	}
}

func TestResumeNoContent(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Resume(mock.Anything, "acme", int64(7)).Return(nil)

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/7/execution/resume", "acme")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status %d, want 204", rec.Code)
	}
}

func TestMetricsNotFound(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Metrics(mock.Anything, "acme", int64(7)).Return(nil, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/7/execution/metrics", "acme")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestMetricsReturnsRecord(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Metrics(mock.Anything, "acme", int64(7)).
		Return(&domain.CampaignExecution{
			Status:    domain.StoreCompleted,
			StepIndex: 10,
			Metrics:   domain.ExecutionMetrics{Views: 550, Clicks: 161, Conversions: 47},
		}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/7/execution/metrics", "acme")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var exec domain.CampaignExecution
	if err := json.Unmarshal(rec.Body.Bytes(), &exec); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if exec.Status != domain.StoreCompleted || exec.Metrics.Views != 550 {
		t.Fatalf("unexpected body %+v", exec)
	}
}

func TestStatusLiveRun(t *testing.T) {
	h, engine := newTestHandler(t)
	engine.EXPECT().Snapshot("acme", int64(7)).
		Return(domain.ExecutionState{Status: domain.StatusRunning, Progress: 40, StepIndex: 4}, true)

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/7/execution/status", "acme")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var state domain.ExecutionState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if state.Status != domain.StatusRunning || state.Progress != 40 {
		t.Fatalf("unexpected state %+v", state)
	}
}
