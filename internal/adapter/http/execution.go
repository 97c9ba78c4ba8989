package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-engine/internal/core/port"
)

// tenantHeader carries the caller's tenant scope. Session validation happens
// upstream at the gateway; an empty header is rejected by the engine.
const tenantHeader = "X-Tenant-ID"

// handleStart launches a campaign execution. The run continues in the
// background; the response is 202 Accepted with the initial status. A run
// already in flight for the campaign results in HTTP 409. A missing tenant
// header results in HTTP 400.
func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	tenantID, campaignID, ok := h.executionParams(w, r)
	if !ok {
		return
	}

	// Reject the obvious precondition failures synchronously so the
	// caller sees them; the run itself is detached from the request.
	if tenantID == "" {
		http.Error(w, "missing tenant", http.StatusBadRequest)
		return
	}
	if _, live := h.engine.Snapshot(tenantID, campaignID); live {
		http.Error(w, "execution already running", http.StatusConflict)
		return
	}

	go func() {
		if _, err := h.engine.Start(context.WithoutCancel(r.Context()), tenantID, campaignID); err != nil {
			h.logger.Error("execution run ended with error",
				slog.Int64("campaign_id", campaignID),
				slog.Any("error", err))
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "running", "campaign_id": campaignID})
}

// handlePause gates the live run before its next step.
func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	tenantID, campaignID, ok := h.executionParams(w, r)
	if !ok {
		return
	}
	if err := h.engine.Pause(r.Context(), tenantID, campaignID); err != nil {
		h.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResume releases a paused run.
func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	tenantID, campaignID, ok := h.executionParams(w, r)
	if !ok {
		return
	}
	if err := h.engine.Resume(r.Context(), tenantID, campaignID); err != nil {
		h.writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMetrics returns the persisted execution record. Unknown campaigns
// result in HTTP 404.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	tenantID, campaignID, ok := h.executionParams(w, r)
	if !ok {
		return
	}
	exec, err := h.engine.Metrics(r.Context(), tenantID, campaignID)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if exec == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(exec); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleStatus returns the live state of a run: status, progress, step index
// and current metrics. Without a live run it falls back to the persisted
// record's status.
func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, campaignID, ok := h.executionParams(w, r)
	if !ok {
		return
	}
	if state, live := h.engine.Snapshot(tenantID, campaignID); live {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(state); err != nil {
			h.logger.Error("encode response error", slog.Any("error", err))
		}
		return
	}

	exec, err := h.engine.Metrics(r.Context(), tenantID, campaignID)
	if err != nil {
		h.writeEngineError(w, err)
		return
	}
	if exec == nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(map[string]any{
		"status":     exec.Status,
		"step_index": exec.StepIndex,
		"metrics":    exec.Metrics,
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// executionParams extracts the tenant header and campaign id path parameter.
// An unparsable id produces HTTP 400 and ok=false.
func (h *Handler) executionParams(w http.ResponseWriter, r *http.Request) (tenantID string, campaignID int64, ok bool) {
	tenantID = r.Header.Get(tenantHeader)
	id, err := strconv.ParseInt(chi.URLParam(r, "campaignID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return "", 0, false
	}
	return tenantID, id, true
}

// writeEngineError maps engine sentinels onto HTTP statuses.
func (h *Handler) writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrNoTenantContext):
		http.Error(w, "missing tenant", http.StatusBadRequest)
	case errors.Is(err, port.ErrAlreadyRunning):
		http.Error(w, "execution already running", http.StatusConflict)
	case errors.Is(err, port.ErrRunNotActive), errors.Is(err, port.ErrRunNotPaused):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, port.ErrCampaignNotFound):
		http.Error(w, "campaign not found", http.StatusNotFound)
	default:
		h.logger.Error("execution request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
