package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"campaign-engine/internal/core/port"
	"campaign-engine/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the execution engine to run business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	engine port.ExecutionEngine
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// ExecutionEngine implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(engine port.ExecutionEngine, logger *slog.Logger) *Handler {
	h := &Handler{engine: engine, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1/campaigns/{campaignID}/execution", func(r chi.Router) {
		r.Post("/start", h.handleStart)
		r.Post("/pause", h.handlePause)
		r.Post("/resume", h.handleResume)
		r.Get("/metrics", h.handleMetrics)
		r.Get("/status", h.handleStatus)
	})
	r.Handle("/metrics", metrics.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
