// Package notify provides the user-facing notification adapter. The console
// frontend consumes these signals elsewhere; the engine only requires the
// port contract, so this implementation records them on the structured log.
package notify

import "log/slog"

// SlogNotifier implements port.Notifier on a structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier returns a notifier writing to logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

func (n *SlogNotifier) Success(title, description string) {
	n.logger.Info("notification", slog.String("kind", "success"),
		slog.String("title", title), slog.String("description", description))
}

func (n *SlogNotifier) Error(title, description string) {
	n.logger.Error("notification", slog.String("kind", "error"),
		slog.String("title", title), slog.String("description", description))
}

func (n *SlogNotifier) Info(title, description string) {
	n.logger.Info("notification", slog.String("kind", "info"),
		slog.String("title", title), slog.String("description", description))
}
