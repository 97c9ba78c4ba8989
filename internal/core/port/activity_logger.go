package port

import "campaign-engine/internal/core/domain"

// ActivityLogger records execution lifecycle events on an append-only audit
// trail. Log is fire-and-forget: it must never block the caller for long and
// a failed write must never surface to the run.
type ActivityLogger interface {
	Log(entry domain.ActivityLogEntry)

	// Close flushes buffered entries and stops the logger.
	Close()
}
