// Package activity provides the asynchronous audit-trail logger. Writes are
// decoupled from the execution loop: a failed insert is retried with backoff
// on the logger's own goroutine and finally dropped with a warning, never
// surfaced to the run.
package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port"
)

const (
	defaultBuffer  = 256
	insertTimeout  = 5 * time.Second
	maxAttempts    = 3
	initialBackoff = 100 * time.Millisecond
)

// Logger implements port.ActivityLogger on top of the campaign repository.
// Entries are queued on a buffered channel and written by a single worker
// goroutine. When the buffer is full the entry is dropped rather than
// blocking the caller.
type Logger struct {
	repo   port.CampaignRepository
	logger *slog.Logger

	entries chan domain.ActivityLogEntry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	once    sync.Once
}

// NewLogger creates and starts an activity logger.
func NewLogger(repo port.CampaignRepository, logger *slog.Logger) *Logger {
	ctx, cancel := context.WithCancel(context.Background())
	l := &Logger{
		repo:    repo,
		logger:  logger,
		entries: make(chan domain.ActivityLogEntry, defaultBuffer),
		ctx:     ctx,
		cancel:  cancel,
	}
	l.wg.Add(1)
	go l.worker()
	return l
}

// Log queues an entry for writing. It never blocks and never fails the
// caller; on a full buffer the entry is dropped with a warning.
func (l *Logger) Log(entry domain.ActivityLogEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	select {
	case l.entries <- entry:
	default:
		l.logger.Warn("activity log buffer full, dropping entry",
			slog.String("event_type", entry.EventType))
	}
}

// Close drains the queue and stops the worker.
func (l *Logger) Close() {
	l.once.Do(func() {
		close(l.entries)
		l.wg.Wait()
		l.cancel()
	})
}

func (l *Logger) worker() {
	defer l.wg.Done()
	for entry := range l.entries {
		l.write(entry)
	}
}

// write inserts one entry, retrying with doubling backoff. Exhausted retries
// drop the entry; the audit trail is best-effort by contract.
func (l *Logger) write(entry domain.ActivityLogEntry) {
	backoff := initialBackoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(l.ctx, insertTimeout)
		err := l.repo.InsertActivityLog(ctx, entry)
		cancel()
		if err == nil {
			return
		}
		if attempt == maxAttempts {
			l.logger.Warn("activity log write failed, dropping entry",
				slog.String("event_type", entry.EventType),
				slog.Int("attempts", attempt),
				slog.Any("error", err))
			return
		}
		select {
		case <-l.ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}
