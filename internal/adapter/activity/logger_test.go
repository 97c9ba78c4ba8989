package activity

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"campaign-engine/internal/core/domain"
	"campaign-engine/internal/core/port/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// TestLogWritesEntry checks the happy path: a queued entry reaches the store.
func TestLogWritesEntry(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	written := make(chan domain.ActivityLogEntry, 1)
	repo.EXPECT().InsertActivityLog(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry domain.ActivityLogEntry) {
			written <- entry
		}).
		Return(nil)

	l := NewLogger(repo, testLogger())
	defer l.Close()

	l.Log(domain.ActivityLogEntry{
		TenantID:  "acme",
		EventType: domain.EventExecutionStarted,
		Message:   "campaign 1 execution started",
		Severity:  domain.SeverityInfo,
	})

	select {
	case entry := <-written:
		if entry.EventType != domain.EventExecutionStarted {
			t.Fatalf("unexpected entry %+v", entry)
		}
		if entry.CreatedAt.IsZero() {
			t.Fatal("created_at not defaulted")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("entry never written")
	}
}

// TestRetryOnFailure retries failed inserts with backoff before succeeding.
func TestRetryOnFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	var attempts atomic.Int32
	done := make(chan struct{})
	repo.EXPECT().InsertActivityLog(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, entry domain.ActivityLogEntry) error {
			if attempts.Add(1) < 3 {
				return errors.New("deadlock detected")
			}
			close(done)
			return nil
		})

	l := NewLogger(repo, testLogger())
	defer l.Close()

	l.Log(domain.ActivityLogEntry{EventType: domain.EventExecutionStep})

	select {
	case <-done:
		if got := attempts.Load(); got != 3 {
			t.Fatalf("expected 3 attempts, got %d", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("entry never succeeded")
	}
}

// TestFailuresNeverPropagate drops an entry after exhausting retries without
// surfacing anything to the caller.
func TestFailuresNeverPropagate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().InsertActivityLog(mock.Anything, mock.Anything).
		Return(errors.New("relation does not exist"))

	l := NewLogger(repo, testLogger())

	l.Log(domain.ActivityLogEntry{EventType: domain.EventExecutionError})
	l.Close() // drains; must not panic or block forever

	repo.AssertCalled(t, "InsertActivityLog", mock.Anything, mock.Anything)
}

// TestCloseDrainsQueue writes everything queued before shutdown.
func TestCloseDrainsQueue(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	var count atomic.Int32
	repo.EXPECT().InsertActivityLog(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, entry domain.ActivityLogEntry) error {
			count.Add(1)
			return nil
		})

	l := NewLogger(repo, testLogger())
	for i := 0; i < 10; i++ {
		l.Log(domain.ActivityLogEntry{EventType: domain.EventExecutionStep})
	}
	l.Close()

	if got := count.Load(); got != 10 {
		t.Fatalf("expected 10 writes after Close, got %d", got)
	}
}
