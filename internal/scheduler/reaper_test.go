package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReleaser struct {
	mu        sync.Mutex
	deadlines []time.Time
	released  int64
	err       error
}

func (s *stubReleaser) ReleaseStale(ctx context.Context, deadline time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deadlines = append(s.deadlines, deadline)
	return s.released, s.err
}

func (s *stubReleaser) calls() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Time(nil), s.deadlines...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestReaper_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	store := &stubReleaser{released: 2}
	r := NewReaper(store, time.Hour, 15*time.Minute, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	require.Eventually(t, func() bool {
		return len(store.calls()) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop after cancel")
	}
}

func TestReaper_DeadlineIsNowMinusProcessingDeadline(t *testing.T) {
	store := &stubReleaser{}
	r := NewReaper(store, time.Hour, 15*time.Minute, testLogger())

	before := time.Now().Add(-15 * time.Minute)
	r.runOnce(context.Background())
	after := time.Now().Add(-15 * time.Minute)

	calls := store.calls()
	require.Len(t, calls, 1)
	assert.False(t, calls[0].Before(before))
	assert.False(t, calls[0].After(after))
}

func TestReaper_SurvivesStoreErrors(t *testing.T) {
	store := &stubReleaser{err: errors.New("connection refused")}
	r := NewReaper(store, time.Hour, 15*time.Minute, testLogger())

	r.runOnce(context.Background())
	r.runOnce(context.Background())

	assert.Len(t, store.calls(), 2)
}
