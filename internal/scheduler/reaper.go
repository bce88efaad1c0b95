// Package scheduler runs the stale-run reaper that keeps the at-most-one-run
// invariant live across worker crashes.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// StaleReleaser fails PROCESSING records that stopped making progress.
type StaleReleaser interface {
	ReleaseStale(ctx context.Context, deadline time.Time) (int64, error)
}

// Reaper periodically releases enrichment records stuck in PROCESSING past
// the deadline, so a crashed worker cannot hold a bookmark's claim forever.
type Reaper struct {
	store    StaleReleaser
	interval time.Duration
	deadline time.Duration
	logger   *slog.Logger
}

func NewReaper(store StaleReleaser, interval, deadline time.Duration, logger *slog.Logger) *Reaper {
	return &Reaper{
		store:    store,
		interval: interval,
		deadline: deadline,
		logger:   logger.With("component", "reaper"),
	}
}

func (r *Reaper) Start(ctx context.Context) error {
	r.logger.Info("reaper started", "interval", r.interval, "deadline", r.deadline)

	r.runOnce(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reaper stopped")
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Reaper) runOnce(ctx context.Context) {
	reapCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	released, err := r.store.ReleaseStale(reapCtx, time.Now().Add(-r.deadline))
	if err != nil {
		r.logger.Error("failed to release stale runs", "error", err)
		return
	}
	if released > 0 {
		r.logger.Warn("released stale enrichment runs", "count", released)
	}
}
