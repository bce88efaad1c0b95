package service

import (
	"context"
	"log/slog"
	"time"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// stepFailure is the terminal outcome of a step that exhausted its retry
// budget or failed non-retryably.
type stepFailure struct {
	err      *domain.StepError
	attempts int
}

// runStep executes fn with a per-attempt timeout, retrying retryable
// failures with exponential backoff up to the configured attempt ceiling.
// Non-retryable failures terminate the step immediately without consuming
// further attempts. Returns nil on success.
func runStep(ctx context.Context, step domain.Step, cfg config.EnrichmentConfig, logger *slog.Logger, fn func(ctx context.Context) error) *stepFailure {
	var stepErr *domain.StepError

	for attempt := 1; attempt <= cfg.Retry.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, cfg.StepTimeout)
		err := fn(attemptCtx)
		cancel()

		if err == nil {
			return nil
		}

		stepErr = domain.ClassifyError(step, err)

		if !stepErr.Retryable() {
			logger.Warn("step failed",
				"step", step,
				"error_type", stepErr.Type,
				"attempt", attempt,
				"error", err,
			)
			return &stepFailure{err: stepErr, attempts: attempt}
		}

		if attempt == cfg.Retry.MaxAttempts {
			break
		}

		backoff := calculateBackoff(attempt, cfg.Retry)
		logger.Warn("step failed, retrying",
			"step", step,
			"error_type", stepErr.Type,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return &stepFailure{err: domain.ClassifyError(step, ctx.Err()), attempts: attempt}
		case <-time.After(backoff):
		}
	}

	logger.Warn("step failed after all attempts",
		"step", step,
		"error_type", stepErr.Type,
		"attempts", cfg.Retry.MaxAttempts,
	)
	return &stepFailure{err: stepErr, attempts: cfg.Retry.MaxAttempts}
}

func calculateBackoff(attempt int, cfg config.RetryConfig) time.Duration {
	backoff := cfg.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > cfg.MaxBackoff {
		backoff = cfg.MaxBackoff
	}
	return backoff
}
