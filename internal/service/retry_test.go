package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

func testRetryCfg() config.EnrichmentConfig {
	return config.EnrichmentConfig{
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			MaxBackoff:     4 * time.Millisecond,
		},
		StepTimeout: time.Second,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunStep_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	failure := runStep(context.Background(), domain.StepSummarization, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.Nil(t, failure)
	assert.Equal(t, 1, calls)
}

func TestRunStep_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	failure := runStep(context.Background(), domain.StepSummarization, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return domain.NewStepError(domain.StepSummarization, domain.ErrTypeServiceUnavailable, "flaky", nil)
		}
		return nil
	})

	assert.Nil(t, failure)
	assert.Equal(t, 3, calls)
}

func TestRunStep_ExhaustsRetryBudget(t *testing.T) {
	calls := 0
	failure := runStep(context.Background(), domain.StepMediaDownload, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		calls++
		return domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeNetwork, "unreachable", nil)
	})

	require.NotNil(t, failure)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, failure.attempts)
	assert.Equal(t, domain.ErrTypeNetwork, failure.err.Type)
}

func TestRunStep_NonRetryableStopsImmediately(t *testing.T) {
	calls := 0
	failure := runStep(context.Background(), domain.StepSummarization, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		calls++
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeUnauthorized, "bad api key", nil)
	})

	require.NotNil(t, failure)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, failure.attempts)
	assert.False(t, failure.err.Retryable())
}

func TestRunStep_ClassifiesUnknownErrors(t *testing.T) {
	failure := runStep(context.Background(), domain.StepDatabaseUpdate, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		return errors.New("driver: bad connection")
	})

	require.NotNil(t, failure)
	assert.Equal(t, domain.ErrTypeDatabase, failure.err.Type)
	assert.True(t, failure.err.Retryable())
}

func TestRunStep_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	failure := runStep(ctx, domain.StepSummarization, testRetryCfg(), testLogger(), func(ctx context.Context) error {
		calls++
		cancel()
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeServiceUnavailable, "flaky", nil)
	})

	require.NotNil(t, failure)
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoff(t *testing.T) {
	cfg := config.RetryConfig{
		InitialBackoff: time.Second,
		MaxBackoff:     30 * time.Second,
		MaxAttempts:    10,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{5, 16 * time.Second},
		{6, 30 * time.Second},
		{9, 30 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateBackoff(tt.attempt, cfg), "attempt %d", tt.attempt)
	}
}
