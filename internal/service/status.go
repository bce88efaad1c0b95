package service

import (
	"context"
	"fmt"
	"log/slog"

	"bookmark_enricher/internal/domain"
)

// EnrichmentSnapshot is the read shape consumed by the UI/API layer.
type EnrichmentSnapshot struct {
	Record *domain.EnrichmentRecord
	Media  []domain.DownloadedMedia
}

// StatusService exposes the status query and retry surface of the pipeline.
type StatusService struct {
	enrichments EnrichmentStore
	media       MediaStore
	enqueuer    Enqueuer
	logger      *slog.Logger
}

func NewStatusService(enrichments EnrichmentStore, media MediaStore, enqueuer Enqueuer, logger *slog.Logger) *StatusService {
	return &StatusService{
		enrichments: enrichments,
		media:       media,
		enqueuer:    enqueuer,
		logger:      logger.With("component", "status_service"),
	}
}

// GetEnrichmentStatus returns the current enrichment snapshot for a bookmark.
// Idempotent and side-effect free; domain.ErrNotFound when no enrichment
// attempt exists yet.
func (s *StatusService) GetEnrichmentStatus(ctx context.Context, bookmarkID string) (*EnrichmentSnapshot, error) {
	record, err := s.enrichments.GetByBookmarkID(ctx, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load enrichment record: %w", err)
	}

	media, err := s.media.ListByEnrichment(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("load media: %w", err)
	}

	return &EnrichmentSnapshot{Record: record, Media: media}, nil
}

// RetryEnrichment admits a new run for a bookmark whose record is in a
// terminal state. Fails fast with domain.ErrNotFound when no prior attempt
// exists and domain.ErrAlreadyProcessing when a run is in flight; the hard
// at-most-one-run invariant is enforced again by the orchestrator's
// transactional claim when the queued request is executed.
func (s *StatusService) RetryEnrichment(ctx context.Context, bookmarkID string) error {
	record, err := s.enrichments.GetByBookmarkID(ctx, bookmarkID)
	if err != nil {
		return fmt.Errorf("load enrichment record: %w", err)
	}

	if record.Status == domain.StatusProcessing {
		return domain.ErrAlreadyProcessing
	}

	req := &domain.EnrichmentRequest{BookmarkID: bookmarkID, Reason: "retry"}
	if err := s.enqueuer.PublishRequest(ctx, req); err != nil {
		return fmt.Errorf("enqueue retry: %w", err)
	}

	s.logger.Info("retry accepted",
		"bookmark_id", bookmarkID,
		"previous_status", record.Status,
		"retry_count", record.RetryCount,
	)
	return nil
}
