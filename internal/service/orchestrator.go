package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// OrchestratorDeps bundles the collaborators of the enrichment pipeline.
type OrchestratorDeps struct {
	Bookmarks   BookmarkStore
	Enrichments EnrichmentStore
	Media       MediaStore
	TxManager   TransactionManager
	Retriever   ContentRetriever
	Summarizer  Summarizer
	Detector    MediaDetector
	Downloader  MediaDownloader
	Uploader    StorageUploader
	Publisher   Publisher
	Metrics     MetricsCollector
}

// Orchestrator drives one enrichment run through the fixed step sequence
// CONTENT_RETRIEVAL → SUMMARIZATION → MEDIA_DETECTION → MEDIA_DOWNLOAD →
// STORAGE_UPLOAD → DATABASE_UPDATE, retrying steps independently and
// classifying the terminal outcome.
type Orchestrator struct {
	deps   OrchestratorDeps
	logger *slog.Logger
	cfg    config.EnrichmentConfig
}

func NewOrchestrator(deps OrchestratorDeps, logger *slog.Logger, cfg config.EnrichmentConfig) *Orchestrator {
	return &Orchestrator{
		deps:   deps,
		logger: logger.With("component", "orchestrator"),
		cfg:    cfg,
	}
}

// Enrich runs the pipeline once for the given bookmark. It returns
// domain.ErrAlreadyProcessing when another run currently holds the claim
// and domain.ErrNotFound when the bookmark does not exist.
func (o *Orchestrator) Enrich(ctx context.Context, bookmarkID string) (*domain.RunStats, error) {
	start := time.Now()

	bookmark, err := o.deps.Bookmarks.GetByID(ctx, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load bookmark: %w", err)
	}

	record, err := o.deps.Enrichments.CreateIfAbsent(ctx, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("ensure enrichment record: %w", err)
	}

	runID := uuid.NewString()
	claimed, err := o.deps.Enrichments.ClaimRun(ctx, bookmarkID, runID)
	if err != nil {
		return nil, fmt.Errorf("claim run: %w", err)
	}
	if !claimed {
		return nil, domain.ErrAlreadyProcessing
	}

	o.deps.Metrics.RecordRunStarted()
	logger := o.logger.With("bookmark_id", bookmarkID, "run_id", runID)
	logger.Info("enrichment run started",
		"platform", bookmark.Platform,
		"previous_status", record.Status,
		"retry_count", record.RetryCount,
	)

	stats := &domain.RunStats{BookmarkID: bookmarkID, RunID: runID}
	var runErrors []domain.WorkflowError // chronological; reversed before persisting

	// CONTENT_RETRIEVAL never hard-fails: degraded results fall back to the
	// content captured at save time and are logged inside the retriever.
	content := o.deps.Retriever.Retrieve(ctx, bookmark.PostURL, bookmark.Platform, bookmark.Content)

	var summary *domain.SummaryResult
	summaryAttempted := o.cfg.SummarizationEnabled
	if summaryAttempted {
		failure := runStep(ctx, domain.StepSummarization, o.cfg, logger, func(ctx context.Context) error {
			res, err := o.deps.Summarizer.Summarize(ctx, content)
			if err != nil {
				return err
			}
			summary = res
			return nil
		})
		if failure != nil {
			runErrors = append(runErrors, domain.NewWorkflowError(failure.err, failure.attempts))
			o.deps.Metrics.RecordStepFailure(domain.StepSummarization, failure.err.Type)
		} else {
			stats.SummaryPresent = true
			stats.TokensUsed = summary.TokensUsed
			o.deps.Metrics.RecordTokensUsed(summary.TokensUsed)
		}
	}

	var candidates []domain.MediaCandidate
	if o.cfg.MediaDownloadEnabled {
		candidates = o.deps.Detector.Detect(content, bookmark.PostURL, bookmark.Metadata)
	}
	stats.MediaDetected = len(candidates)

	var mediaRows []domain.DownloadedMedia
	if len(candidates) > 0 {
		existing, err := o.deps.Media.ListByEnrichment(ctx, record.ID)
		if err != nil {
			// Upserts stay idempotent without the list; only the
			// skip-completed optimization is lost.
			logger.Warn("failed to list existing media", "error", err)
		}

		var mediaErrors []domain.WorkflowError
		mediaRows, mediaErrors = o.processMedia(ctx, logger, record.ID, candidates, existing, stats)
		runErrors = append(runErrors, mediaErrors...)
	}

	for _, row := range mediaRows {
		o.deps.Metrics.RecordMediaOutcome(row.Status)
		switch row.Status {
		case domain.DownloadStatusCompleted:
			stats.MediaCompleted++
		case domain.DownloadStatusFailed:
			stats.MediaFailed++
		}
	}
	stats.StepFailures = len(runErrors)

	status := classifyOutcome(summaryAttempted, summary != nil, stats.MediaFailed, stats.MediaCompleted+stats.MediaSkipped)

	result := &domain.EnrichmentResult{
		BookmarkID: bookmarkID,
		RunID:      runID,
		Status:     status,
		NewErrors:  newestFirst(runErrors),
		Media:      mediaRows,
	}
	if summary != nil {
		result.Summary = &summary.Summary
		result.Keywords = summary.Keywords
		result.Tags = summary.Tags
	}
	if status == domain.StatusCompleted || status == domain.StatusPartialSuccess {
		now := time.Now().UTC()
		result.EnrichedAt = &now
	}

	persistFailure := runStep(ctx, domain.StepDatabaseUpdate, o.cfg, logger, func(ctx context.Context) error {
		return o.deps.TxManager.WithTransaction(ctx, func(txCtx context.Context) error {
			if len(result.Media) > 0 {
				if err := o.deps.Media.UpsertBatch(txCtx, result.Media); err != nil {
					return fmt.Errorf("upsert media: %w", err)
				}
			}
			if err := o.deps.Enrichments.SaveResult(txCtx, result); err != nil {
				return fmt.Errorf("save result: %w", err)
			}
			return nil
		})
	})
	if persistFailure != nil {
		wfErr := domain.NewWorkflowError(persistFailure.err, persistFailure.attempts)
		logger.Error("failed to persist enrichment result, computed result may be lost",
			"intended_status", status,
			"error", persistFailure.err,
		)
		if markErr := o.deps.Enrichments.MarkFailed(ctx, bookmarkID, runID, wfErr); markErr != nil {
			logger.Error("failed to mark enrichment as failed", "error", markErr)
		}
		o.deps.Metrics.RecordStepFailure(domain.StepDatabaseUpdate, persistFailure.err.Type)
		o.deps.Metrics.RecordRunFinished(domain.StatusFailed, time.Since(start))
		return nil, persistFailure.err
	}

	stats.Status = status
	stats.Duration = time.Since(start)
	o.deps.Metrics.RecordRunFinished(status, stats.Duration)

	if o.deps.Publisher != nil {
		event := &domain.EnrichmentFinished{
			BookmarkID: bookmarkID,
			RunID:      runID,
			Status:     status,
			Timestamp:  time.Now().UTC(),
		}
		if err := o.deps.Publisher.PublishFinished(ctx, event); err != nil {
			logger.Warn("failed to publish finished event", "error", err)
		}
	}

	logger.Info("enrichment run finished",
		"status", status,
		"summary_present", stats.SummaryPresent,
		"media_detected", stats.MediaDetected,
		"media_completed", stats.MediaCompleted,
		"media_failed", stats.MediaFailed,
		"media_skipped", stats.MediaSkipped,
		"step_failures", stats.StepFailures,
		"duration", stats.Duration,
	)

	return stats, nil
}

// processMedia fans out download+upload per candidate, bounded by the
// configured concurrency. Candidates already COMPLETED in a prior run are
// skipped; individual outcomes never block one another.
func (o *Orchestrator) processMedia(
	ctx context.Context,
	logger *slog.Logger,
	enrichmentID string,
	candidates []domain.MediaCandidate,
	existing []domain.DownloadedMedia,
	stats *domain.RunStats,
) ([]domain.DownloadedMedia, []domain.WorkflowError) {
	completed := make(map[string]bool, len(existing))
	for _, m := range existing {
		if m.Status == domain.DownloadStatusCompleted {
			completed[m.SourceURL] = true
		}
	}

	var (
		mu   sync.Mutex
		rows []domain.DownloadedMedia
		errs []domain.WorkflowError
		wg   sync.WaitGroup
	)
	sem := make(chan struct{}, o.cfg.MaxConcurrentMedia)

	for _, cand := range candidates {
		if completed[cand.SourceURL] {
			stats.MediaSkipped++
			continue
		}

		wg.Add(1)
		go func(cand domain.MediaCandidate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			row, wfErr := o.processCandidate(ctx, logger, enrichmentID, cand)

			mu.Lock()
			rows = append(rows, row)
			if wfErr != nil {
				errs = append(errs, *wfErr)
			}
			mu.Unlock()
		}(cand)
	}

	wg.Wait()
	return rows, errs
}

func (o *Orchestrator) processCandidate(ctx context.Context, logger *slog.Logger, enrichmentID string, cand domain.MediaCandidate) (domain.DownloadedMedia, *domain.WorkflowError) {
	row := domain.DownloadedMedia{
		EnrichmentID: enrichmentID,
		Type:         cand.Type,
		Status:       domain.DownloadStatusDownloading,
		SourceURL:    cand.SourceURL,
	}

	var payload *domain.MediaPayload
	failure := runStep(ctx, domain.StepMediaDownload, o.cfg, logger, func(ctx context.Context) error {
		p, err := o.deps.Downloader.Download(ctx, cand)
		if err != nil {
			return err
		}
		payload = p
		return nil
	})
	if failure != nil {
		o.deps.Metrics.RecordStepFailure(domain.StepMediaDownload, failure.err.Type)
		wfErr := domain.NewWorkflowError(failure.err, failure.attempts)
		row.Status = domain.DownloadStatusFailed
		row.ErrorMessage = &failure.err.Message
		return row, &wfErr
	}

	row.FileSize = domain.FileSize(len(payload.Data))
	row.Duration = payload.Duration
	row.Quality = payload.Quality
	row.Format = payload.Format
	row.Width = payload.Width
	row.Height = payload.Height

	var storageURL string
	failure = runStep(ctx, domain.StepStorageUpload, o.cfg, logger, func(ctx context.Context) error {
		url, err := o.deps.Uploader.Upload(ctx, payload.Data, domain.UploadMetadata{
			Key:         objectKey(enrichmentID, cand.SourceURL),
			ContentType: payload.ContentType,
		})
		if err != nil {
			return err
		}
		storageURL = url
		return nil
	})
	if failure != nil {
		o.deps.Metrics.RecordStepFailure(domain.StepStorageUpload, failure.err.Type)
		wfErr := domain.NewWorkflowError(failure.err, failure.attempts)
		row.Status = domain.DownloadStatusFailed
		row.ErrorMessage = &failure.err.Message
		return row, &wfErr
	}

	row.Status = domain.DownloadStatusCompleted
	row.StorageURL = &storageURL
	return row, nil
}

// classifyOutcome computes the terminal status after all steps were
// attempted. A run counts as a partial success when at least one step
// produced usable output while another failed terminally.
func classifyOutcome(summaryAttempted, summaryPresent bool, mediaFailed, mediaCompleted int) domain.ProcessingStatus {
	summaryFailed := summaryAttempted && !summaryPresent
	anyFailure := summaryFailed || mediaFailed > 0
	if !anyFailure {
		return domain.StatusCompleted
	}
	if summaryPresent || mediaCompleted > 0 {
		return domain.StatusPartialSuccess
	}
	return domain.StatusFailed
}

// objectKey derives a stable storage key from the candidate identity so a
// retried upload overwrites its own prior object instead of creating a new one.
func objectKey(enrichmentID, sourceURL string) string {
	sum := sha256.Sum256([]byte(sourceURL))
	ext := path.Ext(sourceURL)
	if len(ext) > 8 {
		ext = ""
	}
	return fmt.Sprintf("%s/%x%s", enrichmentID, sum[:12], ext)
}

func newestFirst(errs []domain.WorkflowError) []domain.WorkflowError {
	if len(errs) < 2 {
		return errs
	}
	out := make([]domain.WorkflowError, len(errs))
	for i, e := range errs {
		out[len(errs)-1-i] = e
	}
	return out
}
