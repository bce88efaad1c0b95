package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"bookmark_enricher/internal/domain"
)

// ContentRetriever fetches live content for a bookmark URL. It never fails:
// on any fetch problem the fallback content is returned unchanged.
type ContentRetriever interface {
	Retrieve(ctx context.Context, url string, platform domain.Platform, fallback string) string
}

// Summarizer produces a summary, keywords and tags from retrieved content.
type Summarizer interface {
	Summarize(ctx context.Context, content string) (*domain.SummaryResult, error)
}

// MediaDetector inspects content and URL for downloadable media candidates.
// Pure local inspection; an empty result is success, not an error.
type MediaDetector interface {
	Detect(content, url string, metadata map[string]string) []domain.MediaCandidate
}

// MediaDownloader fetches the binary payload for one media candidate.
type MediaDownloader interface {
	Download(ctx context.Context, candidate domain.MediaCandidate) (*domain.MediaPayload, error)
}

// StorageUploader pushes media bytes to the object store and returns the
// public URL of the stored object.
type StorageUploader interface {
	Upload(ctx context.Context, data []byte, meta domain.UploadMetadata) (string, error)
}

type BookmarkStore interface {
	GetByID(ctx context.Context, id string) (*domain.Bookmark, error)
}

type EnrichmentStore interface {
	GetByBookmarkID(ctx context.Context, bookmarkID string) (*domain.EnrichmentRecord, error)
	CreateIfAbsent(ctx context.Context, bookmarkID string) (*domain.EnrichmentRecord, error)
	// ClaimRun transitions the record to PROCESSING with a fresh run id iff
	// the current status is PENDING or terminal. Returns false when another
	// run holds the claim.
	ClaimRun(ctx context.Context, bookmarkID, runID string) (bool, error)
	// SaveResult persists the run outcome. Returns domain.ErrStaleRun when
	// the record is no longer PROCESSING under runID.
	SaveResult(ctx context.Context, result *domain.EnrichmentResult) error
	// MarkFailed is the best-effort fallback when SaveResult exhausts its
	// retry budget: status FAILED plus one appended error, no result data.
	MarkFailed(ctx context.Context, bookmarkID, runID string, wfErr domain.WorkflowError) error
	// ReleaseStale fails PROCESSING records not updated since deadline.
	ReleaseStale(ctx context.Context, deadline time.Time) (int64, error)
}

type MediaStore interface {
	ListByEnrichment(ctx context.Context, enrichmentID string) ([]domain.DownloadedMedia, error)
	UpsertBatch(ctx context.Context, items []domain.DownloadedMedia) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Publisher announces terminal run outcomes to downstream consumers.
type Publisher interface {
	PublishFinished(ctx context.Context, event *domain.EnrichmentFinished) error
	Close() error
}

// Enqueuer submits enrichment requests for asynchronous execution.
type Enqueuer interface {
	PublishRequest(ctx context.Context, req *domain.EnrichmentRequest) error
}

type MetricsCollector interface {
	RecordRunStarted()
	RecordRunFinished(status domain.ProcessingStatus, duration time.Duration)
	RecordStepFailure(step domain.Step, errType domain.ErrorType)
	RecordMediaOutcome(status domain.DownloadStatus)
	RecordTokensUsed(tokens int)
}
