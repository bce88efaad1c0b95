package domain

import (
	"errors"
	"strconv"
	"time"
)

var (
	// ErrNotFound is returned when a bookmark or enrichment record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyProcessing is returned when a run is admitted for a bookmark
	// whose record is currently PROCESSING. At most one run per bookmark.
	ErrAlreadyProcessing = errors.New("enrichment already processing")
	// ErrStaleRun is returned when a run tries to persist results after its
	// claim was released by the reaper or superseded by a newer run.
	ErrStaleRun = errors.New("enrichment run superseded")
)

// ProcessingStatus is the state of an enrichment record.
type ProcessingStatus string

const (
	StatusPending        ProcessingStatus = "PENDING"
	StatusProcessing     ProcessingStatus = "PROCESSING"
	StatusCompleted      ProcessingStatus = "COMPLETED"
	StatusPartialSuccess ProcessingStatus = "PARTIAL_SUCCESS"
	StatusFailed         ProcessingStatus = "FAILED"
)

// Terminal reports whether the status allows admitting a new run.
func (s ProcessingStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusPartialSuccess, StatusFailed:
		return true
	}
	return false
}

// EnrichmentRecord holds derived enrichment state for one bookmark, 1:1,
// created lazily on the first enrichment attempt.
type EnrichmentRecord struct {
	ID         string
	BookmarkID string
	Status     ProcessingStatus
	RunID      string // opaque identifier of the current/last run
	Summary    *string
	Keywords   []string
	Tags       []string
	EnrichedAt *time.Time // set iff status is COMPLETED or PARTIAL_SUCCESS
	Errors     []WorkflowError
	RetryCount int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MediaType identifies the kind of a downloaded media item.
type MediaType string

const (
	MediaTypeImage MediaType = "IMAGE"
	MediaTypeVideo MediaType = "VIDEO"
	MediaTypeLink  MediaType = "LINK"
)

// DownloadStatus is the per-media download state.
type DownloadStatus string

const (
	DownloadStatusPending     DownloadStatus = "PENDING"
	DownloadStatusDownloading DownloadStatus = "DOWNLOADING"
	DownloadStatusCompleted   DownloadStatus = "COMPLETED"
	DownloadStatusFailed      DownloadStatus = "FAILED"
)

// FileSize is a byte count serialized as a decimal string in JSON so that
// values above 2^53 survive JavaScript consumers.
type FileSize uint64

func (f FileSize) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(strconv.FormatUint(uint64(f), 10))), nil
}

func (f *FileSize) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		// Accept bare numbers for compatibility with older producers.
		s = string(data)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FileSize(v)
	return nil
}

// DownloadedMedia is one media item discovered for an enrichment record.
// StorageURL is non-nil iff DownloadStatus is COMPLETED.
type DownloadedMedia struct {
	ID           string
	EnrichmentID string
	Type         MediaType
	Status       DownloadStatus
	SourceURL    string // candidate identity, unique per enrichment record
	StorageURL   *string
	FileSize     FileSize
	Duration     *float64 // seconds
	Quality      *string
	Format       *string
	Width        *int
	Height       *int
	ErrorMessage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MediaCandidate is a provisional media item found by the detector.
type MediaCandidate struct {
	Type         MediaType
	SourceURL    string
	ThumbnailURL string
}

// MediaPayload is the binary result of downloading one candidate.
type MediaPayload struct {
	Data        []byte
	ContentType string
	Duration    *float64
	Quality     *string
	Format      *string
	Width       *int
	Height      *int
}

// UploadMetadata describes a payload handed to the storage uploader.
type UploadMetadata struct {
	Key         string
	ContentType string
}

// SummaryResult is the output of the summarization step.
type SummaryResult struct {
	Summary    string
	Keywords   []string
	Tags       []string
	TokensUsed int
}

// EnrichmentResult is the delta persisted at the end of a run.
type EnrichmentResult struct {
	BookmarkID string
	RunID      string
	Status     ProcessingStatus
	Summary    *string
	Keywords   []string
	Tags       []string
	EnrichedAt *time.Time
	NewErrors  []WorkflowError // newest first, prepended to the stored history
	Media      []DownloadedMedia
}

// EnrichmentRequest asks for one enrichment run of a bookmark.
type EnrichmentRequest struct {
	BookmarkID string `json:"bookmarkId"`
	Reason     string `json:"reason"` // "created" or "retry"
}

// EnrichmentFinished announces a terminal run outcome to downstream consumers.
type EnrichmentFinished struct {
	BookmarkID string           `json:"bookmarkId"`
	RunID      string           `json:"runId"`
	Status     ProcessingStatus `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
}
