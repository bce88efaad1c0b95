package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"bookmark_enricher/internal/domain"
)

type EnrichmentStore struct {
	db *sqlx.DB
}

func NewEnrichmentStore(db *sqlx.DB) *EnrichmentStore {
	return &EnrichmentStore{db: db}
}

type enrichmentRow struct {
	ID         string         `db:"id"`
	BookmarkID string         `db:"bookmark_id"`
	Status     string         `db:"processing_status"`
	RunID      string         `db:"run_id"`
	Summary    *string        `db:"summary"`
	Keywords   pq.StringArray `db:"keywords"`
	Tags       pq.StringArray `db:"tags"`
	EnrichedAt *time.Time     `db:"enriched_at"`
	Errors     []byte         `db:"errors"`
	RetryCount int            `db:"retry_count"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

func (r enrichmentRow) toDomain() (*domain.EnrichmentRecord, error) {
	record := &domain.EnrichmentRecord{
		ID:         r.ID,
		BookmarkID: r.BookmarkID,
		Status:     domain.ProcessingStatus(r.Status),
		RunID:      r.RunID,
		Summary:    r.Summary,
		Keywords:   r.Keywords,
		Tags:       r.Tags,
		EnrichedAt: r.EnrichedAt,
		RetryCount: r.RetryCount,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if len(r.Errors) > 0 {
		if err := json.Unmarshal(r.Errors, &record.Errors); err != nil {
			return nil, fmt.Errorf("decode workflow errors: %w", err)
		}
	}
	return record, nil
}

const enrichmentColumns = `
	id, bookmark_id, processing_status, run_id, summary, keywords, tags,
	enriched_at, errors, retry_count, created_at, updated_at`

func (s *EnrichmentStore) GetByBookmarkID(ctx context.Context, bookmarkID string) (*domain.EnrichmentRecord, error) {
	query := `SELECT` + enrichmentColumns + `
		FROM enrichment_records
		WHERE bookmark_id = $1`

	var row enrichmentRow
	err := s.db.GetContext(ctx, &row, query, bookmarkID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("enrichment for bookmark %s: %w", bookmarkID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return row.toDomain()
}

// CreateIfAbsent lazily creates the PENDING record on the first enrichment
// attempt. At most one record per bookmark exists; concurrent creators race
// harmlessly on the unique key.
func (s *EnrichmentStore) CreateIfAbsent(ctx context.Context, bookmarkID string) (*domain.EnrichmentRecord, error) {
	query := `
		INSERT INTO enrichment_records (bookmark_id, processing_status, run_id, errors, retry_count)
		VALUES ($1, $2, '', '[]'::jsonb, 0)
		ON CONFLICT (bookmark_id) DO NOTHING`

	if _, err := s.db.ExecContext(ctx, query, bookmarkID, domain.StatusPending); err != nil {
		return nil, err
	}

	return s.GetByBookmarkID(ctx, bookmarkID)
}

// ClaimRun admits a new run via an optimistic conditional update: only
// PENDING or terminal records transition to PROCESSING, so two workers can
// never run the same bookmark concurrently. Re-entry from a terminal state
// increments retry_count. enriched_at is cleared because a PROCESSING
// record carries no completion timestamp; the next SaveResult restores it.
func (s *EnrichmentStore) ClaimRun(ctx context.Context, bookmarkID, runID string) (bool, error) {
	query := `
		UPDATE enrichment_records
		SET processing_status = $3,
			run_id = $2,
			retry_count = retry_count + CASE WHEN processing_status = $4 THEN 0 ELSE 1 END,
			enriched_at = NULL,
			updated_at = now()
		WHERE bookmark_id = $1
		  AND processing_status IN ($4, $5, $6, $7)`

	res, err := s.db.ExecContext(ctx, query, bookmarkID, runID,
		domain.StatusProcessing, domain.StatusPending,
		domain.StatusCompleted, domain.StatusPartialSuccess, domain.StatusFailed,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// SaveResult persists the run outcome in the caller's transaction. New
// errors are prepended so the stored history stays newest-first and prior
// entries are never mutated. Returns domain.ErrStaleRun when the record is
// no longer PROCESSING under runID (reaped or superseded).
func (s *EnrichmentStore) SaveResult(ctx context.Context, result *domain.EnrichmentResult) error {
	// A nil slice must encode as [] so the jsonb concat below stays a no-op.
	toPrepend := result.NewErrors
	if toPrepend == nil {
		toPrepend = []domain.WorkflowError{}
	}
	newErrors, err := json.Marshal(toPrepend)
	if err != nil {
		return fmt.Errorf("encode workflow errors: %w", err)
	}

	query := `
		UPDATE enrichment_records
		SET processing_status = $3,
			summary = COALESCE($4, summary),
			keywords = COALESCE($5, keywords),
			tags = COALESCE($6, tags),
			enriched_at = $7,
			errors = $8::jsonb || errors,
			updated_at = now()
		WHERE bookmark_id = $1
		  AND run_id = $2
		  AND processing_status = $9`

	var keywords, tags interface{}
	if result.Keywords != nil {
		keywords = pq.StringArray(result.Keywords)
	}
	if result.Tags != nil {
		tags = pq.StringArray(result.Tags)
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		result.BookmarkID, result.RunID, result.Status,
		result.Summary, keywords, tags,
		result.EnrichedAt, string(newErrors), domain.StatusProcessing,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrStaleRun
	}
	return nil
}

// MarkFailed records a terminal persistence failure without result data.
// Best effort: a record no longer held by runID is left untouched.
func (s *EnrichmentStore) MarkFailed(ctx context.Context, bookmarkID, runID string, wfErr domain.WorkflowError) error {
	encoded, err := json.Marshal([]domain.WorkflowError{wfErr})
	if err != nil {
		return fmt.Errorf("encode workflow error: %w", err)
	}

	query := `
		UPDATE enrichment_records
		SET processing_status = $3,
			errors = $4::jsonb || errors,
			enriched_at = NULL,
			updated_at = now()
		WHERE bookmark_id = $1
		  AND run_id = $2
		  AND processing_status = $5`

	_, err = s.db.ExecContext(ctx, query, bookmarkID, runID,
		domain.StatusFailed, string(encoded), domain.StatusProcessing)
	return err
}

// ReleaseStale fails PROCESSING records whose run stopped making progress
// before deadline, so a crashed worker cannot hold a claim forever.
func (s *EnrichmentStore) ReleaseStale(ctx context.Context, deadline time.Time) (int64, error) {
	// An abandoned run is the one failure a retry reliably fixes, so the
	// synthetic error is marked retryable regardless of the INTERNAL type.
	wfErr := domain.WorkflowError{
		Step:       domain.StepDatabaseUpdate,
		Type:       domain.ErrTypeInternal,
		Message:    "enrichment run abandoned: no progress before deadline",
		Guidance:   "The enrichment run was interrupted before it could finish. Retry the enrichment.",
		Retryable:  true,
		OccurredAt: time.Now().UTC(),
	}
	encoded, err := json.Marshal([]domain.WorkflowError{wfErr})
	if err != nil {
		return 0, fmt.Errorf("encode workflow error: %w", err)
	}

	query := `
		UPDATE enrichment_records
		SET processing_status = $2,
			errors = $3::jsonb || errors,
			enriched_at = NULL,
			updated_at = now()
		WHERE processing_status = $4
		  AND updated_at < $1`

	res, err := s.db.ExecContext(ctx, query, deadline,
		domain.StatusFailed, string(encoded), domain.StatusProcessing)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
