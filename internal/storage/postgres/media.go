package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"bookmark_enricher/internal/domain"
)

type MediaStore struct {
	db *sqlx.DB
}

func NewMediaStore(db *sqlx.DB) *MediaStore {
	return &MediaStore{db: db}
}

type mediaRow struct {
	ID           string    `db:"id"`
	EnrichmentID string    `db:"enrichment_id"`
	Type         string    `db:"media_type"`
	Status       string    `db:"download_status"`
	SourceURL    string    `db:"source_url"`
	StorageURL   *string   `db:"storage_url"`
	FileSize     int64     `db:"file_size"`
	Duration     *float64  `db:"duration"`
	Quality      *string   `db:"quality"`
	Format       *string   `db:"format"`
	Width        *int      `db:"width"`
	Height       *int      `db:"height"`
	ErrorMessage *string   `db:"error_message"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r mediaRow) toDomain() domain.DownloadedMedia {
	return domain.DownloadedMedia{
		ID:           r.ID,
		EnrichmentID: r.EnrichmentID,
		Type:         domain.MediaType(r.Type),
		Status:       domain.DownloadStatus(r.Status),
		SourceURL:    r.SourceURL,
		StorageURL:   r.StorageURL,
		FileSize:     domain.FileSize(r.FileSize),
		Duration:     r.Duration,
		Quality:      r.Quality,
		Format:       r.Format,
		Width:        r.Width,
		Height:       r.Height,
		ErrorMessage: r.ErrorMessage,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (s *MediaStore) ListByEnrichment(ctx context.Context, enrichmentID string) ([]domain.DownloadedMedia, error) {
	query := `
		SELECT id, enrichment_id, media_type, download_status, source_url,
			storage_url, file_size, duration, quality, format, width, height,
			error_message, created_at, updated_at
		FROM downloaded_media
		WHERE enrichment_id = $1
		ORDER BY created_at, id`

	var rows []mediaRow
	if err := s.db.SelectContext(ctx, &rows, query, enrichmentID); err != nil {
		return nil, err
	}

	items := make([]domain.DownloadedMedia, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toDomain())
	}
	return items, nil
}

// UpsertBatch writes per-candidate outcomes keyed by (enrichment_id,
// source_url) so retried runs never create duplicate rows. A row that
// already COMPLETED is left untouched: retries replace failed or missing
// media only, and prior failures stay visible through the error history.
func (s *MediaStore) UpsertBatch(ctx context.Context, items []domain.DownloadedMedia) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO downloaded_media (
			enrichment_id, media_type, download_status, source_url,
			storage_url, file_size, duration, quality, format, width, height,
			error_message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (enrichment_id, source_url) DO UPDATE SET
			media_type = EXCLUDED.media_type,
			download_status = EXCLUDED.download_status,
			storage_url = EXCLUDED.storage_url,
			file_size = EXCLUDED.file_size,
			duration = EXCLUDED.duration,
			quality = EXCLUDED.quality,
			format = EXCLUDED.format,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			error_message = EXCLUDED.error_message,
			updated_at = now()
		WHERE downloaded_media.download_status <> $13`

	exec := GetExecutor(ctx, s.db)
	for _, item := range items {
		_, err := exec.ExecContext(ctx, query,
			item.EnrichmentID, item.Type, item.Status, item.SourceURL,
			item.StorageURL, int64(item.FileSize), item.Duration,
			item.Quality, item.Format, item.Width, item.Height,
			item.ErrorMessage, domain.DownloadStatusCompleted,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
