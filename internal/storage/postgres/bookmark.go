package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"bookmark_enricher/internal/domain"
)

type BookmarkStore struct {
	db *sqlx.DB
}

func NewBookmarkStore(db *sqlx.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

type bookmarkRow struct {
	ID               string     `db:"id"`
	UserID           string     `db:"user_id"`
	Platform         string     `db:"platform"`
	PostID           string     `db:"post_id"`
	PostURL          string     `db:"post_url"`
	Content          string     `db:"content"`
	AuthorName       *string    `db:"author_name"`
	AuthorUsername   *string    `db:"author_username"`
	AuthorProfileURL *string    `db:"author_profile_url"`
	ViewCount        int        `db:"view_count"`
	Metadata         []byte     `db:"metadata"`
	PostedAt         *time.Time `db:"posted_at"`
	SavedAt          time.Time  `db:"saved_at"`
}

func (s *BookmarkStore) GetByID(ctx context.Context, id string) (*domain.Bookmark, error) {
	query := `
		SELECT id, user_id, platform, post_id, post_url, content,
			author_name, author_username, author_profile_url,
			view_count, metadata, posted_at, saved_at
		FROM bookmarks
		WHERE id = $1`

	var row bookmarkRow
	err := s.db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("bookmark %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	bookmark := &domain.Bookmark{
		ID:               row.ID,
		UserID:           row.UserID,
		Platform:         domain.Platform(row.Platform),
		PostID:           row.PostID,
		PostURL:          row.PostURL,
		Content:          row.Content,
		AuthorName:       row.AuthorName,
		AuthorUsername:   row.AuthorUsername,
		AuthorProfileURL: row.AuthorProfileURL,
		ViewCount:        row.ViewCount,
		PostedAt:         row.PostedAt,
		SavedAt:          row.SavedAt,
	}

	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &bookmark.Metadata); err != nil {
			return nil, fmt.Errorf("decode bookmark metadata: %w", err)
		}
	}

	return bookmark, nil
}
