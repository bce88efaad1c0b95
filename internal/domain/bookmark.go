package domain

import "time"

// Platform identifies where a bookmarked post originates from.
type Platform string

const (
	PlatformTwitter    Platform = "TWITTER"
	PlatformLinkedIn   Platform = "LINKEDIN"
	PlatformGenericURL Platform = "GENERIC_URL"
)

// Bookmark is a saved social post or URL. It is read-only input to the
// enrichment pipeline; only enrichment state is ever written back.
type Bookmark struct {
	ID               string
	UserID           string
	Platform         Platform
	PostID           string
	PostURL          string
	Content          string // raw content captured at save time
	AuthorName       *string
	AuthorUsername   *string
	AuthorProfileURL *string
	ViewCount        int
	Metadata         map[string]string
	PostedAt         *time.Time
	SavedAt          time.Time
}
