package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmark_enricher/internal/domain"
	"bookmark_enricher/internal/service"
	"bookmark_enricher/testdata/utils"
)

type stubStatusReader struct {
	getFn   func(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error)
	retryFn func(ctx context.Context, bookmarkID string) error
}

func (s *stubStatusReader) GetEnrichmentStatus(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error) {
	return s.getFn(ctx, bookmarkID)
}

func (s *stubStatusReader) RetryEnrichment(ctx context.Context, bookmarkID string) error {
	return s.retryFn(ctx, bookmarkID)
}

type stubPinger struct {
	err error
}

func (s *stubPinger) PingContext(ctx context.Context) error {
	return s.err
}

func newTestHandler(status StatusReader, db Pinger) *Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewHandler(status, db, logger)
}

func withBookmarkID(r *http.Request, bookmarkID string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("bookmarkID", bookmarkID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestGetEnrichment_OK(t *testing.T) {
	enrichedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	snapshot := &service.EnrichmentSnapshot{
		Record: &domain.EnrichmentRecord{
			ID:         "enr-1",
			BookmarkID: "bm-1",
			Status:     domain.StatusPartialSuccess,
			Summary:    utils.Ptr("a summary"),
			Keywords:   []string{"go"},
			Tags:       []string{"tech"},
			EnrichedAt: &enrichedAt,
			Errors: []domain.WorkflowError{
				{
					Step:      domain.StepMediaDownload,
					Type:      domain.ErrTypeNotFound,
					Message:   "post is private",
					Retryable: false,
				},
			},
			RetryCount: 1,
		},
		Media: []domain.DownloadedMedia{
			{
				ID:         "med-1",
				Type:       domain.MediaTypeImage,
				Status:     domain.DownloadStatusCompleted,
				SourceURL:  "https://pbs.twimg.com/media/abc.jpg",
				StorageURL: utils.Ptr("https://cdn.example.com/abc.jpg"),
				FileSize:   domain.FileSize(9007199254740993),
			},
		},
	}

	h := newTestHandler(&stubStatusReader{
		getFn: func(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error) {
			assert.Equal(t, "bm-1", bookmarkID)
			return snapshot, nil
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodGet, "/api/enrichments/bm-1", nil), "bm-1")
	w := httptest.NewRecorder()

	h.GetEnrichment(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "bm-1", resp["bookmarkId"])
	assert.Equal(t, "PARTIAL_SUCCESS", resp["status"])
	assert.Equal(t, "a summary", resp["summary"])

	media := resp["media"].([]any)
	require.Len(t, media, 1)
	first := media[0].(map[string]any)
	// File sizes travel as decimal strings so they survive JS consumers.
	assert.Equal(t, "9007199254740993", first["fileSize"])

	respErrors := resp["errors"].([]any)
	require.Len(t, respErrors, 1)
	assert.Equal(t, "MEDIA_DOWNLOAD", respErrors[0].(map[string]any)["step"])
}

func TestGetEnrichment_EmptyCollectionsNotNull(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		getFn: func(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error) {
			return &service.EnrichmentSnapshot{
				Record: &domain.EnrichmentRecord{BookmarkID: "bm-1", Status: domain.StatusPending},
			}, nil
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodGet, "/api/enrichments/bm-1", nil), "bm-1")
	w := httptest.NewRecorder()

	h.GetEnrichment(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `"keywords":[]`)
	assert.Contains(t, body, `"tags":[]`)
	assert.Contains(t, body, `"errors":[]`)
	assert.Contains(t, body, `"media":[]`)
}

func TestGetEnrichment_NotFound(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		getFn: func(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error) {
			return nil, domain.ErrNotFound
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodGet, "/api/enrichments/missing", nil), "missing")
	w := httptest.NewRecorder()

	h.GetEnrichment(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "NOT_FOUND", resp["code"])
	assert.NotEmpty(t, resp["guidance"])
}

func TestGetEnrichment_InternalError(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		getFn: func(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error) {
			return nil, errors.New("db exploded")
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodGet, "/api/enrichments/bm-1", nil), "bm-1")
	w := httptest.NewRecorder()

	h.GetEnrichment(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db exploded")
}

func TestRetryEnrichment_Accepted(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		retryFn: func(ctx context.Context, bookmarkID string) error {
			assert.Equal(t, "bm-1", bookmarkID)
			return nil
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodPost, "/api/enrichments/bm-1/retry", nil), "bm-1")
	w := httptest.NewRecorder()

	h.RetryEnrichment(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp retryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Accepted)
	assert.Equal(t, "bm-1", resp.BookmarkID)
}

func TestRetryEnrichment_Conflict(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		retryFn: func(ctx context.Context, bookmarkID string) error {
			return domain.ErrAlreadyProcessing
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodPost, "/api/enrichments/bm-1/retry", nil), "bm-1")
	w := httptest.NewRecorder()

	h.RetryEnrichment(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ALREADY_PROCESSING", resp["code"])
}

func TestRetryEnrichment_NotFound(t *testing.T) {
	h := newTestHandler(&stubStatusReader{
		retryFn: func(ctx context.Context, bookmarkID string) error {
			return domain.ErrNotFound
		},
	}, &stubPinger{})

	req := withBookmarkID(httptest.NewRequest(http.MethodPost, "/api/enrichments/bm-1/retry", nil), "bm-1")
	w := httptest.NewRecorder()

	h.RetryEnrichment(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz_OK(t *testing.T) {
	h := newTestHandler(&stubStatusReader{}, &stubPinger{})

	w := httptest.NewRecorder()
	h.Healthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthz_DatabaseDown(t *testing.T) {
	h := newTestHandler(&stubStatusReader{}, &stubPinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	h.Healthz(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
