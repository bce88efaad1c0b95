// Package api exposes the enrichment status and retry surface over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bookmark_enricher/internal/domain"
	"bookmark_enricher/internal/service"
)

// StatusReader serves enrichment snapshots and admits retries.
type StatusReader interface {
	GetEnrichmentStatus(ctx context.Context, bookmarkID string) (*service.EnrichmentSnapshot, error)
	RetryEnrichment(ctx context.Context, bookmarkID string) error
}

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	status StatusReader
	db     Pinger
	logger *slog.Logger
}

func NewHandler(status StatusReader, db Pinger, logger *slog.Logger) *Handler {
	return &Handler{
		status: status,
		db:     db,
		logger: logger.With("component", "api"),
	}
}

type enrichmentResponse struct {
	BookmarkID string                 `json:"bookmarkId"`
	Status     string                 `json:"status"`
	Summary    *string                `json:"summary"`
	Keywords   []string               `json:"keywords"`
	Tags       []string               `json:"tags"`
	EnrichedAt *time.Time             `json:"enrichedAt"`
	Errors     []domain.WorkflowError `json:"errors"`
	RetryCount int                    `json:"retryCount"`
	Media      []mediaResponse        `json:"media"`
}

type mediaResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"mediaType"`
	Status       string          `json:"downloadStatus"`
	SourceURL    string          `json:"sourceUrl"`
	StorageURL   *string         `json:"storageUrl"`
	FileSize     domain.FileSize `json:"fileSize"`
	Duration     *float64        `json:"duration"`
	Quality      *string         `json:"quality"`
	Format       *string         `json:"format"`
	Width        *int            `json:"width"`
	Height       *int            `json:"height"`
	ErrorMessage *string         `json:"errorMessage"`
}

type retryResponse struct {
	Accepted   bool   `json:"accepted"`
	BookmarkID string `json:"bookmarkId"`
}

type errorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Guidance string `json:"guidance,omitempty"`
}

// GetEnrichment serves the current enrichment snapshot for a bookmark.
// GET /api/enrichments/{bookmarkID}
func (h *Handler) GetEnrichment(w http.ResponseWriter, r *http.Request) {
	bookmarkID := chi.URLParam(r, "bookmarkID")

	snapshot, err := h.status.GetEnrichmentStatus(r.Context(), bookmarkID)
	if err != nil {
		h.handleServiceError(w, bookmarkID, err)
		return
	}

	writeJSON(w, http.StatusOK, toEnrichmentResponse(snapshot))
}

// RetryEnrichment admits a new run for a bookmark in a terminal state.
// POST /api/enrichments/{bookmarkID}/retry
func (h *Handler) RetryEnrichment(w http.ResponseWriter, r *http.Request) {
	bookmarkID := chi.URLParam(r, "bookmarkID")

	if err := h.status.RetryEnrichment(r.Context(), bookmarkID); err != nil {
		h.handleServiceError(w, bookmarkID, err)
		return
	}

	writeJSON(w, http.StatusAccepted, retryResponse{Accepted: true, BookmarkID: bookmarkID})
}

// Healthz reports liveness including database connectivity.
// GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Code:    "UNHEALTHY",
			Message: "database unreachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleServiceError(w http.ResponseWriter, bookmarkID string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Code:     "NOT_FOUND",
			Message:  "no enrichment record exists for this bookmark",
			Guidance: "Verify the bookmark id; enrichment records are created on the first run.",
		})
	case errors.Is(err, domain.ErrAlreadyProcessing):
		writeJSON(w, http.StatusConflict, errorResponse{
			Code:     "ALREADY_PROCESSING",
			Message:  "an enrichment run is already in progress for this bookmark",
			Guidance: "Wait for the current run to finish before retrying.",
		})
	default:
		h.logger.Error("request failed", "bookmark_id", bookmarkID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

func toEnrichmentResponse(snapshot *service.EnrichmentSnapshot) enrichmentResponse {
	record := snapshot.Record
	resp := enrichmentResponse{
		BookmarkID: record.BookmarkID,
		Status:     string(record.Status),
		Summary:    record.Summary,
		Keywords:   record.Keywords,
		Tags:       record.Tags,
		EnrichedAt: record.EnrichedAt,
		Errors:     record.Errors,
		RetryCount: record.RetryCount,
		Media:      make([]mediaResponse, 0, len(snapshot.Media)),
	}
	if resp.Keywords == nil {
		resp.Keywords = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.Errors == nil {
		resp.Errors = []domain.WorkflowError{}
	}
	for _, m := range snapshot.Media {
		resp.Media = append(resp.Media, mediaResponse{
			ID:           m.ID,
			Type:         string(m.Type),
			Status:       string(m.Status),
			SourceURL:    m.SourceURL,
			StorageURL:   m.StorageURL,
			FileSize:     m.FileSize,
			Duration:     m.Duration,
			Quality:      m.Quality,
			Format:       m.Format,
			Width:        m.Width,
			Height:       m.Height,
			ErrorMessage: m.ErrorMessage,
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
