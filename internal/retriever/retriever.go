// Package retriever fetches live post content for a bookmark URL, falling
// back to the content captured at save time whenever the fetch degrades.
package retriever

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/doyensec/safeurl"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

type Retriever struct {
	httpClient   *http.Client
	maxBodyBytes int64
	logger       *slog.Logger
}

// New builds a retriever with an SSRF-guarded HTTP client. Bookmark URLs
// are user-controlled, so requests to private networks are blocked at the
// dialer level, which also covers DNS rebinding.
func New(cfg config.RetrieverConfig, logger *slog.Logger) *Retriever {
	clientCfg := safeurl.GetConfigBuilder().
		SetTimeout(cfg.Timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443).
		Build()

	return NewWithClient(safeurl.Client(clientCfg).Client, cfg.MaxBodyBytes, logger)
}

// NewWithClient builds a retriever around an explicit HTTP client.
func NewWithClient(client *http.Client, maxBodyBytes int64, logger *slog.Logger) *Retriever {
	return &Retriever{
		httpClient:   client,
		maxBodyBytes: maxBodyBytes,
		logger:       logger.With("component", "retriever"),
	}
}

// Retrieve attempts a live fetch of the canonical content. Any failure
// (network, timeout, non-success status, empty body) silently degrades to
// the fallback content; content retrieval never blocks the pipeline.
func (r *Retriever) Retrieve(ctx context.Context, url string, platform domain.Platform, fallback string) string {
	if url == "" {
		return fallback
	}

	body, err := r.fetch(ctx, url)
	if err != nil {
		r.logger.Debug("live fetch degraded to saved content",
			"url", url,
			"platform", platform,
			"error", err,
		)
		return fallback
	}

	content := strings.TrimSpace(body)
	if content == "" {
		r.logger.Debug("live fetch returned empty body, using saved content",
			"url", url,
			"platform", platform,
		)
		return fallback
	}

	return content
}

func (r *Retriever) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/html, application/json;q=0.9, text/plain;q=0.8")
	req.Header.Set("User-Agent", "BookmarkEnricher/1.0")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &statusError{code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBodyBytes))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected status: " + http.StatusText(e.code)
}
