// Package downloader talks to a cobalt-style media download service that
// resolves a source URL into a streamable payload.
package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// Client implements service.MediaDownloader.
type Client struct {
	baseURL         string
	maxPayloadBytes int64
	httpClient      *http.Client
	logger          *slog.Logger
}

func New(cfg config.DownloaderConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		maxPayloadBytes: cfg.MaxPayloadBytes,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "downloader"),
	}
}

type resolveRequest struct {
	URL string `json:"url"`
}

// resolveResponse mirrors the download service's envelope. Status is one of
// "tunnel", "redirect" or "error".
type resolveResponse struct {
	Status string `json:"status"`
	URL    string `json:"url"`
	Info   struct {
		Duration *float64 `json:"duration"`
		Quality  *string  `json:"quality"`
		Format   *string  `json:"format"`
		Width    *int     `json:"width"`
		Height   *int     `json:"height"`
	} `json:"info"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

// Download resolves and streams one media candidate. Transport problems and
// service errors are retryable; unsupported URLs, removed/private content
// and oversized payloads are not.
func (c *Client) Download(ctx context.Context, candidate domain.MediaCandidate) (*domain.MediaPayload, error) {
	resolved, err := c.resolve(ctx, candidate.SourceURL)
	if err != nil {
		return nil, err
	}

	payload, err := c.stream(ctx, resolved.URL)
	if err != nil {
		return nil, err
	}

	payload.Duration = resolved.Info.Duration
	payload.Quality = resolved.Info.Quality
	payload.Format = resolved.Info.Format
	payload.Width = resolved.Info.Width
	payload.Height = resolved.Info.Height

	c.logger.Debug("downloaded media",
		"source_url", candidate.SourceURL,
		"bytes", len(payload.Data),
		"type", candidate.Type,
	)

	return payload, nil
}

func (c *Client) resolve(ctx context.Context, sourceURL string) (*resolveResponse, error) {
	body, err := json.Marshal(resolveRequest{URL: sourceURL})
	if err != nil {
		return nil, fmt.Errorf("marshal resolve payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeNetwork,
			"download service unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeRateLimited,
			"download service rate limited", nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeServiceUnavailable,
			"download service error "+resp.Status, nil)
	}

	var resolved resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&resolved); err != nil {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeMalformedResponse,
			"undecodable download service response", err)
	}

	switch resolved.Status {
	case "tunnel", "redirect":
		if resolved.URL == "" {
			return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeMalformedResponse,
				"download service returned no stream url", nil)
		}
		return &resolved, nil
	case "error":
		return nil, classifyServiceError(resolved.Error.Code)
	default:
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeMalformedResponse,
			fmt.Sprintf("unknown download service status %q", resolved.Status), nil)
	}
}

func (c *Client) stream(ctx context.Context, streamURL string) (*domain.MediaPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeNetwork,
			"media stream unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeServiceUnavailable,
			"media stream error "+resp.Status, nil)
	}

	if resp.ContentLength > c.maxPayloadBytes {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypePayloadTooLarge,
			fmt.Sprintf("payload of %d bytes exceeds limit of %d", resp.ContentLength, c.maxPayloadBytes), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxPayloadBytes+1))
	if err != nil {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeNetwork,
			"media stream interrupted", err)
	}
	if int64(len(data)) > c.maxPayloadBytes {
		return nil, domain.NewStepError(domain.StepMediaDownload, domain.ErrTypePayloadTooLarge,
			fmt.Sprintf("payload exceeds limit of %d bytes", c.maxPayloadBytes), nil)
	}

	return &domain.MediaPayload{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// classifyServiceError maps cobalt-style error codes onto the taxonomy.
func classifyServiceError(code string) *domain.StepError {
	switch {
	case strings.Contains(code, "content.post.private"), strings.Contains(code, "content.post.unavailable"):
		return domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeNotFound,
			"content removed or private: "+code, nil)
	case strings.Contains(code, "link.unsupported"), strings.Contains(code, "link.invalid"):
		return domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeInvalidInput,
			"unsupported media url: "+code, nil)
	case strings.Contains(code, "rate"):
		return domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeRateLimited,
			"download service rate limited: "+code, nil)
	default:
		return domain.NewStepError(domain.StepMediaDownload, domain.ErrTypeServiceUnavailable,
			"download service error: "+code, nil)
	}
}
