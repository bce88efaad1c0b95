// Package object uploads media payloads to an HTTP object store and
// returns the public URL of the stored object.
package object

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

// Client implements service.StorageUploader against any object store that
// accepts authenticated PUTs of the form {endpoint}/{bucket}/{key}.
type Client struct {
	endpoint      string
	bucket        string
	publicBaseURL string
	accessToken   string
	httpClient    *http.Client
	logger        *slog.Logger
}

func New(cfg config.StorageConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:      strings.TrimRight(cfg.Endpoint, "/"),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		accessToken:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With("component", "object_store"),
	}
}

// Upload stores the payload under meta.Key and returns its public URL.
// Empty payloads are non-retryable; store/network problems are retryable.
func (c *Client) Upload(ctx context.Context, data []byte, meta domain.UploadMetadata) (string, error) {
	if len(data) == 0 {
		return "", domain.NewStepError(domain.StepStorageUpload, domain.ErrTypeInvalidInput,
			"empty payload", nil)
	}

	objectURL := fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, meta.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if meta.ContentType != "" {
		req.Header.Set("Content-Type", meta.ContentType)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewStepError(domain.StepStorageUpload, domain.ErrTypeNetwork,
			"object store unreachable", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusNoContent:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusInsufficientStorage:
		return "", domain.NewStepError(domain.StepStorageUpload, domain.ErrTypeServiceUnavailable,
			"object store quota or rate limit: "+resp.Status, nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return "", domain.NewStepError(domain.StepStorageUpload, domain.ErrTypeServiceUnavailable,
			"object store error "+resp.Status, nil)
	default:
		return "", domain.NewStepError(domain.StepStorageUpload, domain.ErrTypeInvalidInput,
			"object store rejected payload: "+resp.Status, nil)
	}

	publicURL := fmt.Sprintf("%s/%s", c.publicBaseURL, meta.Key)
	c.logger.Debug("uploaded object", "key", meta.Key, "bytes", len(data))
	return publicURL, nil
}
