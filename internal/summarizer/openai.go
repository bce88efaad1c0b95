// Package summarizer calls an OpenAI-compatible chat completion API to
// produce a summary, keyword list and tag list for bookmark content.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"bookmark_enricher/internal/config"
	"bookmark_enricher/internal/domain"
)

const systemPrompt = `You summarize saved social-media posts and web pages.
Reply with a single JSON object: {"summary": string, "keywords": [string], "tags": [string]}.
The summary is at most three sentences. Keywords are notable terms from the
content. Tags are short lowercase topic labels. Reply with JSON only.`

// Client implements service.Summarizer backed by OpenAI-compatible APIs.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func New(cfg config.SummarizerConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), 1),
		logger:  logger.With("component", "summarizer"),
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type summaryPayload struct {
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags"`
}

// Summarize sends the content to the AI service. Failures are classified
// for the orchestrator: transport/5xx/429 errors are retryable, empty input
// and credential or parse problems are not.
func (c *Client) Summarize(ctx context.Context, content string) (*domain.SummaryResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeInvalidInput,
			"no content to summarize", nil)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeTimeout,
			"rate limiter wait interrupted", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: content},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeNetwork,
			"ai service unreachable", err)
	}
	defer resp.Body.Close()

	if stepErr := classifyStatus(resp); stepErr != nil {
		return nil, stepErr
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeMalformedResponse,
			"undecodable ai response", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeMalformedResponse,
			"ai response has no choices", nil)
	}

	payload, err := parseSummaryPayload(chatResp.Choices[0].Message.Content)
	if err != nil {
		return nil, domain.NewStepError(domain.StepSummarization, domain.ErrTypeMalformedResponse,
			"ai reply is not the expected JSON object", err)
	}

	c.logger.Debug("summarized content",
		"tokens_used", chatResp.Usage.TotalTokens,
		"keywords", len(payload.Keywords),
		"tags", len(payload.Tags),
	)

	return &domain.SummaryResult{
		Summary:    payload.Summary,
		Keywords:   payload.Keywords,
		Tags:       payload.Tags,
		TokensUsed: chatResp.Usage.TotalTokens,
	}, nil
}

func classifyStatus(resp *http.Response) *domain.StepError {
	switch {
	case resp.StatusCode < http.StatusBadRequest:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		msg := "ai service rate limited"
		if retryAfter := parseRetryAfter(resp.Header.Get("Retry-After")); retryAfter > 0 {
			msg = fmt.Sprintf("ai service rate limited, retry after %s", retryAfter)
		}
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeRateLimited, msg, nil)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeUnauthorized,
			"ai service rejected credentials", nil)
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeServiceUnavailable,
			"ai service error "+resp.Status, nil)
	default:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.NewStepError(domain.StepSummarization, domain.ErrTypeInvalidInput,
			fmt.Sprintf("ai service rejected request %s: %s", resp.Status, strings.TrimSpace(string(detail))), nil)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}

// parseSummaryPayload tolerates replies wrapped in markdown code fences.
func parseSummaryPayload(reply string) (*summaryPayload, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	var payload summaryPayload
	if err := json.Unmarshal([]byte(reply), &payload); err != nil {
		return nil, err
	}
	if payload.Summary == "" {
		return nil, fmt.Errorf("missing summary field")
	}
	return &payload, nil
}
