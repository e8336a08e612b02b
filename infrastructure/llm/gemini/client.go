// ABOUTME: TextGenerator backed by the Gemini API with retry on rate limiting
// ABOUTME: Grammar constraints are ignored here; callers validate output shape

// Package gemini implements the text-generation capability against the
// hosted Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"hermes-news-app/core/interfaces"
)

const (
	maxAttempts  = 3
	retryBackoff = 5 * time.Second
)

// Client talks to the Gemini API with a fixed model.
type Client struct {
	client *genai.Client
	model  string
	logger interfaces.Logger
}

// NewClient creates a Gemini-backed generator.
func NewClient(ctx context.Context, apiKey, model string, logger interfaces.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: client, model: model, logger: logger}, nil
}

// Generate sends one generation request, retrying with exponential backoff
// when the API reports rate limiting or transient server errors. The GBNF
// grammar in the request cannot be enforced by this backend and is dropped.
func (c *Client) Generate(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
		if err == nil {
			return result.Text(), nil
		}
		lastErr = err

		if !isRetryable(err) {
			break
		}
		c.logger.Warn("gemini request failed, retrying", map[string]interface{}{
			"attempt": attempt,
			"error":   err.Error(),
		})
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(retryBackoff * time.Duration(1<<(attempt-1))):
		}
	}
	return "", fmt.Errorf("gemini generate: %w", lastErr)
}

// isRetryable reports whether the API error code marks a transient failure.
// Only the structured error code is consulted, never the message text.
func isRetryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusServiceUnavailable:
		return true
	}
	return false
}
