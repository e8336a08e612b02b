// ABOUTME: TextGenerator backed by a local llama.cpp server's /completion endpoint
// ABOUTME: Passes GBNF grammars through so output shape is enforced server-side

// Package llamacpp implements the text-generation capability against a
// locally running llama.cpp HTTP server.
package llamacpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hermes-news-app/core/interfaces"
)

type completionRequest struct {
	Prompt      string   `json:"prompt"`
	NPredict    int      `json:"n_predict,omitempty"`
	Temperature float64  `json:"temperature"`
	Grammar     string   `json:"grammar,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// Client talks to one llama.cpp server instance.
type Client struct {
	endpoint string
	client   *http.Client
	logger   interfaces.Logger
}

// NewClient creates a client for the given base URL, e.g.
// http://127.0.0.1:8080.
func NewClient(endpoint string, timeout time.Duration, logger interfaces.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

// Generate sends one completion request. System instructions are prepended
// to the prompt because the native completion endpoint has no separate
// system slot.
func (c *Client) Generate(ctx context.Context, req interfaces.GenerateRequest) (string, error) {
	prompt := req.Prompt
	if req.System != "" {
		prompt = req.System + "\n\n" + prompt
	}

	payload, err := json.Marshal(completionRequest{
		Prompt:      prompt,
		NPredict:    req.MaxTokens,
		Temperature: req.Temperature,
		Grammar:     req.Grammar,
		Stop:        req.Stop,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/completion", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("llama.cpp request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read llama.cpp response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("llama.cpp returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decode llama.cpp response: %w", err)
	}

	c.logger.Debug("completion generated", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
		"chars":       len(completion.Content),
	})
	return completion.Content, nil
}
