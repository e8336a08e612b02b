package extract

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("no response configured")
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	store map[string][]byte
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (c *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := c.store[key]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (c *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.store[key] = value
	c.sets++
	return nil
}

func (c *mockCache) Delete(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// mockLogger discards all log output
type mockLogger struct{}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}

// stubStrategy returns a fixed result or error and counts calls
type stubStrategy struct {
	name    string
	article *domain.ExtractedArticle
	err     error
	calls   int
}

func (s *stubStrategy) Name() string { return s.name }

func (s *stubStrategy) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.article, nil
}
