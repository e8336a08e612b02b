package discovery

import (
	"context"
	"io"
	"strings"

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
	return nil, nil
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

// mockLogger records warnings so tests can assert fallback behavior
type mockLogger struct {
	warnings []string
}

func (l *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (l *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (l *mockLogger) Warn(msg string, fields map[string]interface{}) {
	l.warnings = append(l.warnings, msg)
}
func (l *mockLogger) Error(msg string, fields map[string]interface{}) {}
