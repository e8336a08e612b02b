package interfaces

import (
	"context"
	"io"
)

// HTTPClient abstracts outbound HTTP so network-facing components can be
// tested with canned responses.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the minimal view of an HTTP response the pipeline needs.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the value of the named header, "" when absent.
	Header(key string) string
}
