// Package interfaces defines the contracts between the core pipeline logic
// and its infrastructure (cache, HTTP, logging, language model).
package interfaces

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys. Implementations are
// in-memory, Redis or SQLite; the pipeline uses it to keep extracted article
// content between runs so repeated candidates are not re-fetched.
type Cache interface {
	// Get retrieves a value by key. A miss is reported as an error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
