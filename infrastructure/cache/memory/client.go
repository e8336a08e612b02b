// ABOUTME: In-memory cache backend built on go-cache with TTL support
// ABOUTME: Default backend; extraction results survive only the current process

// Package memory implements the cache contract with an in-process store.
package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const cleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		store: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, errors.New("key not found")
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value with the given TTL. A zero TTL means no expiry.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiry := ttl
	if ttl == 0 {
		expiry = gocache.NoExpiration
	}
	c.store.Set(key, valueCopy, expiry)
	return nil
}

// Delete removes a key from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.store.Delete(key)
	return nil
}
