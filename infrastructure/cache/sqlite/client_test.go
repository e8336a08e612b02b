package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testCache(t *testing.T) *Client {
	t.Helper()
	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get = %q, want %q", got, "value")
	}
}

func TestSQLiteCache_MissingKeyIsError(t *testing.T) {
	cache := testCache(t)

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Error("expected an error for a missing key")
	}
}

func TestSQLiteCache_ExpiredKeyIsError(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	// Expiry granularity is one second, so write an already-expired row.
	if err := cache.Set(ctx, "k", []byte("v"), -time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("expected an error for an expired key")
	}
}

func TestSQLiteCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); err != nil {
		t.Errorf("zero-TTL key should not expire, got %v", err)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("key should be gone after Delete")
	}
}

func TestSQLiteCache_OverwriteReplacesValue(t *testing.T) {
	cache := testCache(t)
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("old"), time.Minute)
	cache.Set(ctx, "k", []byte("new"), time.Minute)

	got, err := cache.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Get = %q, want %q", got, "new")
	}
}

func TestSQLiteCache_EmptyPathRejected(t *testing.T) {
	if _, err := NewSQLiteCache(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}
