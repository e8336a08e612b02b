package memory

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
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

func TestMemoryCache_MissingKeyIsError(t *testing.T) {
	cache := NewMemoryCache()

	if _, err := cache.Get(context.Background(), "absent"); err == nil {
		t.Error("expected an error for a missing key")
	}
}

func TestMemoryCache_ExpiredKeyIsError(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("expected an error for an expired key")
	}
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "k"); err != nil {
		t.Errorf("zero-TTL key should not expire, got %v", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("v"), time.Minute)
	if err := cache.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, "k"); err == nil {
		t.Error("key should be gone after Delete")
	}

	// Deleting a missing key is not an error.
	if err := cache.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete of missing key returned error: %v", err)
	}
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("abc"), time.Minute)
	first, _ := cache.Get(ctx, "k")
	first[0] = 'X'

	second, _ := cache.Get(ctx, "k")
	if string(second) != "abc" {
		t.Errorf("cached value was mutated through a returned slice: %q", second)
	}
}
