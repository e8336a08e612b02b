package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGet_ReturnsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "hello")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		t.Errorf("StatusCode = %d, want 200", resp.StatusCode())
	}
	body, _ := io.ReadAll(resp.Body())
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestGet_SetsUserAgent(t *testing.T) {
	var ua string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if ua != "Hermes/1.0" {
		t.Errorf("User-Agent = %q, want Hermes/1.0", ua)
	}
}

func TestGet_RetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, "recovered")
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		t.Errorf("StatusCode = %d, want 200 after retries", resp.StatusCode())
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestGet_DoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	resp, err := client.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp.Body().Close()

	if resp.StatusCode() != 404 {
		t.Errorf("StatusCode = %d, want 404", resp.StatusCode())
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (4xx must not be retried)", attempts)
	}
}

func TestGet_ExhaustedRetriesReturnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandardHTTPClient(5 * time.Second)
	if _, err := client.Get(context.Background(), server.URL); err == nil {
		t.Error("expected an error after exhausting retries")
	}
}
