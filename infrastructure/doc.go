// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, headless rendering and text
// generation.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger built on logrus
// - browser: Headless-Chrome extraction strategy for JS-rendered pages
// - llm/llamacpp: Text generation against a local llama.cpp server
// - llm/gemini: Text generation against the Gemini API
// - ledger: Durable text files shared between pipeline runs
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New("info", false)
//	logger.Info("Processing candidate", map[string]interface{}{
//	    "url": "https://example.com/article",
//	})
package infrastructure
