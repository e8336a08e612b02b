// Package core contains the business logic for the Hermes news pipeline.
// It is designed to be framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Source, ExtractedArticle, Verdict)
// - sources: Source registry loading (static plus dynamic YAML)
// - discovery: Feed reading with a site-crawl fallback for fresh article URLs
// - extract: Ordered strategy chain turning a URL into article text
// - relevance: Two-stage language-model relevance filter and summarizer
// - pipeline: Filtering driver connecting extraction, filtering and ledgers
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, LLM)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "hermes-news-app/core/discovery"
//	    "hermes-news-app/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := discovery.NewService(deps, discovery.Config{
//	    Window: 72 * time.Hour,
//	})
//
//	// Find fresh article URLs
//	candidates := svc.Run(ctx, sources, processedURLs)
package core
