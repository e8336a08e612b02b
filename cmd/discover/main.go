// ABOUTME: Main entry point for the discovery phase
// ABOUTME: Loads the source registry, finds fresh article URLs and writes the candidate list

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"hermes-news-app/core/discovery"
	"hermes-news-app/core/interfaces"
	"hermes-news-app/core/sources"
	stdhttp "hermes-news-app/infrastructure/http/standard"
	"hermes-news-app/infrastructure/ledger"
	logrusadapter "hermes-news-app/infrastructure/logger/logrus"
	"hermes-news-app/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrusadapter.New(cfg.LogLevel, cfg.LogJSON)
	logger.Info("Starting discovery run", map[string]interface{}{
		"window_hours":   cfg.Discovery.WindowHours,
		"static_sources": cfg.Paths.StaticSources,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := sources.NewRegistry(cfg.Paths.StaticSources, cfg.Paths.DynamicSources, logger)
	srcs, err := registry.Load()
	if err != nil {
		log.Fatalf("Failed to load source registry: %v", err)
	}
	if len(srcs) == 0 {
		log.Fatalf("Source registry is empty: nothing to discover")
	}

	processed, err := ledger.NewProcessedStore(cfg.Paths.ProcessedLog).Load()
	if err != nil {
		log.Fatalf("Failed to load processed-URL log: %v", err)
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Discovery.RequestTimeout)
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	svc := discovery.NewService(deps, discovery.Config{
		Window:          time.Duration(cfg.Discovery.WindowHours) * time.Hour,
		PolitenessDelay: cfg.Discovery.PolitenessDelay,
		RequestTimeout:  cfg.Discovery.RequestTimeout,
	})

	candidates := svc.Run(ctx, srcs, processed)

	if err := ledger.WriteCandidates(cfg.Paths.Candidates, candidates); err != nil {
		log.Fatalf("Failed to write candidate list: %v", err)
	}

	logger.Info("Discovery run complete", map[string]interface{}{
		"sources":    len(srcs),
		"candidates": len(candidates),
		"output":     cfg.Paths.Candidates,
	})
}
