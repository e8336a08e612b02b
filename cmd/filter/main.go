// ABOUTME: Main entry point for the filtering phase
// ABOUTME: Extracts candidate articles, runs the two-stage relevance filter and records admissions

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hermes-news-app/core/extract"
	"hermes-news-app/core/interfaces"
	"hermes-news-app/core/pipeline"
	"hermes-news-app/core/relevance"
	"hermes-news-app/infrastructure/browser"
	"hermes-news-app/infrastructure/cache/memory"
	"hermes-news-app/infrastructure/cache/redis"
	"hermes-news-app/infrastructure/cache/sqlite"
	stdhttp "hermes-news-app/infrastructure/http/standard"
	"hermes-news-app/infrastructure/ledger"
	"hermes-news-app/infrastructure/llm/gemini"
	"hermes-news-app/infrastructure/llm/llamacpp"
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
	logger.Info("Starting filtering run", map[string]interface{}{
		"llm_backend": cfg.LLM.Backend,
		"cache_type":  cfg.Cache.Type,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	candidates, err := ledger.ReadCandidates(cfg.Paths.Candidates)
	if err != nil {
		log.Fatalf("Failed to read candidate list: %v", err)
	}
	if len(candidates) == 0 {
		logger.Info("No candidates to process", map[string]interface{}{
			"path": cfg.Paths.Candidates,
		})
		return
	}

	kbData, err := os.ReadFile(cfg.Paths.KnowledgeBase)
	if err != nil {
		log.Fatalf("Failed to read knowledge base: %v", err)
	}
	knowledgeBase := strings.TrimSpace(string(kbData))
	if knowledgeBase == "" {
		log.Fatalf("Knowledge base %s is empty: the filter has nothing to judge against", cfg.Paths.KnowledgeBase)
	}

	cache := newCache(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Extract.RequestTimeout)
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	strategies := []extract.Strategy{
		extract.NewFetchStrategy(httpClient, cfg.Extract.MinParagraphLen, cfg.Extract.MinContentLen),
		extract.NewReadabilityStrategy(cfg.Extract.RequestTimeout, cfg.Extract.MinContentLen),
	}
	if cfg.Extract.EnableBrowser {
		strategies = append(strategies, browser.NewStrategy(logger, cfg.Extract.BrowserTimeout, cfg.Extract.MinParagraphLen, cfg.Extract.MinContentLen))
	}
	extractor := extract.NewService(deps, strategies...)

	generator := newGenerator(ctx, cfg, logger)
	filter := relevance.NewService(generator, logger, relevance.Config{
		ScoreThreshold: cfg.Relevance.ScoreThreshold,
		KBChars:        cfg.Relevance.KnowledgeBaseChars,
		ArticleChars:   cfg.Relevance.ArticleChars,
		SummaryChars:   cfg.Relevance.SummaryArticleChars,
	})

	articles := ledger.NewArticleStore(cfg.Paths.ArticleLedger)
	processed := ledger.NewProcessedStore(cfg.Paths.ProcessedLog)

	driver := pipeline.NewService(extractor, filter, articles, processed, logger, pipeline.Config{
		PolitenessDelay: cfg.Discovery.PolitenessDelay,
	})

	admitted, err := driver.Run(ctx, candidates, knowledgeBase)
	if err != nil {
		log.Fatalf("Filtering run failed: %v", err)
	}

	logger.Info("Filtering run complete", map[string]interface{}{
		"candidates": len(candidates),
		"admitted":   admitted,
		"ledger":     cfg.Paths.ArticleLedger,
	})
}

// newCache selects the cache backend, falling back to memory when a backend
// cannot be reached so a filtering run never dies on cache trouble.
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

// newGenerator selects the reasoning backend. A backend that cannot even be
// constructed is fatal: every candidate evaluation needs it.
func newGenerator(ctx context.Context, cfg *config.Config, logger interfaces.Logger) interfaces.TextGenerator {
	switch cfg.LLM.Backend {
	case "gemini":
		client, err := gemini.NewClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		return client
	default:
		return llamacpp.NewClient(cfg.LLM.Endpoint, cfg.LLM.RequestTimeout, logger)
	}
}
