// ABOUTME: Configuration for both pipeline binaries with environment variable support
// ABOUTME: All file paths and tunable thresholds are explicit so components stay testable

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds all pipeline configuration.
type Config struct {
	// Paths contains every file the pipeline reads or writes.
	Paths PathsConfig

	// Discovery contains recency window and politeness settings.
	Discovery DiscoveryConfig

	// Extract contains the content extraction thresholds.
	Extract ExtractConfig

	// Relevance contains the classifier thresholds and prompt bounds.
	Relevance RelevanceConfig

	// LLM selects and configures the reasoning backend.
	LLM LLMConfig

	// Cache contains cache backend configuration.
	Cache CacheConfig

	// LogLevel sets the minimum log level (debug/info/warn/error).
	LogLevel string

	// LogJSON switches log output to one JSON object per line.
	LogJSON bool
}

// PathsConfig holds the durable file locations.
type PathsConfig struct {
	// StaticSources is the curated source registry. Required.
	StaticSources string

	// DynamicSources is the optional AI-generated source registry.
	DynamicSources string

	// Candidates is the candidate URL list produced by discovery.
	Candidates string

	// ProcessedLog is the ledger of URLs already evaluated.
	ProcessedLog string

	// ArticleLedger is the append-only database of admitted articles.
	ArticleLedger string

	// KnowledgeBase is the research-theme corpus text.
	KnowledgeBase string
}

// DiscoveryConfig holds discovery-phase settings.
type DiscoveryConfig struct {
	// WindowHours is the recency window; articles older than now minus this
	// are ignored.
	WindowHours int

	// PolitenessDelay is the pause between requests to the same host.
	PolitenessDelay time.Duration

	// RequestTimeout bounds every discovery network call.
	RequestTimeout time.Duration
}

// ExtractConfig holds the boilerplate-filter thresholds.
type ExtractConfig struct {
	// MinParagraphLen drops paragraphs shorter than this many characters.
	MinParagraphLen int

	// MinContentLen is the minimum total text for a successful extraction.
	MinContentLen int

	// RequestTimeout bounds the fetch strategy.
	RequestTimeout time.Duration

	// BrowserTimeout bounds the headless browser strategy.
	BrowserTimeout time.Duration

	// EnableBrowser switches the headless browser fallback on.
	EnableBrowser bool
}

// RelevanceConfig holds classifier settings.
type RelevanceConfig struct {
	// ScoreThreshold is the minimum thematic score for stage two, out of 10.
	ScoreThreshold int

	// KnowledgeBaseChars bounds the knowledge-base excerpt in prompts.
	KnowledgeBaseChars int

	// ArticleChars bounds the article excerpt in the scoring prompt.
	ArticleChars int

	// SummaryArticleChars bounds the article excerpt in the summary prompt.
	SummaryArticleChars int
}

// LLMConfig holds reasoning backend configuration.
type LLMConfig struct {
	// Backend is "llamacpp" or "gemini".
	Backend string

	// Endpoint is the llama.cpp server base URL.
	Endpoint string

	// Model is the Gemini model name.
	Model string

	// APIKey authenticates the Gemini backend.
	APIKey string

	// RequestTimeout bounds one generation call.
	RequestTimeout time.Duration
}

// CacheConfig holds cache backend configuration.
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite).
	Type string

	// Redis contains Redis-specific configuration.
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string
}

// RedisConfig holds Redis-specific configuration.
type RedisConfig struct {
	// Address is the Redis server address.
	Address string

	// Password is the Redis authentication password.
	Password string

	// DB is the Redis database number.
	DB int
}

// LoadFromEnv loads configuration from environment variables, falling back
// to the defaults the original deployment used.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Paths: PathsConfig{
			StaticSources:  getEnvOrDefault("HERMES_STATIC_SOURCES", "config_hermes.yaml"),
			DynamicSources: getEnvOrDefault("HERMES_DYNAMIC_SOURCES", "output/dynamic_sources.yaml"),
			Candidates:     getEnvOrDefault("HERMES_CANDIDATES", "output/candidate_urls.txt"),
			ProcessedLog:   getEnvOrDefault("HERMES_PROCESSED_LOG", "output/processed_urls.log"),
			ArticleLedger:  getEnvOrDefault("HERMES_ARTICLE_LEDGER", "database.md"),
			KnowledgeBase:  getEnvOrDefault("HERMES_KNOWLEDGE_BASE", "output/knowledge_base.txt"),
		},
		Discovery: DiscoveryConfig{
			WindowHours:     getEnvAsIntOrDefault("HERMES_WINDOW_HOURS", 72),
			PolitenessDelay: time.Duration(getEnvAsIntOrDefault("HERMES_POLITENESS_MS", 1000)) * time.Millisecond,
			RequestTimeout:  time.Duration(getEnvAsIntOrDefault("HERMES_REQUEST_TIMEOUT_SEC", 25)) * time.Second,
		},
		Extract: ExtractConfig{
			MinParagraphLen: getEnvAsIntOrDefault("HERMES_MIN_PARAGRAPH_LEN", 50),
			MinContentLen:   getEnvAsIntOrDefault("HERMES_MIN_CONTENT_LEN", 200),
			RequestTimeout:  time.Duration(getEnvAsIntOrDefault("HERMES_SCRAPE_TIMEOUT_SEC", 30)) * time.Second,
			BrowserTimeout:  time.Duration(getEnvAsIntOrDefault("HERMES_BROWSER_TIMEOUT_SEC", 20)) * time.Second,
			EnableBrowser:   getEnvOrDefault("HERMES_ENABLE_BROWSER", "true") == "true",
		},
		Relevance: RelevanceConfig{
			ScoreThreshold:      getEnvAsIntOrDefault("HERMES_SCORE_THRESHOLD", 7),
			KnowledgeBaseChars:  getEnvAsIntOrDefault("HERMES_KB_CHARS", 3000),
			ArticleChars:        getEnvAsIntOrDefault("HERMES_ARTICLE_CHARS", 4000),
			SummaryArticleChars: getEnvAsIntOrDefault("HERMES_SUMMARY_ARTICLE_CHARS", 6000),
		},
		LLM: LLMConfig{
			Backend:        getEnvOrDefault("HERMES_LLM_BACKEND", "llamacpp"),
			Endpoint:       getEnvOrDefault("HERMES_LLM_ENDPOINT", "http://localhost:8080"),
			Model:          getEnvOrDefault("HERMES_LLM_MODEL", "gemini-2.5-flash"),
			APIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
			RequestTimeout: time.Duration(getEnvAsIntOrDefault("HERMES_LLM_TIMEOUT_SEC", 120)) * time.Second,
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("HERMES_CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLitePath: getEnvOrDefault("HERMES_CACHE_SQLITE_PATH", "output/cache.db"),
		},
		LogLevel: getEnvOrDefault("HERMES_LOG_LEVEL", "info"),
		LogJSON:  getEnvOrDefault("HERMES_LOG_JSON", "false") == "true",
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default.
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Paths.StaticSources == "" {
		return errors.New("static sources path cannot be empty")
	}

	if c.Discovery.WindowHours < 1 {
		return errors.New("discovery window must be at least 1 hour")
	}

	if c.Extract.MinParagraphLen < 1 || c.Extract.MinContentLen < 1 {
		return errors.New("extraction length thresholds must be positive")
	}

	if c.Extract.MinContentLen < c.Extract.MinParagraphLen {
		return errors.New("minimum content length cannot be below minimum paragraph length")
	}

	if c.Relevance.ScoreThreshold < 1 || c.Relevance.ScoreThreshold > 10 {
		return errors.New("score threshold must be between 1 and 10")
	}

	if c.LLM.Backend != "llamacpp" && c.LLM.Backend != "gemini" {
		return errors.New("llm backend must be 'llamacpp' or 'gemini'")
	}

	if c.LLM.Backend == "gemini" && c.LLM.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required for the gemini backend")
	}

	if c.Cache.Type != "memory" && c.Cache.Type != "redis" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	return nil
}
