package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Discovery.WindowHours != 72 {
		t.Errorf("default window hours = %d, want 72", cfg.Discovery.WindowHours)
	}
	if cfg.Discovery.PolitenessDelay != time.Second {
		t.Errorf("default politeness delay = %v, want 1s", cfg.Discovery.PolitenessDelay)
	}
	if cfg.Extract.MinParagraphLen != 50 {
		t.Errorf("default min paragraph length = %d, want 50", cfg.Extract.MinParagraphLen)
	}
	if cfg.Extract.MinContentLen != 200 {
		t.Errorf("default min content length = %d, want 200", cfg.Extract.MinContentLen)
	}
	if cfg.Relevance.ScoreThreshold != 7 {
		t.Errorf("default score threshold = %d, want 7", cfg.Relevance.ScoreThreshold)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("default cache type = %q, want memory", cfg.Cache.Type)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("HERMES_WINDOW_HOURS", "24")
	t.Setenv("HERMES_SCORE_THRESHOLD", "9")
	t.Setenv("HERMES_LLM_BACKEND", "gemini")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}

	if cfg.Discovery.WindowHours != 24 {
		t.Errorf("window hours = %d, want 24", cfg.Discovery.WindowHours)
	}
	if cfg.Relevance.ScoreThreshold != 9 {
		t.Errorf("score threshold = %d, want 9", cfg.Relevance.ScoreThreshold)
	}
	if cfg.LLM.Backend != "gemini" {
		t.Errorf("llm backend = %q, want gemini", cfg.LLM.Backend)
	}
}

func TestValidate_DefaultsAreValid(t *testing.T) {
	cfg, _ := LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty static sources", func(c *Config) { c.Paths.StaticSources = "" }},
		{"zero window", func(c *Config) { c.Discovery.WindowHours = 0 }},
		{"zero paragraph length", func(c *Config) { c.Extract.MinParagraphLen = 0 }},
		{"content below paragraph", func(c *Config) { c.Extract.MinContentLen = 10 }},
		{"threshold too high", func(c *Config) { c.Relevance.ScoreThreshold = 11 }},
		{"unknown backend", func(c *Config) { c.LLM.Backend = "oracle" }},
		{"unknown cache", func(c *Config) { c.Cache.Type = "etcd" }},
		{"gemini without api key", func(c *Config) {
			c.LLM.Backend = "gemini"
			c.LLM.APIKey = ""
		}},
		{"redis without address", func(c *Config) {
			c.Cache.Type = "redis"
			c.Cache.Redis.Address = ""
		}},
		{"sqlite without path", func(c *Config) {
			c.Cache.Type = "sqlite"
			c.Cache.SQLitePath = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := LoadFromEnv()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should return an error")
			}
		})
	}
}
