// ABOUTME: Discovery service turns registry sources into new candidate article URLs
// ABOUTME: Feed-first with crawl fallback; source-level failures never stop a run

// Package discovery finds candidate article URLs from registered sources
// within the recency window, deduplicated against the processed-URL ledger.
package discovery

import (
	"context"
	"sort"
	"time"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// Config holds the discovery-phase tunables.
type Config struct {
	// Window is the recency window; only articles published at or after
	// now minus Window are admitted.
	Window time.Duration

	// PolitenessDelay is the pause between crawl requests to a host.
	PolitenessDelay time.Duration

	// RequestTimeout bounds each network call.
	RequestTimeout time.Duration

	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Service runs the discovery phase.
type Service struct {
	deps  interfaces.Dependencies
	cfg   Config
	clock func() time.Time
}

// NewService creates a discovery service.
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		deps:  deps,
		cfg:   cfg,
		clock: clock,
	}
}

// Run scans every source and returns the sorted list of normalized candidate
// URLs that are inside the recency window and not in the processed set.
// Individual source failures are logged and skipped.
func (s *Service) Run(ctx context.Context, srcs []domain.Source, processed map[string]struct{}) []string {
	cutoff := s.clock().UTC().Add(-s.cfg.Window)
	s.deps.Logger.Info("Time window computed", map[string]interface{}{
		"cutoff":  cutoff.Format("2006-01-02 15:04:05 UTC"),
		"sources": len(srcs),
	})

	found := make(map[string]struct{})
	for _, src := range srcs {
		if ctx.Err() != nil {
			break
		}

		s.deps.Logger.Info("Processing source", map[string]interface{}{
			"name": src.Name,
			"url":  src.URL,
		})

		result := s.readFeed(ctx, src, cutoff)
		if result.NotAFeed {
			s.deps.Logger.Warn("Source is not a valid feed or is empty, trying as HTML", map[string]interface{}{
				"name": src.Name,
			})
			crawled := s.crawlPage(ctx, src, cutoff, found)
			for _, u := range crawled {
				found[u] = struct{}{}
			}
			s.deps.Logger.Info("Found new articles from crawling", map[string]interface{}{
				"name":  src.Name,
				"count": len(crawled),
			})
			continue
		}

		fresh := 0
		for _, u := range result.URLs {
			if _, ok := found[u]; !ok {
				found[u] = struct{}{}
				fresh++
			}
		}
		s.deps.Logger.Info("Found new articles from feed", map[string]interface{}{
			"name":  src.Name,
			"count": fresh,
		})
	}

	candidates := make([]string, 0, len(found))
	for u := range found {
		if _, seen := processed[u]; !seen {
			candidates = append(candidates, u)
		}
	}
	sort.Strings(candidates)
	return candidates
}
