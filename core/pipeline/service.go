// ABOUTME: Filtering-stage driver: extract, score, confirm, summarize, record
// ABOUTME: Every candidate ends up in the processed log exactly once, pass or fail

// Package pipeline drives candidate URLs through extraction and the
// relevance filter, appending admitted articles to the ledger.
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// Extractor produces article text for a URL.
type Extractor interface {
	Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error)
}

// Filter is the two-stage relevance classifier plus summarizer.
type Filter interface {
	EvaluateThematic(ctx context.Context, knowledgeBase string, article *domain.ExtractedArticle) domain.Verdict
	Confirm(ctx context.Context, knowledgeBase string, article *domain.ExtractedArticle) domain.Verdict
	Summarize(ctx context.Context, article *domain.ExtractedArticle) string
}

// ArticleAppender records admitted articles.
type ArticleAppender interface {
	Append(rec domain.ArticleRecord) error
}

// ProcessedAppender records evaluated URLs.
type ProcessedAppender interface {
	Append(url string) error
}

// Config tunes the driver.
type Config struct {
	// PolitenessDelay is the minimum gap between candidate evaluations, so a
	// run does not hammer source sites.
	PolitenessDelay time.Duration
	// Clock is injectable for tests; nil means time.Now.
	Clock func() time.Time
}

// Service processes candidates sequentially.
type Service struct {
	extractor Extractor
	filter    Filter
	articles  ArticleAppender
	processed ProcessedAppender
	logger    interfaces.Logger
	limiter   *rate.Limiter
	clock     func() time.Time
}

// NewService wires the filtering driver.
func NewService(extractor Extractor, filter Filter, articles ArticleAppender, processed ProcessedAppender, logger interfaces.Logger, cfg Config) *Service {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.PolitenessDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.PolitenessDelay), 1)
	}
	return &Service{
		extractor: extractor,
		filter:    filter,
		articles:  articles,
		processed: processed,
		logger:    logger,
		limiter:   limiter,
		clock:     clock,
	}
}

// Run evaluates every candidate URL against the knowledge base and returns
// the number of admitted articles. Per-candidate failures (extraction,
// classification) skip that candidate; only ledger write failures abort the
// run, because losing an admitted article silently is worse than stopping.
func (s *Service) Run(ctx context.Context, candidates []string, knowledgeBase string) (int, error) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	admitted := 0
	for _, url := range sorted {
		if err := s.limiter.Wait(ctx); err != nil {
			return admitted, err
		}

		ok, err := s.evaluate(ctx, url, knowledgeBase)
		if err != nil {
			return admitted, err
		}
		if ok {
			admitted++
		}

		// The URL counts as processed whether or not it was admitted, so the
		// next discovery run never re-proposes it.
		if err := s.processed.Append(url); err != nil {
			return admitted, fmt.Errorf("record processed url: %w", err)
		}
	}

	s.logger.Info("filtering run complete", map[string]interface{}{
		"candidates": len(sorted),
		"admitted":   admitted,
	})
	return admitted, nil
}

func (s *Service) evaluate(ctx context.Context, url, knowledgeBase string) (bool, error) {
	article, err := s.extractor.Extract(ctx, url)
	if err != nil {
		s.logger.Warn("extraction failed, candidate skipped", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return false, nil
	}

	thematic := s.filter.EvaluateThematic(ctx, knowledgeBase, article)
	if !thematic.Passed {
		s.logger.Info("candidate rejected", map[string]interface{}{
			"url":    url,
			"stage":  string(thematic.Stage),
			"reason": thematic.Reason,
		})
		return false, nil
	}

	confirmation := s.filter.Confirm(ctx, knowledgeBase, article)
	if !confirmation.Passed {
		s.logger.Info("candidate rejected", map[string]interface{}{
			"url":    url,
			"stage":  string(confirmation.Stage),
			"reason": confirmation.Reason,
		})
		return false, nil
	}

	summary := s.filter.Summarize(ctx, article)
	rec := domain.ArticleRecord{
		Title:         article.Title,
		URL:           url,
		DateProcessed: s.clock().UTC().Format("2006-01-02"),
		Reason:        thematic.Reason,
		Summary:       summary,
	}
	if err := s.articles.Append(rec); err != nil {
		return false, fmt.Errorf("append article record: %w", err)
	}

	s.logger.Info("article admitted", map[string]interface{}{
		"url":   url,
		"score": thematic.Score,
	})
	return true, nil
}
