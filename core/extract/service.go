// ABOUTME: Orders extraction strategies into a first-success-wins chain
// ABOUTME: Fronted by a cache so re-runs do not re-fetch already-extracted pages

package extract

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// Strategy is one way of turning a URL into article text. Strategies are
// tried in order; a strategy signals "try the next one" by returning an error.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error)
}

// ErrAllStrategiesFailed reports that every strategy in the chain was tried
// and none produced usable content.
var ErrAllStrategiesFailed = errors.New("all extraction strategies failed")

const cacheTTL = 24 * time.Hour

// Service runs the extraction chain.
type Service struct {
	deps       interfaces.Dependencies
	strategies []Strategy
}

// NewService creates an extraction service with the given strategy order.
func NewService(deps interfaces.Dependencies, strategies ...Strategy) *Service {
	return &Service{deps: deps, strategies: strategies}
}

// Extract returns the article for the URL, consulting the cache first and
// otherwise walking the strategy chain. A failed strategy is logged and the
// next one is tried; only when the whole chain fails does Extract return an
// error.
func (s *Service) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	key := cacheKey(url)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, key); err == nil && data != nil {
			var article domain.ExtractedArticle
			if err := json.Unmarshal(data, &article); err == nil {
				s.deps.Logger.Debug("extraction cache hit", map[string]interface{}{"url": url})
				return &article, nil
			}
		}
	}

	for _, strategy := range s.strategies {
		article, err := strategy.Extract(ctx, url)
		if err != nil {
			s.deps.Logger.Debug("extraction strategy failed", map[string]interface{}{
				"strategy": strategy.Name(),
				"url":      url,
				"error":    err.Error(),
			})
			continue
		}

		s.deps.Logger.Info("article extracted", map[string]interface{}{
			"strategy": strategy.Name(),
			"url":      url,
			"chars":    len(article.Content),
		})
		s.cache(ctx, key, article)
		return article, nil
	}

	return nil, ErrAllStrategiesFailed
}

func (s *Service) cache(ctx context.Context, key string, article *domain.ExtractedArticle) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(article)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, cacheTTL); err != nil {
		s.deps.Logger.Warn("failed to cache extracted article", map[string]interface{}{
			"url":   article.URL,
			"error": err.Error(),
		})
	}
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "extract:" + hex.EncodeToString(sum[:])
}
