// ABOUTME: Readability-based extraction strategy for pages the paragraph heuristic misses
// ABOUTME: Sits between the fast fetch and the headless browser in the chain

package extract

import (
	"context"
	"time"

	readability "github.com/go-shiori/go-readability"

	"hermes-news-app/core/domain"
)

// ReadabilityStrategy extracts an article using the readability content
// scorer, which copes with pages whose text is not in plain <p> elements.
type ReadabilityStrategy struct {
	timeout    time.Duration
	minContent int
}

// NewReadabilityStrategy creates the readability strategy.
func NewReadabilityStrategy(timeout time.Duration, minContent int) *ReadabilityStrategy {
	return &ReadabilityStrategy{
		timeout:    timeout,
		minContent: minContent,
	}
}

// Name identifies the strategy in logs.
func (s *ReadabilityStrategy) Name() string { return "readability" }

// Extract runs readability against the URL. The same minimum content gate
// applies as for the other strategies.
func (s *ReadabilityStrategy) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	article, err := readability.FromURL(url, s.timeout)
	if err != nil {
		return nil, err
	}

	if len(article.TextContent) < s.minContent {
		return nil, ErrInsufficientContent
	}

	title := article.Title
	if title == "" {
		title = noTitle
	}

	return &domain.ExtractedArticle{Title: title, Content: article.TextContent, URL: url}, nil
}
