// ABOUTME: Primary extraction strategy: one HTTP fetch plus HTML parsing
// ABOUTME: Fast path for server-rendered pages; fails over to heavier strategies

package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// ErrInsufficientContent reports that a page was fetched and parsed but did
// not yield enough paragraph text to count as an article.
var ErrInsufficientContent = errors.New("extracted text below minimum content length")

// FetchStrategy extracts an article with a single lightweight HTTP GET.
type FetchStrategy struct {
	client       interfaces.HTTPClient
	minParagraph int
	minContent   int
}

// NewFetchStrategy creates the fetch-and-parse strategy.
func NewFetchStrategy(client interfaces.HTTPClient, minParagraph, minContent int) *FetchStrategy {
	return &FetchStrategy{
		client:       client,
		minParagraph: minParagraph,
		minContent:   minContent,
	}
}

// Name identifies the strategy in logs.
func (s *FetchStrategy) Name() string { return "fetch" }

// Extract fetches the URL and applies the paragraph heuristic.
func (s *FetchStrategy) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	resp, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	title := TitleFromDocument(doc)
	content, ok := TextFromDocument(doc, s.minParagraph, s.minContent)
	if !ok {
		return nil, ErrInsufficientContent
	}

	return &domain.ExtractedArticle{Title: title, Content: content, URL: url}, nil
}
