// ABOUTME: Headless-browser extraction strategy for JavaScript-rendered pages
// ABOUTME: Last resort in the chain, renders the page then reuses the paragraph heuristic

// Package browser extracts article content by rendering pages in headless
// Chrome, for sites whose text only exists after JavaScript runs.
package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/extract"
	"hermes-news-app/core/interfaces"
)

// Strategy renders a page with headless Chrome and applies the same
// paragraph heuristic as the lightweight fetch strategy.
type Strategy struct {
	logger       interfaces.Logger
	timeout      time.Duration
	minParagraph int
	minContent   int
}

// NewStrategy creates the browser strategy.
func NewStrategy(logger interfaces.Logger, timeout time.Duration, minParagraph, minContent int) *Strategy {
	return &Strategy{
		logger:       logger,
		timeout:      timeout,
		minParagraph: minParagraph,
		minContent:   minContent,
	}
}

// Name identifies the strategy in logs.
func (s *Strategy) Name() string { return "browser" }

// Extract navigates to the URL in a fresh headless browser, waits for the
// body to be ready, and extracts title and rendered HTML.
func (s *Strategy) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.timeout)
	defer cancelRun()

	var title, html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse rendered %s: %w", url, err)
	}

	content, ok := extract.TextFromDocument(doc, s.minParagraph, s.minContent)
	if !ok {
		return nil, extract.ErrInsufficientContent
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = extract.TitleFromDocument(doc)
	}

	s.logger.Debug("browser rendered page", map[string]interface{}{
		"url":   url,
		"chars": len(content),
	})
	return &domain.ExtractedArticle{Title: title, Content: content, URL: url}, nil
}
