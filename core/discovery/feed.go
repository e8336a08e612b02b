// ABOUTME: Feed reading via gofeed with an explicit not-a-feed outcome
// ABOUTME: Entries without a parseable publish timestamp are deliberately skipped

package discovery

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"

	"hermes-news-app/core/domain"
	"hermes-news-app/pkg/urlnorm"
)

// feedResult is the tagged outcome of a feed read. NotAFeed tells the caller
// to fall back to crawling; it is distinct from "a feed with no recent
// items", which yields an empty URL list with NotAFeed false.
type feedResult struct {
	NotAFeed bool
	URLs     []string
}

// readFeed fetches and parses the source URL as a syndication feed. An
// unreachable source, a parse failure, or a feed with zero entries all
// count as NotAFeed. Entries need a link and a parseable published
// timestamp at or after cutoff (compared in UTC); entries without a
// parseable timestamp are never treated as recent.
func (s *Service) readFeed(ctx context.Context, src domain.Source, cutoff time.Time) feedResult {
	resp, err := s.deps.HTTPClient.Get(ctx, src.URL)
	if err != nil {
		return feedResult{NotAFeed: true}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return feedResult{NotAFeed: true}
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body())
	if err != nil || len(parsed.Items) == 0 {
		return feedResult{NotAFeed: true}
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, item := range parsed.Items {
		if item.Link == "" || item.PublishedParsed == nil {
			continue
		}
		if item.PublishedParsed.UTC().Before(cutoff) {
			continue
		}
		normalized := urlnorm.Normalize(item.Link)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		urls = append(urls, normalized)
	}

	return feedResult{URLs: urls}
}
