// ABOUTME: Crawl fallback for sources that are not feeds, built on colly
// ABOUTME: One hop only: index page links are visited to check their publish date

package discovery

import (
	"bytes"
	"context"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/gocolly/colly"

	"hermes-news-app/core/domain"
	"hermes-news-app/pkg/urlnorm"
)

const discoveryUserAgent = "Hermes-News-Discoverer/1.0"

// dateSelectors lists the publication-date signals in priority order. The
// first selector whose value parses wins.
var dateSelectors = []struct {
	selector string
	attr     string
}{
	{`meta[property="article:published_time"]`, "content"},
	{`meta[name="publication_date"]`, "content"},
	{`time[datetime]`, "datetime"},
}

// crawlPage fetches the source page, collects same-host absolute http(s)
// links, and visits each unknown link once to check its publication date
// against the cutoff. All failures are logged and skipped; crawling a source
// never fails the run. The cost is one request per link on the index page,
// paced by the politeness delay.
func (s *Service) crawlPage(ctx context.Context, src domain.Source, cutoff time.Time, known map[string]struct{}) []string {
	base, err := url.Parse(src.URL)
	if err != nil {
		s.deps.Logger.Error("Could not parse source URL", map[string]interface{}{
			"name":  src.Name,
			"error": err.Error(),
		})
		return nil
	}

	links, err := s.collectIndexLinks(src.URL, base.Host)
	if err != nil {
		s.deps.Logger.Error("Could not fetch HTML for source", map[string]interface{}{
			"name":  src.Name,
			"error": err.Error(),
		})
		return nil
	}
	s.deps.Logger.Info("Found potential links, checking each for recency", map[string]interface{}{
		"name":  src.Name,
		"links": len(links),
	})

	return s.checkLinkRecency(ctx, links, cutoff, known)
}

// collectIndexLinks fetches the index page and returns the normalized set of
// candidate links restricted to the source's host.
func (s *Service) collectIndexLinks(pageURL, baseHost string) ([]string, error) {
	c := colly.NewCollector(colly.UserAgent(discoveryUserAgent))
	c.SetRequestTimeout(s.cfg.RequestTimeout)

	links := make(map[string]struct{})
	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link == "" {
			return
		}
		parsed, err := url.Parse(link)
		if err != nil {
			return
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return
		}
		if !sameHost(parsed.Host, baseHost) {
			return
		}
		links[urlnorm.Normalize(link)] = struct{}{}
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return nil, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	sorted := make([]string, 0, len(links))
	for link := range links {
		sorted = append(sorted, link)
	}
	sort.Strings(sorted)
	return sorted, nil
}

// checkLinkRecency visits each unknown link and keeps those whose extracted
// publication date is at or after the cutoff. Unreachable or dateless pages
// are skipped.
func (s *Service) checkLinkRecency(ctx context.Context, links []string, cutoff time.Time, known map[string]struct{}) []string {
	c := colly.NewCollector(colly.UserAgent(discoveryUserAgent))
	c.SetRequestTimeout(s.cfg.RequestTimeout)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Delay: s.cfg.PolitenessDelay})

	// The collector is used sequentially, so one pair of result slots per
	// visit is safe.
	var pubDate time.Time
	var dateFound bool
	c.OnResponse(func(r *colly.Response) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			return
		}
		pubDate, dateFound = findArticleDate(doc)
	})

	var found []string
	for _, link := range links {
		if ctx.Err() != nil {
			break
		}
		if _, ok := known[link]; ok {
			continue
		}

		s.deps.Logger.Debug("Checking link for recency", map[string]interface{}{
			"url": truncate(link, 90),
		})

		dateFound = false
		if err := c.Visit(link); err != nil {
			continue
		}
		if dateFound && !pubDate.Before(cutoff) {
			found = append(found, link)
		}
	}
	return found
}

// findArticleDate extracts a publication date from the parsed page using the
// fixed priority list of signals. The returned time is in UTC.
func findArticleDate(doc *goquery.Document) (time.Time, bool) {
	for _, ds := range dateSelectors {
		sel := doc.Find(ds.selector).First()
		if sel.Length() == 0 {
			continue
		}
		raw, _ := sel.Attr(ds.attr)
		if raw == "" {
			continue
		}
		parsed, err := dateparse.ParseAny(raw)
		if err != nil {
			continue
		}
		return parsed.UTC(), true
	}
	return time.Time{}, false
}

// sameHost compares hosts ignoring a www. prefix, so links on www.x.com
// count as belonging to x.com.
func sameHost(a, b string) bool {
	return strings.TrimPrefix(a, "www.") == strings.TrimPrefix(b, "www.")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
