// ABOUTME: URL canonicalization used as the dedup key for candidate articles
// ABOUTME: Strips tracking parameters and the www. host prefix, fail-open on parse errors

// Package urlnorm canonicalizes URLs for deduplication. Two URLs that
// normalize to the same string are the same candidate, both within a run and
// against the processed-URL ledger.
package urlnorm

import (
	"net/url"
	"strings"
)

// trackingPrefixes are query parameter key prefixes that never change the
// identity of an article.
var trackingPrefixes = []string{"utm_", "fbclid", "gclid"}

// Normalize returns the canonical form of raw: tracking query parameters
// removed, a leading "www." stripped from the host, and remaining query
// parameters re-encoded in sorted key order so the result is deterministic.
// On any parse failure the input is returned unchanged; normalization never
// fails a caller.
func Normalize(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	params, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return raw
	}
	for key := range params {
		if isTracking(key) {
			delete(params, key)
		}
	}

	u.Host = strings.TrimPrefix(u.Host, "www.")
	// Encode sorts by key, which makes Normalize idempotent and order
	// independent.
	u.RawQuery = params.Encode()

	return u.String()
}

func isTracking(key string) bool {
	for _, prefix := range trackingPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
