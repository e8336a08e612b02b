// ABOUTME: Append-only article database with delimited Key: value records
// ABOUTME: Parsed by splitting on the start marker; records are never rewritten

package ledger

import (
	"fmt"
	"os"
	"strings"

	"hermes-news-app/core/domain"
)

const (
	articleStartMarker = "--- ARTICLE START ---"
	articleEndMarker   = "--- ARTICLE END ---"
)

// ArticleStore appends admitted articles to the persistent ledger and parses
// it back. Writes are serialized by the single-writer pipeline driver.
type ArticleStore struct {
	path string
}

// NewArticleStore creates a store backed by the given file.
func NewArticleStore(path string) *ArticleStore {
	return &ArticleStore{path: path}
}

// Append writes one record. The record format is fixed: later consumers
// split the file on the start marker and read Key: value lines, with the
// free-text summary after the Summary: line.
func (s *ArticleStore) Append(rec domain.ArticleRecord) error {
	entry := fmt.Sprintf(`%s
Title: %s
URL: %s
Date_Processed: %s
Reason: %s
Summary:
%s
%s

`, articleStartMarker, rec.Title, rec.URL, rec.DateProcessed, rec.Reason, rec.Summary, articleEndMarker)

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open article ledger: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("append article record: %w", err)
	}
	return nil
}

// Load parses all records from the ledger. A missing file is an empty
// ledger.
func (s *ArticleStore) Load() ([]domain.ArticleRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read article ledger: %w", err)
	}

	var records []domain.ArticleRecord
	for _, block := range strings.Split(string(data), articleStartMarker) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		records = append(records, parseRecord(block))
	}
	return records, nil
}

func parseRecord(block string) domain.ArticleRecord {
	var rec domain.ArticleRecord
	var summary []string
	inSummary := false

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if trimmed == articleEndMarker {
			break
		}
		if inSummary {
			summary = append(summary, trimmed)
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "Title: "):
			rec.Title = strings.TrimPrefix(trimmed, "Title: ")
		case strings.HasPrefix(trimmed, "URL: "):
			rec.URL = strings.TrimPrefix(trimmed, "URL: ")
		case strings.HasPrefix(trimmed, "Date_Processed: "):
			rec.DateProcessed = strings.TrimPrefix(trimmed, "Date_Processed: ")
		case strings.HasPrefix(trimmed, "Reason: "):
			rec.Reason = strings.TrimPrefix(trimmed, "Reason: ")
		case trimmed == "Summary:":
			inSummary = true
		}
	}

	rec.Summary = strings.TrimSpace(strings.Join(summary, "\n"))
	return rec
}
