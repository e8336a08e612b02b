// ABOUTME: Processed-URL ledger, a plain text file with one normalized URL per line
// ABOUTME: Monotonically non-decreasing across runs, never pruned

// Package ledger implements the durable text files shared between pipeline
// runs: the processed-URL log, the candidate URL list and the article
// database.
package ledger

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ProcessedStore reads and appends the set of URLs already evaluated by the
// filtering stage. Discovery only reads it; the filter appends after each
// evaluation.
type ProcessedStore struct {
	path string
}

// NewProcessedStore creates a store backed by the given file.
func NewProcessedStore(path string) *ProcessedStore {
	return &ProcessedStore{path: path}
}

// Load returns the set of processed URLs. A missing file is an empty set,
// not an error: the first run starts from nothing.
func (s *ProcessedStore) Load() (map[string]struct{}, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, fmt.Errorf("open processed log: %w", err)
	}
	defer f.Close()

	urls := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read processed log: %w", err)
	}

	return urls, nil
}

// Append records a URL as evaluated. The file only ever grows.
func (s *ProcessedStore) Append(url string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open processed log for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, url); err != nil {
		return fmt.Errorf("append processed url: %w", err)
	}
	return nil
}
