// ABOUTME: Candidate URL file written by discovery and consumed by the filter
// ABOUTME: Plain text, one normalized URL per line, sorted

package ledger

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
)

// WriteCandidates writes the candidate URLs one per line in sorted order,
// replacing any previous list. An empty slice still produces an (empty)
// file so downstream consumers can distinguish "ran, found nothing" from
// "never ran".
func WriteCandidates(path string, urls []string) error {
	sorted := make([]string, len(urls))
	copy(sorted, urls)
	sort.Strings(sorted)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create candidate file: %w", err)
	}
	defer f.Close()

	for _, u := range sorted {
		if _, err := fmt.Fprintln(f, u); err != nil {
			return fmt.Errorf("write candidate: %w", err)
		}
	}
	return nil
}

// ReadCandidates returns the candidate URLs, skipping blank lines. A missing
// file yields nil with no error; that is the normal no-op case.
func ReadCandidates(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open candidate file: %w", err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidate file: %w", err)
	}

	return urls, nil
}
