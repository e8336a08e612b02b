package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"hermes-news-app/core/domain"
)

// stubExtractor maps URLs to canned articles or errors
type stubExtractor struct {
	articles map[string]*domain.ExtractedArticle
}

func (e *stubExtractor) Extract(ctx context.Context, url string) (*domain.ExtractedArticle, error) {
	if a, ok := e.articles[url]; ok {
		return a, nil
	}
	return nil, errors.New("extraction failed")
}

// stubFilter scripts per-URL verdicts and counts stage calls
type stubFilter struct {
	scores       map[string]domain.Verdict
	confirms     map[string]domain.Verdict
	confirmCalls int
}

func (f *stubFilter) EvaluateThematic(ctx context.Context, kb string, article *domain.ExtractedArticle) domain.Verdict {
	if v, ok := f.scores[article.URL]; ok {
		return v
	}
	return domain.Verdict{Stage: domain.StageThematic, Passed: false, Reason: "Low thematic relevance (Score: 1/10)."}
}

func (f *stubFilter) Confirm(ctx context.Context, kb string, article *domain.ExtractedArticle) domain.Verdict {
	f.confirmCalls++
	if v, ok := f.confirms[article.URL]; ok {
		return v
	}
	return domain.Verdict{Stage: domain.StageConfirmation, Passed: false, Reason: "Rejected on confirmation."}
}

func (f *stubFilter) Summarize(ctx context.Context, article *domain.ExtractedArticle) string {
	return "- summary bullet"
}

// recordingArticles captures appended records
type recordingArticles struct {
	records []domain.ArticleRecord
	err     error
}

func (a *recordingArticles) Append(rec domain.ArticleRecord) error {
	if a.err != nil {
		return a.err
	}
	a.records = append(a.records, rec)
	return nil
}

// recordingProcessed captures appended URLs
type recordingProcessed struct {
	urls []string
}

func (p *recordingProcessed) Append(url string) error {
	p.urls = append(p.urls, url)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

func article(url string) *domain.ExtractedArticle {
	return &domain.ExtractedArticle{Title: "T " + url, Content: "content", URL: url}
}

func pass(stage domain.VerdictStage, score int, reason string) domain.Verdict {
	return domain.Verdict{Stage: stage, Passed: true, Score: score, Reason: reason}
}

var fixedNow = time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestService(extractor *stubExtractor, filter *stubFilter, articles *recordingArticles, processed *recordingProcessed) *Service {
	return NewService(extractor, filter, articles, processed, nopLogger{}, Config{Clock: fixedClock})
}

func TestRun_AdmitsArticlePassingBothStages(t *testing.T) {
	url := "https://example.com/a"
	extractor := &stubExtractor{articles: map[string]*domain.ExtractedArticle{url: article(url)}}
	filter := &stubFilter{
		scores:   map[string]domain.Verdict{url: pass(domain.StageThematic, 9, "High thematic relevance (Score: 9/10). Justification: On topic.")},
		confirms: map[string]domain.Verdict{url: pass(domain.StageConfirmation, 0, "Confirmed relevant.")},
	}
	articles := &recordingArticles{}
	processed := &recordingProcessed{}

	admitted, err := newTestService(extractor, filter, articles, processed).Run(context.Background(), []string{url}, "kb")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if admitted != 1 {
		t.Fatalf("admitted = %d, want 1", admitted)
	}
	if len(articles.records) != 1 {
		t.Fatalf("records = %d, want 1", len(articles.records))
	}

	rec := articles.records[0]
	if rec.URL != url {
		t.Errorf("record URL = %q", rec.URL)
	}
	if rec.DateProcessed != "2026-08-31" {
		t.Errorf("DateProcessed = %q, want 2026-08-31", rec.DateProcessed)
	}
	if rec.Reason != "High thematic relevance (Score: 9/10). Justification: On topic." {
		t.Errorf("Reason = %q, want the thematic stage reason", rec.Reason)
	}
	if rec.Summary != "- summary bullet" {
		t.Errorf("Summary = %q", rec.Summary)
	}
}

func TestRun_LowScoreSkipsConfirmationStage(t *testing.T) {
	url := "https://example.com/low"
	extractor := &stubExtractor{articles: map[string]*domain.ExtractedArticle{url: article(url)}}
	filter := &stubFilter{
		scores: map[string]domain.Verdict{url: {Stage: domain.StageThematic, Passed: false, Score: 4, Reason: "Low thematic relevance (Score: 4/10)."}},
	}
	articles := &recordingArticles{}
	processed := &recordingProcessed{}

	admitted, err := newTestService(extractor, filter, articles, processed).Run(context.Background(), []string{url}, "kb")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if admitted != 0 {
		t.Errorf("admitted = %d, want 0", admitted)
	}
	if filter.confirmCalls != 0 {
		t.Errorf("confirmation stage ran %d times for a low score, want 0", filter.confirmCalls)
	}
	if len(processed.urls) != 1 {
		t.Errorf("rejected URL must still be marked processed, got %v", processed.urls)
	}
}

func TestRun_ConfirmationRejectionNotRecorded(t *testing.T) {
	url := "https://example.com/reject"
	extractor := &stubExtractor{articles: map[string]*domain.ExtractedArticle{url: article(url)}}
	filter := &stubFilter{
		scores: map[string]domain.Verdict{url: pass(domain.StageThematic, 8, "High thematic relevance (Score: 8/10). Justification: x")},
	}
	articles := &recordingArticles{}
	processed := &recordingProcessed{}

	admitted, err := newTestService(extractor, filter, articles, processed).Run(context.Background(), []string{url}, "kb")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if admitted != 0 || len(articles.records) != 0 {
		t.Errorf("confirmation rejection must not be recorded, admitted=%d records=%d", admitted, len(articles.records))
	}
	if len(processed.urls) != 1 {
		t.Errorf("URL must still be marked processed, got %v", processed.urls)
	}
}

func TestRun_ExtractionFailureSkipsButMarksProcessed(t *testing.T) {
	extractor := &stubExtractor{}
	filter := &stubFilter{}
	processed := &recordingProcessed{}

	admitted, err := newTestService(extractor, filter, &recordingArticles{}, processed).Run(context.Background(), []string{"https://example.com/broken"}, "kb")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if admitted != 0 {
		t.Errorf("admitted = %d, want 0", admitted)
	}
	if len(processed.urls) != 1 {
		t.Errorf("failed extraction must still be marked processed, got %v", processed.urls)
	}
}

func TestRun_ProcessesCandidatesInSortedOrder(t *testing.T) {
	urls := []string{"https://example.com/c", "https://example.com/a", "https://example.com/b"}
	extractor := &stubExtractor{}
	processed := &recordingProcessed{}

	_, err := newTestService(extractor, &stubFilter{}, &recordingArticles{}, processed).Run(context.Background(), urls, "kb")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	for i, u := range want {
		if processed.urls[i] != u {
			t.Fatalf("processed order = %v, want %v", processed.urls, want)
		}
	}
}

func TestRun_LedgerWriteFailureAborts(t *testing.T) {
	url := "https://example.com/a"
	extractor := &stubExtractor{articles: map[string]*domain.ExtractedArticle{url: article(url)}}
	filter := &stubFilter{
		scores:   map[string]domain.Verdict{url: pass(domain.StageThematic, 9, "r")},
		confirms: map[string]domain.Verdict{url: pass(domain.StageConfirmation, 0, "c")},
	}
	articles := &recordingArticles{err: errors.New("disk full")}

	_, err := newTestService(extractor, filter, articles, &recordingProcessed{}).Run(context.Background(), []string{url}, "kb")
	if err == nil {
		t.Error("ledger write failure must abort the run")
	}
}
