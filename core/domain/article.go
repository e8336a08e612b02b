// ABOUTME: Article types produced by extraction and persisted after admission
// ABOUTME: ExtractedArticle is transient; ArticleRecord is the durable ledger entry

package domain

// ExtractedArticle holds the scraped title and body text for a candidate URL.
// It exists only for the duration of one relevance evaluation.
type ExtractedArticle struct {
	Title   string
	Content string
	URL     string
}

// ArticleRecord is one admitted article as written to the article ledger.
// Records are append-only and never mutated by the pipeline.
type ArticleRecord struct {
	Title string
	URL   string
	// DateProcessed is a date in 2006-01-02 form, not a timestamp.
	DateProcessed string
	Reason        string
	Summary       string
}
