// ABOUTME: Shared paragraph-extraction heuristic applied to parsed HTML documents
// ABOUTME: Drops boilerplate elements and short paragraphs, gates on total length

// Package extract turns a candidate URL into an article title and body text
// using an ordered chain of strategies, first success wins.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// boilerplateSelector lists the elements removed before paragraph
// extraction; their text is navigation or chrome, not article content.
const boilerplateSelector = "script,style,nav,header,footer,aside"

// noTitle is the placeholder when a page carries no usable <title>.
const noTitle = "No Title Found"

// TextFromDocument applies the paragraph heuristic to a parsed document:
// boilerplate elements are removed, paragraph texts shorter than minParagraph
// are dropped, and the remainder is joined with newlines. The second return
// is false when the combined text is shorter than minContent, which callers
// treat as "not a real article page".
func TextFromDocument(doc *goquery.Document, minParagraph, minContent int) (string, bool) {
	doc.Find(boilerplateSelector).Remove()

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) >= minParagraph {
			paragraphs = append(paragraphs, text)
		}
	})

	content := strings.TrimSpace(strings.Join(paragraphs, "\n"))
	if len(content) < minContent {
		return "", false
	}
	return content, true
}

// TitleFromDocument returns the trimmed <title> text or the placeholder.
func TitleFromDocument(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return noTitle
	}
	return title
}
