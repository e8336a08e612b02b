// ABOUTME: Two-stage language-model relevance filter for extracted articles
// ABOUTME: Stage one scores 1-10 against the knowledge base, stage two confirms Yes/No

// Package relevance decides whether an extracted article matters to the
// configured knowledge base, using a scoring pass and a confirmation pass
// against a text generator.
package relevance

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"hermes-news-app/core/domain"
	"hermes-news-app/core/interfaces"
)

// scorePattern pulls the numeric score and the justification out of the
// stage-one response. Matching is case-insensitive and spans newlines so
// models that pad the output still parse.
var scorePattern = regexp.MustCompile(`(?is)Score:\s*(\d+).*Justification:\s*(.*)`)

// summaryPrefixPattern strips conversational lead-ins some models put in
// front of the requested bullet list.
var summaryPrefixPattern = regexp.MustCompile(`(?i)^here\s+is\s+(a|the)\s+summary[^:]*:\s*`)

// scoreGrammar constrains stage-one output to the exact two-line format the
// parser expects. Backends without grammar support ignore it; the regexp
// still validates.
const scoreGrammar = `root ::= "Score: " score "\nJustification: " text
score ::= "10" | [1-9]
text ::= [^\n]+`

// yesNoGrammar constrains the confirmation stage to a bare verdict.
const yesNoGrammar = `root ::= "Yes" | "No"`

const formatErrorReason = "LLM response format error."

const summaryFailure = "Summarization failed due to an error."

// Config carries the truncation limits and the score threshold.
type Config struct {
	ScoreThreshold int
	KBChars        int
	ArticleChars   int
	SummaryChars   int
}

// Service evaluates articles against a knowledge base.
type Service struct {
	generator interfaces.TextGenerator
	logger    interfaces.Logger
	cfg       Config
}

// NewService creates the relevance service.
func NewService(generator interfaces.TextGenerator, logger interfaces.Logger, cfg Config) *Service {
	return &Service{generator: generator, logger: logger, cfg: cfg}
}

// EvaluateThematic runs the scoring stage. The verdict passes when the score
// meets the threshold; generator failures and unparseable responses produce
// a negative verdict rather than an error, the article is simply not kept.
func (s *Service) EvaluateThematic(ctx context.Context, knowledgeBase string, article *domain.ExtractedArticle) domain.Verdict {
	prompt := fmt.Sprintf(`You are a news analyst. Judge how relevant the article below is to the topics in the knowledge base.

KNOWLEDGE BASE:
%s

ARTICLE:
Title: %s
%s

Respond in exactly this format:
Score: <number 1-10>
Justification: <one sentence>`,
		clip(knowledgeBase, s.cfg.KBChars),
		article.Title,
		clip(article.Content, s.cfg.ArticleChars))

	response, err := s.generator.Generate(ctx, interfaces.GenerateRequest{
		Prompt:    prompt,
		MaxTokens: 128,
		Grammar:   scoreGrammar,
	})
	if err != nil {
		s.logger.Error("thematic scoring failed", map[string]interface{}{
			"url":   article.URL,
			"error": err.Error(),
		})
		return domain.Verdict{Stage: domain.StageThematic, Passed: false, Reason: formatErrorReason}
	}

	match := scorePattern.FindStringSubmatch(response)
	if match == nil {
		s.logger.Warn("unparseable scoring response", map[string]interface{}{
			"url":      article.URL,
			"response": clip(response, 200),
		})
		return domain.Verdict{Stage: domain.StageThematic, Passed: false, Reason: formatErrorReason}
	}

	score, err := strconv.Atoi(match[1])
	if err != nil {
		return domain.Verdict{Stage: domain.StageThematic, Passed: false, Reason: formatErrorReason}
	}
	// The justification may span lines when the backend ignores the grammar.
	// It ends up on a single Reason: ledger line, so collapse all whitespace.
	justification := strings.Join(strings.Fields(match[2]), " ")

	if score >= s.cfg.ScoreThreshold {
		return domain.Verdict{
			Stage:  domain.StageThematic,
			Passed: true,
			Score:  score,
			Reason: fmt.Sprintf("High thematic relevance (Score: %d/10). Justification: %s", score, justification),
		}
	}
	return domain.Verdict{
		Stage:  domain.StageThematic,
		Passed: false,
		Score:  score,
		Reason: fmt.Sprintf("Low thematic relevance (Score: %d/10).", score),
	}
}

// Confirm runs the yes/no confirmation stage on an article that already
// passed the scoring stage.
func (s *Service) Confirm(ctx context.Context, knowledgeBase string, article *domain.ExtractedArticle) domain.Verdict {
	prompt := fmt.Sprintf(`You are a strict editor. The article below was pre-screened as relevant to the knowledge base. Confirm the call.

KNOWLEDGE BASE:
%s

ARTICLE:
Title: %s
%s

Does this article genuinely belong? Answer with exactly one word, Yes or No.`,
		clip(knowledgeBase, s.cfg.KBChars),
		article.Title,
		clip(article.Content, s.cfg.ArticleChars))

	response, err := s.generator.Generate(ctx, interfaces.GenerateRequest{
		Prompt:    prompt,
		MaxTokens: 8,
		Grammar:   yesNoGrammar,
	})
	if err != nil {
		s.logger.Error("confirmation failed", map[string]interface{}{
			"url":   article.URL,
			"error": err.Error(),
		})
		return domain.Verdict{Stage: domain.StageConfirmation, Passed: false, Reason: formatErrorReason}
	}

	answer := strings.TrimSpace(response)
	if strings.EqualFold(answer, "yes") {
		return domain.Verdict{Stage: domain.StageConfirmation, Passed: true, Reason: "Confirmed relevant."}
	}
	return domain.Verdict{Stage: domain.StageConfirmation, Passed: false, Reason: "Rejected on confirmation."}
}

// Summarize produces a short bullet summary of an admitted article. Failures
// never block admission; a fixed placeholder is recorded instead.
func (s *Service) Summarize(ctx context.Context, article *domain.ExtractedArticle) string {
	prompt := fmt.Sprintf(`Summarize the following article in 3-5 short bullet points. Output only the bullets.

Title: %s
%s`,
		article.Title,
		clip(article.Content, s.cfg.SummaryChars))

	response, err := s.generator.Generate(ctx, interfaces.GenerateRequest{
		Prompt:    prompt,
		MaxTokens: 256,
	})
	if err != nil {
		s.logger.Error("summarization failed", map[string]interface{}{
			"url":   article.URL,
			"error": err.Error(),
		})
		return summaryFailure
	}

	summary := strings.TrimSpace(summaryPrefixPattern.ReplaceAllString(strings.TrimSpace(response), ""))
	if summary == "" {
		return summaryFailure
	}
	return summary
}

func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
