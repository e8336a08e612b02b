// ABOUTME: TextGenerator is the request/response contract with the reasoning backend
// ABOUTME: The pipeline owns only prompt construction and output-shape validation

package interfaces

import "context"

// GenerateRequest describes one call to the language model capability.
type GenerateRequest struct {
	// Prompt is the user prompt.
	Prompt string
	// System is an optional system instruction.
	System string
	// MaxTokens bounds the generated output length.
	MaxTokens int
	// Temperature controls sampling randomness.
	Temperature float64
	// Grammar optionally constrains the output shape (GBNF for llama.cpp
	// backends). Backends that cannot enforce a grammar ignore it; callers
	// must still validate the response.
	Grammar string
	// Stop lists sequences that terminate generation.
	Stop []string
}

// TextGenerator is the external reasoning capability. Implementations talk
// to a local llama.cpp server or the Gemini API; any transport or backend
// failure is returned as an error and degrades to a negative verdict at the
// call site, never a crash.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
