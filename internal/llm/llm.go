// Package llm abstracts text generation so the advisor can optionally enrich
// recommendations without binding to a specific model vendor.
package llm

import "context"

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
