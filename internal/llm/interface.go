// Package llm wraps the generative text backends behind a single-shot
// prompt-in, text-out call.
package llm

import "context"

// Request is one completion call.
type Request struct {
	Model           string
	Prompt          string
	MaxOutputTokens int
	Temperature     float32
}

// Model is a generative text capability. Retries, if any, happen inside the
// implementation.
type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
