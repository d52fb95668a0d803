package synthesizer

import (
	"context"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// Synthesizer turns a transcript into a validated slide deck.
type Synthesizer interface {
	// Synthesize returns at least Config.MinSlides slides or a *SynthesisError.
	Synthesize(ctx context.Context, transcript string) ([]slide.Slide, error)
	// DeriveTitle never fails; it falls back to FallbackTitle.
	DeriveTitle(ctx context.Context, transcript string) string
}
