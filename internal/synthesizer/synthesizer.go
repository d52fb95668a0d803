package synthesizer

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/slide-flow/internal/llm"
	"github.com/nguyentantai21042004/slide-flow/internal/normalizer"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// Synthesize makes a single model call and normalizes its reply. No retries.
func (s *implSynthesizer) Synthesize(ctx context.Context, transcript string) ([]slide.Slide, error) {
	text, total, truncated := truncateWords(transcript, s.cfg.MaxTranscriptWords)
	if truncated {
		text += "..."
		s.logger.Warn(ctx, "Truncated transcript from %d to %d words", total, s.cfg.MaxTranscriptWords)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	s.logger.Info(ctx, "Calling %s to generate slides...", s.model.Name())
	start := time.Now()

	raw, err := s.model.Generate(callCtx, llm.Request{
		Model:           s.cfg.Model,
		Prompt:          buildSlidePrompt(text),
		MaxOutputTokens: s.cfg.SlideMaxTokens,
		Temperature:     s.cfg.SlideTemperature,
	})
	if err != nil {
		s.logger.Error(ctx, "Slide generation failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, &SynthesisError{Reason: "model call", Err: err}
	}
	s.logger.Info(ctx, "%s responded in %s", s.model.Name(), time.Since(start).Round(time.Millisecond))

	slides, err := normalizer.Normalize(raw)
	if err != nil {
		s.logger.Error(ctx, "Failed to parse slides: %v", err)
		return nil, &SynthesisError{Reason: "normalize response", Err: err}
	}

	if len(slides) < s.cfg.MinSlides {
		s.logger.Error(ctx, "Generated %d slides, need at least %d", len(slides), s.cfg.MinSlides)
		return nil, &SynthesisError{
			Reason: fmt.Sprintf("got %d slides, need %d", len(slides), s.cfg.MinSlides),
			Err:    ErrTooFewSlides,
		}
	}

	s.logger.Info(ctx, "Successfully generated %d slides", len(slides))
	return slides, nil
}
