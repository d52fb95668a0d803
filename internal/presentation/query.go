package presentation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
	"github.com/nguyentantai21042004/slide-flow/internal/store"
)

func (s *implService) Get(ctx context.Context, id uint) (slide.Presentation, error) {
	return s.store.Get(ctx, id)
}

func (s *implService) Status(ctx context.Context, id uint) (slide.Status, string, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	return p.Status, p.Title, nil
}

func (s *implService) List(ctx context.Context) ([]slide.Presentation, error) {
	return s.store.List(ctx)
}

// UpdateSlides replaces the deck of a completed presentation. Slides are
// renumbered 1..n in the given order.
func (s *implService) UpdateSlides(ctx context.Context, id uint, slides []slide.Slide) (slide.Presentation, error) {
	if len(slides) == 0 {
		return slide.Presentation{}, ErrNoSlides
	}
	for i, sl := range slides {
		if strings.TrimSpace(sl.Title) == "" {
			return slide.Presentation{}, fmt.Errorf("slide %d: %w", i+1, slide.ErrMissingTitle)
		}
	}

	edited := make([]slide.Slide, len(slides))
	copy(edited, slides)
	slide.Reindex(edited)

	if err := s.store.ReplaceSlides(ctx, id, edited); err != nil {
		if errors.Is(err, store.ErrNotCompleted) {
			return slide.Presentation{}, fmt.Errorf("%w: %v", ErrNotReady, err)
		}
		return slide.Presentation{}, err
	}

	s.logger.Info(ctx, "Updated presentation %d with %d edited slides", id, len(edited))
	return s.store.Get(ctx, id)
}
