package store

import (
	"context"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// Store persists presentations and enforces their status transitions.
type Store interface {
	// Create inserts p with status processing and sets its ID and timestamps.
	Create(ctx context.Context, p *slide.Presentation) error
	Get(ctx context.Context, id uint) (slide.Presentation, error)
	// List returns every presentation, newest first.
	List(ctx context.Context) ([]slide.Presentation, error)
	SetTranscript(ctx context.Context, id uint, transcript string) error
	SetTitle(ctx context.Context, id uint, title string) error
	// Complete and Fail only apply to a processing presentation.
	Complete(ctx context.Context, id uint, slides []slide.Slide) error
	Fail(ctx context.Context, id uint) error
	// ReplaceSlides only applies to a completed presentation.
	ReplaceSlides(ctx context.Context, id uint, slides []slide.Slide) error
	Close() error
}
