package presentation

import (
	"context"

	"github.com/nguyentantai21042004/slide-flow/internal/render"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// Service runs the transcript and audio pipelines and manages their results.
type Service interface {
	// CreateFromTranscript returns the stored presentation together with the
	// pipeline error, if any. A failed pipeline leaves the record in error status.
	CreateFromTranscript(ctx context.Context, transcript string) (slide.Presentation, error)
	CreateFromAudio(ctx context.Context, audioPath string) (slide.Presentation, error)
	// ImportTranscriptFile reads a dropped text file, runs the transcript
	// pipeline and archives the file.
	ImportTranscriptFile(ctx context.Context, path string) (slide.Presentation, error)
	Get(ctx context.Context, id uint) (slide.Presentation, error)
	Status(ctx context.Context, id uint) (slide.Status, string, error)
	List(ctx context.Context) ([]slide.Presentation, error)
	UpdateSlides(ctx context.Context, id uint, slides []slide.Slide) (slide.Presentation, error)
	// Export writes the deck under the exports folder and returns the file path.
	Export(ctx context.Context, id uint, format render.Format) (string, error)
}
