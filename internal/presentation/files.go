package presentation

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// TranscriptExtensions are the drop-folder extensions read as transcripts.
var TranscriptExtensions = []string{".txt", ".md"}

func (s *implService) ImportTranscriptFile(ctx context.Context, path string) (slide.Presentation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return slide.Presentation{}, fmt.Errorf("read transcript file: %w", err)
	}
	defer s.archive(ctx, path)

	s.logger.Info(ctx, "Importing transcript file: %s", path)
	return s.CreateFromTranscript(ctx, string(raw))
}
