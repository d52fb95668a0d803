package presentation

import (
	"context"
	"os"
	"path/filepath"
)

// archive moves a handled audio file into the archived folder. Failures are
// logged only.
func (s *implService) archive(ctx context.Context, audioPath string) {
	if s.cfg.Paths.Archived == "" {
		return
	}
	if err := os.MkdirAll(s.cfg.Paths.Archived, 0755); err != nil {
		s.logger.Warn(ctx, "Failed to create archived folder: %v", err)
		return
	}

	dest := filepath.Join(s.cfg.Paths.Archived, filepath.Base(audioPath))
	if err := os.Rename(audioPath, dest); err != nil {
		s.logger.Warn(ctx, "Failed to move %s to archived folder: %v", audioPath, err)
		return
	}
	s.logger.Info(ctx, "Archived audio: %s -> %s", audioPath, dest)
}
