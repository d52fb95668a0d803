package presentation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nguyentantai21042004/slide-flow/internal/metrics"
	"github.com/nguyentantai21042004/slide-flow/internal/render"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

const maxSlugLen = 60

func (s *implService) Export(ctx context.Context, id uint, format render.Format) (string, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if p.Status != slide.StatusCompleted {
		return "", fmt.Errorf("%w: status is %s", ErrNotReady, p.Status)
	}

	outPath := filepath.Join(s.cfg.Paths.Exports, fmt.Sprintf("%d-%s%s", p.ID, slugify(p.Title), format.Ext()))

	stageStart := time.Now()
	err = s.renderer.Render(ctx, format, p.Title, p.Slides, outPath)
	s.metrics.ObserveStage(metrics.StageRender, time.Since(stageStart), err)
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format, err)
	}

	s.logger.Info(ctx, "Exported presentation %d: %s", p.ID, outPath)
	return outPath, nil
}

// slugify keeps lower-case ASCII letters and digits joined by single hyphens.
func slugify(title string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return "presentation"
	}
	return slug
}
