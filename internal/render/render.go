package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

func (r *implRenderer) Render(ctx context.Context, format Format, title string, slides []slide.Slide, outPath string) error {
	if len(slides) == 0 {
		return ErrNoSlides
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	r.logger.Info(ctx, "Rendering %d slides as %s: %s", len(slides), format, outPath)

	switch format {
	case FormatHTML:
		var buf bytes.Buffer
		if err := writeDeckHTML(&buf, title, slides); err != nil {
			return err
		}
		return writeFile(outPath, buf.Bytes())

	case FormatPDF:
		var buf bytes.Buffer
		if err := writePrintHTML(&buf, title, slides); err != nil {
			return err
		}
		pdf, err := r.print(ctx, buf.String())
		if err != nil {
			return fmt.Errorf("print pdf: %w", err)
		}
		return writeFile(outPath, pdf)

	case FormatDOCX:
		return writeDOCX(title, slides, outPath)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
