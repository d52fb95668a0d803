package render

import (
	"context"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

// pdfPrinter turns a self-contained HTML document into PDF bytes.
type pdfPrinter func(ctx context.Context, html string) ([]byte, error)

type implRenderer struct {
	cfg    config.RenderConfig
	logger logger.Logger
	print  pdfPrinter
}

// New creates a Renderer. PDF output drives a headless Chrome per call.
func New(cfg config.RenderConfig, log logger.Logger) Renderer {
	r := &implRenderer{
		cfg:    cfg,
		logger: log,
	}
	r.print = r.printWithChrome
	return r
}
