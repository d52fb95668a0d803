package render

import (
	"context"
	"fmt"
	"io"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// printWithChrome launches a fresh browser, loads html and prints it with
// the page size declared in the document's CSS.
func (r *implRenderer) printWithChrome(ctx context.Context, html string) ([]byte, error) {
	l := launcher.New().Headless(r.cfg.IsHeadless())
	if r.cfg.ChromeBin != "" {
		l = l.Bin(r.cfg.ChromeBin)
	}
	defer l.Kill()

	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pdf stream: %w", err)
	}
	r.logger.Debug(ctx, "Printed %d bytes of PDF", len(data))
	return data, nil
}
