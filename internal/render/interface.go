package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// Format is an export target.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat accepts a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatPDF, FormatDOCX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}

// Renderer writes a slide deck to outPath in the requested format.
type Renderer interface {
	Render(ctx context.Context, format Format, title string, slides []slide.Slide, outPath string) error
}
