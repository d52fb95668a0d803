package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

func sampleDeck() []slide.Slide {
	slides := []slide.Slide{
		{Title: "Climate <Action>", Icon: slide.IconEnvironment, SpeakerNotes: "Welcome everyone", Body: slide.TitleBody{Subtitle: "Why now"}},
		{Title: "Key Data", Icon: slide.IconTechnology, Body: slide.ContentBody{Bullets: []string{"CO2 up", "Seas rising"}, WithImage: true}},
		{Title: "Then vs Now", Body: slide.ComparisonBody{
			Left:  slide.Column{Title: "1990", Content: []string{"fewer storms"}},
			Right: slide.Column{Title: "2024", Content: []string{"more storms"}},
		}},
		{Title: "Costs", Body: slide.ContentBody{Bullets: []string{"insurance"}}},
		{Title: "Questions?", Body: slide.EndingBody{Subtitle: "Thank you"}},
	}
	slide.Reindex(slides)
	return slides
}

func newTestRenderer(print pdfPrinter) *implRenderer {
	r := New(config.RenderConfig{}, logger.NewNop()).(*implRenderer)
	if print != nil {
		r.print = print
	}
	return r
}

func TestRenderHTML(t *testing.T) {
	out := filepath.Join(t.TempDir(), "exports", "deck.html")
	r := newTestRenderer(nil)

	require.NoError(t, r.Render(context.Background(), FormatHTML, "My Deck", sampleDeck(), out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(raw)

	assert.Contains(t, html, "<title>My Deck</title>")
	assert.Contains(t, html, "Climate &lt;Action&gt;")
	assert.NotContains(t, html, "Climate <Action>")
	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "ArrowRight")
	assert.Contains(t, html, "Welcome everyone")
	assert.Contains(t, html, "fewer storms")
	assert.Contains(t, html, "more storms")
	assert.Contains(t, html, `data-layout="two_column"`)
	assert.Contains(t, html, "slide-image-area")
	assert.Equal(t, 5, strings.Count(html, `<div class="slide`)-strings.Count(html, `<div class="slide-`))
}

func TestRenderPDF(t *testing.T) {
	var printed string
	r := newTestRenderer(func(ctx context.Context, html string) ([]byte, error) {
		printed = html
		return []byte("%PDF-1.7 fake"), nil
	})
	out := filepath.Join(t.TempDir(), "deck.pdf")

	require.NoError(t, r.Render(context.Background(), FormatPDF, "My Deck", sampleDeck(), out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(raw))
	assert.Contains(t, printed, "page-break-after")
	assert.Contains(t, printed, "11in 6.1875in")
	assert.NotContains(t, printed, "ArrowRight")
}

func TestRenderPDFError(t *testing.T) {
	boom := errors.New("no chrome")
	r := newTestRenderer(func(ctx context.Context, html string) ([]byte, error) {
		return nil, boom
	})
	out := filepath.Join(t.TempDir(), "deck.pdf")

	err := r.Render(context.Background(), FormatPDF, "My Deck", sampleDeck(), out)
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, out)
}

func TestRenderDOCX(t *testing.T) {
	out := filepath.Join(t.TempDir(), "deck.docx")
	r := newTestRenderer(nil)

	require.NoError(t, r.Render(context.Background(), FormatDOCX, "My Deck", sampleDeck(), out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	assert.Equal(t, "PK", string(raw[:2]))
}

func TestRenderRejects(t *testing.T) {
	r := newTestRenderer(nil)
	dir := t.TempDir()

	err := r.Render(context.Background(), FormatHTML, "x", nil, filepath.Join(dir, "a.html"))
	assert.ErrorIs(t, err, ErrNoSlides)

	err = r.Render(context.Background(), Format("pptx"), "x", sampleDeck(), filepath.Join(dir, "a.pptx"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	tcs := map[string]struct {
		in   string
		want Format
		err  bool
	}{
		"html":    {in: "html", want: FormatHTML},
		"upper":   {in: "PDF", want: FormatPDF},
		"spaced":  {in: " docx ", want: FormatDOCX},
		"unknown": {in: "pptx", err: true},
		"empty":   {in: "", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.err {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "."+string(tc.want), got.Ext())
		})
	}
}
