package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/nguyentantai21042004/slide-flow/internal/icon"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type slideView struct {
	Index    int
	Type     slide.Type
	Layout   slide.Layout
	Title    string
	Subtitle string
	Bullets  []string
	Left     slide.Column
	Right    slide.Column
	Notes    string
	Icon     template.HTML
}

type deckView struct {
	Title  string
	Slides []slideView
}

func newDeckView(title string, slides []slide.Slide) deckView {
	views := make([]slideView, 0, len(slides))
	for _, s := range slides {
		left, right, _ := s.Columns()
		views = append(views, slideView{
			Index:    s.Index,
			Type:     s.Type(),
			Layout:   s.Layout(),
			Title:    s.Title,
			Subtitle: s.Subtitle(),
			Bullets:  s.Bullets(),
			Left:     left,
			Right:    right,
			Notes:    s.SpeakerNotes,
			Icon:     icon.SVG(s.Icon),
		})
	}
	return deckView{Title: title, Slides: views}
}

// writeDeckHTML renders the interactive deck with keyboard navigation.
func writeDeckHTML(w io.Writer, title string, slides []slide.Slide) error {
	if err := templates.ExecuteTemplate(w, "deck.html", newDeckView(title, slides)); err != nil {
		return fmt.Errorf("render deck html: %w", err)
	}
	return nil
}

// writePrintHTML renders one page per slide for PDF printing.
func writePrintHTML(w io.Writer, title string, slides []slide.Slide) error {
	if err := templates.ExecuteTemplate(w, "print.html", newDeckView(title, slides)); err != nil {
		return fmt.Errorf("render print html: %w", err)
	}
	return nil
}
