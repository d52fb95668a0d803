package render

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

const (
	fontName   = "Calibri"
	fontSize   = 13
	titleSize  = 24
	headSize   = 18
	accent     = "DE7C00"
	textColor  = "1A202C"
	notesColor = "4A5568"
)

// writeDOCX emits one section per slide separated by page breaks.
func writeDOCX(title string, slides []slide.Slide, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new docx: %w", err)
	}

	addRun(doc.AddParagraph(""), title, titleSize, accent, true)

	for _, s := range slides {
		doc.AddPageBreak()
		addRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", s.Index, s.Title), headSize, accent, true)

		switch s.Type() {
		case slide.TypeTitle, slide.TypeEnding:
			if sub := s.Subtitle(); sub != "" {
				addRun(doc.AddParagraph(""), sub, fontSize+2, textColor, false)
			}
		case slide.TypeComparison:
			left, right, _ := s.Columns()
			addColumn(doc, left)
			addColumn(doc, right)
		default:
			addBullets(doc, s.Bullets())
		}

		if notes := strings.TrimSpace(s.SpeakerNotes); notes != "" {
			p := doc.AddParagraph("")
			addRun(p, "Speaker notes: ", fontSize-2, notesColor, true)
			p.AddText(notes).Font(fontName).Size(fontSize - 2).Color(notesColor).Italic(true)
		}
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func addColumn(doc *docx.RootDoc, col slide.Column) {
	if col.Title != "" {
		addRun(doc.AddParagraph(""), col.Title, fontSize+1, textColor, true)
	}
	addBullets(doc, col.Content)
}

func addBullets(doc *docx.RootDoc, items []string) {
	for _, item := range items {
		addRun(doc.AddParagraph(""), "• "+item, fontSize, textColor, false)
	}
}

func addRun(p *docx.Paragraph, text string, size uint64, color string, bold bool) {
	run := p.AddText(text).Font(fontName).Size(size).Color(color)
	if bold {
		run.Bold(true)
	}
}
