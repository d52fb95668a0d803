// Package normalizer validates and repairs the slide JSON returned by the
// generative model.
package normalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-flow/internal/icon"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

// rawColumn is one side of a comparison slide as emitted.
type rawColumn struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// rawSlide mirrors what the model is asked to emit. slide_number is ignored.
type rawSlide struct {
	Type         *string    `json:"type"`
	Title        *string    `json:"title"`
	Subtitle     *string    `json:"subtitle"`
	Content      []string   `json:"content"`
	LeftColumn   *rawColumn `json:"left_column"`
	RightColumn  *rawColumn `json:"right_column"`
	ImagePrompt  *string    `json:"image_prompt"`
	Layout       *string    `json:"layout"`
	SpeakerNotes *string    `json:"speaker_notes"`
}

// Normalize extracts the outermost JSON object from raw and turns its slides
// into fully resolved slide.Slide values. Any invalid slide fails the batch.
func Normalize(raw string) ([]slide.Slide, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, ErrNoStructurePresent
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStructure, err)
	}

	slidesRaw, ok := doc["slides"]
	if !ok || bytes.Equal(bytes.TrimSpace(slidesRaw), []byte("null")) {
		return nil, ErrMissingSlidesField
	}

	var items []json.RawMessage
	if err := json.Unmarshal(slidesRaw, &items); err != nil {
		return nil, fmt.Errorf("%w: slides is not an array: %v", ErrMalformedStructure, err)
	}

	slides := make([]slide.Slide, 0, len(items))
	for i, item := range items {
		var rs rawSlide
		if err := json.Unmarshal(item, &rs); err != nil {
			return nil, fmt.Errorf("%w: slide %d: %v", ErrMalformedStructure, i+1, err)
		}
		s, err := resolve(i, rs)
		if err != nil {
			return nil, err
		}
		slides = append(slides, s)
	}
	return slides, nil
}

func resolve(pos int, rs rawSlide) (slide.Slide, error) {
	if rs.Title == nil || strings.TrimSpace(*rs.Title) == "" {
		return slide.Slide{}, &SlideMissingTitleError{Position: pos + 1}
	}
	title := *rs.Title

	t := slide.Type(deref(rs.Type))
	if !t.Valid() {
		t = inferType(pos, title)
	}

	var left, right *slide.Column
	if rs.LeftColumn != nil {
		left = &slide.Column{Title: rs.LeftColumn.Title, Content: rs.LeftColumn.Content}
	}
	if rs.RightColumn != nil {
		right = &slide.Column{Title: rs.RightColumn.Title, Content: rs.RightColumn.Content}
	}

	s := slide.Slide{
		Index:        pos + 1,
		Title:        title,
		SpeakerNotes: deref(rs.SpeakerNotes),
		Body:         slide.NewBody(t, slide.Layout(deref(rs.Layout)), deref(rs.Subtitle), rs.Content, left, right),
	}
	if prompt := strings.TrimSpace(deref(rs.ImagePrompt)); prompt != "" {
		s.Icon = icon.Classify(prompt)
	}
	return s, nil
}

func inferType(pos int, title string) slide.Type {
	if pos == 0 {
		return slide.TypeTitle
	}
	if IsEndingTitle(title) {
		return slide.TypeEnding
	}
	return slide.TypeContent
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
