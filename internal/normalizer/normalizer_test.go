package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

func TestNormalizeDefaults(t *testing.T) {
	raw := `{"slides":[{"title":"Intro"},{"title":"Point A"},{"title":"Point B"},{"title":"Point C"},{"title":"Thanks"}]}`

	slides, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, slides, 5)

	wantTypes := []slide.Type{slide.TypeTitle, slide.TypeContent, slide.TypeContent, slide.TypeContent, slide.TypeEnding}
	wantLayouts := []slide.Layout{slide.LayoutCentered, slide.LayoutTextOnly, slide.LayoutTextOnly, slide.LayoutTextOnly, slide.LayoutCentered}
	for i, s := range slides {
		assert.Equal(t, wantTypes[i], s.Type(), "slide %d type", i+1)
		assert.Equal(t, wantLayouts[i], s.Layout(), "slide %d layout", i+1)
		assert.Equal(t, "", s.SpeakerNotes)
		assert.Equal(t, slide.IconNone, s.Icon)
	}
}

func TestNormalizeIndexesIgnoreSlideNumber(t *testing.T) {
	numbers := []int{9, 9, 2, 40, 0, -3}
	var parts []string
	for i, n := range numbers {
		parts = append(parts, fmt.Sprintf(`{"slide_number":%d,"type":"content","title":"S%d"}`, n, i))
	}
	raw := `{"slides":[` + strings.Join(parts, ",") + `]}`

	slides, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, slides, len(numbers))
	for i, s := range slides {
		assert.Equal(t, i+1, s.Index)
	}
}

func TestNormalizeFullSlides(t *testing.T) {
	raw := "Sure! Here are your slides:\n```json\n" + `{
  "slides": [
    {"slide_number": 1, "type": "title", "title": "Climate Action", "subtitle": "Why now",
     "image_prompt": "Planet Earth from space", "layout": "centered", "speaker_notes": "Welcome"},
    {"slide_number": 2, "type": "content", "title": "Key Data", "content": ["CO2 up", "Seas rising"],
     "image_prompt": "digital charts", "layout": "text_with_image"},
    {"slide_number": 3, "type": "comparison", "title": "Then vs Now",
     "left_column": {"title": "1990", "content": ["a"]},
     "right_column": {"title": "2024", "content": ["b"]}, "layout": "centered"},
    {"slide_number": 4, "type": "content", "title": "Costs", "content": ["x"], "layout": "fancy"},
    {"slide_number": 5, "type": "ending", "title": "Questions?", "subtitle": "Thank you",
     "image_prompt": "xylophone parade"}
  ]
}` + "\n```\nLet me know if you need changes."

	slides, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, slides, 5)

	assert.Equal(t, "Why now", slides[0].Subtitle())
	assert.Equal(t, slide.IconEnvironment, slides[0].Icon)
	assert.Equal(t, "Welcome", slides[0].SpeakerNotes)

	assert.Equal(t, []string{"CO2 up", "Seas rising"}, slides[1].Bullets())
	assert.Equal(t, slide.LayoutTextWithImage, slides[1].Layout())
	assert.Equal(t, slide.IconTechnology, slides[1].Icon)

	left, right, ok := slides[2].Columns()
	require.True(t, ok)
	assert.Equal(t, "1990", left.Title)
	assert.Equal(t, []string{"b"}, right.Content)
	assert.Equal(t, slide.LayoutTwoColumn, slides[2].Layout())

	assert.Equal(t, slide.LayoutTextOnly, slides[3].Layout())

	assert.Equal(t, slide.TypeEnding, slides[4].Type())
	assert.Equal(t, slide.IconGeneric, slides[4].Icon)
}

func TestNormalizeInvalidTypeIsRederived(t *testing.T) {
	raw := `{"slides":[
		{"type":"cover","title":"Opening"},
		{"type":"bullets","title":"Market Overview"},
		{"type":"outro","title":"Next Steps"}
	]}`

	slides, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, slide.TypeTitle, slides[0].Type())
	assert.Equal(t, slide.TypeContent, slides[1].Type())
	assert.Equal(t, slide.TypeEnding, slides[2].Type())
}

func TestNormalizeModelTypeWinsAtPositionZero(t *testing.T) {
	slides, err := Normalize(`{"slides":[{"type":"content","title":"Straight in","content":["a"]}]}`)
	require.NoError(t, err)
	assert.Equal(t, slide.TypeContent, slides[0].Type())
}

func TestNormalizeBlankImagePrompt(t *testing.T) {
	slides, err := Normalize(`{"slides":[{"title":"A","image_prompt":"   "}]}`)
	require.NoError(t, err)
	assert.Equal(t, slide.IconNone, slides[0].Icon)
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"no braces", "I could not create slides.", ErrNoStructurePresent},
		{"closing before opening", "} nothing {", ErrNoStructurePresent},
		{"empty", "", ErrNoStructurePresent},
		{"broken json", `{"slides": [ {"title": "A", } ]}`, ErrMalformedStructure},
		{"missing slides", `{"deck": []}`, ErrMissingSlidesField},
		{"null slides", `{"slides": null}`, ErrMissingSlidesField},
		{"slides not array", `{"slides": {"title": "A"}}`, ErrMalformedStructure},
		{"title wrong kind", `{"slides": [{"title": 4}]}`, ErrMalformedStructure},
		{"missing title", `{"slides": [{"title":"A"},{"type":"content"},{"title":"C"}]}`, ErrSlideMissingTitle},
		{"null title", `{"slides": [{"title": null}]}`, ErrSlideMissingTitle},
		{"blank title", `{"slides": [{"title": "  "}]}`, ErrSlideMissingTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides, err := Normalize(tt.raw)
			require.Error(t, err)
			assert.Nil(t, slides)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestSlideMissingTitlePosition(t *testing.T) {
	_, err := Normalize(`{"slides": [{"title":"A"},{"title":"B"},{"subtitle":"no title"}]}`)

	var missing *SlideMissingTitleError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 3, missing.Position)
}

func TestIsEndingTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Questions?", true},
		{"Thank You", true},
		{"Next Steps", true},
		{"Q&A Session", true},
		{"  Final Thoughts  ", true},
		{"Key Takeaways", true},
		{"Market Overview", false},
		{"Our Growth Strategy", false},
		{"Industry Trends", true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEndingTitle(tt.title))
		})
	}
}
