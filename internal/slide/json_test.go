package slide

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideJSON(t *testing.T) {
	deck := []Slide{
		{Index: 1, Title: "Intro", Body: TitleBody{Subtitle: "Welcome"}, Icon: IconBusiness},
		{Index: 2, Title: "Points", Body: ContentBody{Bullets: []string{"a", "b"}, WithImage: true}},
		{Index: 3, Title: "Versus", Body: ComparisonBody{
			Left:  Column{Title: "Before", Content: []string{"slow"}},
			Right: Column{Title: "After", Content: []string{"fast"}},
		}},
		{Index: 4, Title: "Questions?", Body: EndingBody{Subtitle: "Thanks"}, SpeakerNotes: "open floor"},
	}

	data, err := json.Marshal(deck)
	require.NoError(t, err)

	var got []Slide
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, deck, got)
}

func TestSlideMarshalShape(t *testing.T) {
	s := Slide{Index: 3, Title: "Versus", Body: ComparisonBody{
		Left:  Column{Title: "L", Content: []string{"x"}},
		Right: Column{Title: "R", Content: []string{"y"}},
	}}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "comparison", m["type"])
	assert.Equal(t, "two_column", m["layout"])
	assert.EqualValues(t, 3, m["slide_number"])
	assert.Equal(t, "", m["speaker_notes"])
	assert.NotContains(t, m, "icon")
	assert.NotContains(t, m, "content")
}

func TestSlideUnmarshalValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing title", `{"type":"content"}`, ErrMissingTitle},
		{"blank title", `{"type":"content","title":"  "}`, ErrMissingTitle},
		{"bad type", `{"type":"quiz","title":"Q"}`, ErrInvalidType},
		{"bad icon", `{"type":"content","title":"Q","icon":"rocket"}`, ErrInvalidIcon},
		{"valid", `{"type":"ending","title":"Bye","layout":"two_column"}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Slide
			err := json.Unmarshal([]byte(tt.input), &s)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestLayoutFollowsType(t *testing.T) {
	var s Slide
	require.NoError(t, json.Unmarshal([]byte(`{"type":"ending","title":"Bye","layout":"two_column"}`), &s))
	assert.Equal(t, LayoutCentered, s.Layout())

	require.NoError(t, json.Unmarshal([]byte(`{"type":"content","title":"C","layout":"centered"}`), &s))
	assert.Equal(t, LayoutTextOnly, s.Layout())
}

func TestReindex(t *testing.T) {
	deck := []Slide{{Index: 7}, {Index: 7}, {Index: 2}}
	Reindex(deck)
	for i, s := range deck {
		assert.Equal(t, i+1, s.Index)
	}
}
