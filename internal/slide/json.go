package slide

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingTitle = errors.New("slide title is required")
	ErrInvalidType  = errors.New("invalid slide type")
	ErrInvalidIcon  = errors.New("invalid icon tag")
)

// record is the flat JSON form shared by the store, the renderer and the HTTP API.
type record struct {
	SlideNumber  int      `json:"slide_number"`
	Type         Type     `json:"type"`
	Layout       Layout   `json:"layout"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Content      []string `json:"content,omitempty"`
	LeftColumn   *Column  `json:"left_column,omitempty"`
	RightColumn  *Column  `json:"right_column,omitempty"`
	SpeakerNotes string   `json:"speaker_notes"`
	Icon         Icon     `json:"icon,omitempty"`
}

func (s Slide) MarshalJSON() ([]byte, error) {
	r := record{
		SlideNumber:  s.Index,
		Type:         s.Type(),
		Layout:       s.Layout(),
		Title:        s.Title,
		Subtitle:     s.Subtitle(),
		Content:      s.Bullets(),
		SpeakerNotes: s.SpeakerNotes,
		Icon:         s.Icon,
	}
	if left, right, ok := s.Columns(); ok {
		r.LeftColumn = &left
		r.RightColumn = &right
	}
	return json.Marshal(r)
}

// UnmarshalJSON decodes and validates the flat form. The layout is derived from
// the type; only content slides honour a text_with_image layout.
func (s *Slide) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if strings.TrimSpace(r.Title) == "" {
		return ErrMissingTitle
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidType, r.Type)
	}
	if !r.Icon.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidIcon, r.Icon)
	}

	*s = Slide{
		Index:        r.SlideNumber,
		Title:        r.Title,
		SpeakerNotes: r.SpeakerNotes,
		Icon:         r.Icon,
		Body:         NewBody(r.Type, r.Layout, r.Subtitle, r.Content, r.LeftColumn, r.RightColumn),
	}
	return nil
}

// NewBody builds the variant for t from loosely typed fields. Fields that do
// not belong to t are dropped.
func NewBody(t Type, layout Layout, subtitle string, content []string, left, right *Column) Body {
	switch t {
	case TypeTitle:
		return TitleBody{Subtitle: subtitle}
	case TypeEnding:
		return EndingBody{Subtitle: subtitle}
	case TypeComparison:
		b := ComparisonBody{}
		if left != nil {
			b.Left = *left
		}
		if right != nil {
			b.Right = *right
		}
		return b
	default:
		return ContentBody{Bullets: content, WithImage: layout == LayoutTextWithImage}
	}
}
