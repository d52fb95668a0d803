package slide

// Type is the semantic role of a slide.
type Type string

const (
	TypeTitle      Type = "title"
	TypeContent    Type = "content"
	TypeComparison Type = "comparison"
	TypeEnding     Type = "ending"
)

// Valid reports whether t is one of the four slide types.
func (t Type) Valid() bool {
	switch t {
	case TypeTitle, TypeContent, TypeComparison, TypeEnding:
		return true
	}
	return false
}

// Layout tells the renderer how to arrange a slide.
type Layout string

const (
	LayoutCentered      Layout = "centered"
	LayoutTextWithImage Layout = "text_with_image"
	LayoutTextOnly      Layout = "text_only"
	LayoutTwoColumn     Layout = "two_column"
)

// Icon is a tag selecting one of the pre-authored vector icons.
type Icon string

const (
	IconNone        Icon = ""
	IconEnvironment Icon = "environment"
	IconTechnology  Icon = "technology"
	IconBusiness    Icon = "business"
	IconHealth      Icon = "health"
	IconEducation   Icon = "education"
	IconFinance     Icon = "finance"
	IconGeneric     Icon = "generic"
)

// Valid reports whether i is a known tag or IconNone.
func (i Icon) Valid() bool {
	switch i {
	case IconNone, IconEnvironment, IconTechnology, IconBusiness,
		IconHealth, IconEducation, IconFinance, IconGeneric:
		return true
	}
	return false
}

// Column is one side of a comparison slide.
type Column struct {
	Title   string   `json:"title"`
	Content []string `json:"content"`
}

// Body holds the fields specific to one slide type.
type Body interface {
	Type() Type
	Layout() Layout
	isBody()
}

// TitleBody is the opening slide.
type TitleBody struct {
	Subtitle string
}

func (TitleBody) Type() Type     { return TypeTitle }
func (TitleBody) Layout() Layout { return LayoutCentered }
func (TitleBody) isBody()        {}

// ContentBody is a bullet slide. WithImage selects the text_with_image layout.
type ContentBody struct {
	Bullets   []string
	WithImage bool
}

func (ContentBody) Type() Type { return TypeContent }

func (b ContentBody) Layout() Layout {
	if b.WithImage {
		return LayoutTextWithImage
	}
	return LayoutTextOnly
}

func (ContentBody) isBody() {}

// ComparisonBody is a two column slide.
type ComparisonBody struct {
	Left  Column
	Right Column
}

func (ComparisonBody) Type() Type     { return TypeComparison }
func (ComparisonBody) Layout() Layout { return LayoutTwoColumn }
func (ComparisonBody) isBody()        {}

// EndingBody is a closing slide (questions, thanks, summary).
type EndingBody struct {
	Subtitle string
}

func (EndingBody) Type() Type     { return TypeEnding }
func (EndingBody) Layout() Layout { return LayoutCentered }
func (EndingBody) isBody()        {}

// Slide is one positioned, fully resolved unit of a deck.
type Slide struct {
	Index        int
	Title        string
	SpeakerNotes string
	Icon         Icon
	Body         Body
}

// Type returns the slide type, derived from the body.
func (s Slide) Type() Type {
	if s.Body == nil {
		return TypeContent
	}
	return s.Body.Type()
}

// Layout returns the slide layout, derived from the body.
func (s Slide) Layout() Layout {
	if s.Body == nil {
		return LayoutTextOnly
	}
	return s.Body.Layout()
}

// Subtitle returns the subtitle of title and ending slides.
func (s Slide) Subtitle() string {
	switch b := s.Body.(type) {
	case TitleBody:
		return b.Subtitle
	case EndingBody:
		return b.Subtitle
	}
	return ""
}

// Bullets returns the bullet points of a content slide.
func (s Slide) Bullets() []string {
	if b, ok := s.Body.(ContentBody); ok {
		return b.Bullets
	}
	return nil
}

// Columns returns both columns of a comparison slide.
func (s Slide) Columns() (left, right Column, ok bool) {
	if b, ok := s.Body.(ComparisonBody); ok {
		return b.Left, b.Right, true
	}
	return Column{}, Column{}, false
}

// Reindex assigns contiguous 1-based positions in place.
func Reindex(slides []Slide) {
	for i := range slides {
		slides[i].Index = i + 1
	}
}
