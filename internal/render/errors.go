package render

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoSlides          = errors.New("no slides to render")
)
