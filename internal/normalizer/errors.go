package normalizer

import (
	"errors"
	"fmt"
)

var (
	ErrNoStructurePresent = errors.New("no JSON object found in model output")
	ErrMalformedStructure = errors.New("malformed slide structure")
	ErrMissingSlidesField = errors.New("missing slides field")
	ErrSlideMissingTitle  = errors.New("slide missing title")
)

// SlideMissingTitleError reports the first slide without a title.
type SlideMissingTitleError struct {
	// Position is 1-based.
	Position int
}

func (e *SlideMissingTitleError) Error() string {
	return fmt.Sprintf("slide %d missing title", e.Position)
}

func (e *SlideMissingTitleError) Unwrap() error {
	return ErrSlideMissingTitle
}
