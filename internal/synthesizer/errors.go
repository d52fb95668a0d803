package synthesizer

import (
	"errors"
	"fmt"
)

// ErrTooFewSlides means the model returned a valid deck below the minimum size.
var ErrTooFewSlides = errors.New("too few slides")

// SynthesisError is the only error Synthesize returns. Err is the model,
// normalizer or policy error behind it.
type SynthesisError struct {
	Reason string
	Err    error
}

func (e *SynthesisError) Error() string {
	if e.Err == nil {
		return "synthesis failed: " + e.Reason
	}
	return fmt.Sprintf("synthesis failed: %s: %v", e.Reason, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
