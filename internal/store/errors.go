package store

import "errors"

var (
	ErrNotFound = errors.New("presentation not found")
	// ErrTerminal means the presentation already left the processing state.
	ErrTerminal = errors.New("presentation already finished")
	// ErrNotCompleted means slides can only be replaced on a completed presentation.
	ErrNotCompleted = errors.New("presentation not completed")
)
