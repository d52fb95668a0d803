package presentation

import (
	"errors"

	"github.com/nguyentantai21042004/slide-flow/internal/store"
)

const minTranscriptWords = 10

var (
	ErrEmptyTranscript    = errors.New("no transcript provided")
	ErrTranscriptTooShort = errors.New("transcript too short, provide at least 10 words")
	ErrNotReady           = errors.New("presentation not ready")
	ErrNoSlides           = errors.New("no slides provided")
	ErrNotFound           = store.ErrNotFound
)
