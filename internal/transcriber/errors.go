package transcriber

import "errors"

var (
	// ErrUnrecognizedSpeech means the recognizer produced no text.
	ErrUnrecognizedSpeech = errors.New("speech could not be recognized")
	// ErrServiceUnavailable means ffmpeg or whisper is missing or failed.
	ErrServiceUnavailable = errors.New("transcription service unavailable")
	// ErrUnsupportedFormat means the file extension is not an accepted audio type.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
