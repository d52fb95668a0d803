package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if !IsSupported(audioPath) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(audioPath))
	}

	for _, bin := range []string{t.cfg.FFmpeg.BinaryPath, t.cfg.Whisper.BinaryPath} {
		if _, err := t.executor.LookPath(bin); err != nil {
			return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
		}
	}

	if err := os.MkdirAll(t.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	prefix := filepath.Join(t.cfg.Paths.Temp, uuid.NewString())
	wavPath := prefix + ".wav"
	txtPath := prefix + ".txt"
	defer t.removeTemp(ctx, wavPath, txtPath)

	if err := t.convertToWAV(ctx, audioPath, wavPath); err != nil {
		return "", err
	}
	if err := t.runWhisper(ctx, wavPath, prefix); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("%w: read whisper output: %w", ErrServiceUnavailable, err)
	}

	text := strings.Join(strings.Fields(string(raw)), " ")
	if text == "" {
		t.logger.Error(ctx, "No speech recognized in %s", audioPath)
		return "", ErrUnrecognizedSpeech
	}

	t.logger.Info(ctx, "Transcription successful: %d characters", len(text))
	return text, nil
}

// convertToWAV produces 16-bit mono PCM at the configured sample rate.
func (t *implTranscriber) convertToWAV(ctx context.Context, in, out string) error {
	args := []string{
		"-i", in,
		"-vn",
		"-ar", strconv.Itoa(t.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		out,
	}

	t.logger.Info(ctx, "Converting audio to WAV: %s", in)
	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return fmt.Errorf("%w: ffmpeg convert: %w", ErrServiceUnavailable, err)
	}
	return nil
}

// runWhisper writes the transcript to prefix + ".txt".
func (t *implTranscriber) runWhisper(ctx context.Context, wavPath, prefix string) error {
	w := t.cfg.Whisper
	args := []string{
		"-m", w.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", w.Language,
		"-t", strconv.Itoa(w.Threads),
		"--output-file", prefix,
	}
	if w.Prompt != "" {
		args = append(args, "--prompt", w.Prompt)
	}

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", w.Threads, wavPath)
	if _, err := t.executor.Execute(ctx, w.BinaryPath, args...); err != nil {
		return fmt.Errorf("%w: whisper transcribe: %w", ErrServiceUnavailable, err)
	}
	return nil
}

func (t *implTranscriber) removeTemp(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.logger.Warn(ctx, "Failed to remove temp file %s: %v", p, err)
		}
	}
}
