package transcriber

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

type call struct {
	name string
	args []string
}

// fakeExecutor simulates ffmpeg and whisper-cli. whisperText is written to
// the --output-file prefix with a .txt suffix.
type fakeExecutor struct {
	missing     map[string]bool
	failOn      string
	whisperText string
	calls       []call
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/usr/bin/" + name, nil
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if name == f.failOn {
		return "", errors.New("exit status 1")
	}

	switch name {
	case "ffmpeg":
		return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
	case "whisper-cli":
		prefix := argAfter(args, "--output-file")
		return "", os.WriteFile(prefix+".txt", []byte(f.whisperText), 0644)
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func argAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Whisper: config.WhisperConfig{
			ModelPath:  "models/ggml-base.en.bin",
			BinaryPath: "whisper-cli",
			Language:   "en",
			Threads:    4,
		},
		FFmpeg: config.FFmpegConfig{BinaryPath: "ffmpeg", SampleRate: 16000},
		Paths:  config.PathsConfig{Temp: filepath.Join(t.TempDir(), "tmp")},
	}
}

func TestTranscribe(t *testing.T) {
	cfg := testConfig(t)
	fx := &fakeExecutor{whisperText: "\n  Hello there,\n this is a test.  \n"}
	tr := New(cfg, fx, logger.NewNop())

	text, err := tr.Transcribe(context.Background(), "talk.mp3")
	require.NoError(t, err)
	assert.Equal(t, "Hello there, this is a test.", text)

	require.Len(t, fx.calls, 2)
	assert.Equal(t, "ffmpeg", fx.calls[0].name)
	assert.Equal(t, "16000", argAfter(fx.calls[0].args, "-ar"))
	assert.Equal(t, "1", argAfter(fx.calls[0].args, "-ac"))
	assert.Equal(t, "whisper-cli", fx.calls[1].name)
	assert.Contains(t, fx.calls[1].args, "-otxt")
	assert.Equal(t, "4", argAfter(fx.calls[1].args, "-t"))
	assert.NotContains(t, fx.calls[1].args, "--prompt")

	entries, err := os.ReadDir(cfg.Paths.Temp)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp files must be removed")
}

func TestTranscribePrompt(t *testing.T) {
	cfg := testConfig(t)
	cfg.Whisper.Prompt = "climate, policy"
	fx := &fakeExecutor{whisperText: "words"}

	_, err := New(cfg, fx, logger.NewNop()).Transcribe(context.Background(), "talk.wav")
	require.NoError(t, err)
	assert.Equal(t, "climate, policy", argAfter(fx.calls[1].args, "--prompt"))
}

func TestTranscribeErrors(t *testing.T) {
	tcs := map[string]struct {
		path   string
		fx     *fakeExecutor
		target error
	}{
		"unsupported format": {
			path:   "notes.pdf",
			fx:     &fakeExecutor{},
			target: ErrUnsupportedFormat,
		},
		"ffmpeg missing": {
			path:   "a.ogg",
			fx:     &fakeExecutor{missing: map[string]bool{"ffmpeg": true}},
			target: exec.ErrNotFound,
		},
		"whisper missing": {
			path:   "a.ogg",
			fx:     &fakeExecutor{missing: map[string]bool{"whisper-cli": true}},
			target: ErrServiceUnavailable,
		},
		"ffmpeg fails": {
			path:   "a.m4a",
			fx:     &fakeExecutor{failOn: "ffmpeg"},
			target: ErrServiceUnavailable,
		},
		"whisper fails": {
			path:   "a.webm",
			fx:     &fakeExecutor{failOn: "whisper-cli"},
			target: ErrServiceUnavailable,
		},
		"silence": {
			path:   "a.wav",
			fx:     &fakeExecutor{whisperText: " \n\t "},
			target: ErrUnrecognizedSpeech,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(t)
			_, err := New(cfg, tc.fx, logger.NewNop()).Transcribe(context.Background(), tc.path)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, name := range []string{"a.wav", "B.MP3", "c.ogg", "d.m4a", "e.webm"} {
		assert.True(t, IsSupported(name), name)
	}
	for _, name := range []string{"a.flac", "b", "c.txt", "wav"} {
		assert.False(t, IsSupported(name), name)
	}
}
