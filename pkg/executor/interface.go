package executor

import "context"

// Executor runs external tools such as ffmpeg and whisper-cli.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	// LookPath resolves name on PATH, or returns an error wrapping exec.ErrNotFound.
	LookPath(name string) (string, error)
}
