package watcher

import "context"

// Watcher monitors a drop folder and dispatches new files to handlers.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is a function that handles file events
type EventHandler func(ctx context.Context, filePath string) error
