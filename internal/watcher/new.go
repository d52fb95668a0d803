package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// Options configures a Watcher. Routes maps a lower-case extension such as
// ".txt" to the handler for files of that type.
type Options struct {
	InputDir      string
	Routes        map[string]EventHandler
	MaxConcurrent int
	// SettleDelay is how long to wait after a create event before handling
	// the file, so writers can finish.
	SettleDelay time.Duration
}

// New creates a new Watcher instance with concurrency control
func New(opts Options, log logger.Logger) (Watcher, error) {
	if len(opts.Routes) == 0 {
		return nil, fmt.Errorf("no routes configured")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(opts.InputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 2
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	} else if opts.SettleDelay == 0 {
		opts.SettleDelay = defaultSettleDelay
	}

	routes := make(map[string]EventHandler, len(opts.Routes))
	for ext, h := range opts.Routes {
		routes[strings.ToLower(ext)] = h
	}

	return &implWatcher{
		inputDir:      opts.InputDir,
		routes:        routes,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: opts.MaxConcurrent,
		settleDelay:   opts.SettleDelay,
		semaphore:     make(chan struct{}, opts.MaxConcurrent),
	}, nil
}
