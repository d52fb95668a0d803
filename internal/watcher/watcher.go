package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

type implWatcher struct {
	inputDir      string
	routes        map[string]EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	settleDelay   time.Duration
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start monitors the input directory until ctx is cancelled, then waits for
// in-flight handlers.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(w.extensions(), ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher events channel closed")
			}

			if !event.Has(fsnotify.Create) {
				continue
			}

			handler, ok := w.route(event.Name)
			if !ok {
				w.logger.Debug(ctx, "Ignoring unsupported file: %s", event.Name)
				continue
			}
			w.logger.Info(ctx, "New file detected: %s", event.Name)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go w.handle(ctx, handler, event.Name)
			case <-ctx.Done():
				w.wg.Wait()
				return ctx.Err()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.wg.Wait()
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) handle(ctx context.Context, handler EventHandler, filePath string) {
	defer w.wg.Done()
	defer func() { <-w.semaphore }()

	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return
	}

	if err := handler(ctx, filePath); err != nil {
		w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) route(path string) (EventHandler, bool) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return nil, false
	}
	h, ok := w.routes[strings.ToLower(filepath.Ext(path))]
	return h, ok
}

func (w *implWatcher) extensions() []string {
	exts := make([]string, 0, len(w.routes))
	for ext := range w.routes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
