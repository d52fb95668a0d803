package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/httpapi"
	"github.com/nguyentantai21042004/slide-flow/internal/llm"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
	"github.com/nguyentantai21042004/slide-flow/internal/metrics"
	"github.com/nguyentantai21042004/slide-flow/internal/presentation"
	"github.com/nguyentantai21042004/slide-flow/internal/render"
	"github.com/nguyentantai21042004/slide-flow/internal/store"
	"github.com/nguyentantai21042004/slide-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/slide-flow/internal/transcriber"
	"github.com/nguyentantai21042004/slide-flow/internal/watcher"
	"github.com/nguyentantai21042004/slide-flow/pkg/executor"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Slide Flow")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "LLM provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Slide Flow stopped")
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	st, err := store.New(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	model, err := llm.New(cfg.LLM, log)
	if err != nil {
		return fmt.Errorf("create llm client: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(reg)

	svc := presentation.New(cfg, presentation.Deps{
		Store:       st,
		Synthesizer: synthesizer.New(model, synthesizer.ConfigFrom(cfg), log),
		Transcriber: transcriber.New(cfg, executor.New(), log),
		Renderer:    render.New(cfg.Render, log),
		Metrics:     collector,
		Logger:      log,
	})

	w, err := watcher.New(watcher.Options{
		InputDir:      cfg.Paths.Input,
		Routes:        watchRoutes(svc),
		MaxConcurrent: cfg.Performance.MaxConcurrent,
	}, log)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	server := &http.Server{
		Addr: cfg.Server.Addr,
		Handler: httpapi.New(httpapi.Deps{
			Service:    svc,
			UploadsDir: cfg.Paths.Uploads,
			Metrics:    collector,
			Gatherer:   reg,
			Logger:     log,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 2)
	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- fmt.Errorf("watcher: %w", err)
		}
	}()
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server: %w", err)
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Slide Flow is ready!")
	log.Info(ctx, "HTTP: %s", cfg.Server.Addr)
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Exports: %s", cfg.Paths.Exports)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	var runErr error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case runErr = <-errChan:
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "HTTP shutdown: %v", err)
	}

	cancel()
	<-watchDone
	return runErr
}

// watchRoutes maps drop-folder extensions to the pipeline that handles them.
func watchRoutes(svc presentation.Service) map[string]watcher.EventHandler {
	routes := make(map[string]watcher.EventHandler)

	importTranscript := func(ctx context.Context, path string) error {
		_, err := svc.ImportTranscriptFile(ctx, path)
		return err
	}
	for _, ext := range presentation.TranscriptExtensions {
		routes[ext] = importTranscript
	}

	fromAudio := func(ctx context.Context, path string) error {
		_, err := svc.CreateFromAudio(ctx, path)
		return err
	}
	for _, ext := range transcriber.SupportedFormats {
		routes["."+ext] = fromAudio
	}
	return routes
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Uploads,
		cfg.Paths.Exports,
		cfg.Paths.Archived,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
