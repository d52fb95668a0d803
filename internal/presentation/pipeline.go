package presentation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/slide-flow/internal/metrics"
	"github.com/nguyentantai21042004/slide-flow/internal/slide"
)

const (
	sourceTranscript = "transcript"
	sourceAudio      = "audio"

	settleTimeout = 10 * time.Second
)

func (s *implService) CreateFromTranscript(ctx context.Context, transcript string) (slide.Presentation, error) {
	text, err := validateTranscript(transcript)
	if err != nil {
		return slide.Presentation{}, err
	}

	release, err := s.acquireSlot(ctx)
	if err != nil {
		return slide.Presentation{}, err
	}
	defer release()

	startTime := time.Now()
	s.logger.Info(ctx, "========================================")
	s.logger.Info(ctx, "Starting transcript pipeline: %d words", len(strings.Fields(text)))
	s.logger.Info(ctx, "========================================")

	p := slide.Presentation{
		Title:      s.deriveTitle(ctx, text),
		Transcript: text,
	}
	if err := s.store.Create(ctx, &p); err != nil {
		return slide.Presentation{}, fmt.Errorf("create presentation: %w", err)
	}

	return s.generate(ctx, sourceTranscript, p.ID, text, startTime)
}

func (s *implService) CreateFromAudio(ctx context.Context, audioPath string) (slide.Presentation, error) {
	release, err := s.acquireSlot(ctx)
	if err != nil {
		return slide.Presentation{}, err
	}
	defer release()

	startTime := time.Now()
	filename := filepath.Base(audioPath)
	s.logger.Info(ctx, "========================================")
	s.logger.Info(ctx, "Starting audio pipeline: %s", audioPath)
	s.logger.Info(ctx, "========================================")

	p := slide.Presentation{
		Title:         "Presentation " + filename,
		AudioFilename: filename,
	}
	if err := s.store.Create(ctx, &p); err != nil {
		return slide.Presentation{}, fmt.Errorf("create presentation: %w", err)
	}
	defer s.archive(ctx, audioPath)

	stageStart := time.Now()
	transcript, err := s.transcriber.Transcribe(ctx, audioPath)
	s.metrics.ObserveStage(metrics.StageTranscribe, time.Since(stageStart), err)
	if err != nil {
		return s.fail(ctx, sourceAudio, p.ID, fmt.Errorf("transcribe: %w", err))
	}

	if err := s.store.SetTranscript(ctx, p.ID, transcript); err != nil {
		return s.fail(ctx, sourceAudio, p.ID, fmt.Errorf("store transcript: %w", err))
	}
	if err := s.store.SetTitle(ctx, p.ID, s.deriveTitle(ctx, transcript)); err != nil {
		return s.fail(ctx, sourceAudio, p.ID, fmt.Errorf("store title: %w", err))
	}

	return s.generate(ctx, sourceAudio, p.ID, transcript, startTime)
}

// generate synthesizes slides for a stored processing presentation and
// settles its final status.
func (s *implService) generate(ctx context.Context, source string, id uint, transcript string, startTime time.Time) (slide.Presentation, error) {
	stageStart := time.Now()
	slides, err := s.synthesizer.Synthesize(ctx, transcript)
	s.metrics.ObserveStage(metrics.StageSynthesize, time.Since(stageStart), err)
	if err != nil {
		return s.fail(ctx, source, id, fmt.Errorf("generate slides: %w", err))
	}

	sctx, cancel := settleContext(ctx)
	defer cancel()

	if err := s.store.Complete(sctx, id, slides); err != nil {
		return s.fail(ctx, source, id, fmt.Errorf("store slides: %w", err))
	}
	s.metrics.ObservePresentation(source, string(slide.StatusCompleted))

	p, err := s.store.Get(sctx, id)
	if err != nil {
		return slide.Presentation{}, fmt.Errorf("reload presentation: %w", err)
	}

	s.logger.Info(ctx, "========================================")
	s.logger.Info(ctx, "Presentation %d completed: %q, %d slides", p.ID, p.Title, len(p.Slides))
	s.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	s.logger.Info(ctx, "========================================")
	return p, nil
}

// fail marks presentation id as errored and returns it with cause.
func (s *implService) fail(ctx context.Context, source string, id uint, cause error) (slide.Presentation, error) {
	s.logger.Error(ctx, "Presentation %d failed: %v", id, cause)
	s.metrics.ObservePresentation(source, string(slide.StatusError))

	sctx, cancel := settleContext(ctx)
	defer cancel()

	if err := s.store.Fail(sctx, id); err != nil {
		s.logger.Warn(ctx, "Failed to mark presentation %d as error: %v", id, err)
	}

	p, err := s.store.Get(sctx, id)
	if err != nil {
		return slide.Presentation{}, cause
	}
	return p, cause
}

// settleContext outlives the caller's cancellation so a started record always
// leaves processing, even after a client disconnect or shutdown.
func settleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
}

func (s *implService) deriveTitle(ctx context.Context, transcript string) string {
	stageStart := time.Now()
	title := s.synthesizer.DeriveTitle(ctx, transcript)
	s.metrics.ObserveStage(metrics.StageTitle, time.Since(stageStart), nil)
	return title
}

func validateTranscript(transcript string) (string, error) {
	text := strings.TrimSpace(transcript)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	if len(strings.Fields(text)) < minTranscriptWords {
		return "", ErrTranscriptTooShort
	}
	return text, nil
}
