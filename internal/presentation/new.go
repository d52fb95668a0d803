package presentation

import (
	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
	"github.com/nguyentantai21042004/slide-flow/internal/metrics"
	"github.com/nguyentantai21042004/slide-flow/internal/render"
	"github.com/nguyentantai21042004/slide-flow/internal/store"
	"github.com/nguyentantai21042004/slide-flow/internal/synthesizer"
	"github.com/nguyentantai21042004/slide-flow/internal/transcriber"
)

// Deps are the collaborators of a Service.
type Deps struct {
	Store       store.Store
	Synthesizer synthesizer.Synthesizer
	Transcriber transcriber.Transcriber
	Renderer    render.Renderer
	Metrics     *metrics.Collector
	Logger      logger.Logger
}

type implService struct {
	cfg         *config.Config
	store       store.Store
	synthesizer synthesizer.Synthesizer
	transcriber transcriber.Transcriber
	renderer    render.Renderer
	metrics     *metrics.Collector
	logger      logger.Logger
	sem         *semaphore
}

// New creates a Service. At most cfg.Performance.MaxConcurrent pipelines run at once.
func New(cfg *config.Config, deps Deps) Service {
	return &implService{
		cfg:         cfg,
		store:       deps.Store,
		synthesizer: deps.Synthesizer,
		transcriber: deps.Transcriber,
		renderer:    deps.Renderer,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		sem:         newSemaphore(cfg.Performance.MaxConcurrent),
	}
}
