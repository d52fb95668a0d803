package synthesizer

import (
	"time"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/llm"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

// Config fixes the model call parameters for both prompts.
type Config struct {
	Model              string
	SlideMaxTokens     int
	SlideTemperature   float32
	TitleMaxTokens     int
	TitleTemperature   float32
	RequestTimeout     time.Duration
	MaxTranscriptWords int
	MaxTitleWords      int
	MinSlides          int
}

// DefaultConfig returns the production call parameters for model.
func DefaultConfig(model string) Config {
	return Config{
		Model:              model,
		SlideMaxTokens:     2000,
		SlideTemperature:   0.5,
		TitleMaxTokens:     50,
		TitleTemperature:   0.3,
		RequestTimeout:     20 * time.Second,
		MaxTranscriptWords: 500,
		MaxTitleWords:      100,
		MinSlides:          5,
	}
}

// ConfigFrom builds a Config from validated application config.
func ConfigFrom(cfg *config.Config) Config {
	s := cfg.Synthesis
	return Config{
		Model:              cfg.LLM.Model,
		SlideMaxTokens:     s.SlideMaxTokens,
		SlideTemperature:   s.SlideTemperature,
		TitleMaxTokens:     s.TitleMaxTokens,
		TitleTemperature:   s.TitleTemperature,
		RequestTimeout:     s.RequestTimeout,
		MaxTranscriptWords: s.MaxTranscriptWords,
		MaxTitleWords:      s.MaxTitleWords,
		MinSlides:          s.MinSlides,
	}
}

type implSynthesizer struct {
	model  llm.Model
	cfg    Config
	logger logger.Logger
}

// New creates a Synthesizer. It holds no per-call state and is safe for
// concurrent use.
func New(model llm.Model, cfg Config, log logger.Logger) Synthesizer {
	return &implSynthesizer{
		model:  model,
		cfg:    cfg,
		logger: log,
	}
}
