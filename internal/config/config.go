package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Synthesis   SynthesisConfig   `yaml:"synthesis"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Database    DatabaseConfig    `yaml:"database"`
	Server      ServerConfig      `yaml:"server"`
	Render      RenderConfig      `yaml:"render"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

// LLMConfig selects and configures the generative text backend.
type LLMConfig struct {
	Provider string   `yaml:"provider"` // anthropic, gemini, openai
	Model    string   `yaml:"model"`
	APIKeys  []string `yaml:"api_keys"`
	BaseURL  string   `yaml:"base_url"`
	// Timeout is the connection-level bound; synthesis.request_timeout must be shorter.
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

type SynthesisConfig struct {
	SlideMaxTokens     int           `yaml:"slide_max_tokens"`
	SlideTemperature   float32       `yaml:"slide_temperature"`
	TitleMaxTokens     int           `yaml:"title_max_tokens"`
	TitleTemperature   float32       `yaml:"title_temperature"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	MaxTranscriptWords int           `yaml:"max_transcript_words"`
	MaxTitleWords      int           `yaml:"max_title_words"`
	MinSlides          int           `yaml:"min_slides"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Uploads  string `yaml:"uploads"`
	Exports  string `yaml:"exports"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type RenderConfig struct {
	ChromeBin string `yaml:"chrome_bin"`
	// Headless defaults to true; set false only to debug PDF layout.
	Headless *bool `yaml:"headless"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// DefaultModels per provider.
var DefaultModels = map[string]string{
	"anthropic": "claude-sonnet-4-20250514",
	"gemini":    "gemini-2.5-flash",
	"openai":    "gpt-4o-mini",
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "anthropic"
	}
	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	model, ok := DefaultModels[c.LLM.Provider]
	if !ok {
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		c.LLM.Model = model
	}
	if len(c.LLM.APIKeys) == 0 {
		return fmt.Errorf("llm.api_keys is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Exports == "" {
		return fmt.Errorf("paths.exports is required")
	}

	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}
	if c.LLM.MaxRetries == 0 {
		c.LLM.MaxRetries = 2
	}

	s := &c.Synthesis
	if s.SlideMaxTokens == 0 {
		s.SlideMaxTokens = 2000
	}
	if s.SlideTemperature == 0 {
		s.SlideTemperature = 0.5
	}
	if s.TitleMaxTokens == 0 {
		s.TitleMaxTokens = 50
	}
	if s.TitleTemperature == 0 {
		s.TitleTemperature = 0.3
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = 20 * time.Second
	}
	if s.MaxTranscriptWords == 0 {
		s.MaxTranscriptWords = 500
	}
	if s.MaxTitleWords == 0 {
		s.MaxTitleWords = 100
	}
	if s.MinSlides == 0 {
		s.MinSlides = 5
	}
	if s.RequestTimeout >= c.LLM.Timeout {
		return fmt.Errorf("synthesis.request_timeout (%s) must be shorter than llm.timeout (%s)",
			s.RequestTimeout, c.LLM.Timeout)
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}

	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "data/uploads"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/slideflow.db"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 2 * time.Minute
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// IsHeadless reports whether the PDF browser runs headless.
func (r RenderConfig) IsHeadless() bool {
	return r.Headless == nil || *r.Headless
}
