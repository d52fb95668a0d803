package llm

import (
	"fmt"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

// New builds the Model selected by cfg.Provider.
func New(cfg config.LLMConfig, log logger.Logger) (Model, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no API key configured for %s", cfg.Provider)
	}

	switch cfg.Provider {
	case "anthropic", "":
		return newAnthropic(cfg.APIKeys[0], cfg.Timeout, cfg.MaxRetries, log), nil
	case "gemini":
		return newGemini(cfg.APIKeys, cfg.Timeout, log), nil
	case "openai":
		return newOpenAI(cfg.APIKeys[0], cfg.BaseURL, cfg.Timeout, log), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", cfg.Provider)
	}
}
