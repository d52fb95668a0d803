package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// applyEnv lets secrets and deployment paths stay out of the YAML file.
func applyEnv(cfg *Config) {
	provider := strings.ToLower(cfg.LLM.Provider)
	if provider == "" {
		provider = "anthropic"
	}

	var keyVar string
	switch provider {
	case "anthropic":
		keyVar = "ANTHROPIC_API_KEY"
	case "gemini":
		keyVar = "GEMINI_API_KEYS"
	case "openai":
		keyVar = "OPENAI_API_KEY"
	}
	if v := os.Getenv(keyVar); keyVar != "" && v != "" {
		cfg.LLM.APIKeys = splitKeys(v)
	}

	if v := os.Getenv("SLIDEFLOW_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("SLIDEFLOW_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}

func splitKeys(v string) []string {
	var keys []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
