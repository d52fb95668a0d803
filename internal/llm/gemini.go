package llm

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

// geminiModel rotates through its API keys when one is rate limited.
type geminiModel struct {
	apiKeys []string
	timeout time.Duration
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
	clients    map[string]*genai.Client
}

func newGemini(apiKeys []string, timeout time.Duration, log logger.Logger) *geminiModel {
	return &geminiModel{
		apiKeys: apiKeys,
		timeout: timeout,
		logger:  log,
		clients: make(map[string]*genai.Client),
	}
}

func (m *geminiModel) Name() string { return "gemini" }

func (m *geminiModel) Generate(ctx context.Context, req Request) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}

	var lastErr error
	for range len(m.apiKeys) {
		idx, client, err := m.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			m.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
		if err != nil {
			classified := classify(m.Name(), 0, err)
			if classified.Code == ErrRateLimited {
				m.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				m.rotateKey(idx)
				lastErr = classified
				continue
			}
			return "", classified
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text != "" {
				return text, nil
			}
		}
		return "", &Error{Code: ErrEmptyResponse, Provider: m.Name()}
	}

	return "", &Error{Code: ErrRateLimited, Provider: m.Name(), Err: fmt.Errorf("all API keys exhausted: %w", lastErr)}
}

// client returns the client for the current key, creating it on first use.
func (m *geminiModel) client(ctx context.Context) (int, *genai.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.currentKey
	key := m.apiKeys[idx]
	if c, ok := m.clients[key]; ok {
		return idx, c, nil
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     key,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: m.timeout},
	})
	if err != nil {
		return idx, nil, err
	}
	m.clients[key] = c
	return idx, c, nil
}

// rotateKey moves past idx unless another call already rotated.
func (m *geminiModel) rotateKey(idx int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.currentKey == idx {
		m.currentKey = (m.currentKey + 1) % len(m.apiKeys)
	}
}
