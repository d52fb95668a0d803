package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

// openaiModel talks to OpenAI or any compatible endpoint set by baseURL.
type openaiModel struct {
	client *openai.Client
	logger logger.Logger
}

func newOpenAI(apiKey, baseURL string, timeout time.Duration, log logger.Logger) *openaiModel {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &openaiModel{
		client: openai.NewClientWithConfig(cfg),
		logger: log,
	}
}

func (m *openaiModel) Name() string { return "openai" }

func (m *openaiModel) Generate(ctx context.Context, req Request) (string, error) {
	m.logger.Debug(ctx, "%s request: model=%s max_tokens=%d temperature=%.2f", m.Name(), req.Model, req.MaxOutputTokens, req.Temperature)

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		MaxTokens:   req.MaxOutputTokens,
		Temperature: req.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		status := 0
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.HTTPStatusCode
		}
		return "", classify(m.Name(), status, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &Error{Code: ErrEmptyResponse, Provider: m.Name()}
	}
	return resp.Choices[0].Message.Content, nil
}
