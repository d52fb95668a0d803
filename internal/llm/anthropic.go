package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

type anthropicModel struct {
	client anthropic.Client
	logger logger.Logger
}

func newAnthropic(apiKey string, timeout time.Duration, maxRetries int, log logger.Logger) *anthropicModel {
	return &anthropicModel{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
			option.WithMaxRetries(maxRetries),
		),
		logger: log,
	}
}

func (m *anthropicModel) Name() string { return "anthropic" }

func (m *anthropicModel) Generate(ctx context.Context, req Request) (string, error) {
	m.logger.Debug(ctx, "%s request: model=%s max_tokens=%d temperature=%.2f", m.Name(), req.Model, req.MaxOutputTokens, req.Temperature)

	msg, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(req.Model),
		MaxTokens:   int64(req.MaxOutputTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		status := 0
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return "", classify(m.Name(), status, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &Error{Code: ErrEmptyResponse, Provider: m.Name()}
	}
	return sb.String(), nil
}
