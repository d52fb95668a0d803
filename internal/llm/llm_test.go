package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/slide-flow/internal/config"
	"github.com/nguyentantai21042004/slide-flow/internal/logger"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   ErrorCode
	}{
		{"deadline", 0, fmt.Errorf("post: %w", context.DeadlineExceeded), ErrTimeout},
		{"timeout text", 0, errors.New("Client.Timeout exceeded while awaiting headers"), ErrTimeout},
		{"401", http.StatusUnauthorized, errors.New("bad"), ErrUnauthorized},
		{"api key text", 0, errors.New("invalid x-api-key: check api_key"), ErrUnauthorized},
		{"429", http.StatusTooManyRequests, errors.New("slow down"), ErrRateLimited},
		{"quota text", 0, errors.New("RESOURCE_EXHAUSTED: quota exceeded"), ErrRateLimited},
		{"other", http.StatusInternalServerError, errors.New("boom"), ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("test", tt.status, tt.err)
			assert.Equal(t, tt.want, got.Code)
			assert.ErrorIs(t, got, tt.err)
			assert.True(t, IsCode(fmt.Errorf("wrapped: %w", got), tt.want))
		})
	}
}

func TestNew(t *testing.T) {
	log := logger.NewNop()

	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{"anthropic", "anthropic", false},
		{"gemini", "gemini", false},
		{"openai", "openai", false},
		{"bard", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			m, err := New(config.LLMConfig{
				Provider: tt.provider,
				APIKeys:  []string{"k"},
				Timeout:  time.Second,
			}, log)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name())
		})
	}
}

func TestNewWithoutKeys(t *testing.T) {
	_, err := New(config.LLMConfig{Provider: "gemini"}, logger.NewNop())
	assert.Error(t, err)
}

func TestGeminiRotateKey(t *testing.T) {
	m := newGemini([]string{"a", "b", "c"}, time.Second, logger.NewNop())

	m.rotateKey(0)
	assert.Equal(t, 1, m.currentKey)

	// stale rotation from a concurrent call is ignored
	m.rotateKey(0)
	assert.Equal(t, 1, m.currentKey)

	m.rotateKey(1)
	m.rotateKey(2)
	assert.Equal(t, 0, m.currentKey)
}
