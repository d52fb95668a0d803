package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zapcore.Level
	}{
		{"debug level", "debug", zapcore.DebugLevel},
		{"info level", "info", zapcore.InfoLevel},
		{"warn level", "WARN", zapcore.WarnLevel},
		{"error level", "error", zapcore.ErrorLevel},
		{"invalid level", "invalid", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level)
			if assert.NotNil(t, log) {
				assert.Equal(t, tt.want, log.(*implLogger).level)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := FromZap(zaptest.NewLogger(t))

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	NewWithFormat("info", "json").Info(ctx, "json encoded %d", 1)
	NewNop().Error(ctx, "dropped")
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    zapcore.Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", zapcore.DebugLevel, true},
		{"info logs at debug level", "debug", zapcore.InfoLevel, true},
		{"debug doesn't log at info level", "info", zapcore.DebugLevel, false},
		{"info logs at info level", "info", zapcore.InfoLevel, true},
		{"error always logs", "debug", zapcore.ErrorLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			assert.Equal(t, tt.shouldLog, log.shouldLog(tt.logLevel))
		})
	}
}
