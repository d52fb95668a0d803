package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type implLogger struct {
	sugar *zap.SugaredLogger
	level zapcore.Level
}

// New creates a console logger writing to stdout. Unknown levels fall back to info.
func New(level string) Logger {
	return NewWithFormat(level, "text")
}

// NewWithFormat is New with an explicit encoding: "json" or "text".
func NewWithFormat(level, format string) Logger {
	lvl := parseLevel(level)

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var enc zapcore.Encoder
	if strings.EqualFold(format, "json") {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), lvl)
	return &implLogger{
		sugar: zap.New(core).Sugar(),
		level: lvl,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() Logger {
	return &implLogger{sugar: zap.NewNop().Sugar(), level: zapcore.FatalLevel}
}

// FromZap adapts an existing zap logger, e.g. zaptest.NewLogger in tests.
func FromZap(l *zap.Logger) Logger {
	return &implLogger{sugar: l.Sugar(), level: zapcore.DebugLevel}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *implLogger) shouldLog(level zapcore.Level) bool {
	return level >= l.level
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if !l.shouldLog(zapcore.DebugLevel) {
		return
	}
	l.sugar.Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.sugar.Errorf(msg, args...)
}
