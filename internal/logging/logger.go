package logging

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const loggerKey = contextKey("logger")

const defaultLevel = "info"

var (
	defaultLogger     *zap.SugaredLogger
	defaultLoggerOnce sync.Once
)

func DefaultLogger() *zap.SugaredLogger {
	defaultLoggerOnce.Do(func() {
		logger, err := NewLogger("denom", defaultLevel)
		if err != nil {
			logger = zap.NewNop().Sugar()
		}
		defaultLogger = logger
	})
	return defaultLogger
}

// NewLogger builds a console logger named after the tool with the given level (debug, info, warn, error)
func NewLogger(name, level string) (*zap.SugaredLogger, error) {
	if level == "" {
		level = defaultLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return logger.Named(name).Sugar(), nil
}

func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return logger
	}
	return DefaultLogger()
}
