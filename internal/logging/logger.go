package logging

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type requestIDKey struct{}

// New builds the process logger. Development environments get the console
// encoder, everything else JSON.
func New(level, env string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(env, "development") {
		cfg = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// WithRequestID stores the request id for Logger to pick up.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the request id stored in ctx, or "".
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request-scoped logging for handlers and services.
type Logger struct {
	base      *zap.Logger
	requestID string
}

// For creates a logger carrying the request id found in ctx.
func For(ctx context.Context, base *zap.Logger) *Logger {
	rid := RequestID(ctx)
	if rid == "" {
		rid = "unknown"
	}
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{base: base, requestID: rid}
}

func (l *Logger) fields(operation string, extra []zap.Field) []zap.Field {
	return append([]zap.Field{
		zap.String("request_id", l.requestID),
		zap.String("operation", operation),
	}, extra...)
}

func (l *Logger) LogInfo(operation, message string, fields ...zap.Field) {
	l.base.Info(message, l.fields(operation, fields)...)
}

func (l *Logger) LogWarn(operation, message string, fields ...zap.Field) {
	l.base.Warn(message, l.fields(operation, fields)...)
}

func (l *Logger) LogError(operation string, err error, fields ...zap.Field) {
	l.base.Error("operation failed", l.fields(operation, append(fields, zap.Error(err)))...)
}
