// Package contextx carries the per-event logger and trace id through a context.
package contextx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/xid"
)

const fieldTraceID = "trace-id"

type TraceID string

func (t TraceID) String() string {
	return string(t)
}

// NewTraceID returns a fresh, sortable trace id.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

type contextKey[T any] struct{}

func withValue[T any](ctx context.Context, value T) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, value)
}

func valueFrom[T any](ctx context.Context, name string) (T, error) {
	value, ok := ctx.Value(contextKey[T]{}).(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, ErrNoValue)
	}

	return value, nil
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return withValue(ctx, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	return valueFrom[TraceID](ctx, "trace id")
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return withValue(ctx, logger)
}

func LoggerFromContext(ctx context.Context) (*slog.Logger, error) {
	return valueFrom[*slog.Logger](ctx, "logger")
}

// LoggerFromContextOrDefault returns the scoped logger or slog.Default.
func LoggerFromContextOrDefault(ctx context.Context) *slog.Logger {
	logger, err := LoggerFromContext(ctx)
	if err != nil {
		return slog.Default()
	}

	return logger
}

// WithTrace stores traceID and tags the scoped logger with it.
// An empty traceID is replaced with a new one.
func WithTrace(ctx context.Context, traceID TraceID, attrs ...any) (context.Context, TraceID) {
	if traceID == "" {
		traceID = NewTraceID()
	}

	logger := LoggerFromContextOrDefault(ctx).With(slog.String(fieldTraceID, traceID.String()))
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}

	ctx = WithTraceID(ctx, traceID)

	return WithLogger(ctx, logger), traceID
}
