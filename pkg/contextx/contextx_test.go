package contextx_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_giftwatch/pkg/contextx"
)

func TestFromEmptyContext(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.Empty(traceID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.EqualError(err, "trace id: no value in context")

	logger, err := contextx.LoggerFromContext(ctx)
	rq.Nil(logger)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.EqualError(err, "logger: no value in context")

	rq.Same(slog.Default(), contextx.LoggerFromContextOrDefault(ctx))
}

func TestValuesDoNotCollide(t *testing.T) {
	rq := require.New(t)

	testLogger := slog.New(slog.DiscardHandler)

	ctx := contextx.WithTraceID(context.Background(), "gift-1")
	ctx = contextx.WithLogger(ctx, testLogger)

	traceID, err := contextx.TraceIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.TraceID("gift-1"), traceID)

	logger, err := contextx.LoggerFromContext(ctx)
	rq.NoError(err)
	rq.Same(testLogger, logger)
}

func TestWithTrace(t *testing.T) {
	testCases := []struct {
		name    string
		traceID contextx.TraceID
		check   func(rq *require.Assertions, got contextx.TraceID)
	}{
		{
			name:    "keeps given trace id",
			traceID: "from-header",
			check: func(rq *require.Assertions, got contextx.TraceID) {
				rq.Equal(contextx.TraceID("from-header"), got)
			},
		},
		{
			name: "generates trace id when empty",
			check: func(rq *require.Assertions, got contextx.TraceID) {
				const xidLen = 20

				rq.Len(got.String(), xidLen)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

			ctx, traceID := contextx.WithTrace(ctx, tc.traceID, slog.String("sink", "console"))
			tc.check(rq, traceID)

			stored, err := contextx.TraceIDFromContext(ctx)
			rq.NoError(err)
			rq.Equal(traceID, stored)

			contextx.LoggerFromContextOrDefault(ctx).Info("gift received")

			rq.Contains(buf.String(), "trace-id="+traceID.String())
			rq.Contains(buf.String(), "sink=console")
		})
	}
}
