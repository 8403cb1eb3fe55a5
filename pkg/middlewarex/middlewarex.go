// Package middlewarex holds the chi middlewares of the ops HTTP surface.
package middlewarex

import (
	"log/slog"
	"net/http"

	"tg_giftwatch/pkg/contextx"
	"tg_giftwatch/pkg/logx"
)

const HeaderTraceID = "X-Trace-Id"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Trace takes the trace id from X-Trace-Id (or generates one), echoes it back
// and scopes the request logger with it.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, traceID := contextx.WithTrace(
			r.Context(),
			contextx.TraceID(r.Header.Get(HeaderTraceID)),
			slog.String(logx.FieldURL, r.URL.String()),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		)

		w.Header().Set(HeaderTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
