package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"tg_giftwatch/pkg/errcodes"
	"tg_giftwatch/pkg/httpx/reply"
	"tg_giftwatch/pkg/logx"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			ctx := r.Context()

			logger(ctx).Error("panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Error(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}
