package middlewarex

import (
	"bytes"
	"cmp"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"tg_giftwatch/pkg/logx"
)

// AccessLog пишет один debug-лог на запрос: дамп запроса, статус, заголовки
// и тело ответа, пропущенные через masker и обрезанные до maxLen.
func AccessLog(masker logx.SensitiveDataMaskerInterface, maxLen int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			reqDump, err := httputil.DumpRequest(r, true)
			if err != nil {
				logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
			}

			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			var headers bytes.Buffer

			if err := w.Header().WriteSubset(&headers, nil); err != nil {
				logger(ctx).Error("header.WriteSubset", logx.Error(err))
			}

			// Status() == 0, если хэндлер не вызывал WriteHeader.
			status := cmp.Or(lw.Status(), http.StatusOK)

			logger(ctx).Debug(logx.FieldHTTPResponse,
				slog.String(logx.FieldRequestBody, logx.Dump(masker, reqDump, maxLen)),
				slog.Int(logx.FieldResponseStatus, status),
				slog.String(logx.FieldResponseHeaders, logx.Dump(masker, headers.Bytes(), maxLen)),
				slog.String(logx.FieldResponseBody, logx.Dump(masker, body.Bytes(), maxLen)),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}
