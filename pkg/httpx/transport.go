// Package httpx holds outbound HTTP helpers.
package httpx

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"tg_giftwatch/pkg/contextx"
	"tg_giftwatch/pkg/logx"
)

// LoggingTransport is an http.RoundTripper that writes one debug record per
// exchange with the masked request and response dumps.
type LoggingTransport struct {
	// Next defaults to http.DefaultTransport.
	Next http.RoundTripper
	// Masker may be nil.
	Masker logx.SensitiveDataMaskerInterface
	// MaxLen limits every dump field, 0 means no limit.
	MaxLen int
}

// NewClient returns an http.Client that logs through a LoggingTransport.
func NewClient(masker logx.SensitiveDataMaskerInterface, maxLen int) *http.Client {
	return &http.Client{
		Transport: LoggingTransport{Masker: masker, MaxLen: maxLen},
	}
}

// RoundTrip implements http.RoundTripper.
func (t LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, _ := contextx.WithTrace(req.Context(), "")
	log := logger(ctx).With(slog.String(logx.FieldHTTPMethod, req.Method))

	reqDump, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		log.Error("httputil.DumpRequestOut", logx.Error(err))
	}

	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}

	start := time.Now()

	resp, err := next.RoundTrip(req)
	if err != nil {
		log.Error(logx.FieldHTTPRequest,
			slog.String(logx.FieldRequestBody, logx.Dump(t.Masker, reqDump, t.MaxLen)),
			logx.Error(err),
		)

		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	respDump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		log.Error("httputil.DumpResponse", logx.Error(err))
	}

	log.Debug(logx.FieldHTTPResponse,
		slog.String(logx.FieldRequestBody, logx.Dump(t.Masker, reqDump, t.MaxLen)),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
		slog.String(logx.FieldResponseBody, logx.Dump(t.Masker, respDump, t.MaxLen)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)

	return resp, nil
}
