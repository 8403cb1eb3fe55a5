package reply

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"tg_giftwatch/pkg/contextx"
	"tg_giftwatch/pkg/errcodes"
	"tg_giftwatch/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error replies with the error envelope; supportId is the request trace id.
func Error(ctx context.Context, w http.ResponseWriter, statusCode int, code errcodes.Code, message string) {
	JSON(ctx, w, statusCode, errorResponse{
		Code:      code.String(),
		Message:   message,
		SupportID: supportID(ctx),
	})
}

func Unavailable(ctx context.Context, w http.ResponseWriter, code errcodes.Code, message string) {
	Error(ctx, w, http.StatusServiceUnavailable, code, message)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
