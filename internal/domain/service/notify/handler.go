package notify

import (
	"context"
	"log/slog"

	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/internal/domain/service/pricing"
	"tg_giftwatch/pkg/contextx"
	"tg_giftwatch/pkg/logx"
)

// Sink: куда выводится отчёт (консоль, бот).
type Sink interface {
	Name() string
	Send(ctx context.Context, report Report) error
}

type Metrics interface {
	GiftReceived(category entity.Category)
	PriceLookup(result pricing.LookupResult)
}

type nopMetrics struct{}

func (nopMetrics) GiftReceived(entity.Category) {}
func (nopMetrics) PriceLookup(pricing.LookupResult) {}

// Handler обрабатывает каждый входящий подарок: строит отчёт и отдаёт его
// во все sink'и. Ошибки sink'ов только логируются.
type Handler struct {
	resolver pricing.Resolver
	sinks    []Sink
	metrics  Metrics
}

func NewHandler(resolver pricing.Resolver, sinks ...Sink) *Handler {
	return &Handler{
		resolver: resolver,
		sinks:    sinks,
		metrics:  nopMetrics{},
	}
}

func (h *Handler) WithMetrics(m Metrics) *Handler {
	h.metrics = m
	return h
}

func (h *Handler) Handle(ctx context.Context, gift entity.GiftEvent) {
	ctx, _ = contextx.WithTrace(ctx, "")

	report := BuildReport(gift, h.resolver)

	h.metrics.GiftReceived(report.Category)
	h.metrics.PriceLookup(report.Lookup)

	logger(ctx).Debug("gift received",
		logx.Stringer(logx.FieldGiftCategory, report.Category),
		slog.String(logx.FieldGiftSlug, report.Slug),
	)

	for _, sink := range h.sinks {
		if err := sink.Send(ctx, report); err != nil {
			logger(ctx).Error("failed to send gift report",
				slog.String(logx.FieldSink, sink.Name()),
				logx.Error(err),
			)
		}
	}
}
