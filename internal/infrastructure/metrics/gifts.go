package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/internal/domain/service/pricing"
)

const namespace = "giftwatch"

type GiftMetrics struct {
	gifts        *prometheus.CounterVec
	lookups      *prometheus.CounterVec
	tableEntries prometheus.Gauge
}

func NewGiftMetrics(registerer prometheus.Registerer) *GiftMetrics {
	m := &GiftMetrics{
		gifts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gifts_total",
			Help:      "Received gifts by category.",
		}, []string{"category"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_lookups_total",
			Help:      "Price lookups by result.",
		}, []string{"result"}),
		tableEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "price_table_entries",
			Help:      "Entries in the price table loaded at startup.",
		}),
	}

	registerer.MustRegister(m.gifts, m.lookups, m.tableEntries)

	return m
}

func (m *GiftMetrics) GiftReceived(category entity.Category) {
	m.gifts.WithLabelValues(category.String()).Inc()
}

func (m *GiftMetrics) PriceLookup(result pricing.LookupResult) {
	m.lookups.WithLabelValues(string(result)).Inc()
}

func (m *GiftMetrics) PriceTableLoaded(entries int) {
	m.tableEntries.Set(float64(entries))
}
