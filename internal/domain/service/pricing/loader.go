package pricing

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"tg_giftwatch/internal/domain"
	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/pkg/logx"
)

// PriceSource отдаёт прайс-лист подарков одним запросом.
type PriceSource interface {
	GetPriceListings(ctx context.Context) ([]entity.PriceListing, error)
}

type LoadStats struct {
	Loaded  int
	Skipped int
}

// Load строит таблицу цен. При ошибке источника возвращается пустая таблица
// вместе с ошибкой: решение, что делать дальше, остаётся за вызывающим.
func Load(ctx context.Context, source PriceSource) (*Table, LoadStats, error) {
	table := NewTable()

	listings, err := source.GetPriceListings(ctx)
	if err != nil {
		return table, LoadStats{}, domain.ErrPriceListUnavailable.Wrap(err, "fetch price listings")
	}

	// при повторе slug побеждает последняя запись
	valid := lo.Filter(listings, func(l entity.PriceListing, _ int) bool {
		return l.Valid()
	})

	for _, listing := range valid {
		table.put(entity.PriceOption{
			Slug:     listing.Slug,
			Amount:   float64(listing.Amount) / 100,
			Currency: listing.Currency,
		})
	}

	stats := LoadStats{
		Loaded:  table.Len(),
		Skipped: len(listings) - len(valid),
	}

	logger(ctx).Info("price table loaded",
		slog.Int(logx.FieldPriceEntries, stats.Loaded),
		slog.Int("skipped", stats.Skipped),
	)

	return table, stats, nil
}
