package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"
	"github.com/samber/lo"

	"tg_giftwatch/internal/domain/entity"
)

const requestTimeout = 15 * time.Second

// GetPriceListings собирает прайс-лист из двух запросов: варианты подарка
// Premium и каталог подарков за звёзды. Ошибка любого из них — ошибка всего
// прайс-листа.
func (c *Client) GetPriceListings(ctx context.Context) ([]entity.PriceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	options, err := c.api.PaymentsGetPremiumGiftCodeOptions(ctx, &tg.PaymentsGetPremiumGiftCodeOptionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch premium gift options: %w", err)
	}

	catalogRaw, err := c.api.PaymentsGetStarGifts(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gift catalog: %w", err)
	}

	catalog, err := catalogListings(catalogRaw)
	if err != nil {
		return nil, err
	}

	return append(premiumListings(options), catalog...), nil
}

// premiumListings — только варианты для одного получателя, остальные
// (подарочные коды на группу) к входящему подарку не относятся.
func premiumListings(options []tg.PremiumGiftCodeOption) []entity.PriceListing {
	single := lo.Filter(options, func(opt tg.PremiumGiftCodeOption, _ int) bool {
		return opt.Users == 1
	})

	return lo.Map(single, func(opt tg.PremiumGiftCodeOption, _ int) entity.PriceListing {
		return entity.PriceListing{
			Slug:     entity.PremiumSlug(opt.Months),
			Amount:   opt.Amount,
			Currency: opt.Currency,
		}
	})
}

// catalogListings переводит цены каталога в сотые доли звезды.
func catalogListings(resRaw tg.PaymentsStarGiftsClass) ([]entity.PriceListing, error) {
	var giftsInterfaces []tg.StarGiftClass
	switch res := resRaw.(type) {
	case *tg.PaymentsStarGifts:
		giftsInterfaces = res.Gifts
	case *tg.PaymentsStarGiftsNotModified:
		return []entity.PriceListing{}, nil
	default:
		return nil, fmt.Errorf("unexpected response type: %T", resRaw)
	}

	result := make([]entity.PriceListing, 0, len(giftsInterfaces))

	for _, gRaw := range giftsInterfaces {
		g, ok := gRaw.(*tg.StarGift)
		if !ok {
			continue
		}

		result = append(result, entity.PriceListing{
			Slug:     entity.StarGiftSlug(g.ID, g.Title),
			Amount:   g.Stars * 100,
			Currency: entity.StarsCurrency,
		})
	}

	return result, nil
}
