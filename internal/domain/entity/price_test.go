package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tg_giftwatch/internal/domain/entity"
)

func TestStarGiftSlug(t *testing.T) {
	rq := require.New(t)

	rq.Equal("PlushPepe", entity.StarGiftSlug(1, "Plush Pepe"))
	rq.Equal("JackintheBox", entity.StarGiftSlug(1, "Jack-in-the-Box"))
	rq.Equal("5170145012310081615", entity.StarGiftSlug(5170145012310081615, ""))
	rq.Equal("5170145012310081615", entity.StarGiftSlug(5170145012310081615, " ! "))
}

func TestUniqueSlugBase(t *testing.T) {
	rq := require.New(t)

	rq.Equal("PlushPepe", entity.UniqueSlugBase("PlushPepe-1234"))
	rq.Equal("PlushPepe", entity.UniqueSlugBase("PlushPepe"))
	rq.Equal("", entity.UniqueSlugBase(""))
}

func TestPriceListingValid(t *testing.T) {
	rq := require.New(t)

	rq.True(entity.PriceListing{Slug: "premium-3m", Amount: 1199, Currency: "USD"}.Valid())
	rq.False(entity.PriceListing{Amount: 1199, Currency: "USD"}.Valid())
	rq.False(entity.PriceListing{Slug: "premium-3m", Amount: 1199}.Valid())
	rq.False(entity.PriceListing{Slug: "premium-3m", Currency: "USD"}.Valid())
}

func TestPremiumSlug(t *testing.T) {
	require.Equal(t, "premium-12m", entity.PremiumSlug(12))
}
