package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"tg_giftwatch/internal/domain"
	"tg_giftwatch/internal/domain/entity"
)

type stubSource struct {
	listings []entity.PriceListing
	err      error
}

func (s stubSource) GetPriceListings(context.Context) ([]entity.PriceListing, error) {
	return s.listings, s.err
}

func tableOf(options ...entity.PriceOption) *Table {
	table := NewTable()
	for _, o := range options {
		table.put(o)
	}
	return table
}

func TestLoad(t *testing.T) {
	rq := require.New(t)

	source := stubSource{listings: []entity.PriceListing{
		{Slug: "premium-3m", Amount: 1199, Currency: "USD"},
		{Slug: "premium-6m", Amount: 1599, Currency: "EUR"},
		{Slug: "PlushPepe", Amount: 15000, Currency: entity.StarsCurrency},
		{Slug: "", Amount: 100, Currency: "USD"},
		{Slug: "premium-12m", Amount: 2999},
		{Slug: "DeskCalendar", Currency: entity.StarsCurrency},
	}}

	table, stats, err := Load(context.Background(), source)
	rq.NoError(err)
	rq.Equal(LoadStats{Loaded: 3, Skipped: 3}, stats)
	rq.Equal(3, table.Len())

	option, ok := table.Lookup("premium-3m")
	rq.True(ok)
	rq.Equal(entity.PriceOption{Slug: "premium-3m", Amount: 11.99, Currency: "USD"}, option)

	option, ok = table.Lookup("PlushPepe")
	rq.True(ok)
	rq.InDelta(150.0, option.Amount, 1e-9)

	_, ok = table.Lookup("premium-12m")
	rq.False(ok)
}

func TestLoadSourceError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection reset")

	table, stats, err := Load(context.Background(), stubSource{err: cause})
	rq.Error(err)
	rq.ErrorIs(err, cause)

	rq.ErrorIs(err, domain.ErrPriceListUnavailable)

	rq.NotNil(table)
	rq.Zero(table.Len())
	rq.Equal(LoadStats{}, stats)

	rq.Equal(PriceNotFound, NewResolver(table).Resolve("premium-3m", entity.CategorySubscription))
}

func TestResolve(t *testing.T) {
	table := tableOf(
		entity.PriceOption{Slug: "PlushPepe", Amount: 150.0, Currency: entity.StarsCurrency},
		entity.PriceOption{Slug: "DeskCalendar", Amount: 150.99, Currency: entity.StarsCurrency},
		entity.PriceOption{Slug: "premium-3m", Amount: 4.5, Currency: "USD"},
	)
	resolver := NewResolver(table)

	testCases := []struct {
		name     string
		slug     string
		category entity.Category
		price    string
		result   LookupResult
	}{
		{
			name:     "Plain gift is free even when priced",
			slug:     "PlushPepe",
			category: entity.CategoryPlain,
			price:    PriceFree,
			result:   LookupFree,
		},
		{
			name:     "Plain gift without slug",
			category: entity.CategoryPlain,
			price:    PriceFree,
			result:   LookupFree,
		},
		{
			name:     "Stars",
			slug:     "PlushPepe",
			category: entity.CategoryCollectible,
			price:    "150 Stars",
			result:   LookupFound,
		},
		{
			name:     "Stars are truncated",
			slug:     "DeskCalendar",
			category: entity.CategoryCollectible,
			price:    "150 Stars",
			result:   LookupFound,
		},
		{
			name:     "Fiat with two decimals",
			slug:     "premium-3m",
			category: entity.CategorySubscription,
			price:    "4.50 USD",
			result:   LookupFound,
		},
		{
			name:     "Unknown slug",
			slug:     "premium-24m",
			category: entity.CategorySubscription,
			price:    PriceNotFound,
			result:   LookupNotFound,
		},
		{
			name:     "Absent slug",
			category: entity.CategoryUnknown,
			price:    PriceNotFound,
			result:   LookupNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			price, result := resolver.Lookup(tc.slug, tc.category)
			rq.Equal(tc.price, price)
			rq.Equal(tc.result, result)
			rq.Equal(tc.price, resolver.Resolve(tc.slug, tc.category))
		})
	}
}

func TestResolverNilTable(t *testing.T) {
	require.Equal(t, PriceNotFound, NewResolver(nil).Resolve("premium-3m", entity.CategorySubscription))
}

func TestTableSnapshot(t *testing.T) {
	rq := require.New(t)

	table := tableOf(
		entity.PriceOption{Slug: "premium-6m", Amount: 15.99, Currency: "USD"},
		entity.PriceOption{Slug: "PlushPepe", Amount: 150, Currency: entity.StarsCurrency},
		entity.PriceOption{Slug: "premium-3m", Amount: 11.99, Currency: "USD"},
	)

	snapshot := table.Snapshot()
	rq.Len(snapshot, 3)
	rq.Equal("PlushPepe", snapshot[0].Slug)
	rq.Equal("premium-3m", snapshot[1].Slug)
	rq.Equal("premium-6m", snapshot[2].Slug)

	rq.Empty(NewTable().Snapshot())
}
