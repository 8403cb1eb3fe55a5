package pricing

import (
	"fmt"

	"tg_giftwatch/internal/domain/entity"
)

const (
	PriceFree     = "Free (0)"
	PriceNotFound = "(price not found)"
)

// LookupResult: исход поиска цены, нужен для метрик.
type LookupResult string

const (
	LookupFree     LookupResult = "free"
	LookupFound    LookupResult = "found"
	LookupNotFound LookupResult = "not_found"
)

type Resolver struct {
	table *Table
}

func NewResolver(table *Table) Resolver {
	if table == nil {
		table = NewTable()
	}

	return Resolver{table: table}
}

// Resolve возвращает цену подарка в виде строки для отчёта.
func (r Resolver) Resolve(slug string, category entity.Category) string {
	price, _ := r.Lookup(slug, category)
	return price
}

func (r Resolver) Lookup(slug string, category entity.Category) (string, LookupResult) {
	if category == entity.CategoryPlain {
		return PriceFree, LookupFree
	}

	option, ok := r.table.Lookup(slug)
	if !ok {
		return PriceNotFound, LookupNotFound
	}

	return FormatPrice(option), LookupFound
}

// FormatPrice: звёзды целым числом с отбрасыванием дробной части,
// остальные валюты с двумя знаками после запятой.
func FormatPrice(option entity.PriceOption) string {
	if option.IsStars() {
		return fmt.Sprintf("%d Stars", int64(option.Amount))
	}

	return fmt.Sprintf("%.2f %s", option.Amount, option.Currency)
}
