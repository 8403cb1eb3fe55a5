package pricing

import (
	"cmp"
	"slices"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"tg_giftwatch/internal/domain/entity"
)

// Table — таблица цен slug -> PriceOption. Заполняется один раз в Load,
// дальше только читается.
type Table struct {
	items *cache.Cache
}

// NewTable возвращает пустую таблицу: все поиски в ней промахиваются.
func NewTable() *Table {
	return &Table{
		items: cache.New(cache.NoExpiration, 0),
	}
}

func (t *Table) put(option entity.PriceOption) {
	t.items.Set(option.Slug, option, cache.NoExpiration)
}

func (t *Table) Lookup(slug string) (entity.PriceOption, bool) {
	if slug == "" {
		return entity.PriceOption{}, false
	}

	v, ok := t.items.Get(slug)
	if !ok {
		return entity.PriceOption{}, false
	}

	option, ok := v.(entity.PriceOption)
	return option, ok
}

func (t *Table) Len() int {
	return t.items.ItemCount()
}

// Snapshot возвращает копию всех записей, отсортированную по slug.
func (t *Table) Snapshot() []entity.PriceOption {
	result := lo.FilterMap(lo.Values(t.items.Items()), func(item cache.Item, _ int) (entity.PriceOption, bool) {
		option, ok := item.Object.(entity.PriceOption)
		return option, ok
	})

	slices.SortFunc(result, func(a, b entity.PriceOption) int {
		return cmp.Compare(a.Slug, b.Slug)
	})

	return result
}
