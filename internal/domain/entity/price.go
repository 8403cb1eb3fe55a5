package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// StarsCurrency: код внутренней валюты Telegram (звёзды).
const StarsCurrency = "XTR"

// PriceListing: сырая запись прайс-листа. Amount в сотых долях валюты.
type PriceListing struct {
	Slug     string
	Amount   int64
	Currency string
}

func (l PriceListing) Valid() bool {
	return l.Slug != "" && l.Currency != "" && l.Amount > 0
}

// PriceOption: запись таблицы цен.
type PriceOption struct {
	Slug     string  `json:"slug"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (o PriceOption) IsStars() bool {
	return o.Currency == StarsCurrency
}

// PremiumSlug: ключ цены для подарка Premium на months месяцев.
func PremiumSlug(months int) string {
	return fmt.Sprintf("premium-%dm", months)
}

// StarGiftSlug: ключ цены для подарка из каталога: заголовок без пробелов и
// знаков препинания (так же Telegram строит slug уникальных подарков).
func StarGiftSlug(id int64, title string) string {
	slug := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, title)

	if slug == "" {
		return strconv.FormatInt(id, 10)
	}

	return slug
}

var uniqueSlugNum = regexp.MustCompile(`-\d+$`) //nolint:gochecknoglobals

// UniqueSlugBase отрезает номер экземпляра: "PlushPepe-1234" -> "PlushPepe".
func UniqueSlugBase(slug string) string {
	return uniqueSlugNum.ReplaceAllString(slug, "")
}
