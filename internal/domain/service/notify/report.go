package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/internal/domain/service/pricing"
	"tg_giftwatch/internal/domain/service/rarity"
)

const (
	reportTitle = "🎁 New gift received!"

	placeholderSender  = "anonymous"
	placeholderMessage = "—"
	placeholderSlug    = "—"
)

type Line struct {
	Label string
	Value string
}

// Report: готовый к выводу отчёт о подарке.
type Report struct {
	Category entity.Category
	Slug     string
	Lines    []Line
	Lookup   pricing.LookupResult
}

func (r Report) String() string {
	var sb strings.Builder

	sb.WriteString(reportTitle)
	for _, l := range r.Lines {
		sb.WriteString("\n- ")
		if l.Label != "" {
			sb.WriteString(l.Label)
			sb.WriteString(": ")
		}
		sb.WriteString(l.Value)
	}

	return sb.String()
}

// BuildReport раскладывает подарок по полям отчёта и считает цену.
func BuildReport(gift entity.GiftEvent, resolver pricing.Resolver) Report {
	report := Report{
		Category: gift.Category(),
		Slug:     gift.GiftSlug(),
	}

	price, lookup := resolver.Lookup(report.Slug, report.Category)
	report.Lookup = lookup

	switch g := gift.(type) {
	case entity.PlainGift:
		report.Lines = []Line{
			{"Type", "Plain gift"},
			{"ID", strconv.FormatInt(g.ID, 10)},
			{"Slug", slugText(g.Slug)},
			{"Sender", senderText(g.SenderID)},
			{"Message", messageText(g.Message)},
			{"Price", price},
		}
	case entity.SubscriptionGift:
		report.Lines = []Line{
			{"Type", "Premium subscription gift"},
			{"Months", strconv.Itoa(g.Months)},
			{"Slug", slugText(g.Slug)},
			{"Sender", senderText(g.SenderID)},
			{"Message", messageText(g.Message)},
			{"Price", price},
		}
	case entity.CollectibleGift:
		report.Lines = []Line{
			{"Type", fmt.Sprintf("Collectible gift (%s)", rarity.Classify(g))},
			{"ID", strconv.FormatInt(g.ID, 10)},
			{"Slug", slugText(g.Slug)},
			{"Unique", yesNo(g.IsUnique)},
			{"Upgraded", yesNo(g.IsUpgraded)},
			{"Rare", yesNo(g.IsRare)},
			{"Sender", senderText(g.SenderID)},
			{"Message", messageText(g.Message)},
			{"Price", price},
		}
	case entity.UnknownGift:
		report.Lines = []Line{
			{"Unknown gift type", g.Kind},
			{"Slug", slugText(g.Slug)},
			{"Price", price},
		}
	}

	return report
}

func senderText(id int64) string {
	return lo.Ternary(id != 0, strconv.FormatInt(id, 10), placeholderSender)
}

func messageText(message string) string {
	return lo.Ternary(strings.TrimSpace(message) != "", message, placeholderMessage)
}

func slugText(slug string) string {
	return lo.Ternary(slug != "", slug, placeholderSlug)
}

func yesNo(v bool) string {
	return lo.Ternary(v, "Yes", "No")
}
