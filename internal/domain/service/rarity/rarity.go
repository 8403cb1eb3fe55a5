package rarity

import "tg_giftwatch/internal/domain/entity"

const (
	LabelUniqueUpgraded    = "Unique (upgraded)"
	LabelUniqueNotUpgraded = "Unique (not upgraded)"
	LabelRare              = "Rare"
	LabelCommon            = "Common"
)

// Classify определяет тип коллекционного подарка. Порядок проверок важен:
// уникальность проверяется раньше редкости, поэтому уникальный редкий
// подарок никогда не получит метку "Rare".
func Classify(gift entity.CollectibleGift) string {
	switch {
	case gift.IsUnique && gift.IsUpgraded:
		return LabelUniqueUpgraded
	case gift.IsUnique:
		return LabelUniqueNotUpgraded
	case gift.IsRare:
		return LabelRare
	default:
		return LabelCommon
	}
}

// IsRareSupply: редкий тираж: известен и не больше порога.
func IsRareSupply(total, threshold int) bool {
	return total > 0 && total <= threshold
}
