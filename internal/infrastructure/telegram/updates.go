package telegram

import (
	"github.com/gotd/td/tg"

	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/internal/domain/service/rarity"
)

// GiftMapper переводит сервисные сообщения о подарках в entity.GiftEvent.
type GiftMapper struct {
	RareSupply int
}

// Map возвращает false, если сообщение не про полученный подарок.
func (m GiftMapper) Map(msg *tg.MessageService) (entity.GiftEvent, bool) {
	if msg.Out {
		return nil, false
	}

	meta := entity.GiftMeta{SenderID: senderID(msg)}

	switch action := msg.Action.(type) {
	case *tg.MessageActionStarGift:
		if text, ok := action.GetMessage(); ok {
			meta.Message = text.Text
		}
		if action.NameHidden {
			meta.SenderID = 0
		}
		return m.starGift(action, meta), true

	case *tg.MessageActionStarGiftUnique:
		u, ok := action.Gift.(*tg.StarGiftUnique)
		if !ok {
			return entity.UnknownGift{Kind: action.Gift.TypeName()}, true
		}
		meta.Slug = entity.UniqueSlugBase(u.Slug)
		return entity.CollectibleGift{
			ID:         u.ID,
			IsUnique:   true,
			IsUpgraded: action.Upgrade,
			IsRare:     rarity.IsRareSupply(u.AvailabilityTotal, m.RareSupply),
			GiftMeta:   meta,
		}, true

	case *tg.MessageActionGiftPremium:
		if text, ok := action.GetMessage(); ok {
			meta.Message = text.Text
		}
		months := premiumMonths(action)
		meta.Slug = entity.PremiumSlug(months)
		return entity.SubscriptionGift{
			Months:   months,
			GiftMeta: meta,
		}, true

	case *tg.MessageActionGiftCode:
		return entity.UnknownGift{Kind: action.TypeName()}, true

	case *tg.MessageActionGiftStars:
		return entity.UnknownGift{Kind: action.TypeName()}, true
	}

	return nil, false
}

func (m GiftMapper) starGift(action *tg.MessageActionStarGift, meta entity.GiftMeta) entity.GiftEvent {
	g, ok := action.Gift.(*tg.StarGift)
	if !ok {
		return entity.UnknownGift{Kind: action.Gift.TypeName()}
	}

	meta.Slug = entity.StarGiftSlug(g.ID, g.Title)

	if !g.Limited {
		return entity.PlainGift{ID: g.ID, GiftMeta: meta}
	}

	total, _ := g.GetAvailabilityTotal()

	return entity.CollectibleGift{
		ID:         g.ID,
		IsUpgraded: action.Upgraded,
		IsRare:     rarity.IsRareSupply(total, m.RareSupply),
		GiftMeta:   meta,
	}
}

const daysPerMonth = 30

// premiumMonths читает срок подписки: в разных слоях схемы он передаётся
// месяцами или днями.
func premiumMonths(action any) int {
	switch a := action.(type) {
	case interface{ GetMonths() int }:
		return a.GetMonths()
	case interface{ GetDays() int }:
		return a.GetDays() / daysPerMonth
	default:
		return 0
	}
}

// senderID: id отправителя. Во входящих личных сообщениях from_id не
// заполняется, тогда отправитель это собеседник.
func senderID(msg *tg.MessageService) int64 {
	peer, ok := msg.GetFromID()
	if !ok {
		if user, isUser := msg.PeerID.(*tg.PeerUser); isUser {
			return user.UserID
		}
		return 0
	}

	switch p := peer.(type) {
	case *tg.PeerUser:
		return p.UserID
	case *tg.PeerChannel:
		return p.ChannelID
	default:
		return 0
	}
}
