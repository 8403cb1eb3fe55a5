package entity

// Category определяет, по какому правилу считается стоимость подарка.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryPlain
	CategorySubscription
	CategoryCollectible
)

func (c Category) String() string {
	switch c {
	case CategoryPlain:
		return "plain"
	case CategorySubscription:
		return "subscription"
	case CategoryCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}

// GiftEvent: входящий подарок. Реализуется только типами этого пакета:
// PlainGift, SubscriptionGift, CollectibleGift и UnknownGift.
type GiftEvent interface {
	Category() Category
	GiftSlug() string
	isGiftEvent()
}

// GiftMeta: общие необязательные поля подарка.
type GiftMeta struct {
	Slug     string // пусто, если slug неизвестен
	SenderID int64  // 0: отправитель скрыт
	Message  string
}

func (m GiftMeta) GiftSlug() string { return m.Slug }

// PlainGift: обычный подарок, всегда бесплатный.
type PlainGift struct {
	ID int64
	GiftMeta
}

// SubscriptionGift: подарок Premium-подписки.
type SubscriptionGift struct {
	Months int
	GiftMeta
}

// CollectibleGift: коллекционный (NFT) подарок.
type CollectibleGift struct {
	ID         int64
	IsUnique   bool
	IsUpgraded bool
	IsRare     bool
	GiftMeta
}

// UnknownGift: подарок, форма которого не распознана.
type UnknownGift struct {
	Kind string
	Slug string
}

func (PlainGift) Category() Category { return CategoryPlain }
func (SubscriptionGift) Category() Category { return CategorySubscription }
func (CollectibleGift) Category() Category { return CategoryCollectible }
func (UnknownGift) Category() Category { return CategoryUnknown }

func (g UnknownGift) GiftSlug() string { return g.Slug }

func (PlainGift) isGiftEvent() {}
func (SubscriptionGift) isGiftEvent() {}
func (CollectibleGift) isGiftEvent() {}
func (UnknownGift) isGiftEvent() {}
