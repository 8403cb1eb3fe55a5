package errcodes

type Code string

func (c Code) String() string {
	return string(c)
}

const (
	InternalServerError Code = "InternalServerError"
	NotReady            Code = "NotReady"
	ConfigInvalid       Code = "ConfigInvalid"

	// Прайс-лист подарков
	PriceListUnavailable Code = "PriceListUnavailable" // запрос цен к Telegram не удался
	PriceNotFound        Code = "PriceNotFound"
)
