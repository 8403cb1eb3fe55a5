package config

type Telegram struct {
	ApiID       int    `env:"TG_API_ID,notEmpty"`
	ApiHash     string `env:"TG_API_HASH,notEmpty" json:"-"`
	Phone       string `env:"TG_PHONE,notEmpty"`
	Password    string `env:"TG_PASSWORD" json:"-"`
	SessionPath string `env:"TG_SESSION_PATH" envDefault:"storage/session.json"`
	// Уровень логов gotd (zap): off, debug, info, warn, error.
	LogLevel string `env:"TG_LOG_LEVEL" envDefault:"off" validate:"oneof=off debug info warn error"`
}
