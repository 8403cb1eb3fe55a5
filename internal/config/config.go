package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"tg_giftwatch/internal/domain"
)

type Config struct {
	App      App
	Telegram Telegram
	Bot      Bot
	Pricing  Pricing
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"giftwatch"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	// Пустой адрес отключает /healthz, /ready, /prices и /metrics.
	OpsAddr string `env:"OPS_ADDR"`
}

// Bot: необязательная пересылка отчётов в чат через Bot API.
type Bot struct {
	Token  string `env:"BOT_TOKEN" json:"-"`
	ChatID int64  `env:"BOT_CHAT_ID" validate:"required_with=Token"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

type Pricing struct {
	// Тираж, начиная с которого коллекционный подарок считается редким.
	RareSupply int `env:"PRICE_RARE_SUPPLY" envDefault:"10000" validate:"gt=0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, domain.ErrConfigInvalid.Wrap(err, "config validation")
	}

	return config, nil
}
