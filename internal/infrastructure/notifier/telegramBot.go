package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"tg_giftwatch/internal/domain/service/notify"
	"tg_giftwatch/pkg/httpx"
	"tg_giftwatch/pkg/logx"
)

const botLogFieldMaxLen = 4096

// TelegramBot пересылает отчёты о подарках в чат через Bot API.
type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	httpClient := httpx.NewClient(logx.NewSensitiveDataMasker(), botLogFieldMaxLen)

	bot, err := telego.NewBot(token, telego.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (b *TelegramBot) Name() string {
	return "telegram-bot"
}

func (b *TelegramBot) Send(ctx context.Context, report notify.Report) error {
	if err := b.SendText(ctx, report.String()); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
