package telegram

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/telegram/updates"
	updhook "github.com/gotd/td/telegram/updates/hook"
	"github.com/gotd/td/tg"
	"go.uber.org/zap"

	"tg_giftwatch/internal/config"
	"tg_giftwatch/internal/domain/entity"
)

// ConsoleInput реализует ввод кода с клавиатуры
type ConsoleInput struct{}

func (c ConsoleInput) Code(ctx context.Context, sentCode *tg.AuthSentCode) (string, error) {
	fmt.Print("Enter the code from Telegram: ")
	text, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// GiftHandler получает каждый входящий подарок.
type GiftHandler interface {
	Handle(ctx context.Context, gift entity.GiftEvent)
}

// OnReadyFunc вызывается после авторизации, до начала приёма апдейтов.
// Возвращает обработчик, которому будут отдаваться подарки.
type OnReadyFunc func(ctx context.Context) (GiftHandler, error)

type Client struct {
	client   *telegram.Client
	api      *tg.Client
	gaps     *updates.Manager
	mapper   GiftMapper
	handler  GiftHandler
	Phone    string
	Password string
}

func NewClient(cfg config.Telegram, pricing config.Pricing) (*Client, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.SessionPath), 0700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	zapLogger, err := newZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("tg logger: %w", err)
	}

	c := &Client{
		mapper:   GiftMapper{RareSupply: pricing.RareSupply},
		Phone:    cfg.Phone,
		Password: cfg.Password,
	}

	dispatcher := tg.NewUpdateDispatcher()
	dispatcher.OnNewMessage(func(ctx context.Context, _ tg.Entities, update *tg.UpdateNewMessage) error {
		c.onMessage(ctx, update.Message)
		return nil
	})
	dispatcher.OnNewChannelMessage(func(ctx context.Context, _ tg.Entities, update *tg.UpdateNewChannelMessage) error {
		c.onMessage(ctx, update.Message)
		return nil
	})

	c.gaps = updates.New(updates.Config{
		Handler: dispatcher,
		Logger:  zapLogger.Named("updates"),
	})

	c.client = telegram.NewClient(cfg.ApiID, cfg.ApiHash, telegram.Options{
		SessionStorage: &telegram.FileSessionStorage{Path: cfg.SessionPath},
		Logger:         zapLogger,
		UpdateHandler:  c.gaps,
		Middlewares: []telegram.Middleware{
			updhook.UpdateHook(c.gaps.Handle),
		},
	})
	c.api = c.client.API()

	return c, nil
}

// Start поднимает соединение и держит его открытым, пока жив ctx.
func (c *Client) Start(ctx context.Context, onReady OnReadyFunc) error {
	return c.client.Run(ctx, func(ctx context.Context) error {
		status, err := c.client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("auth status error: %w", err)
		}

		if !status.Authorized {
			logger(ctx).Info("user not authorized, starting login flow...")
			if err := c.authenticate(ctx); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			logger(ctx).Info("authentication successful")
		} else {
			logger(ctx).Info("user already authorized")
		}

		self, err := c.client.Self(ctx)
		if err != nil {
			return fmt.Errorf("get self: %w", err)
		}

		// Таблица цен грузится здесь, до того как пойдут апдейты.
		handler, err := onReady(ctx)
		if err != nil {
			return err
		}
		c.handler = handler

		return c.gaps.Run(ctx, c.api, self.ID, updates.AuthOptions{
			OnStart: func(ctx context.Context) {
				logger(ctx).Info("listening for gifts...")
			},
		})
	})
}

func (c *Client) authenticate(ctx context.Context) error {
	userAuth := auth.Constant(
		c.Phone,
		c.Password,
		ConsoleInput{},
	)

	flow := auth.NewFlow(
		userAuth,
		auth.SendCodeOptions{},
	)

	return c.client.Auth().IfNecessary(ctx, flow)
}

func (c *Client) onMessage(ctx context.Context, msg tg.MessageClass) {
	service, ok := msg.(*tg.MessageService)
	if !ok || c.handler == nil {
		return
	}

	gift, ok := c.mapper.Map(service)
	if !ok {
		return
	}

	c.handler.Handle(ctx, gift)
}

func newZapLogger(level string) (*zap.Logger, error) {
	if level == "" || level == "off" {
		return zap.NewNop(), nil
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
