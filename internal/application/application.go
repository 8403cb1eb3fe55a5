package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"tg_giftwatch/internal/config"
	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/internal/domain/service/notify"
	"tg_giftwatch/internal/domain/service/pricing"
	giftmetrics "tg_giftwatch/internal/infrastructure/metrics"
	"tg_giftwatch/internal/infrastructure/notifier"
	"tg_giftwatch/internal/infrastructure/telegram"
	"tg_giftwatch/internal/server"
	"tg_giftwatch/pkg/application/modules"
	"tg_giftwatch/pkg/contextx"
	"tg_giftwatch/pkg/logx"
	"tg_giftwatch/pkg/metrics"
	"tg_giftwatch/pkg/probe"
)

var errClientStopped = errors.New("stopped unexpectedly")

const (
	opsShutdownTimeout   = 5 * time.Second
	opsReadHeaderTimeout = 5 * time.Second
)

func Run(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Metrics
	registry := metrics.NewRegistry()
	giftMetrics := giftmetrics.NewGiftMetrics(registry)

	// 2. Sinks
	sinks := []notify.Sink{notifier.NewConsole(os.Stdout)}

	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}

		if err := alertBot.SendText(ctx, "🎁 Gift watcher is starting"); err != nil {
			log.Error("bot test failed, check BOT_TOKEN and BOT_CHAT_ID", logx.Error(err))
		} else {
			log.Info("bot test passed")
		}

		sinks = append(sinks, alertBot)
	}

	// 3. Telegram MTProto client
	tgClient, err := telegram.NewClient(cfg.Telegram, cfg.Pricing)
	if err != nil {
		return fmt.Errorf("tg client create: %w", err)
	}

	var (
		prices atomic.Pointer[pricing.Table]
		ready  atomic.Bool
	)

	g, ctx := errgroup.WithContext(ctx)

	// 4. Ops HTTP
	if cfg.App.OpsAddr != "" {
		router := chi.NewRouter()

		server.NewServer(
			probe.NewServer(probe.Options{Name: cfg.App.Name, Version: cfg.App.Version}, ready.Load),
			registry,
			func() []entity.PriceOption {
				if table := prices.Load(); table != nil {
					return table.Snapshot()
				}
				return nil
			},
		).RegisterRoutes(router)

		if _, err := (modules.HTTPServer{
			Addr:              cfg.App.OpsAddr,
			Handler:           router,
			ReadHeaderTimeout: opsReadHeaderTimeout,
			ShutdownTimeout:   opsShutdownTimeout,
		}).Start(ctx, g); err != nil {
			return fmt.Errorf("ops server: %w", err)
		}
	}

	// 5. Gifts
	g.Go(func() error {
		log.Info("starting telegram client...")

		err := tgClient.Start(ctx, func(ctx context.Context) (telegram.GiftHandler, error) {
			table := loadPrices(ctx, log, tgClient)

			prices.Store(table)
			giftMetrics.PriceTableLoaded(table.Len())
			ready.Store(true)

			return notify.NewHandler(pricing.NewResolver(table), sinks...).
				WithMetrics(giftMetrics), nil
		})
		if ctx.Err() != nil {
			return nil
		}

		// клиент не должен завершаться сам, иначе ops-сервер останется висеть
		if err == nil {
			err = errClientStopped
		}

		return fmt.Errorf("telegram client: %w", err)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("application stopping...")
	return nil
}

// loadPrices никогда не останавливает запуск: при ошибке работаем с пустой таблицей.
func loadPrices(ctx context.Context, log *slog.Logger, source pricing.PriceSource) *pricing.Table {
	table, _, err := pricing.Load(ctx, source)
	if err != nil {
		log.Error("price table load failed, prices will be reported as not found", logx.Error(err))
	}

	return table
}
