package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"tg_giftwatch/pkg/logx"
)

// HTTPServer поднимает HTTP-сервер в errgroup и гасит его (graceful shutdown)
// при отмене ctx.
type HTTPServer struct {
	Addr              string
	Handler           http.Handler
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Start занимает адрес синхронно, чтобы ошибка bind вернулась сразу,
// а обслуживание запросов уходит в g. Возвращает фактический адрес.
func (h HTTPServer) Start(ctx context.Context, g *errgroup.Group) (net.Addr, error) {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", h.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", h.Addr, err)
	}

	httpServer := &http.Server{
		Handler:           h.Handler,
		ReadHeaderTimeout: h.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	addr := listener.Addr()

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("httpServer.Shutdown: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		logger(ctx).Info("http server started", slog.String(logx.FieldURL, addr.String()))

		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("httpServer.Serve: %w", err)
		}

		logger(ctx).Info("http server stopped", slog.String(logx.FieldURL, addr.String()))

		return nil
	})

	return addr, nil
}
