package modules_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tg_giftwatch/pkg/application/modules"
)

func TestHTTPServer(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	addr, err := modules.HTTPServer{
		Addr: "127.0.0.1:0",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("ok")) //nolint:errcheck
		}),
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}.Start(ctx, g)
	rq.NoError(err)

	resp, err := http.Get("http://" + addr.String())
	rq.NoError(err)

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.NoError(resp.Body.Close())
	rq.Equal("ok", string(body))

	cancel()
	rq.NoError(g.Wait())
}

func TestHTTPServerBusyAddr(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	server := modules.HTTPServer{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ShutdownTimeout: time.Second}

	addr, err := server.Start(ctx, g)
	rq.NoError(err)

	server.Addr = addr.String()

	_, err = server.Start(ctx, g)
	rq.ErrorContains(err, "listen "+addr.String())

	cancel()
	rq.NoError(g.Wait())
}
