package probe_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"tg_giftwatch/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	var ready atomic.Bool

	testCases := []struct {
		name       string
		endpoint   string
		ready      bool
		statusCode int
		body       string
	}{
		{
			name:       "Health handler",
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"giftwatch","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler",
			endpoint:   "/ready",
			ready:      true,
			statusCode: http.StatusOK,
			body:       `{"name":"giftwatch","version":"v0.0.1"}`,
		},
		{
			name:       "Ready handler (not ready)",
			endpoint:   "/ready",
			statusCode: http.StatusServiceUnavailable,
			body:       `{"code":"NotReady","message":"not ready","supportId":"unsupported"}` + "\n",
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	router := chi.NewRouter()

	probe.NewServer(
		probe.Options{
			Name:    "giftwatch",
			Version: "v0.0.1",
		},
		ready.Load,
	).RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	defer httpServer.Close()

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ready.Store(tc.ready)

			resp, err := http.Get(httpServer.URL + tc.endpoint)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, string(bodyBytes))
		})
	}
}
