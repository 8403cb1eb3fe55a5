package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"tg_giftwatch/pkg/metrics"
)

func TestRegistryRoutes(t *testing.T) {
	rq := require.New(t)

	registry := metrics.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "test_events_total",
		Help: "Test counter.",
	})
	registry.MustRegister(counter)
	counter.Add(3)

	router := chi.NewRouter()
	registry.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	defer httpServer.Close()

	testCases := []struct {
		name       string
		endpoint   string
		statusCode int
		contains   string
	}{
		{
			name:       "Metrics handler",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   "test_events_total 3",
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			resp, err := http.Get(httpServer.URL + tc.endpoint)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Contains(string(bodyBytes), tc.contains)
		})
	}
}
