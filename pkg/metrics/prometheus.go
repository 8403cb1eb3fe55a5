package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is a Prometheus registry with the runtime collectors already attached.
type Registry struct {
	*prometheus.Registry
}

func NewRegistry() Registry {
	registry := prometheus.NewRegistry()

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Registry{Registry: registry}
}

func (r Registry) RegisterRoutes(router chi.Router) {
	router.Handle("/metrics", promhttp.HandlerFor(r.Registry, promhttp.HandlerOpts{
		Registry: r.Registry,
	}))
}
