package server

import (
	"github.com/go-chi/chi/v5"

	"tg_giftwatch/pkg/logx"
	"tg_giftwatch/pkg/middlewarex"
)

const logFieldMaxLen = 2048

func (s Server) RegisterRoutes(r chi.Router) {
	masker := logx.NewSensitiveDataMasker()

	r.Use(
		middlewarex.Trace,
		middlewarex.Recovery,
		middlewarex.AccessLog(masker, logFieldMaxLen),
	)

	s.probe.RegisterRoutes(r)
	s.registry.RegisterRoutes(r)

	r.Get("/prices", s.getPrices)
}
