package server

import (
	"net/http"

	"tg_giftwatch/internal/domain/entity"
	"tg_giftwatch/pkg/httpx/reply"
	"tg_giftwatch/pkg/metrics"
	"tg_giftwatch/pkg/probe"
)

// PriceSnapshotFunc отдаёт текущую таблицу цен; nil до загрузки.
type PriceSnapshotFunc func() []entity.PriceOption

// Server объединяет служебные HTTP-ручки: пробы, метрики и дамп цен.
type Server struct {
	probe    probe.Server
	registry metrics.Registry
	prices   PriceSnapshotFunc
}

func NewServer(
	probeServer probe.Server,
	registry metrics.Registry,
	prices PriceSnapshotFunc,
) Server {
	return Server{
		probe:    probeServer,
		registry: registry,
		prices:   prices,
	}
}

type pricesResponse struct {
	Count  int                  `json:"count"`
	Prices []entity.PriceOption `json:"prices"`
}

func (s Server) getPrices(w http.ResponseWriter, r *http.Request) {
	prices := s.prices()
	if prices == nil {
		prices = []entity.PriceOption{}
	}

	reply.JSON(r.Context(), w, http.StatusOK, pricesResponse{
		Count:  len(prices),
		Prices: prices,
	})
}
