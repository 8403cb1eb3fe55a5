package probe

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"tg_giftwatch/pkg/errcodes"
	"tg_giftwatch/pkg/httpx/reply"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// ReadinessFunc reports whether the process is ready to serve.
type ReadinessFunc func() bool

type Server struct {
	state []byte
	ready ReadinessFunc
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func NewServer(
	options Options,
	ready ReadinessFunc,
) Server {
	stateJSON, _ := json.Marshal(options) //nolint:errcheck,errchkjson

	if ready == nil {
		ready = func() bool { return true }
	}

	return Server{
		state: stateJSON,
		ready: ready,
	}
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", s.handlerHealthz)
	r.Get("/ready", s.handlerReady)
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		reply.Unavailable(r.Context(), w, errcodes.NotReady, "not ready")
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(s.state) //nolint:errcheck
}
