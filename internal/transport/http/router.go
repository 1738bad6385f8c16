package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog/hlog"
)

func NewRouter(h *Handlers) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/api/pulls", h.ListPulls).Methods("GET")
	r.HandleFunc("/api/pulls/{prNumber}/comments", h.ListComments).Methods("GET")

	var handler http.Handler = r
	handler = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})(handler)
	handler = hlog.RequestIDHandler("req_id", "X-Request-Id")(handler)
	handler = hlog.NewHandler(h.Log)(handler)

	return cors.AllowAll().Handler(handler)
}
