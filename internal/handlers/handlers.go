package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"olexsmir.xyz/whenwords/internal/config"
)

type handlers struct {
	c   *config.Config
	now func() time.Time
}

func InitRoutes(cfg *config.Config) http.Handler {
	return newHandlers(cfg, time.Now).routes()
}

func newHandlers(cfg *config.Config, now func() time.Time) *handlers {
	return &handlers{c: cfg, now: now}
}

func (h *handlers) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", h.healthHandler)
	mux.HandleFunc("GET /timeago", h.timeAgoHandler)
	mux.HandleFunc("GET /duration", h.durationHandler)
	mux.HandleFunc("GET /parse", h.parseHandler)
	mux.HandleFunc("GET /date", h.humanDateHandler)
	mux.HandleFunc("GET /range", h.dateRangeHandler)
	mux.HandleFunc("GET /iso8601", h.iso8601Handler)

	handler := h.recoverMiddleware(mux)
	return h.loggingMiddleware(handler)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *handlers) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}

func (h *handlers) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic in handler", "path", r.URL.Path, "panic", rec)
				h.write500(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
