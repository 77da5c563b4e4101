package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records one counter increment and one latency observation per
// handled request. The route label is the chi pattern (e.g.
// "/api/activities/{id}") rather than the raw URL, so path parameters do not
// explode label cardinality.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.metrics == nil {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		mw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(mw, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}

		h.metrics.RequestsTotal.
			WithLabelValues(route, r.Method, strconv.Itoa(mw.status)).
			Inc()
		h.metrics.RequestDuration.
			WithLabelValues(route, r.Method).
			Observe(time.Since(start).Seconds())
	})
}
