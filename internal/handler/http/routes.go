package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/health", h.health)
		r.Handle("/metrics", promhttp.Handler())
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Put("/api/users/me", h.updateProfile)

		r.Get("/api/activities", h.listActivities)
		r.Post("/api/activities", h.createActivity)
		r.Put("/api/activities/{id}", h.updateActivity)

		r.Get("/api/measurements", h.listMeasurements)
		r.Put("/api/measurements/{id}/activity", h.attachActivity)
	})

	return router
}
