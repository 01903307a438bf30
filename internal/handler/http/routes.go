package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	// read projections and refresh
	router.Group(func(r chi.Router) {
		r.Get("/api/kit/state", h.getState)
		r.Get("/api/kit/transactions", h.getTransactions)
		r.Get("/api/kit/accounts/{id}/active", h.isAccountActive)
		r.Post("/api/kit/refresh", h.refresh)
	})

	// routes with authorization when a sign key is configured
	router.Group(func(r chi.Router) {
		if h.auth.SignKey != "" {
			r.Use(h.withAuth)
		}
		r.Post("/api/kit/send", h.send)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
