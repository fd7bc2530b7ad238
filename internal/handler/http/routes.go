// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const swaggerSpecPath = "/swagger/v1/swagger.json"

// Init builds the router. The middleware pipeline runs in the order trace
// id, access log, metrics, panic recovery, CORS.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withRecovery, h.withCORS())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/access/authorize", h.authorizeObserver)
		r.Post("/api/v2/access/authorize", h.authorizeNgoAdmin)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/health/live", h.liveness)
		r.Get("/health/ready", h.readinessProbe)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}

		r.Get(swaggerSpecPath, h.swaggerSpec)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerSpecPath)))
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireNgo)

		r.Get("/api/v1/access/test", h.accessTest)
		r.Post("/api/v1/file/upload", h.uploadFile)
	})

	if h.staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.staticDir)))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
