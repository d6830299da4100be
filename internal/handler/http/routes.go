package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.httpMetrics != nil {
		router.Use(h.httpMetrics)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.With(h.registerLimiter.Middleware).Post("/api/auth/register", h.register)
	router.Group(func(r chi.Router) {
		r.Use(h.loginLimiter.Middleware)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/biometric-login", h.biometricLogin)
	})

	// routes with authorization
	router.With(h.auth).Post("/api/auth/biometric/enroll", h.enrollBiometric)

	router.Get("/healthz", h.health)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
