package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

type Handler struct {
	services *service.Services

	pinger         store.Pinger
	metrics        *metrics.Provider
	httpMetrics    func(http.Handler) http.Handler
	requestTimeout time.Duration

	registerLimiter *ipRateLimiter
	loginLimiter    *ipRateLimiter

	logger *logger.Logger
}

// Option configures optional dependencies of a Handler.
type Option func(*Handler)

// WithPinger makes GET /healthz report database reachability.
func WithPinger(p store.Pinger) Option {
	return func(h *Handler) {
		h.pinger = p
	}
}

// WithMetrics mounts /metrics and records per-route request metrics.
func WithMetrics(p *metrics.Provider) Option {
	return func(h *Handler) {
		h.metrics = p
	}
}

// NewHandler builds the HTTP handler. It starts the rate limiter cleanup
// goroutines, so every Handler must be released with Close.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger, opts ...Option) (*Handler, error) {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.metrics != nil {
		mw, err := metrics.HTTPMetricsMiddleware(h.metrics)
		if err != nil {
			return nil, err
		}
		h.httpMetrics = mw
	}

	h.registerLimiter = newIPRateLimiter(cfg.RateLimit.RegisterLimit, cfg.RateLimit.Window, time.Now, logger)
	h.loginLimiter = newIPRateLimiter(cfg.RateLimit.LoginLimit, cfg.RateLimit.Window, time.Now, logger)

	logger.Info().Msg("http handler created")
	return h, nil
}

// Close stops background work started by NewHandler. It is safe to call more
// than once.
func (h *Handler) Close() {
	h.registerLimiter.Close()
	h.loginLimiter.Close()
}
