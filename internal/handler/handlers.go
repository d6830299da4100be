package handler

import (
	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-legacy-keeper/internal/handler/http"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates a handler for every configured listener. provider may
// be nil to disable HTTP metrics.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, pinger store.Pinger, provider *metrics.Provider, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := []http.Option{http.WithPinger(pinger)}
		if provider != nil {
			opts = append(opts, http.WithMetrics(provider))
		}

		h, err := http.NewHandler(services, cfg, logger, opts...)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = h
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

// Close releases background resources of the handlers.
func (h *Handlers) Close() {
	if h.HTTP != nil {
		h.HTTP.Close()
	}
	if h.GRPC != nil {
		h.GRPC.Shutdown()
	}
}
