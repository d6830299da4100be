package service

import (
	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

type Services struct {
	AuthService AuthService
}

// NewServices builds the server services. The auth service is wrapped with
// metrics; pass metrics.NewNoOpBusinessMetrics() to disable them.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, m metrics.BusinessMetrics, logger *logger.Logger) *Services {
	auth := NewAuthService(storages, crypto.NewKeyChainService(), cfg.Auth, logger, WithLockoutMetrics(m))

	return &Services{
		AuthService: NewMetricsWrapper(m).Wrap(auth),
	}
}
