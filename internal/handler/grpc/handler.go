// Package grpc exposes the standard gRPC health service for the auth server.
// Its serving status follows database reachability, so load balancers and
// orchestrators can probe the gRPC port the same way they probe /healthz.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// AuthServiceName is the health-check name of the auth service. The empty
// name reports the server as a whole; both follow the same status.
const AuthServiceName = "legacykeeper.auth"

const pingTimeout = 2 * time.Second

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger store.Pinger

	logger *logger.Logger
}

// NewHandler returns a Handler whose health status starts as NOT_SERVING
// until the first check. pinger may be nil, in which case the server is
// reported SERVING as long as it runs.
func NewHandler(pinger store.Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// CheckHealth pings the database once and publishes the result.
func (h *Handler) CheckHealth(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := h.pinger.PingContext(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("gRPC health: database unreachable")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	h.setStatus(status)
	return status
}

// WatchHealth runs CheckHealth every interval until ctx is done.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) {
	h.CheckHealth(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.CheckHealth(ctx)
		}
	}
}

// Shutdown marks every service NOT_SERVING so clients drain before the
// server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(AuthServiceName, status)
}
