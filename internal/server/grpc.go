package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-legacy-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"

	"google.golang.org/grpc"
)

const healthCheckInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	mu        sync.Mutex
	stopped   bool
	stopWatch context.CancelFunc
	watchers  sync.WaitGroup

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor()))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) Addr() net.Addr {
	return g.gRPCNetListener.Addr()
}

// RunServer keeps the health status current and serves until Shutdown. Once
// shut down, Serve returns at once and releases the listener.
func (g *grpcServer) RunServer(ctx context.Context) error {
	g.mu.Lock()
	if !g.stopped {
		ctx, g.stopWatch = context.WithCancel(ctx)
		g.watchers.Add(1)
		go func() {
			defer g.watchers.Done()
			g.handler.WatchHealth(ctx, healthCheckInterval)
		}()
	}
	g.mu.Unlock()

	g.logger.Info().Str("address", g.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server: %w", err)
	}
	return nil
}

// Shutdown stops the health watcher, reports NOT_SERVING and drains
// in-flight calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server shutdown")

	g.mu.Lock()
	g.stopped = true
	if g.stopWatch != nil {
		g.stopWatch()
	}
	g.mu.Unlock()

	g.handler.Shutdown()
	g.server.GracefulStop()
	g.watchers.Wait()
}
