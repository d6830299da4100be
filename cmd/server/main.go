package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/handler"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/metrics"
	"github.com/MKhiriev/go-legacy-keeper/internal/server"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
	"github.com/MKhiriev/go-legacy-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const metricsNamespace = "legacy_keeper"

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("legacy-keeper-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("legacy-keeper-server", cfg.Server.LogLevel)
	if cfg.Auth.UsingInsecureSignKey {
		log.Warn().Msg("AUTH_TOKEN_SIGN_KEY is not set: tokens are signed with the built-in development key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.DB.Close()

	provider := metrics.NewProvider(metricsNamespace)
	businessMetrics, err := metrics.NewBusinessMetrics(provider)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	services := service.NewServices(storages, *cfg, businessMetrics, log)

	handlers, err := handler.NewHandlers(services, *cfg, storages.DB, provider, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	defer handlers.Close()

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)
	}()

	if err := srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
	log.Info().Msg("server shutdown gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
