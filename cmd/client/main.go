package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-legacy-keeper/internal/adapter"
	"github.com/MKhiriev/go-legacy-keeper/internal/client"
	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/internal/service"
	"github.com/MKhiriev/go-legacy-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	// stdout carries command output, so the client logs to a file
	log := logger.NewFileLogger("legacy-keeper-client", cfg.LogFile, cfg.LogLevel)
	log.Debug().Str("version", buildVersion).Str("date", buildDate).Str("commit", buildCommit).Msg("client started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, crypto.NewKeyChainService())
	app := client.NewApp(services, os.Stdin, os.Stdout, versionString(), log)

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		localStorage.Close()
		os.Exit(1)
	}
}

func versionString() string {
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return fmt.Sprintf("%s (built %s, commit %s)", buildVersion, buildDate, buildCommit)
}
