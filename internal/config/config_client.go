// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter configures how the CLI reaches the server.
type ClientAdapter struct {
	ServerAddress  string        `env:"SERVER_ADDRESS"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB is the local SQLite vault.
type ClientDB struct {
	DSN string `env:"DATABASE_URI"`
}

type ClientStorage struct {
	DB ClientDB `envPrefix:"DB_"`
}

// ClientConfig is the vault CLI configuration. Variables are read with the
// CLIENT_ prefix, e.g. CLIENT_ADAPTER_SERVER_ADDRESS.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
	Storage ClientStorage `envPrefix:"STORAGE_"`

	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL"`
}

// GetClientConfig loads the client configuration from CLIENT_* variables
// and fills the rest from defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg, "CLIENT_"); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: "legacy-keeper.db"},
		},
		LogFile:  "legacy-keeper.log",
		LogLevel: "info",
	}
}
