// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientConfig_Defaults(t *testing.T) {
	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.ServerAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "legacy-keeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "legacy-keeper.log", cfg.LogFile)
}

func TestGetClientConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CLIENT_ADAPTER_SERVER_ADDRESS", "https://vault.example")
	t.Setenv("CLIENT_ADAPTER_REQUEST_TIMEOUT", "3s")
	t.Setenv("CLIENT_LOG_LEVEL", "debug")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example", cfg.Adapter.ServerAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := defaultClientConfig()
	require.NoError(t, cfg.validate())

	cfg.Storage.DB.DSN = "file::memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = defaultClientConfig()
	cfg.Adapter.ServerAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}
