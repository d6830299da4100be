// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	VaultRepository        LocalVaultRepository
	DeviceSecretRepository DeviceSecretRepository

	db *DB
}

// NewClientStorages opens the SQLite vault at cfg.DB.DSN, creating the file
// if needed, and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		VaultRepository:        NewLocalVaultRepository(db, logger),
		DeviceSecretRepository: NewDeviceSecretRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
