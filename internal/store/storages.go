// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/internal/config"
	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
)

// Storages groups the server repositories and the transaction manager that
// spans them.
type Storages struct {
	UserRepository     UserRepository
	KeyRepository      KeyRepository
	SessionRepository  SessionRepository
	ActivityRepository ActivityRepository
	TxManager          TxManager

	// DB is exposed for health checks and shutdown.
	DB *DB
}

// NewStorages connects to Postgres, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		KeyRepository:      NewKeyRepository(db, logger),
		SessionRepository:  NewSessionRepository(db, logger),
		ActivityRepository: NewActivityRepository(db, logger),
		TxManager:          NewTxManager(db),
		DB:                 db,
	}
}
