// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
)

type deviceSecretRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewDeviceSecretRepository(db *DB, logger *logger.Logger) DeviceSecretRepository {
	return &deviceSecretRepository{db: db, logger: logger}
}

func (r *deviceSecretRepository) SaveSecret(ctx context.Context, owner, secret string) error {
	if _, err := r.db.ExecContext(ctx, upsertDeviceSecret, owner, secret, time.Now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*deviceSecretRepository.SaveSecret").Msg("error saving device secret")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *deviceSecretRepository) GetSecret(ctx context.Context, owner string) (string, error) {
	var secret string
	err := r.db.QueryRowContext(ctx, getDeviceSecret, owner).Scan(&secret)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrDeviceSecretAbsent
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return secret, nil
}

func (r *deviceSecretRepository) DeleteSecret(ctx context.Context, owner string) error {
	if _, err := r.db.ExecContext(ctx, deleteDeviceSecret, owner); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
