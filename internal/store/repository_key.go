// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type keyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewKeyRepository(db *DB, logger *logger.Logger) KeyRepository {
	logger.Debug().Msg("creating key repository")
	return &keyRepository{db: db, logger: logger}
}

func (r *keyRepository) CreateKey(ctx context.Context, key models.UserEncryptionKey) (models.UserEncryptionKey, error) {
	row := getQuerier(ctx, r.db.DB).QueryRowContext(ctx, createEncryptionKey,
		key.UserID, key.KeyType, key.PublicKey, key.EncryptedPrivateKey, key.Algorithm, key.KeySize, key.IsActive,
	)
	if err := row.Scan(&key.KeyID, &key.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRepository.CreateKey").Msg("error inserting key")
		return models.UserEncryptionKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return key, nil
}

func (r *keyRepository) FindActivePublicKey(ctx context.Context, userID int64) (string, error) {
	var publicKey string
	err := getQuerier(ctx, r.db.DB).QueryRowContext(ctx, findActivePublicKey, userID).Scan(&publicKey)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*keyRepository.FindActivePublicKey").Msg("error loading public key")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return publicKey, nil
}
