// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) CreateSession(ctx context.Context, s models.Session) (models.Session, error) {
	row := getQuerier(ctx, r.db.DB).QueryRowContext(ctx, createSession,
		s.UserID, s.SessionTokenHash, s.RefreshTokenHash, s.IPAddress, s.UserAgent, s.ExpiresAt,
	)
	if err := row.Scan(&s.SessionID, &s.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return s, nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		return 0, err
	}

	res, err := getQuerier(ctx, r.db.DB).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRepository.DeleteExpired").Msg("error deleting sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return res.RowsAffected()
}
