// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/internal/logger"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{db: db, logger: logger}
}

func (r *activityRepository) LogActivity(ctx context.Context, entry models.ActivityLog) error {
	query, args, err := buildLogActivityQuery(entry)
	if err != nil {
		return err
	}

	if _, err := getQuerier(ctx, r.db.DB).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*activityRepository.LogActivity").
			Str("activity_type", string(entry.ActivityType)).
			Msg("error writing activity log")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
