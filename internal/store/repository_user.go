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
	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the Postgres implementation of [UserRepository]. Calls
// made with a context from [TxManager.WithTx] run inside that transaction.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and returns it with the generated ID and
// timestamps filled in from the RETURNING clause.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
//   - Scan failure → wrapped with [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := getQuerier(ctx, r.db.DB).QueryRowContext(ctx, createUser,
		user.Email, user.PasswordHash,
		user.EncryptedFirstName, user.EncryptedLastName,
		user.EncryptionSalt, user.EncryptionIV, user.KeyDerivationIterations,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err := row.Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindActiveByEmail loads the account that owns email, skipping soft-deleted
// rows. Transient read failures are retried.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrUserNotFound].
//   - Any other driver-level or scan error → wrapped with [ErrExecutingQuery].
func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindActiveByEmail", findActiveUserByEmail, email)
}

// FindActiveByID is [userRepository.FindActiveByEmail] keyed by user ID, with
// the same retry and error mapping.
func (r *userRepository) FindActiveByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindActiveByID", findActiveUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var u models.User
	err := r.db.retryRead(ctx, func() error {
		u = models.User{}
		return getQuerier(ctx, r.db.DB).QueryRowContext(ctx, query, arg).Scan(
			&u.UserID, &u.Email, &u.PasswordHash,
			&u.BiometricHash, &u.BiometricSalt, &u.BiometricEnabled, &u.BiometricWrappedKey,
			&u.BiometricAlgorithm, &u.BiometricRounds, &u.BiometricIterations,
			&u.LoginAttempts, &u.LockedUntil, &u.LastLogin,
			&u.EncryptedFirstName, &u.EncryptedLastName, &u.EncryptionSalt, &u.EncryptionIV, &u.KeyDerivationIterations,
			&u.CreatedAt, &u.UpdatedAt,
		)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error loading user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return u, nil
}

// ExistsActiveByEmail reports whether an active account uses email.
//
// Error handling:
//   - Any driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := getQuerier(ctx, r.db.DB).QueryRowContext(ctx, existsActiveUserByEmail, email).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ExistsActiveByEmail").Msg("error checking email")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

// RecordFailedAttempt increments the failed-login counter in one statement
// and, once the counter reaches threshold, sets locked_until to lockUntil. It
// returns the counter and lock time as stored after the update.
//
// Error handling:
//   - Query build failure → returned directly.
//   - No matching active user ([sql.ErrNoRows]) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) RecordFailedAttempt(ctx context.Context, userID int64, threshold int, lockUntil time.Time) (models.AttemptState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecordFailedAttemptQuery(userID, threshold, lockUntil)
	if err != nil {
		return models.AttemptState{}, err
	}

	var state models.AttemptState
	err = getQuerier(ctx, r.db.DB).QueryRowContext(ctx, query, args...).Scan(&state.LoginAttempts, &state.LockedUntil)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AttemptState{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RecordFailedAttempt").Msg("error recording failed attempt")
		return models.AttemptState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}

// ResetAttempts clears the failed-login counter and lock, and records loginAt
// as the last successful login.
//
// Error handling:
//   - Zero rows affected → [ErrUserNotFound].
//   - Any driver-level error → wrapped with [ErrExecutingQuery].
func (r *userRepository) ResetAttempts(ctx context.Context, userID int64, loginAt time.Time) error {
	return r.execAffectingOne(ctx, "*userRepository.ResetAttempts", resetLoginAttempts, userID, loginAt)
}

// EnableBiometric stores the biometric verifier, its hashing parameters and
// the master key wrapped under the biometric key, and turns biometric login on.
//
// Error handling follows [userRepository.ResetAttempts].
func (r *userRepository) EnableBiometric(ctx context.Context, userID int64, hash models.BiometricHash, wrappedKey models.EncryptedBlob) error {
	return r.execAffectingOne(ctx, "*userRepository.EnableBiometric", enableBiometric, userID,
		hash.Hash, hash.Salt, wrappedKey, hash.Algorithm, hash.Rounds, hash.Iterations)
}

func (r *userRepository) execAffectingOne(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := getQuerier(ctx, r.db.DB).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
