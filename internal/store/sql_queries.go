// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, email, password_hash,
    COALESCE(biometric_hash, ''), COALESCE(biometric_salt, ''), biometric_enabled, biometric_wrapped_key,
    COALESCE(biometric_algorithm, ''), COALESCE(biometric_rounds, 0), COALESCE(biometric_iterations, 0),
    login_attempts, locked_until, last_login,
    encrypted_first_name, encrypted_last_name, encryption_salt, encryption_iv, key_derivation_iterations,
    created_at, updated_at`

const (
	createUser = `INSERT INTO users (
        email, password_hash,
        encrypted_first_name, encrypted_last_name,
        encryption_salt, encryption_iv, key_derivation_iterations
    ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING user_id, created_at, updated_at;`

	findActiveUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1 AND deleted_at IS NULL;`

	findActiveUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1 AND deleted_at IS NULL;`

	existsActiveUserByEmail = `SELECT EXISTS (
        SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL
    );`

	resetLoginAttempts = `UPDATE users
    SET login_attempts = 0, locked_until = NULL, last_login = $2, updated_at = NOW()
    WHERE user_id = $1 AND deleted_at IS NULL;`

	enableBiometric = `UPDATE users
    SET biometric_hash = $2, biometric_salt = $3, biometric_wrapped_key = $4,
        biometric_algorithm = $5, biometric_rounds = $6, biometric_iterations = $7,
        biometric_enabled = TRUE, updated_at = NOW()
    WHERE user_id = $1 AND deleted_at IS NULL;`

	createEncryptionKey = `INSERT INTO user_encryption_keys (
        user_id, key_type, public_key, encrypted_private_key, algorithm, key_size, is_active
    ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING key_id, created_at;`

	findActivePublicKey = `SELECT public_key
    FROM user_encryption_keys
    WHERE user_id = $1 AND is_active
    ORDER BY created_at DESC
    LIMIT 1;`

	createSession = `INSERT INTO user_sessions (
        user_id, session_token_hash, refresh_token_hash, ip_address, user_agent, expires_at
    ) VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING session_id, created_at;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildRecordFailedAttemptQuery builds the single-statement counter update.
// Both CASE branches read the pre-update row, so concurrent failures can
// never lose an increment or skip the lock.
func buildRecordFailedAttemptQuery(userID int64, threshold int, lockUntil time.Time) (string, []any, error) {
	query, args, err := psql.
		Update("users").
		Set("login_attempts", sq.Expr("login_attempts + 1")).
		Set("locked_until", sq.Expr(
			"CASE WHEN login_attempts + 1 >= ? THEN ?::timestamptz ELSE locked_until END",
			threshold, lockUntil,
		)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID, "deleted_at": nil}).
		Suffix("RETURNING login_attempts, locked_until").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLogActivityQuery(entry models.ActivityLog) (string, []any, error) {
	query, args, err := psql.
		Insert("user_activity_log").
		Columns("user_id", "activity_type", "description", "ip_address", "user_agent", "is_suspicious", "risk_score").
		Values(entry.UserID, string(entry.ActivityType), entry.Description, entry.IPAddress, entry.UserAgent, entry.IsSuspicious, entry.RiskScore).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	query, args, err := psql.
		Delete("user_sessions").
		Where(sq.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
