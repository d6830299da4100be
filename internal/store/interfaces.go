// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their lockout state. Every lookup
// ignores soft-deleted rows.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A unique violation on email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindActiveByEmail returns ErrUserNotFound when no active user owns email.
	FindActiveByEmail(ctx context.Context, email string) (models.User, error)

	FindActiveByID(ctx context.Context, userID int64) (models.User, error)

	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)

	// RecordFailedAttempt increments the attempt counter and sets
	// locked_until when the new count reaches threshold, in one statement.
	RecordFailedAttempt(ctx context.Context, userID int64, threshold int, lockUntil time.Time) (models.AttemptState, error)

	// ResetAttempts clears the counter and lock and stamps last_login.
	ResetAttempts(ctx context.Context, userID int64, loginAt time.Time) error

	EnableBiometric(ctx context.Context, userID int64, hash models.BiometricHash, wrappedKey models.EncryptedBlob) error
}

// KeyRepository stores asymmetric key pairs.
type KeyRepository interface {
	CreateKey(ctx context.Context, key models.UserEncryptionKey) (models.UserEncryptionKey, error)

	// FindActivePublicKey returns the newest active public key of the user.
	FindActivePublicKey(ctx context.Context, userID int64) (string, error)
}

// SessionRepository stores issued token pairs by hash.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)

	// DeleteExpired removes sessions that expired before now and reports how
	// many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ActivityRepository is the append-only audit log.
type ActivityRepository interface {
	LogActivity(ctx context.Context, entry models.ActivityLog) error
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
