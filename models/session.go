// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of an issued token pair. Only SHA-256
// hashes of the tokens are stored.
type Session struct {
	SessionID        int64
	UserID           int64
	SessionTokenHash string
	RefreshTokenHash string
	IPAddress        string
	UserAgent        string
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

// ClientMeta is the caller information attached to sessions and audit rows.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// ActivityType classifies an audit log row.
type ActivityType string

const (
	ActivityRegistration      ActivityType = "registration"
	ActivityLogin             ActivityType = "login"
	ActivityBiometricLogin    ActivityType = "biometric_login"
	ActivityLoginFailed       ActivityType = "login_failed"
	ActivityLoginLocked       ActivityType = "login_locked"
	ActivityBiometricEnrolled ActivityType = "biometric_enrolled"
)

// ActivityLog is a single audit entry. UserID is nil when the actor could not
// be resolved (unknown email). It never carries secrets.
type ActivityLog struct {
	UserID       *int64
	ActivityType ActivityType
	Description  string
	IPAddress    string
	UserAgent    string
	IsSuspicious bool
	RiskScore    int
	CreatedAt    time.Time
}
