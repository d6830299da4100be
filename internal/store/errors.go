// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when an active user already owns the
	// email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	ErrUserNotFound       = errors.New("user not found")
	ErrKeyNotFound        = errors.New("encryption key not found")
	ErrRecordNotFound     = errors.New("vault record not found")
	ErrDeviceSecretAbsent = errors.New("device secret not found")
	ErrKeyCheckAbsent     = errors.New("vault key check not found")
)

var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
