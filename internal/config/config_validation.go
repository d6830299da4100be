// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinBcryptCost is the lowest accepted bcrypt work factor.
const MinBcryptCost = 12

func (cfg *StructuredConfig) validate() error {
	auth := cfg.Auth
	if auth.BcryptCost < MinBcryptCost || auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidAuthConfigs, auth.BcryptCost)
	}
	if auth.AccessTokenDuration <= 0 || auth.RefreshTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAuthConfigs)
	}
	if auth.PasswordLockout.Threshold <= 0 || auth.PasswordLockout.Duration <= 0 ||
		auth.BiometricLockout.Threshold <= 0 || auth.BiometricLockout.Duration <= 0 {
		return fmt.Errorf("%w: lockout policies must be positive", ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.RateLimit.RegisterLimit <= 0 || cfg.RateLimit.LoginLimit <= 0 || cfg.RateLimit.Window <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if cfg.Workers.SessionCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
