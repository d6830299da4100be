// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrInvalidAuthConfigs      = errors.New("invalid auth configuration")
	ErrInvalidStorageConfigs   = errors.New("invalid storage configuration")
	ErrInvalidServerConfigs    = errors.New("invalid server configuration")
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	ErrInvalidWorkerConfigs    = errors.New("invalid worker configuration")
	ErrInvalidAdapterConfigs   = errors.New("invalid adapter configuration")

	// ErrInsecureSignKey is returned in strict mode when no sign key is set.
	ErrInsecureSignKey = errors.New("token sign key is not configured and strict mode is on")
)
