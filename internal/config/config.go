// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// InsecureDefaultSignKey signs tokens when no key is configured. It exists so
// a fresh checkout starts; AUTH_STRICT=true turns its use into a startup error.
const InsecureDefaultSignKey = "legacy-keeper-insecure-development-sign-key"

// StructuredConfig is the top-level server configuration.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds token, password hashing and lockout settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the Postgres connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listener addresses, request timeout and log level.
	Server Server `envPrefix:"SERVER_"`

	// RateLimit bounds how often one IP may call the auth endpoints.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Workers holds intervals of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	JSONFilePath string `env:"CONFIG"`
}

// Auth groups everything the authentication service needs.
type Auth struct {
	// TokenSignKey is the HMAC secret for access tokens. When empty,
	// InsecureDefaultSignKey is used and UsingInsecureSignKey is set.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	TokenIssuer          string        `env:"TOKEN_ISSUER"`
	AccessTokenDuration  time.Duration `env:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// BcryptCost must be at least 12.
	BcryptCost int `env:"BCRYPT_COST"`

	PasswordLockout  Lockout `envPrefix:"PASSWORD_LOCKOUT_"`
	BiometricLockout Lockout `envPrefix:"BIOMETRIC_LOCKOUT_"`

	// Strict refuses to start with the insecure default sign key.
	Strict bool `env:"STRICT"`

	// UsingInsecureSignKey is set by the builder, never by a source.
	UsingInsecureSignKey bool
}

// Lockout is a failed-attempt policy: after Threshold consecutive failures the
// account is locked for Duration.
type Lockout struct {
	Threshold int           `env:"THRESHOLD"`
	Duration  time.Duration `env:"DURATION"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// DSN is a pgx connection string.
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings of the HTTP and gRPC listeners.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every HTTP request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	LogLevel string `env:"LOG_LEVEL"`
}

// RateLimit configures the per-IP limiter of the auth routes. Limits count
// requests per Window.
type RateLimit struct {
	RegisterLimit int           `env:"REGISTER_LIMIT"`
	LoginLimit    int           `env:"LOGIN_LIMIT"`
	Window        time.Duration `env:"WINDOW"`
}

// Workers holds background job settings.
type Workers struct {
	// SessionCleanupInterval is how often expired sessions are purged.
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL"`
}

// GetStructuredConfig loads the server configuration from the environment,
// the command line, an optional JSON file and the defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:          "legacy-keeper",
			AccessTokenDuration:  24 * time.Hour,
			RefreshTokenDuration: 7 * 24 * time.Hour,
			BcryptCost:           12,
			PasswordLockout:      Lockout{Threshold: 5, Duration: 30 * time.Minute},
			BiometricLockout:     Lockout{Threshold: 3, Duration: 60 * time.Minute},
		},
		Server: Server{
			HTTPAddress:    ":8080",
			GRPCAddress:    ":9090",
			RequestTimeout: 30 * time.Second,
			LogLevel:       "info",
		},
		RateLimit: RateLimit{
			RegisterLimit: 5,
			LoginLimit:    10,
			Window:        15 * time.Minute,
		},
		Workers: Workers{
			SessionCleanupInterval: time.Hour,
		},
	}
}
