// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the legacy-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrLocked] for 423).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// legacy-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. The request is expected to carry
	// client-side encrypted names and a wrapped key pair; the master key is
	// never sent. On success the returned access token is stored via
	// SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Login authenticates with email and password. On success the access
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// BiometricLogin authenticates with a biometric assertion. The result
	// carries the master key wrapped under this device's secret.
	BiometricLogin(ctx context.Context, req models.BiometricLoginRequest) (models.AuthResult, error)

	// EnrollBiometric registers a biometric assertion and a device-wrapped
	// master key for the authenticated user. Requires a token.
	EnrollBiometric(ctx context.Context, req models.BiometricEnrollRequest) error

	// Health reports whether the server answers its health probe.
	Health(ctx context.Context) error
}
