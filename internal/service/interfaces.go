package service

import (
	"context"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers accounts and authenticates them with a password or a
// biometric assertion. Every entry point validates its input first and
// returns one of the errors in errors.go; anything else is an internal
// failure.
type AuthService interface {
	// Register creates an account, its key pair and a first session.
	Register(ctx context.Context, req models.RegisterRequest, meta models.ClientMeta) (models.AuthResult, error)

	// Login checks the lock state, then the password (and the biometric
	// sample when the account has biometrics enabled and one was supplied).
	Login(ctx context.Context, req models.LoginRequest, meta models.ClientMeta) (models.AuthResult, error)

	// BiometricLogin authenticates with a biometric sample alone, under the
	// stricter biometric lockout policy.
	BiometricLogin(ctx context.Context, req models.BiometricLoginRequest, meta models.ClientMeta) (models.AuthResult, error)

	// EnrollBiometric stores the biometric hash and the device-wrapped master
	// key of an authenticated user.
	EnrollBiometric(ctx context.Context, userID int64, req models.BiometricEnrollRequest, meta models.ClientMeta) error

	// ParseToken validates an access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
