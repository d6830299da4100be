// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/models"
	validation "github.com/jellydator/validation"
)

// AuthValidator validates the auth request bodies.
type AuthValidator struct{}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return toFieldErrors(v.validateRegister(ctx, &value), fields...)
	case *models.RegisterRequest:
		return toFieldErrors(v.validateRegister(ctx, value), fields...)

	case models.LoginRequest:
		return toFieldErrors(v.validateLogin(ctx, &value), fields...)
	case *models.LoginRequest:
		return toFieldErrors(v.validateLogin(ctx, value), fields...)

	case models.BiometricLoginRequest:
		return toFieldErrors(v.validateBiometricLogin(ctx, &value), fields...)
	case *models.BiometricLoginRequest:
		return toFieldErrors(v.validateBiometricLogin(ctx, value), fields...)

	case models.BiometricEnrollRequest:
		return toFieldErrors(v.validateEnroll(ctx, &value), fields...)
	case *models.BiometricEnrollRequest:
		return toFieldErrors(v.validateEnroll(ctx, value), fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

// validateRegister accepts either plaintext names or their encrypted form. A
// supplied master key must be 32 bytes of hex.
func (v *AuthValidator) validateRegister(_ context.Context, r *models.RegisterRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, validation.Required, validation.Length(MinPasswordLength, MaxPasswordLength)),
		validation.Field(&r.FirstName, validation.When(r.EncryptedFirstName == nil, validation.Required)),
		validation.Field(&r.LastName, validation.When(r.EncryptedLastName == nil, validation.Required)),
		validation.Field(&r.MasterKey, validation.Match(masterKeyRegex).Error("must be 64 hex characters")),
		validation.Field(&r.EncryptedFirstName, blobRule),
		validation.Field(&r.EncryptedLastName, blobRule),
		validation.Field(&r.KeyPair, validation.By(func(value any) error {
			kp, _ := value.(*models.WrappedKeyPair)
			if kp == nil {
				return nil
			}
			if kp.PublicKey == "" {
				return validation.NewError("validation_public_key", "publicKey is required")
			}
			return blobRule.Validate(kp.EncryptedPrivateKey)
		})),
	)
}

func (v *AuthValidator) validateLogin(_ context.Context, r *models.LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.Password, validation.Required, validation.Length(1, MaxPasswordLength)),
	)
}

func (v *AuthValidator) validateBiometricLogin(_ context.Context, r *models.BiometricLoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, emailRules...),
		validation.Field(&r.BiometricData, validation.Required),
	)
}

func (v *AuthValidator) validateEnroll(_ context.Context, r *models.BiometricEnrollRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.BiometricData, validation.Required),
		validation.Field(&r.WrappedMasterKey, blobRule),
	)
}
