package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

var (
	// ErrInvalidCredentials covers an unknown email, a wrong password, a
	// wrong biometric sample and biometrics not being enabled. Callers must
	// not be able to tell these apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrDuplicateAccount = errors.New("an account with this email already exists")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// client side
	ErrVaultLocked       = errors.New("vault is locked, log in first")
	ErrBiometricNotSetUp = errors.New("biometric login is not set up on this device")
	ErrNoWrappedKey      = errors.New("server returned no wrapped master key")
	ErrNoAttachment      = errors.New("record has no attachment")

	// ErrVaultUnverified is returned when an empty vault is unlocked for the
	// first time and there is no server to check the password against.
	ErrVaultUnverified = errors.New("cannot verify the password of a new vault")
)

// ValidationError reports malformed input by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// AccountLockedError is returned while an account is locked. Until is the
// moment the lock expires.
type AccountLockedError struct {
	Until time.Time
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account is locked until %s", e.Until.UTC().Format(time.RFC3339))
}
