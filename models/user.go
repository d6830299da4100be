// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the server-side account row. It holds only what the server needs to
// verify credentials and enforce the lockout policy; every personal field is
// an [EncryptedBlob] the server cannot open.
type User struct {
	// UserID is the internal identifier. Never exposed through JSON.
	UserID int64 `json:"-"`

	Email string `json:"email"`

	// PasswordHash is a bcrypt hash, independent of the master key.
	PasswordHash string `json:"-"`

	BiometricHash    string `json:"-"`
	BiometricSalt    string `json:"-"`
	BiometricEnabled bool   `json:"-"`

	// BiometricAlgorithm, BiometricRounds and BiometricIterations are the
	// parameters the hash was produced with. Zero values come from rows
	// enrolled before they were stored.
	BiometricAlgorithm  string `json:"-"`
	BiometricRounds     int    `json:"-"`
	BiometricIterations int    `json:"-"`

	// BiometricWrappedKey is the master key encrypted under a per-device
	// secret that only the enrolled client holds.
	BiometricWrappedKey *EncryptedBlob `json:"-"`

	LoginAttempts int        `json:"-"`
	LockedUntil   *time.Time `json:"-"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	DeletedAt     *time.Time `json:"-"`

	EncryptedFirstName EncryptedBlob `json:"-"`
	EncryptedLastName  EncryptedBlob `json:"-"`

	// EncryptionSalt, EncryptionIV and KeyDerivationIterations mirror the
	// parameters of EncryptedFirstName for clients that read them directly.
	EncryptionSalt          string `json:"-"`
	EncryptionIV            string `json:"-"`
	KeyDerivationIterations int    `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// IsLocked reports whether the account is locked at the given instant.
func (u User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// StoredBiometric returns the biometric hash in the shape the hashing unit
// verifies against, with the parameters it was enrolled with. Rows without
// stored parameters leave them at zero and the verifier falls back to its
// configured values.
func (u User) StoredBiometric() BiometricHash {
	algorithm := u.BiometricAlgorithm
	if algorithm == "" {
		algorithm = BiometricAlgorithm
	}
	return BiometricHash{
		Hash:       u.BiometricHash,
		Salt:       u.BiometricSalt,
		Algorithm:  algorithm,
		Rounds:     u.BiometricRounds,
		Iterations: u.BiometricIterations,
	}
}

// BiometricAlgorithm identifies the biometric hashing pipeline.
const BiometricAlgorithm = "SHA3-512-PBKDF2"

// AttemptState is the outcome of an atomic failed-attempt update.
type AttemptState struct {
	LoginAttempts int
	LockedUntil   *time.Time
}

// UserEncryptionKey is an asymmetric key row. The private half is always
// wrapped under the owner's master key.
type UserEncryptionKey struct {
	KeyID               int64         `json:"-"`
	UserID              int64         `json:"-"`
	KeyType             string        `json:"keyType"`
	PublicKey           string        `json:"publicKey"`
	EncryptedPrivateKey EncryptedBlob `json:"encryptedPrivateKey"`
	Algorithm           string        `json:"algorithm"`
	KeySize             int           `json:"keySize"`
	IsActive            bool          `json:"isActive"`
	CreatedAt           time.Time     `json:"createdAt"`
}

const (
	KeyTypeRSA      = "rsa"
	KeyAlgorithmRSA = "RSA-2048"
	KeySizeRSA      = 2048
)
