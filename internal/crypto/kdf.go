// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// keySize is the AES-256 key length in bytes.
const keySize = 32

// MasterKey is the symmetric key derived from a user's credentials. It lives
// only in process memory and must be zeroed once it is no longer needed.
type MasterKey []byte

// Secret returns the hex form of the key, used as the password input of
// [KeyChainService.Encrypt].
func (m MasterKey) Secret() string {
	return hex.EncodeToString(m)
}

// Zero overwrites the key in place.
func (m MasterKey) Zero() {
	ZeroBytes(m)
}

// ParseMasterKey decodes a hex master key supplied by a client.
func ParseMasterKey(s string) (MasterKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(b) != keySize {
		return nil, ErrInvalidMasterKey
	}
	return MasterKey(b), nil
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(secret string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(secret), salt, iterations, keySize, sha256.New)
}

// DeriveKeySHA512 is the SHA-512 variant of DeriveKey for contexts that want
// a wider hash and a longer output.
func DeriveKeySHA512(secret string, salt []byte, iterations, length int) []byte {
	return pbkdf2.Key([]byte(secret), salt, iterations, length, sha512.New)
}

// CreateMasterKey implements [KeyChainService]. The salt is the hex SHA-256 of
// the trimmed, lower-cased email; it is derivable and therefore not secret.
func (k *keyChainService) CreateMasterKey(email, password string) MasterKey {
	return MasterKey(k.DeriveKey(password, emailSalt(email), k.masterKeyIterations))
}

// GenerateSessionToken returns 32 random bytes in hex.
func GenerateSessionToken() (string, error) {
	b, err := randomBytes(32)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailSalt(email string) []byte {
	sum := sha256.Sum256([]byte(NormalizeEmail(email)))
	return []byte(hex.EncodeToString(sum[:]))
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return b, nil
}
