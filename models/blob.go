// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrIncompleteBlob is returned by [EncryptedBlob.Validate] when one of the
// parts needed to reverse an encryption is missing.
var ErrIncompleteBlob = errors.New("encrypted blob is incomplete")

// EncryptedBlob is the self-describing result of a single symmetric
// encryption. It carries everything needed to re-derive the key and open the
// ciphertext except the password itself.
//
// Ciphertext, Salt and IV are standard base64. A blob is never mutated after
// creation; re-encrypting a value produces a new blob.
type EncryptedBlob struct {
	Ciphertext string `json:"ciphertext"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	Iterations int    `json:"iterations"`
	KeySize    int    `json:"keySize"`
	Algorithm  string `json:"algorithm"`
}

// Validate reports whether all parts of the blob are present.
func (b EncryptedBlob) Validate() error {
	if b.Ciphertext == "" || b.Salt == "" || b.IV == "" || b.Iterations <= 0 || b.Algorithm == "" {
		return ErrIncompleteBlob
	}
	return nil
}

// IsZero reports whether the blob is the zero value.
func (b EncryptedBlob) IsZero() bool {
	return b == EncryptedBlob{}
}

// BiometricHash is the one-way representation of an enrolled biometric
// assertion. It is compared, never decrypted.
type BiometricHash struct {
	Hash       string `json:"hash"`
	Salt       string `json:"salt"`
	Algorithm  string `json:"algorithm"`
	Rounds     int    `json:"rounds"`
	Iterations int    `json:"iterations"`
}

// KeyPair holds a PEM-encoded asymmetric key pair in plain form. The private
// half only lives in memory; it is persisted exclusively as an [EncryptedBlob].
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"-"`
}

// BoxKeyPair holds a base64-encoded Curve25519 key pair for NaCl box.
type BoxKeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"-"`
}

// Value stores the blob as a JSON document.
func (b EncryptedBlob) Value() (driver.Value, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan reads a blob stored by Value.
func (b *EncryptedBlob) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*b = EncryptedBlob{}
		return nil
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	default:
		return fmt.Errorf("cannot scan %T into EncryptedBlob", src)
	}
}
