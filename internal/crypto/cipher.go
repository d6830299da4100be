// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

const (
	// AlgorithmAESGCM names the blob cipher.
	AlgorithmAESGCM = "AES-256-GCM"

	saltSize = 32
	ivSize   = 16

	// blobKeyBits is recorded in EncryptedBlob.KeySize.
	blobKeyBits = keySize * 8

	// maxIterations bounds the work a crafted blob can demand.
	maxIterations = 10_000_000
)

// Encrypt implements [KeyChainService]. Salt and IV are drawn fresh on every
// call, so encrypting the same plaintext twice never yields the same blob.
func (k *keyChainService) Encrypt(plaintext, password string) (models.EncryptedBlob, error) {
	salt, err := randomBytes(saltSize)
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	iv, err := randomBytes(ivSize)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	key := k.DeriveKey(password, salt, k.iterations)
	defer ZeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	ciphertext := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return models.EncryptedBlob{
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Iterations: k.iterations,
		KeySize:    blobKeyBits,
		Algorithm:  AlgorithmAESGCM,
	}, nil
}

// Decrypt implements [KeyChainService]. The key is re-derived from the blob's
// own salt and iteration count, not from the service defaults.
func (k *keyChainService) Decrypt(blob models.EncryptedBlob, password string) (string, error) {
	if err := blob.Validate(); err != nil {
		return "", ErrDecryption
	}
	if blob.Algorithm != AlgorithmAESGCM || blob.KeySize != blobKeyBits || blob.Iterations > maxIterations {
		return "", ErrDecryption
	}

	salt, err := base64.StdEncoding.DecodeString(blob.Salt)
	if err != nil {
		return "", ErrDecryption
	}
	iv, err := base64.StdEncoding.DecodeString(blob.IV)
	if err != nil || len(iv) != ivSize {
		return "", ErrDecryption
	}
	ciphertext, err := base64.StdEncoding.DecodeString(blob.Ciphertext)
	if err != nil {
		return "", ErrDecryption
	}

	key := k.DeriveKey(password, salt, blob.Iterations)
	defer ZeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", ErrDecryption
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

// EncryptFile implements [KeyChainService].
func (k *keyChainService) EncryptFile(data []byte, password string) (models.EncryptedBlob, error) {
	return k.Encrypt(base64.StdEncoding.EncodeToString(data), password)
}

// DecryptFile implements [KeyChainService].
func (k *keyChainService) DecryptFile(blob models.EncryptedBlob, password string) ([]byte, error) {
	encoded, err := k.Decrypt(blob, password)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrDecryption
	}
	return data, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
