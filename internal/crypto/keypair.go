// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/models"
)

const (
	pemPublicKey  = "PUBLIC KEY"
	pemPrivateKey = "PRIVATE KEY"
)

// GenerateKeyPair implements [KeyChainService]. The public key is PKIX and the
// private key PKCS#8, both PEM-encoded. The unit never persists either half.
func (k *keyChainService) GenerateKeyPair() (models.KeyPair, error) {
	private, err := rsa.GenerateKey(rand.Reader, k.rsaBits)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("generate rsa key: %w", err)
	}

	publicDER, err := x509.MarshalPKIXPublicKey(&private.PublicKey)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal public key: %w", err)
	}
	privateDER, err := x509.MarshalPKCS8PrivateKey(private)
	if err != nil {
		return models.KeyPair{}, fmt.Errorf("marshal private key: %w", err)
	}
	defer ZeroBytes(privateDER)

	return models.KeyPair{
		PublicKey:  string(pem.EncodeToMemory(&pem.Block{Type: pemPublicKey, Bytes: publicDER})),
		PrivateKey: string(pem.EncodeToMemory(&pem.Block{Type: pemPrivateKey, Bytes: privateDER})),
	}, nil
}

// WrapPrivateKey implements [KeyChainService].
func (k *keyChainService) WrapPrivateKey(pair models.KeyPair, masterKey MasterKey) (models.EncryptedBlob, error) {
	if len(masterKey) == 0 {
		return models.EncryptedBlob{}, ErrInvalidMasterKey
	}
	return k.Encrypt(pair.PrivateKey, masterKey.Secret())
}

// UnwrapPrivateKey implements [KeyChainService].
func (k *keyChainService) UnwrapPrivateKey(blob models.EncryptedBlob, masterKey MasterKey) (string, error) {
	return k.Decrypt(blob, masterKey.Secret())
}

// EncryptWithRSA encrypts data for the holder of publicKeyPEM using RSA-OAEP
// with SHA-256 and returns base64 ciphertext. The message must fit in a
// single OAEP block.
func EncryptWithRSA(data, publicKeyPEM string) (string, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil || block.Type != pemPublicKey {
		return "", ErrInvalidPEM
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPEM, err)
	}
	public, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return "", ErrInvalidPEM
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, public, []byte(data), nil)
	if err != nil {
		return "", fmt.Errorf("rsa encrypt: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptWithRSA reverses EncryptWithRSA.
func DecryptWithRSA(encrypted, privateKeyPEM string) (string, error) {
	block, _ := pem.Decode([]byte(privateKeyPEM))
	if block == nil || block.Type != pemPrivateKey {
		return "", ErrInvalidPEM
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPEM, err)
	}
	private, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return "", ErrInvalidPEM
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ErrDecryption
	}

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, private, ciphertext, nil)
	if err != nil {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}
