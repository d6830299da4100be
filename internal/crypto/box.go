// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-legacy-keeper/models"
	"golang.org/x/crypto/nacl/box"
)

const boxNonceSize = 24

// GenerateBoxKeyPair creates a Curve25519 key pair for NaCl box, base64
// encoded.
func GenerateBoxKeyPair() (models.BoxKeyPair, error) {
	public, private, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return models.BoxKeyPair{}, fmt.Errorf("generate box key: %w", err)
	}
	defer ZeroBytes(private[:])

	return models.BoxKeyPair{
		PublicKey:  base64.StdEncoding.EncodeToString(public[:]),
		PrivateKey: base64.StdEncoding.EncodeToString(private[:]),
	}, nil
}

// EncryptWithBox seals data from the owner of ownPrivate to the owner of
// peerPublic. The output is base64(nonce || box).
func EncryptWithBox(data, peerPublic, ownPrivate string) (string, error) {
	public, err := decodeBoxKey(peerPublic)
	if err != nil {
		return "", err
	}
	private, err := decodeBoxKey(ownPrivate)
	if err != nil {
		return "", err
	}
	defer ZeroBytes(private[:])

	nonceBytes, err := randomBytes(boxNonceSize)
	if err != nil {
		return "", err
	}
	var nonce [boxNonceSize]byte
	copy(nonce[:], nonceBytes)

	sealed := box.Seal(nonce[:], []byte(data), &nonce, public, private)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptWithBox opens a message produced by EncryptWithBox. peerPublic is the
// sender's public key and ownPrivate the recipient's private key.
func DecryptWithBox(encrypted, peerPublic, ownPrivate string) (string, error) {
	public, err := decodeBoxKey(peerPublic)
	if err != nil {
		return "", err
	}
	private, err := decodeBoxKey(ownPrivate)
	if err != nil {
		return "", err
	}
	defer ZeroBytes(private[:])

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil || len(sealed) < boxNonceSize+box.Overhead {
		return "", ErrDecryption
	}

	var nonce [boxNonceSize]byte
	copy(nonce[:], sealed[:boxNonceSize])

	plaintext, ok := box.Open(nil, sealed[boxNonceSize:], &nonce, public, private)
	if !ok {
		return "", ErrDecryption
	}
	return string(plaintext), nil
}

func decodeBoxKey(s string) (*[32]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) != 32 {
		return nil, ErrInvalidBoxKey
	}

	var key [32]byte
	copy(key[:], raw)
	return &key, nil
}
