// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-legacy-keeper/models"

// KeyChainService holds every zero-knowledge primitive of the application.
// It knows nothing about the network, the database or users: it derives keys,
// seals and opens blobs, hashes biometric samples and builds blinded search
// indexes.
//
// Flow on the client:
//
//	MasterKey = CreateMasterKey(email, password)          (never leaves memory)
//	Blob      = Encrypt(value, MasterKey.Secret())        (safe to store)
//	Record    = EncryptRecord(record, MasterKey)          (one blob per field)
//	Index     = CreateSearchableIndex(text, MasterKey)    (blinded tokens)
//
// On the server only HashBiometricData / VerifyBiometricData are used for
// verification, plus Encrypt and GenerateKeyPair when a client did not
// pre-encrypt its registration payload.
type KeyChainService interface {
	// DeriveKey stretches secret with PBKDF2-HMAC-SHA256 into a 32-byte key.
	// The same inputs always produce the same key.
	DeriveKey(secret string, salt []byte, iterations int) []byte

	// CreateMasterKey derives the user's master key from the credentials. The
	// salt is derived from the normalized email, so the same user gets the
	// same key on every device without storing a salt.
	CreateMasterKey(email, password string) MasterKey

	// Encrypt seals plaintext with AES-256-GCM under a key derived from
	// password with a fresh salt and IV.
	Encrypt(plaintext, password string) (models.EncryptedBlob, error)

	// Decrypt opens a blob produced by Encrypt. Any failure is reported as
	// [ErrDecryption].
	Decrypt(blob models.EncryptedBlob, password string) (string, error)

	// EncryptFile base64-encodes data and encrypts the result.
	EncryptFile(data []byte, password string) (models.EncryptedBlob, error)

	// DecryptFile reverses EncryptFile.
	DecryptFile(blob models.EncryptedBlob, password string) ([]byte, error)

	// HashBiometricData produces a salted, multi-round, one-way hash of a
	// biometric assertion.
	HashBiometricData(sample string) (models.BiometricHash, error)

	// VerifyBiometricData recomputes the hash of sample with the stored salt
	// and compares it in constant time.
	VerifyBiometricData(sample string, stored models.BiometricHash) bool

	// EncryptRecord replaces every non-empty sensitive field of record with
	// an encrypted blob under "encrypted_<field>".
	EncryptRecord(record models.Record, masterKey MasterKey) (models.EncryptedRecord, error)

	// DecryptRecord opens every encrypted field it can. Fields that fail are
	// marked with [models.EncryptedFieldSentinel]; the record is still
	// returned.
	DecryptRecord(record models.EncryptedRecord, masterKey MasterKey) models.DecryptedRecord

	// CreateSearchableIndex encrypts text and derives its blinded token set.
	CreateSearchableIndex(text string, masterKey MasterKey) (models.SearchableRecord, error)

	// SearchEncryptedData returns the records whose index contains the
	// blinded form of term.
	SearchEncryptedData(term string, records []models.SearchableRecord, masterKey MasterKey) ([]models.SearchableRecord, error)

	// GenerateKeyPair creates a PEM-encoded RSA key pair.
	GenerateKeyPair() (models.KeyPair, error)

	// WrapPrivateKey encrypts the private half of pair under masterKey.
	WrapPrivateKey(pair models.KeyPair, masterKey MasterKey) (models.EncryptedBlob, error)

	// UnwrapPrivateKey decrypts a private key wrapped by WrapPrivateKey.
	UnwrapPrivateKey(blob models.EncryptedBlob, masterKey MasterKey) (string, error)
}
