// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RegisterRequest is the body of POST /api/auth/register.
//
// MasterKey, the encrypted names and KeyPair are optional. A client that
// performs its own encryption sends them and the server stores them as-is;
// otherwise the server derives the master key from the credentials, uses it
// and discards it.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	MasterKey          string          `json:"masterKey,omitempty"`
	EncryptedFirstName *EncryptedBlob  `json:"encryptedFirstName,omitempty"`
	EncryptedLastName  *EncryptedBlob  `json:"encryptedLastName,omitempty"`
	KeyPair            *WrappedKeyPair `json:"keyPair,omitempty"`
}

// WrappedKeyPair is a client-generated key pair whose private half is already
// wrapped under the master key.
type WrappedKeyPair struct {
	PublicKey           string        `json:"publicKey"`
	EncryptedPrivateKey EncryptedBlob `json:"encryptedPrivateKey"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	BiometricData string `json:"biometricData,omitempty"`
}

// BiometricLoginRequest is the body of POST /api/auth/biometric-login.
type BiometricLoginRequest struct {
	Email         string `json:"email"`
	BiometricData string `json:"biometricData"`
}

// BiometricEnrollRequest is the body of POST /api/auth/biometric/enroll.
// WrappedMasterKey is the master key encrypted under a device secret.
type BiometricEnrollRequest struct {
	BiometricData    string        `json:"biometricData"`
	WrappedMasterKey EncryptedBlob `json:"wrappedMasterKey"`
}

// UserInfo is the public part of a user returned to clients.
type UserInfo struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AuthResult is returned by successful register and login operations.
type AuthResult struct {
	User             UserInfo       `json:"user"`
	Token            string         `json:"token"`
	RefreshToken     string         `json:"refreshToken"`
	PublicKey        string         `json:"publicKey"`
	WrappedMasterKey *EncryptedBlob `json:"wrappedMasterKey,omitempty"`
}

// ErrorResponse is the JSON error body of the HTTP API.
type ErrorResponse struct {
	Error       string            `json:"error"`
	Message     string            `json:"message"`
	Fields      map[string]string `json:"fields,omitempty"`
	LockedUntil *time.Time        `json:"lockedUntil,omitempty"`
}
