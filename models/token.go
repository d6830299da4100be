// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMethod records how a token holder authenticated.
type AuthMethod string

const (
	AuthMethodPassword  AuthMethod = "password"
	AuthMethodBiometric AuthMethod = "biometric"
)

// TokenTypeAccess is the tokenType claim of access tokens.
const TokenTypeAccess = "access"

// Token is an access token together with its claims.
//
// The custom claims (userId, email, tokenType, authMethod) sit next to the
// registered ones so that both the "sub" claim and the explicit userId agree.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	UserID     int64      `json:"userId"`
	Email      string     `json:"email"`
	TokenType  string     `json:"tokenType"`
	AuthMethod AuthMethod `json:"authMethod,omitempty"`

	// SignedString is the compact JWS form of the token.
	SignedString string `json:"-"`
}

// GetUserID parses the "sub" claim as an int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
