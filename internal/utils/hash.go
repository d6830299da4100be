package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA-256 digest of a bearer or refresh token.
// Only this digest is persisted; the token itself is handed to the client
// once.
//
// Example usage:
//
//	session.SessionTokenHash = utils.HashToken(token.SignedString)
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
