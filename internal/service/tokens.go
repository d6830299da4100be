package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/internal/crypto"
	"github.com/MKhiriev/go-legacy-keeper/internal/utils"
	"github.com/MKhiriev/go-legacy-keeper/models"
)

// tokenIssuer creates the access/refresh pair handed out on a successful
// authentication, plus the session row that records it by hash.
type tokenIssuer struct {
	signKey    string
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type issuedTokens struct {
	access  models.Token
	refresh string
	session models.Session
}

func (t tokenIssuer) issue(user models.User, method models.AuthMethod, meta models.ClientMeta, now time.Time) (issuedTokens, error) {
	access, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:     t.issuer,
		UserID:     user.UserID,
		Email:      user.Email,
		AuthMethod: method,
		Duration:   t.accessTTL,
		SignKey:    t.signKey,
		Now:        now,
	})
	if err != nil {
		return issuedTokens{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := crypto.GenerateSessionToken()
	if err != nil {
		return issuedTokens{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return issuedTokens{
		access:  access,
		refresh: refresh,
		session: models.Session{
			UserID:           user.UserID,
			SessionTokenHash: utils.HashToken(access.SignedString),
			RefreshTokenHash: utils.HashToken(refresh),
			IPAddress:        meta.IPAddress,
			UserAgent:        meta.UserAgent,
			ExpiresAt:        now.Add(t.refreshTTL),
		},
	}, nil
}

func (t tokenIssuer) parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}
