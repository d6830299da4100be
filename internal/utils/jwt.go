package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-legacy-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTParams describes an access token to be issued.
type JWTParams struct {
	Issuer     string
	UserID     int64
	Email      string
	AuthMethod models.AuthMethod
	Duration   time.Duration
	SignKey    string

	// Now is the issue instant. Zero means time.Now().
	Now time.Time
}

// GenerateJWTToken creates a signed HMAC-SHA256 access token.
//
// The token includes the following claims:
//   - iss, sub (the user ID as a string), iat, exp
//   - userId, email, tokenType ("access") and authMethod
//
// Issuer, Duration and SignKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Issuer: "legacy-keeper", UserID: 42, Email: "jane@example.com",
//	    Duration: 24 * time.Hour, SignKey: "secret",
//	})
func GenerateJWTToken(p JWTParams) (models.Token, error) {
	if p.Issuer == "" || p.Duration == 0 || p.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := p.Now
	if now.IsZero() {
		now = time.Now()
	}

	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.Issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.Duration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:     p.UserID,
		Email:      p.Email,
		TokenType:  models.TokenTypeAccess,
		AuthMethod: p.AuthMethod,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - tokenType must be "access"
//   - Subject (sub) must be present and agree with the userId claim
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.TokenType != models.TokenTypeAccess {
		return models.Token{}, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, err
	}
	if userID != claims.UserID {
		return models.Token{}, errors.New("subject does not match userId claim")
	}

	claims.Token = token
	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
