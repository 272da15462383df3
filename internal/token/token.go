// Package token mints and checks the bearer tokens that guard the HTTP API.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "passgen"
	audience = "passgen-api"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrClientMissing = errors.New("client name is required")
)

// Claims identifies the API client a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	Client string `json:"client"`
}

// Issue creates a signed token for client that expires after expiry.
func Issue(client, secret string, expiry time.Duration) (string, error) {
	if client == "" {
		return "", ErrClientMissing
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   client,
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Client: client,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Validate parses tokenString and returns its claims if the signature,
// issuer, audience and expiry all check out.
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
