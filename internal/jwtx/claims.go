// Package jwtx inspects bearer tokens on the client side.
//
// The client never holds the server's signing key, so tokens are decoded
// without signature verification. The claims are used for display purposes
// only (who am I, when does the session end); the server remains the sole
// authority on token validity.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the registered claims plus the role claim issued by the
// EasyApt backend ({"sub": "<user id>", "role": "...", "exp": ...}).
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// ExpiresIn reports the remaining lifetime of the token relative to now.
// A non-positive result means the token has already expired.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Time.Sub(now)
}

// Inspect decodes a bearer token without verifying its signature.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
