package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a session token.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues signed, time-bound session tokens.
type TokenService interface {
	// Issue signs a token for the given identity and returns it together with its expiry.
	Issue(username, email string) (token string, expiresAt time.Time, err error)

	// GetTokenDuration returns the configured lifetime of issued tokens.
	GetTokenDuration() time.Duration
}
