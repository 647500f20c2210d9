package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the single error surfaced for every token validation
// failure. Expired, malformed and badly signed tokens are indistinguishable
// to callers, so the validator cannot be used as an oracle.
var ErrTokenInvalid = errors.New("invalid or expired token")

// Claims defines the custom claims carried by access tokens.
// The registered Subject claim holds the username the token was issued for.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: there is no revocation list, and issuing a new token
// never invalidates previously issued ones.
type TokenService interface {
	// Issue creates a signed access token for the given subject (username),
	// expiring a fixed TTL after issuance.
	Issue(subject string) (string, error)

	// Validate checks signature integrity and expiry of a token string and
	// returns the embedded claims. Malformed, expired and badly signed tokens
	// all surface the same error so callers cannot tell which check failed.
	Validate(tokenString string) (*Claims, error)
}
