package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes.
const (
	// DefaultAccessTokenTTL keeps access tokens short-lived; clients refresh
	// through the opaque refresh token.
	DefaultAccessTokenTTL = 15 * time.Minute

	// DefaultRefreshTokenTTL bounds how long an idle session survives.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// Authentication method references used in the amr claim.
const (
	AMRPassword = "pwd"
	AMRMFA      = "otp"
	AMRRefresh  = "refresh"
)

// Claims are the access-token claims shared between the API and its clients.
// Keep changes additive.
type Claims struct {
	jwt.RegisteredClaims

	// SID identifies the session (shared by the access/refresh pair).
	SID string `json:"sid,omitempty"`

	// Role is the authorization role, "admin" or "user". Route gating reads
	// this claim.
	Role string `json:"role,omitempty"`

	// AMR lists authentication method references, e.g. ["pwd"] or
	// ["pwd","otp"] when a TOTP challenge was completed.
	AMR []string `json:"amr,omitempty"`

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// DisplayName of the authenticated user.
	DisplayName string `json:"display_name,omitempty"`
}

// NewAccessClaims builds minimally-correct access token claims.
func NewAccessClaims(
	subject, sid, role string,
	amr []string,
	ttl time.Duration,
	issuer, email, displayName string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:         sid,
		Role:        role,
		AMR:         amr,
		Email:       email,
		DisplayName: displayName,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the iss claim against the expected value. An empty
// expected issuer enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
