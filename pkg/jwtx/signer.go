package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access tokens with an Ed25519 key. Keys are ephemeral: a new
// pair is generated on process start and published through the JWKS
// endpoint, so a restart invalidates outstanding access tokens (refresh
// tokens survive, they live in the database).
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner generates a fresh Ed25519 keypair with a random kid.
func NewSigner() (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate keypair: %w", err)
	}

	var kidBytes [8]byte
	if _, err := rand.Read(kidBytes[:]); err != nil {
		return nil, fmt.Errorf("jwtx: generate kid: %w", err)
	}

	return &Signer{
		kid: hex.EncodeToString(kidBytes[:]),
		key: key,
		pub: pub,
	}, nil
}

// KID returns the key identifier placed in token headers.
func (s *Signer) KID() string { return s.kid }

// Sign serializes claims into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// PublicJWK returns the JWK published in the JWKS.
func (s *Signer) PublicJWK() JWK {
	return NewEd25519JWK(s.kid, s.pub)
}

// Validate sanity-checks the key material.
func (s *Signer) Validate() error {
	if len(s.key) != ed25519.PrivateKeySize || len(s.pub) != ed25519.PublicKeySize {
		return errors.New("jwtx: invalid Ed25519 key material")
	}
	return nil
}
