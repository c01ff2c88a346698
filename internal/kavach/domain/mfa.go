package domain

import "time"

// MFAChallengeResponse is returned when MFA is required during login.
type MFAChallengeResponse struct {
	MFARequired bool     `json:"mfa_required"` // always true
	MFAToken    string   `json:"mfa_token"`    // ULID reference token
	Methods     []string `json:"methods"`      // available MFA methods (e.g., ["totp"])
}

// MFASession represents a pending MFA challenge between a correct password
// and the TOTP code.
type MFASession struct {
	ID        string // ULID (the mfa_token)
	UserID    string
	SessionID string // Session ID for the eventual refresh token
	AMR       []string
	Attempts  int // failed MFA attempts, capped to prevent brute force
	CreatedAt time.Time
	ExpiresAt time.Time
}

type MFAEnrollResponse struct {
	Secret  string `json:"secret"`  // Base32 encoded secret for TOTP
	QRCode  string `json:"qr_code"` // otpauth:// URL for QR code generation
	Issuer  string `json:"issuer"`
	Account string `json:"account"` // user email
}
