package domain

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string     // argon2 encoded
	MFAEnabled   *time.Time // Timestamp when MFA was enabled (nullable)
	MFASecret    *string    // TOTP secret (nullable, base32 encoded)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
