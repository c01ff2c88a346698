package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrEmailTaken         = errors.New("email_taken")
	ErrWeakPassword       = errors.New("weak_password")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrInvalidGrant       = errors.New("invalid_grant")
	ErrTooManyAttempts    = errors.New("too_many_attempts")
	ErrMFANotEnrolled     = errors.New("mfa_not_enrolled")
	ErrInvalidInput       = errors.New("invalid_input")
	ErrInvalidOccupancy   = errors.New("invalid_occupancy")
	ErrNotFound           = errors.New("not_found")
	ErrForbidden          = errors.New("forbidden")
)
