package service

import (
	"context"

	"github.com/pquerna/otp/totp"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// MFAService handles TOTP enrollment for operator accounts. Enrollment is a
// two-step flow: Enroll stores a pending secret, Activate proves possession
// of the authenticator before MFA starts gating logins.
type MFAService struct {
	Store  store.Store
	Issuer string
}

// Enroll generates a fresh TOTP secret for the user and stores it pending
// activation. Re-enrolling replaces any previous pending secret.
func (s *MFAService) Enroll(ctx context.Context, userID string) (*domain.MFAEnrollResponse, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return nil, err
	}

	return &domain.MFAEnrollResponse{
		Secret:  key.Secret(),
		QRCode:  key.URL(),
		Issuer:  s.Issuer,
		Account: user.Email,
	}, nil
}

// Activate verifies a code against the pending secret and switches MFA on.
func (s *MFAService) Activate(ctx context.Context, userID, otpCode string) error {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.MFASecret == nil || *user.MFASecret == "" {
		return ErrMFANotEnrolled
	}

	if !totp.Validate(otpCode, *user.MFASecret) {
		return ErrInvalidGrant
	}

	if err := s.Store.Users().EnableMFA(ctx, userID); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("mfa activated", "user_id", userID)
	return nil
}

// Disable turns MFA off and discards the secret.
func (s *MFAService) Disable(ctx context.Context, userID string) error {
	return s.Store.Users().DisableMFA(ctx, userID)
}
