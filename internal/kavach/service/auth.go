package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store"
	"github.com/sevasetu/kavach/pkg/cryptox"
	"github.com/sevasetu/kavach/pkg/idx"
	"github.com/sevasetu/kavach/pkg/jwtx"
	"github.com/sevasetu/kavach/pkg/slogx"
)

const (
	// MaxMFAAttempts caps failed OTP submissions per challenge session.
	MaxMFAAttempts = 5

	// MFASessionTTL is how long a password-verified login may wait for its
	// OTP before the challenge expires.
	MFASessionTTL = 5 * time.Minute

	minPasswordLength = 8
)

// AuthService implements registration, login, refresh rotation and logout.
type AuthService struct {
	Store    store.Store
	Profiles *ProfileService
	Signer   *jwtx.Signer

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Register creates the identity record first, then persists the profile.
// The profile lands in exactly one store; if neither accepts it the identity
// is rolled back so registration is all-or-nothing.
func (s *AuthService) Register(ctx context.Context, email, password, displayName, phoneNumber, role string) (domain.Profile, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Profile{}, ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return domain.Profile{}, ErrWeakPassword
	}
	if displayName = strings.TrimSpace(displayName); displayName == "" {
		displayName = email
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.Profile{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, ErrEmailTaken
		}
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		ID:          user.ID,
		Email:       email,
		DisplayName: displayName,
		PhoneNumber: strings.TrimSpace(phoneNumber),
		Role:        domain.NormalizeRole(role),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Profiles.Save(ctx, profile); err != nil {
		// Neither store took the profile; don't leave a half-registered
		// identity behind.
		_ = s.Store.Users().DeleteUser(ctx, user.ID)
		return domain.Profile{}, err
	}

	log.Info("user registered", "user_id", user.ID, "role", profile.Role)
	return profile, nil
}

// Login verifies credentials and either issues a session or, for MFA-enrolled
// users, opens an OTP challenge. Every credential rejection maps to
// ErrInvalidCredentials so callers cannot probe which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenPair, *domain.MFAChallengeResponse, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("password verification failed", "user_id", user.ID)
		return nil, nil, ErrInvalidCredentials
	}

	if user.MFAEnabled != nil {
		session := domain.MFASession{
			ID:        idx.New().String(),
			UserID:    user.ID,
			SessionID: idx.New().String(),
			AMR:       []string{jwtx.AMRPassword},
			CreatedAt: now,
			ExpiresAt: now.Add(MFASessionTTL),
		}
		if err := s.Store.MFASessions().CreateMFASession(ctx, session); err != nil {
			return nil, nil, err
		}
		return nil, &domain.MFAChallengeResponse{
			MFARequired: true,
			MFAToken:    session.ID,
			Methods:     []string{"totp"},
		}, nil
	}

	pair, err := s.issuePair(ctx, user, idx.New().String(), []string{jwtx.AMRPassword}, now)
	if err != nil {
		return nil, nil, err
	}
	return pair, nil, nil
}

// CompleteMFA finishes an OTP challenge opened by Login.
func (s *AuthService) CompleteMFA(ctx context.Context, mfaToken, otpCode string) (*domain.TokenPair, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	session, err := s.Store.MFASessions().GetMFASession(ctx, mfaToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidGrant
		}
		return nil, err
	}

	if session.Attempts >= MaxMFAAttempts {
		_ = s.Store.MFASessions().DeleteMFASession(ctx, mfaToken)
		log.Warn("mfa session exceeded max attempts", "user_id", session.UserID)
		return nil, ErrTooManyAttempts
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if user.MFASecret == nil || !totp.Validate(otpCode, *user.MFASecret) {
		if updated, err := s.Store.MFASessions().IncrementMFASessionAttempts(ctx, mfaToken); err == nil {
			log.Info("mfa validation failed", "user_id", user.ID, "attempts", updated.Attempts)
		}
		return nil, ErrInvalidGrant
	}

	amr := append(session.AMR, jwtx.AMRMFA)

	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.MFASessions().DeleteMFASession(ctx, mfaToken); err != nil {
			return err
		}
		var err error
		pair, err = s.issuePairWith(ctx, tx, user, session.SessionID, amr, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rotates the refresh token: the presented token is revoked and a new
// pair is issued under the same session ID. The role claim is re-resolved so
// role changes take effect at the next refresh, not the next login.
func (s *AuthService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	now := time.Now().UTC()

	fp := cryptox.FingerprintToken(refreshOpaque)
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if rt.Revoked || now.After(rt.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	amr := dedupe(append(rt.AMR, jwtx.AMRRefresh))

	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp); err != nil {
			return err
		}
		var err error
		pair, err = s.issuePairWith(ctx, tx, user, rt.SessionID, amr, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Logout revokes the presented refresh token. Revoking a token that is
// already revoked or unknown is a no-op, so repeated logouts succeed.
func (s *AuthService) Logout(ctx context.Context, refreshOpaque string) error {
	if refreshOpaque == "" {
		return nil
	}
	fp := cryptox.FingerprintToken(refreshOpaque)
	return s.Store.RefreshTokens().RevokeRefreshToken(ctx, fp)
}

func (s *AuthService) issuePair(ctx context.Context, user domain.User, sessionID string, amr []string, now time.Time) (*domain.TokenPair, error) {
	return s.issuePairWith(ctx, s.Store, user, sessionID, amr, now)
}

// issuePairWith resolves the profile (the role claim always reflects the
// resolved role, never raw storage), signs the access token and persists the
// refresh token through the given store, which may be a transaction.
func (s *AuthService) issuePairWith(ctx context.Context, st store.Store, user domain.User, sessionID string, amr []string, now time.Time) (*domain.TokenPair, error) {
	profile := s.Profiles.Resolve(ctx, user.ID, user.Email)

	claims := jwtx.NewAccessClaims(
		user.ID, sessionID, profile.Role, amr,
		s.AccessTTL, s.Issuer, profile.Email, profile.DisplayName,
		now,
	)
	accessToken, err := s.Signer.Sign(claims)
	if err != nil {
		return nil, err
	}

	refreshOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	rt := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(refreshOpaque),
		SessionID: sessionID,
		AMR:       amr,
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := st.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshOpaque,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.AccessTTL.Seconds()),
	}, nil
}

func dedupe(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
