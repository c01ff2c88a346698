package store

import (
	"context"
	"errors"

	"github.com/sevasetu/kavach/internal/kavach/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Profiles() Profiles
	RefreshTokens() RefreshTokens
	MFASessions() MFASessions
	Locations() Locations
	Alerts() Alerts
	SOSAlerts() SOSAlerts
	HealthUnits() HealthUnits
	Cameras() Cameras
	LostFound() LostFound
	Volunteers() Volunteers
	FoodPoints() FoodPoints
	HelpRequests() HelpRequests
	SafeRoutes() SafeRoutes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// UpdateMFASecret sets the MFA secret for a user.
	UpdateMFASecret(ctx context.Context, userID string, secret string) error

	// EnableMFA marks MFA as enabled for a user (sets mfa_enabled timestamp).
	EnableMFA(ctx context.Context, userID string) error

	// DisableMFA clears mfa_enabled and mfa_secret.
	DisableMFA(ctx context.Context, userID string) error

	// DeleteUser cascades to refresh_tokens and the profile (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

// Profiles is the primary profile repository. The role column is stored as
// written; coercion of invalid roles happens at resolution time so the
// data-quality signal stays observable.
type Profiles interface {
	// GetProfile returns the profile for a user id.
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)

	// PutProfile inserts or replaces the profile for its ID.
	PutProfile(ctx context.Context, p domain.Profile) error

	// UpdateProfileRole sets the role column and bumps updated_at.
	UpdateProfileRole(ctx context.Context, userID, role string) error
}

// ProfileFallback is the degraded-mode profile store used when the primary
// store rejects a write or read. Narrower than Profiles on purpose.
type ProfileFallback interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	Put(ctx context.Context, p domain.Profile) error
	Close() error
}

type RefreshTokens interface {
	// CreateRefreshToken stores a new refresh token record.
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token by its fingerprint.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken flips revoked=1, sets updated_at.
	RevokeRefreshToken(ctx context.Context, hash string) error

	// RevokeAllUserRefreshTokens bulk revocation for a user (e.g., password reset).
	RevokeAllUserRefreshTokens(ctx context.Context, userID string) error

	// DeleteExpiredRefreshTokens is housekeeping.
	DeleteExpiredRefreshTokens(ctx context.Context) error
}

type MFASessions interface {
	// CreateMFASession creates a new MFA challenge session.
	CreateMFASession(ctx context.Context, session domain.MFASession) error

	// GetMFASession retrieves an MFA session by its token (only if not expired).
	GetMFASession(ctx context.Context, mfaToken string) (domain.MFASession, error)

	// IncrementMFASessionAttempts bumps the failed attempt counter and
	// returns the updated session.
	IncrementMFASessionAttempts(ctx context.Context, mfaToken string) (domain.MFASession, error)

	// DeleteMFASession removes an MFA session by its token.
	DeleteMFASession(ctx context.Context, mfaToken string) error

	// DeleteExpiredMFASessions is housekeeping.
	DeleteExpiredMFASessions(ctx context.Context) error
}

type Locations interface {
	GetLocation(ctx context.Context, id string) (domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, l domain.Location) error
	UpdateLocation(ctx context.Context, l domain.Location) error

	// UpdateLocationCount sets current_count only, for the live feed path.
	UpdateLocationCount(ctx context.Context, id string, count int) error

	DeleteLocation(ctx context.Context, id string) error
}

type Alerts interface {
	GetAlert(ctx context.Context, id string) (domain.Alert, error)

	// ListAlerts returns alerts newest first. When activeOnly is set,
	// resolved alerts are filtered out.
	ListAlerts(ctx context.Context, activeOnly bool) ([]domain.Alert, error)

	CreateAlert(ctx context.Context, a domain.Alert) error
	UpdateAlert(ctx context.Context, a domain.Alert) error

	// ResolveAlert flips resolved=1.
	ResolveAlert(ctx context.Context, id string) error

	DeleteAlert(ctx context.Context, id string) error
	CountActiveAlerts(ctx context.Context) (int, error)
}

type SOSAlerts interface {
	GetSOSAlert(ctx context.Context, id string) (domain.SOSAlert, error)

	// ListSOSAlerts returns alerts newest first, optionally only active ones.
	ListSOSAlerts(ctx context.Context, activeOnly bool) ([]domain.SOSAlert, error)

	CreateSOSAlert(ctx context.Context, s domain.SOSAlert) error
	UpdateSOSAlertStatus(ctx context.Context, id, status string) error

	// ResolveStaleSOSAlerts resolves active alerts older than the cutoff,
	// returning how many were touched. Housekeeping.
	ResolveStaleSOSAlerts(ctx context.Context, olderThanSeconds int64) (int64, error)

	CountActiveSOSAlerts(ctx context.Context) (int, error)
}

type HealthUnits interface {
	GetHealthUnit(ctx context.Context, id string) (domain.HealthUnit, error)
	ListHealthUnits(ctx context.Context) ([]domain.HealthUnit, error)
	CreateHealthUnit(ctx context.Context, h domain.HealthUnit) error
	UpdateHealthUnit(ctx context.Context, h domain.HealthUnit) error
	UpdateHealthUnitStatus(ctx context.Context, id, status string) error
	DeleteHealthUnit(ctx context.Context, id string) error
}

type Cameras interface {
	GetCamera(ctx context.Context, id string) (domain.Camera, error)
	ListCameras(ctx context.Context) ([]domain.Camera, error)
	CreateCamera(ctx context.Context, c domain.Camera) error
	UpdateCamera(ctx context.Context, c domain.Camera) error
	UpdateCameraStatus(ctx context.Context, id, status string) error
	DeleteCamera(ctx context.Context, id string) error
}

type LostFound interface {
	GetLostFoundReport(ctx context.Context, id string) (domain.LostFoundReport, error)

	// ListLostFoundReports returns reports newest first.
	ListLostFoundReports(ctx context.Context) ([]domain.LostFoundReport, error)

	CreateLostFoundReport(ctx context.Context, r domain.LostFoundReport) error
	UpdateLostFoundStatus(ctx context.Context, id, status string) error
	DeleteLostFoundReport(ctx context.Context, id string) error
}

type Volunteers interface {
	GetVolunteer(ctx context.Context, id string) (domain.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]domain.Volunteer, error)

	// SearchVolunteersBySkill matches a single skill, case-insensitive.
	SearchVolunteersBySkill(ctx context.Context, skill string) ([]domain.Volunteer, error)

	CreateVolunteer(ctx context.Context, v domain.Volunteer) error
	UpdateVolunteer(ctx context.Context, v domain.Volunteer) error
	UpdateVolunteerAvailability(ctx context.Context, id, availability string) error
	DeleteVolunteer(ctx context.Context, id string) error
}

type FoodPoints interface {
	GetFoodPoint(ctx context.Context, id string) (domain.FoodPoint, error)

	// ListFoodPoints returns posts newest first.
	ListFoodPoints(ctx context.Context) ([]domain.FoodPoint, error)

	CreateFoodPoint(ctx context.Context, f domain.FoodPoint) error
	UpdateFoodPointStatus(ctx context.Context, id, status string) error
	DeleteFoodPoint(ctx context.Context, id string) error
}

type HelpRequests interface {
	GetHelpRequest(ctx context.Context, id string) (domain.HelpRequest, error)

	// ListHelpRequests returns requests high-priority first, then newest.
	ListHelpRequests(ctx context.Context) ([]domain.HelpRequest, error)

	CreateHelpRequest(ctx context.Context, h domain.HelpRequest) error
	UpdateHelpRequestStatus(ctx context.Context, id, status, assignedTo string) error
	DeleteHelpRequest(ctx context.Context, id string) error
}

type SafeRoutes interface {
	GetSafeRoute(ctx context.Context, id string) (domain.SafeRoute, error)
	ListSafeRoutes(ctx context.Context) ([]domain.SafeRoute, error)
	CreateSafeRoute(ctx context.Context, r domain.SafeRoute) error
	UpdateSafeRoute(ctx context.Context, r domain.SafeRoute) error
	DeleteSafeRoute(ctx context.Context, id string) error
}
