package sdk

import "time"

// Auth requests.

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty"` // admin | user, defaults to user
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MFACompleteRequest struct {
	MFAToken string `json:"mfa_token"`
	Code     string `json:"code"`
}

type MFAActivateRequest struct {
	Code string `json:"code"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Auth responses.

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// MFAChallengeResponse is returned from login when a TOTP code is still
// required.
type MFAChallengeResponse struct {
	MFARequired bool     `json:"mfa_required"`
	MFAToken    string   `json:"mfa_token"`
	Methods     []string `json:"methods"`
}

// LoginResponse is the union of the two login outcomes; exactly one side is
// populated.
type LoginResponse struct {
	Tokens    *TokenResponse
	Challenge *MFAChallengeResponse
}

type MFAEnrollResponse struct {
	Secret  string `json:"secret"`
	QRCode  string `json:"qr_code"`
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

// Profile mirrors the dashboard identity record.
type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DashboardResponse tells the client which dashboard the session lands on.
type DashboardResponse struct {
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

// Resource requests.

type LocationRequest struct {
	Name         string   `json:"name"`
	Capacity     int      `json:"capacity"`
	CurrentCount int      `json:"currentCount"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

type LocationCountRequest struct {
	CurrentCount int `json:"currentCount"`
}

type AlertRequest struct {
	Type        string `json:"type"`
	Location    string `json:"location"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
}

type SOSRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Location  string   `json:"location,omitempty"`
}

type StatusUpdateRequest struct {
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

type HealthUnitRequest struct {
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	StaffCount int      `json:"staffCount"`
	Status     string   `json:"status,omitempty"`
	Equipment  []string `json:"equipment,omitempty"`
	Contact    string   `json:"contact,omitempty"`
}

type CameraRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Zone     string `json:"zone,omitempty"`
	Status   string `json:"status,omitempty"`
}

type LostFoundRequest struct {
	Type             string `json:"type"` // person | item
	Title            string `json:"title"`
	Description      string `json:"description,omitempty"`
	LastSeenLocation string `json:"lastSeenLocation,omitempty"`
	Category         string `json:"category,omitempty"`
	ReporterContact  string `json:"reporterContact,omitempty"`
}

type VolunteerRequest struct {
	Name       string   `json:"name"`
	Skills     []string `json:"skills,omitempty"`
	Languages  []string `json:"languages,omitempty"`
	Location   string   `json:"location,omitempty"`
	Contact    string   `json:"contact,omitempty"`
	BloodGroup string   `json:"bloodGroup,omitempty"`
}

type AvailabilityRequest struct {
	Availability string `json:"availability"`
}

type FoodPointRequest struct {
	FoodType      string `json:"foodType"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location"`
	Portions      int    `json:"portions"`
	TimeAvailable string `json:"timeAvailable,omitempty"`
	DonorContact  string `json:"donorContact,omitempty"`
}

type HelpRequestRequest struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

type SafeRouteRequest struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	Distance      string   `json:"distance,omitempty"`
	EstimatedTime string   `json:"estimatedTime,omitempty"`
	Accessibility bool     `json:"accessibility"`
	Waypoints     []string `json:"waypoints,omitempty"`
	LocationIDs   []string `json:"locationIds,omitempty"`
}

// Resource responses. Derived fields (status, risk level, crowd level) are
// computed server-side on every read.

type Location struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	CurrentCount   int       `json:"currentCount"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	Status         string    `json:"status"`
	RiskLevel      string    `json:"riskLevel"`
	Prediction     string    `json:"prediction"`
	Recommendation string    `json:"recommendation"`
	DensityPercent float64   `json:"densityPercent"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Alert struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Severity    string    `json:"severity"`
	Description string    `json:"description,omitempty"`
	Resolved    bool      `json:"resolved"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type SOSAlert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// System responses.

// JWKS carries the published verification keys. Key fields are left loose so
// clients survive new key types.
type JWKS struct {
	Keys []map[string]any `json:"keys"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
