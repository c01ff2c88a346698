package sdk

import (
	"context"
	"net/http"
)

// Session is an authenticated view of the client. It does not auto-refresh;
// callers rotate tokens with Client.Refresh and swap them in with SetTokens.
type Session struct {
	client *Client
	tokens *TokenResponse
}

// SetTokens replaces the session's token pair, typically after a refresh.
func (s *Session) SetTokens(tokens *TokenResponse) { s.tokens = tokens }

// AccessToken returns the current access token.
func (s *Session) AccessToken() string { return s.tokens.AccessToken }

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string { return s.tokens.RefreshToken }

func (s *Session) do(ctx context.Context, method, path string, body, out any) error {
	return s.client.do(ctx, method, path, s.tokens.AccessToken, body, out)
}

// Profile returns the resolved profile of the authenticated user.
func (s *Session) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := s.do(ctx, http.MethodGet, "/v1/profile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Dashboard returns the role-determined dashboard target.
func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	var d DashboardResponse
	if err := s.do(ctx, http.MethodGet, "/v1/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// EnrollMFA starts TOTP enrollment for the authenticated user.
func (s *Session) EnrollMFA(ctx context.Context) (*MFAEnrollResponse, error) {
	var e MFAEnrollResponse
	if err := s.do(ctx, http.MethodPost, "/v1/auth/mfa/enroll", nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ActivateMFA proves authenticator possession and switches MFA on.
func (s *Session) ActivateMFA(ctx context.Context, code string) error {
	return s.do(ctx, http.MethodPost, "/v1/auth/mfa/activate", MFAActivateRequest{Code: code}, nil)
}

// Locations.

func (s *Session) CreateLocation(ctx context.Context, req LocationRequest) (*Location, error) {
	var l Location
	if err := s.do(ctx, http.MethodPost, "/v1/locations", req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Session) ListLocations(ctx context.Context) ([]Location, error) {
	var out []Location
	if err := s.do(ctx, http.MethodGet, "/v1/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetLocation(ctx context.Context, id string) (*Location, error) {
	var l Location
	if err := s.do(ctx, http.MethodGet, "/v1/locations/"+id, nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Session) UpdateLocation(ctx context.Context, id string, req LocationRequest) (*Location, error) {
	var l Location
	if err := s.do(ctx, http.MethodPut, "/v1/locations/"+id, req, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLocationCount is the live-feed path: only the occupancy changes.
func (s *Session) UpdateLocationCount(ctx context.Context, id string, count int) (*Location, error) {
	var l Location
	if err := s.do(ctx, http.MethodPatch, "/v1/locations/"+id+"/count", LocationCountRequest{CurrentCount: count}, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Session) DeleteLocation(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/locations/"+id, nil, nil)
}

// Alerts.

func (s *Session) CreateAlert(ctx context.Context, req AlertRequest) (*Alert, error) {
	var a Alert
	if err := s.do(ctx, http.MethodPost, "/v1/alerts", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Session) ListAlerts(ctx context.Context) ([]Alert, error) {
	var out []Alert
	if err := s.do(ctx, http.MethodGet, "/v1/alerts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) ResolveAlert(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodPost, "/v1/alerts/"+id+"/resolve", nil, nil)
}

// SOS.

func (s *Session) RaiseSOS(ctx context.Context, req SOSRequest) (*SOSAlert, error) {
	var a SOSAlert
	if err := s.do(ctx, http.MethodPost, "/v1/sos", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Session) ListSOS(ctx context.Context) ([]SOSAlert, error) {
	var out []SOSAlert
	if err := s.do(ctx, http.MethodGet, "/v1/sos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) UpdateSOSStatus(ctx context.Context, id, status string) (*SOSAlert, error) {
	var a SOSAlert
	if err := s.do(ctx, http.MethodPatch, "/v1/sos/"+id+"/status", StatusUpdateRequest{Status: status}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
