// Package sdk is the Go client for the Kavach crowd-safety API. It carries
// the request and response types the server speaks, so handlers and clients
// never drift apart.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to a Kavach API server. The zero value is not usable; create
// one with New.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns its profile.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/v1/auth/register", "", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Login authenticates with email and password. The response carries either a
// token pair or an MFA challenge, never both.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	resp, err := c.send(ctx, http.MethodPost, "/v1/auth/login", "", LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ParseErrorResponse(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sdk: read login response: %w", err)
	}

	// Peek at the body to decide which shape came back.
	var probe struct {
		MFARequired bool `json:"mfa_required"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("sdk: decode login response: %w", err)
	}

	if probe.MFARequired {
		var challenge MFAChallengeResponse
		if err := json.Unmarshal(raw, &challenge); err != nil {
			return nil, fmt.Errorf("sdk: decode mfa challenge: %w", err)
		}
		return &LoginResponse{Challenge: &challenge}, nil
	}

	var tokens TokenResponse
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, fmt.Errorf("sdk: decode token response: %w", err)
	}
	return &LoginResponse{Tokens: &tokens}, nil
}

// CompleteMFA exchanges an MFA challenge token plus a TOTP code for tokens.
func (c *Client) CompleteMFA(ctx context.Context, mfaToken, code string) (*TokenResponse, error) {
	var tokens TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/mfa", "", MFACompleteRequest{MFAToken: mfaToken, Code: code}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Refresh rotates a refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	var tokens TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/refresh", "", RefreshRequest{RefreshToken: refreshToken}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes a refresh token. Revoking an already-dead token succeeds.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", "", LogoutRequest{RefreshToken: refreshToken}, nil)
}

// Session binds an access token to the client for authenticated calls.
func (c *Client) Session(tokens *TokenResponse) *Session {
	return &Session{client: c, tokens: tokens}
}

// JWKS fetches the server's public signing keys.
func (c *Client) JWKS(ctx context.Context) (*JWKS, error) {
	var keys JWKS
	if err := c.do(ctx, http.MethodGet, "/.well-known/jwks.json", "", nil, &keys); err != nil {
		return nil, err
	}
	return &keys, nil
}

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz reports dependency readiness.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// do sends a request and decodes a 2xx JSON response into out. Non-2xx
// responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	resp, err := c.send(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ParseErrorResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("sdk: decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("sdk: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("sdk: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sdk: send request: %w", err)
	}
	return resp, nil
}
