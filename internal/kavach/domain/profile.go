package domain

import "time"

// Profile is the dashboard-facing identity record. It lives separately from
// the User credential row so that a profile write failing never loses the
// account itself.
type Profile struct {
	ID          string    `json:"id"` // same ULID as the owning User
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Role        string    `json:"role"` // admin | user
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultProfile synthesizes the minimal profile for an identity whose
// profile record is missing from every store.
func DefaultProfile(userID, email string, now time.Time) Profile {
	return Profile{
		ID:          userID,
		Email:       email,
		DisplayName: email,
		Role:        RoleUser,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
