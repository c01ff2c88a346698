package domain

import "time"

// SafeRoute is a walking route between two points of the grounds. The crowd
// level is not stored; it is derived on read from the linked locations.
type SafeRoute struct {
	ID            string    `json:"id"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Distance      string    `json:"distance,omitempty"`
	EstimatedTime string    `json:"estimatedTime,omitempty"`
	Accessibility bool      `json:"accessibility"`
	Waypoints     []string  `json:"waypoints,omitempty"`
	LocationIDs   []string  `json:"locationIds,omitempty"` // zones the route passes through
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
