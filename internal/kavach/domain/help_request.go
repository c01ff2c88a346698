package domain

import "time"

// Help request lifecycle and priorities.
const (
	HelpPending  = "pending"
	HelpAssigned = "assigned"
	HelpResolved = "resolved"

	HelpPriorityHigh   = "high"
	HelpPriorityNormal = "normal"
)

// ValidHelpStatus reports whether s is a recognised help request status.
func ValidHelpStatus(s string) bool {
	return s == HelpPending || s == HelpAssigned || s == HelpResolved
}

// HelpPriorityFor derives the priority from the request type. Medical and
// security requests jump the queue.
func HelpPriorityFor(requestType string) string {
	switch requestType {
	case "medical", "security":
		return HelpPriorityHigh
	}
	return HelpPriorityNormal
}

// HelpRequest is a pilgrim assistance request routed to the admin console.
type HelpRequest struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Priority    string    `json:"priority"` // high | normal, derived from Type
	Status      string    `json:"status"`   // pending | assigned | resolved
	AssignedTo  string    `json:"assignedTo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
