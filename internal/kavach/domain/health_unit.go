package domain

import "time"

// Health unit availability.
const (
	HealthUnitActive  = "active"
	HealthUnitBusy    = "busy"
	HealthUnitOffline = "offline"
)

// ValidHealthUnitStatus reports whether s is a recognised health unit status.
func ValidHealthUnitStatus(s string) bool {
	return s == HealthUnitActive || s == HealthUnitBusy || s == HealthUnitOffline
}

// HealthUnit is a first-aid or medical post on the grounds.
type HealthUnit struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	StaffCount int       `json:"staffCount"`
	Status     string    `json:"status"` // active | busy | offline
	Equipment  []string  `json:"equipment,omitempty"`
	Contact    string    `json:"contact,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
