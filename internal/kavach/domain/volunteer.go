package domain

import "time"

// Volunteer availability.
const (
	VolunteerAvailable = "available"
	VolunteerBusy      = "busy"
	VolunteerOffline   = "offline"
)

// ValidVolunteerAvailability reports whether a is a recognised availability.
func ValidVolunteerAvailability(a string) bool {
	return a == VolunteerAvailable || a == VolunteerBusy || a == VolunteerOffline
}

// Volunteer is a registered helper searchable by skill.
type Volunteer struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	Name         string    `json:"name"`
	Skills       []string  `json:"skills,omitempty"`
	Languages    []string  `json:"languages,omitempty"`
	Location     string    `json:"location,omitempty"`
	Availability string    `json:"availability"` // available | busy | offline
	Contact      string    `json:"contact,omitempty"`
	BloodGroup   string    `json:"bloodGroup,omitempty"`
	Rating       float64   `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
