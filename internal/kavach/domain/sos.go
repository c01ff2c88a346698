package domain

import "time"

// SOS alert lifecycle.
const (
	SOSActive    = "active"
	SOSResponded = "responded"
	SOSResolved  = "resolved"
)

// ValidSOSStatus reports whether s is a recognised SOS status.
func ValidSOSStatus(s string) bool {
	return s == SOSActive || s == SOSResponded || s == SOSResolved
}

// SOSAlert is a pilgrim-raised distress signal with the raw device
// geolocation attached. Priority is always critical; it exists as a field so
// the admin feed can sort it alongside emergency alerts.
type SOSAlert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Phone     string    `json:"phone,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Location  string    `json:"location"` // formatted "lat, lng" or fallback text
	Status    string    `json:"status"`   // active | responded | resolved
	Priority  string    `json:"priority"` // always "critical"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
