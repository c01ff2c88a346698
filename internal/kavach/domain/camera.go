package domain

import "time"

// Camera operational states.
const (
	CameraActive      = "active"
	CameraOffline     = "offline"
	CameraMaintenance = "maintenance"
)

// ValidCameraStatus reports whether s is a recognised camera status.
func ValidCameraStatus(s string) bool {
	return s == CameraActive || s == CameraOffline || s == CameraMaintenance
}

// Camera is a surveillance camera registered to a zone.
type Camera struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Zone      string    `json:"zone,omitempty"`
	Status    string    `json:"status"` // active | offline | maintenance
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
