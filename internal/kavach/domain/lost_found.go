package domain

import "time"

// Lost & found report kinds and lifecycle.
const (
	LostFoundPerson = "person"
	LostFoundItem   = "item"

	LostFoundStatusLost     = "lost"
	LostFoundStatusFound    = "found"
	LostFoundStatusResolved = "resolved"
)

// ValidLostFoundType reports whether t is a recognised report type.
func ValidLostFoundType(t string) bool {
	return t == LostFoundPerson || t == LostFoundItem
}

// ValidLostFoundStatus reports whether s is a recognised report status.
func ValidLostFoundStatus(s string) bool {
	return s == LostFoundStatusLost || s == LostFoundStatusFound || s == LostFoundStatusResolved
}

// LostFoundReport is a missing person or lost item report filed by a pilgrim.
type LostFoundReport struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"` // person | item
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	LastSeenLocation string    `json:"lastSeenLocation,omitempty"`
	Category         string    `json:"category,omitempty"`
	ReporterID       string    `json:"reporterId"`
	ReporterName     string    `json:"reporterName"`
	ReporterContact  string    `json:"reporterContact,omitempty"`
	Status           string    `json:"status"` // lost | found | resolved
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
