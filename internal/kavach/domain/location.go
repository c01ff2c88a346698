package domain

import "time"

// Location is a monitored crowd zone. CurrentCount and Capacity feed the
// crowd classifier; the derived status is never stored, only computed on read.
type Location struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
	CurrentCount int       `json:"currentCount"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
