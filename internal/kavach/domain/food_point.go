package domain

import "time"

// Food point stock states.
const (
	FoodAvailable = "available"
	FoodLimited   = "limited"
	FoodFinished  = "finished"
)

// ValidFoodStatus reports whether s is a recognised food point status.
func ValidFoodStatus(s string) bool {
	return s == FoodAvailable || s == FoodLimited || s == FoodFinished
}

// FoodPoint is a food donation post.
type FoodPoint struct {
	ID            string    `json:"id"`
	DonorID       string    `json:"donorId"`
	DonorName     string    `json:"donorName"`
	DonorContact  string    `json:"donorContact,omitempty"`
	FoodType      string    `json:"foodType"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location"`
	Portions      int       `json:"portions"`
	TimeAvailable string    `json:"timeAvailable,omitempty"`
	Status        string    `json:"status"` // available | limited | finished
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
