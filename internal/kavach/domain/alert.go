package domain

import "time"

// Alert severities, worst last.
const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

// ValidSeverity reports whether s is a recognised alert severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Alert is an operator-raised emergency alert shown on both dashboards.
type Alert struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Severity    string    `json:"severity"`
	Description string    `json:"description,omitempty"`
	Resolved    bool      `json:"resolved"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
