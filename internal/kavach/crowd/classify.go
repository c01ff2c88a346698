// Package crowd derives crowd status from raw occupancy numbers. It holds the
// single classification table used everywhere a status, risk level or
// recommendation is shown.
package crowd

// Status buckets in increasing severity.
const (
	StatusSafe     = "safe"
	StatusModerate = "moderate"
	StatusCrowded  = "crowded"
	StatusCritical = "critical"
)

// Risk levels paired one-to-one with the status buckets.
const (
	RiskLow      = "Low"
	RiskMedium   = "Medium"
	RiskHigh     = "High"
	RiskCritical = "Critical"
)

// Assessment is the full derived view of a zone's occupancy.
type Assessment struct {
	Status         string  `json:"status"`
	RiskLevel      string  `json:"riskLevel"`
	Prediction     string  `json:"prediction"`
	Recommendation string  `json:"recommendation"`
	DensityPercent float64 `json:"densityPercent"` // clamped to [0,100] for display
}

// Classify maps an occupancy ratio to its assessment. Thresholds are on the
// raw percentage p = current/capacity*100:
//
//	p > 80        critical
//	60 < p <= 80  crowded
//	40 < p <= 60  moderate
//	p <= 40       safe
//
// Classification uses the raw ratio, so over-capacity zones land in critical
// even though DensityPercent is clamped for display. Capacity must be
// positive; a non-positive capacity yields the safe assessment with zero
// density, matching how an unconfigured zone should render.
func Classify(currentCount, capacity int) Assessment {
	if capacity <= 0 {
		return assessmentFor(StatusSafe, 0)
	}

	percent := float64(currentCount) / float64(capacity) * 100

	status := StatusSafe
	switch {
	case percent > 80:
		status = StatusCritical
	case percent > 60:
		status = StatusCrowded
	case percent > 40:
		status = StatusModerate
	}

	return assessmentFor(status, clampPercent(percent))
}

// Level collapses an assessment to the low/medium/high scale used by safe
// routes. Crowded and critical both read as high.
func Level(a Assessment) string {
	switch a.Status {
	case StatusCritical, StatusCrowded:
		return "high"
	case StatusModerate:
		return "medium"
	}
	return "low"
}

func assessmentFor(status string, density float64) Assessment {
	a := Assessment{Status: status, DensityPercent: density}
	switch status {
	case StatusCritical:
		a.RiskLevel = RiskCritical
		a.Prediction = "Overcrowding imminent"
		a.Recommendation = "implement crowd control measures immediately"
	case StatusCrowded:
		a.RiskLevel = RiskHigh
		a.Prediction = "Crowd levels rising"
		a.Recommendation = "deploy additional staff and monitor closely"
	case StatusModerate:
		a.RiskLevel = RiskMedium
		a.Prediction = "Stable with fluctuations"
		a.Recommendation = "monitor for potential increases"
	default:
		a.RiskLevel = RiskLow
		a.Prediction = "Stable"
		a.Recommendation = "continue normal operations"
	}
	return a
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
