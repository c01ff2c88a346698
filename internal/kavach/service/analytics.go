package service

import (
	"context"

	"github.com/sevasetu/kavach/internal/kavach/crowd"
	"github.com/sevasetu/kavach/internal/kavach/store"
)

// ZoneSummary is one zone's line in the analytics panel.
type ZoneSummary struct {
	LocationID     string  `json:"locationId"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	RiskLevel      string  `json:"riskLevel"`
	DensityPercent float64 `json:"densityPercent"`
	Prediction     string  `json:"prediction"`
}

// Summary aggregates the live picture for the admin analytics panel.
type Summary struct {
	Zones            []ZoneSummary `json:"zones"`
	AverageDensity   float64       `json:"averageDensity"`
	OverallRisk      string        `json:"overallRisk"`
	Recommendations  []string      `json:"recommendations"`
	ActiveAlerts     int           `json:"activeAlerts"`
	ActiveSOS        int           `json:"activeSos"`
	EmergencyContact string        `json:"emergencyContact,omitempty"`
}

// AnalyticsService computes the summary from live data; nothing here is
// stored or cached.
type AnalyticsService struct {
	Store            store.Store
	EmergencyContact string
}

func (s *AnalyticsService) Summarize(ctx context.Context) (Summary, error) {
	locations, err := s.Store.Locations().ListLocations(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		OverallRisk:      crowd.RiskLow,
		EmergencyContact: s.EmergencyContact,
	}

	var densityTotal float64
	worstRank := 0
	seenRecommendations := map[string]struct{}{}

	for _, l := range locations {
		a := crowd.Classify(l.CurrentCount, l.Capacity)
		summary.Zones = append(summary.Zones, ZoneSummary{
			LocationID:     l.ID,
			Name:           l.Name,
			Status:         a.Status,
			RiskLevel:      a.RiskLevel,
			DensityPercent: a.DensityPercent,
			Prediction:     a.Prediction,
		})

		densityTotal += a.DensityPercent
		if rank := statusRank(a.Status); rank > worstRank {
			worstRank = rank
			summary.OverallRisk = a.RiskLevel
		}

		// Only surface actionable recommendations, once each.
		if a.Status != crowd.StatusSafe {
			if _, ok := seenRecommendations[a.Recommendation]; !ok {
				seenRecommendations[a.Recommendation] = struct{}{}
				summary.Recommendations = append(summary.Recommendations, a.Recommendation)
			}
		}
	}

	if len(locations) > 0 {
		summary.AverageDensity = densityTotal / float64(len(locations))
	}

	if summary.ActiveAlerts, err = s.Store.Alerts().CountActiveAlerts(ctx); err != nil {
		return Summary{}, err
	}
	if summary.ActiveSOS, err = s.Store.SOSAlerts().CountActiveSOSAlerts(ctx); err != nil {
		return Summary{}, err
	}

	return summary, nil
}
