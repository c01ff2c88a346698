package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/internal/kavach/crowd"
	"github.com/sevasetu/kavach/internal/kavach/domain"
	"github.com/sevasetu/kavach/internal/kavach/store/drivers/sqlite"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLocationCreateDerivesAssessment(t *testing.T) {
	svc := &LocationService{Store: newTestStore(t)}
	ctx := context.Background()

	v, err := svc.Create(ctx, domain.Location{
		Name:         "Ghat 3",
		Capacity:     1000,
		CurrentCount: 850,
	})
	require.NoError(t, err)
	require.Equal(t, crowd.StatusCritical, v.Status)
	require.Equal(t, 85.0, v.DensityPercent)
	require.NotEmpty(t, v.Recommendation)
}

func TestLocationCreateRejectsBadInput(t *testing.T) {
	svc := &LocationService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.Location{Name: "", Capacity: 100})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, domain.Location{Name: "Gate", Capacity: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, domain.Location{Name: "Gate", Capacity: 100, CurrentCount: 101})
	require.ErrorIs(t, err, ErrInvalidOccupancy)

	_, err = svc.Create(ctx, domain.Location{Name: "Gate", Capacity: 100, CurrentCount: -1})
	require.ErrorIs(t, err, ErrInvalidOccupancy)
}

func TestLocationUpdateCountReclassifies(t *testing.T) {
	svc := &LocationService{Store: newTestStore(t)}
	ctx := context.Background()

	v, err := svc.Create(ctx, domain.Location{Name: "Ghat 1", Capacity: 100, CurrentCount: 10})
	require.NoError(t, err)
	require.Equal(t, crowd.StatusSafe, v.Status)

	v, err = svc.UpdateCount(ctx, v.ID, 65)
	require.NoError(t, err)
	require.Equal(t, crowd.StatusCrowded, v.Status)

	_, err = svc.UpdateCount(ctx, v.ID, 101)
	require.ErrorIs(t, err, ErrInvalidOccupancy)

	_, err = svc.UpdateCount(ctx, "missing", 10)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLostFoundStatusGatedToReporterOrAdmin(t *testing.T) {
	svc := &LostFoundService{Store: newTestStore(t)}
	ctx := context.Background()

	report, err := svc.Report(ctx, domain.LostFoundReport{
		Type:       domain.LostFoundPerson,
		Title:      "Missing child near Gate 2",
		ReporterID: "reporter-1",
	})
	require.NoError(t, err)
	require.Equal(t, domain.LostFoundStatusLost, report.Status)

	_, err = svc.UpdateStatus(ctx, report.ID, domain.LostFoundStatusFound, "someone-else", domain.RoleUser)
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateStatus(ctx, report.ID, domain.LostFoundStatusFound, "reporter-1", domain.RoleUser)
	require.NoError(t, err)
	require.Equal(t, domain.LostFoundStatusFound, updated.Status)

	resolved, err := svc.UpdateStatus(ctx, report.ID, domain.LostFoundStatusResolved, "admin-9", domain.RoleAdmin)
	require.NoError(t, err)
	require.Equal(t, domain.LostFoundStatusResolved, resolved.Status)
}

func TestSOSRaiseFormatsLocation(t *testing.T) {
	svc := &SOSService{Store: newTestStore(t)}
	ctx := context.Background()

	lat, lng := 25.4358, 81.8463
	alert, err := svc.Raise(ctx, RaiseRequest{
		UserID:    "u1",
		UserName:  "Asha",
		Latitude:  &lat,
		Longitude: &lng,
	})
	require.NoError(t, err)
	require.Equal(t, "25.4358, 81.8463", alert.Location)
	require.Equal(t, domain.SOSActive, alert.Status)
	require.Equal(t, "critical", alert.Priority)

	alert, err = svc.Raise(ctx, RaiseRequest{UserID: "u2", LocationText: "  Sector 14  "})
	require.NoError(t, err)
	require.Equal(t, "Sector 14", alert.Location)

	alert, err = svc.Raise(ctx, RaiseRequest{UserID: "u3"})
	require.NoError(t, err)
	require.Equal(t, "location unavailable", alert.Location)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 3)
}

func TestAnalyticsSummarize(t *testing.T) {
	st := newTestStore(t)
	locations := &LocationService{Store: st}
	analytics := &AnalyticsService{Store: st, EmergencyContact: "1800-180-1947"}
	ctx := context.Background()

	_, err := locations.Create(ctx, domain.Location{Name: "Ghat 1", Capacity: 100, CurrentCount: 20})
	require.NoError(t, err)
	_, err = locations.Create(ctx, domain.Location{Name: "Ghat 2", Capacity: 100, CurrentCount: 90})
	require.NoError(t, err)

	summary, err := analytics.Summarize(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Zones, 2)
	require.Equal(t, 55.0, summary.AverageDensity)
	require.Equal(t, crowd.RiskCritical, summary.OverallRisk)
	require.Len(t, summary.Recommendations, 1)
	require.Equal(t, "1800-180-1947", summary.EmergencyContact)
	require.Zero(t, summary.ActiveAlerts)
	require.Zero(t, summary.ActiveSOS)
}

func TestRouteCrowdLevelFollowsWorstZone(t *testing.T) {
	st := newTestStore(t)
	locations := &LocationService{Store: st}
	routes := &RouteService{Store: st}
	ctx := context.Background()

	calm, err := locations.Create(ctx, domain.Location{Name: "Sector 1", Capacity: 100, CurrentCount: 10})
	require.NoError(t, err)
	busy, err := locations.Create(ctx, domain.Location{Name: "Sector 2", Capacity: 100, CurrentCount: 95})
	require.NoError(t, err)

	route, err := routes.Create(ctx, domain.SafeRoute{
		From:        "Parking A",
		To:          "Ghat 1",
		LocationIDs: []string{calm.ID, busy.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "high", route.CrowdLevel)

	// Deleting the busy zone leaves a stale link; the route degrades gracefully.
	require.NoError(t, locations.Delete(ctx, busy.ID))
	got, err := routes.Get(ctx, route.ID)
	require.NoError(t, err)
	require.Equal(t, "low", got.CrowdLevel)
}
