package kavach_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sevasetu/kavach/pkg/sdk"
)

// TestLocationClassification drives a zone through the density bands over the
// wire and checks the derived status on every read.
func TestLocationClassification(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	admin := registerAndLogin(t, client, "control@example.com", "admin")
	user := registerAndLogin(t, client, "walker@example.com", "user")

	created, err := admin.CreateLocation(t.Context(), sdk.LocationRequest{
		Name:         "Sangam Ghat",
		Capacity:     1000,
		CurrentCount: 850,
	})
	require.NoError(t, err)
	require.Equal(t, "critical", created.Status)
	require.Equal(t, 85.0, created.DensityPercent)
	require.NotEmpty(t, created.Recommendation)

	// Pilgrims see the same derived view, read-only.
	got, err := user.GetLocation(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "critical", got.Status)

	_, err = user.CreateLocation(t.Context(), sdk.LocationRequest{Name: "Nope", Capacity: 10})
	assertAPIError(t, err, http.StatusForbidden, "access_denied")

	// Walk the count down through the bands.
	for _, tc := range []struct {
		count  int
		status string
	}{
		{650, "crowded"},
		{450, "moderate"},
		{100, "safe"},
	} {
		updated, err := admin.UpdateLocationCount(t.Context(), created.ID, tc.count)
		require.NoError(t, err)
		require.Equal(t, tc.status, updated.Status, "count %d", tc.count)
	}

	// Counts beyond capacity are rejected at the write.
	_, err = admin.UpdateLocationCount(t.Context(), created.ID, 1500)
	assertAPIError(t, err, http.StatusBadRequest, "invalid_occupancy")

	require.NoError(t, admin.DeleteLocation(t.Context(), created.ID))
	_, err = user.GetLocation(t.Context(), created.ID)
	assertAPIError(t, err, http.StatusNotFound, "not_found")
}

// TestSOSLifecycle raises an SOS as a pilgrim and works it as an operator.
func TestSOSLifecycle(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	admin := registerAndLogin(t, client, "desk@example.com", "admin")
	user := registerAndLogin(t, client, "lost@example.com", "user")

	lat, lng := 25.4358, 81.8463
	raised, err := user.RaiseSOS(t.Context(), sdk.SOSRequest{Latitude: &lat, Longitude: &lng})
	require.NoError(t, err)
	require.Equal(t, "active", raised.Status)
	require.Equal(t, "critical", raised.Priority)
	require.Equal(t, "25.4358, 81.8463", raised.Location)

	// The queue is operator-only.
	_, err = user.ListSOS(t.Context())
	assertAPIError(t, err, http.StatusForbidden, "access_denied")

	queue, err := admin.ListSOS(t.Context())
	require.NoError(t, err)
	require.Len(t, queue, 1)
	require.Equal(t, raised.ID, queue[0].ID)

	worked, err := admin.UpdateSOSStatus(t.Context(), raised.ID, "responded")
	require.NoError(t, err)
	require.Equal(t, "responded", worked.Status)

	resolved, err := admin.UpdateSOSStatus(t.Context(), raised.ID, "resolved")
	require.NoError(t, err)
	require.Equal(t, "resolved", resolved.Status)
}

// TestAlertBroadcastVisibility checks that operator-raised alerts are readable
// by pilgrims and can be resolved.
func TestAlertBroadcastVisibility(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client := sdk.New(baseURL)
	admin := registerAndLogin(t, client, "ops2@example.com", "admin")
	user := registerAndLogin(t, client, "reader@example.com", "user")

	created, err := admin.CreateAlert(t.Context(), sdk.AlertRequest{
		Type:     "crowd",
		Location: "Gate 4",
		Severity: "high",
	})
	require.NoError(t, err)
	require.False(t, created.Resolved)

	// Pilgrims cannot raise broadcast alerts.
	_, err = user.CreateAlert(t.Context(), sdk.AlertRequest{Type: "crowd", Location: "x", Severity: "low"})
	assertAPIError(t, err, http.StatusForbidden, "access_denied")

	alerts, err := user.ListAlerts(t.Context())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "Gate 4", alerts[0].Location)

	require.NoError(t, admin.ResolveAlert(t.Context(), created.ID))
}
