// Package metrics holds the Prometheus collectors for the service. The
// data-quality counters exist because the profile resolution chain is
// deliberately forgiving; they are the only place degradation is visible.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InvalidRoleStored counts profiles read back with an unrecognised role
	// that was coerced to "user".
	InvalidRoleStored = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kavach",
		Name:      "profile_invalid_role_total",
		Help:      "Profiles whose stored role was invalid and coerced to user.",
	})

	// ProfileResolutionDegraded counts resolutions that could not be served
	// by the primary store, labelled by the path taken.
	ProfileResolutionDegraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kavach",
		Name:      "profile_resolution_degraded_total",
		Help:      "Profile resolutions that fell through the primary store.",
	}, []string{"path"}) // fallback | synthesized

	// FallbackProfileWrites counts profile writes landing in the fallback
	// store because the primary rejected them.
	FallbackProfileWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kavach",
		Name:      "profile_fallback_writes_total",
		Help:      "Profile writes persisted to the fallback store.",
	})

	// SOSAlertsRaised counts SOS alerts created.
	SOSAlertsRaised = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "kavach",
		Name:      "sos_alerts_raised_total",
		Help:      "SOS alerts raised by pilgrims.",
	})

	// EventsBroadcast counts messages fanned out over the events socket,
	// labelled by event type.
	EventsBroadcast = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kavach",
		Name:      "events_broadcast_total",
		Help:      "Realtime events broadcast to connected clients.",
	}, []string{"type"})

	// WebsocketClients tracks currently connected event stream clients.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "kavach",
		Name:      "websocket_clients",
		Help:      "Currently connected websocket clients.",
	})
)
