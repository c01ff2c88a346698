package http

import (
	"net/http"

	"github.com/sevasetu/kavach/internal/kavach/realtime"
	"github.com/sevasetu/kavach/pkg/slogx"
)

// EventsHandler upgrades authenticated dashboard connections to the realtime
// event stream.
type EventsHandler struct {
	Hub *realtime.Hub
}

// HandleConnect handles GET /v1/events. The authn middleware has already
// gated the upgrade.
func (h *EventsHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	if err := h.Hub.ServeWS(w, r); err != nil {
		// The upgrader has written its own response by now.
		slogx.FromContext(r.Context()).Warn("websocket upgrade failed", "err", err)
	}
}
