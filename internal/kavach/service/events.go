package service

import "github.com/sevasetu/kavach/internal/kavach/realtime"

// notify broadcasts a change event when a hub is wired. Services stay usable
// without one, which the tests rely on.
func notify(h *realtime.Hub, eventType string, data any) {
	if h != nil {
		h.Broadcast(eventType, data)
	}
}
