// Package realtime fans out resource change events to connected dashboard
// clients over WebSocket, replacing per-client polling of the store.
package realtime

import (
	"log/slog"
	"sync"

	"github.com/sevasetu/kavach/internal/kavach/metrics"
)

// Event is a typed change notification. Type is "<resource>.<verb>", e.g.
// "location.updated" or "sos.created".
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Hub maintains the set of active clients and broadcasts events to them.
// All client map mutations happen on the run loop goroutine.
type Hub struct {
	logger *slog.Logger

	clients    map[*Client]struct{}
	broadcast  chan Event
	register   chan *Client
	unregister chan *Client

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stopCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
	}
}

// Run processes registrations and broadcasts until Stop is called. Call it
// on its own goroutine.
func (h *Hub) Run() {
	defer close(h.doneCh)

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			metrics.WebsocketClients.Set(float64(len(h.clients)))
			h.logger.Debug("events client connected", "total", len(h.clients))

		case client := <-h.unregister:
			h.drop(client)

		case event := <-h.broadcast:
			metrics.EventsBroadcast.WithLabelValues(event.Type).Inc()
			for client := range h.clients {
				select {
				case client.send <- event:
				default:
					// Slow consumer; drop it rather than stall the loop.
					h.drop(client)
				}
			}

		case <-h.stopCh:
			for client := range h.clients {
				h.drop(client)
			}
			return
		}
	}
}

// Stop shuts the hub down and waits for the run loop to exit.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
	<-h.doneCh
}

// Broadcast queues an event for delivery to every connected client. It never
// blocks; under extreme backlog the event is dropped.
func (h *Hub) Broadcast(eventType string, data any) {
	select {
	case h.broadcast <- Event{Type: eventType, Data: data}:
	case <-h.stopCh:
	default:
		h.logger.Warn("events backlog full, dropping broadcast", "type", eventType)
	}
}

func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)
	metrics.WebsocketClients.Set(float64(len(h.clients)))
	h.logger.Debug("events client disconnected", "total", len(h.clients))
}
