package realtime

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, hub.ServeWS(w, r))
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestBroadcastReachesClient(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	// Registration races the broadcast; give the run loop a beat.
	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("location.updated", map[string]any{"id": "loc-1", "currentCount": 42})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	require.Equal(t, "location.updated", event.Type)

	data, ok := event.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "loc-1", data["id"])
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := newTestHub(t)
	first := dial(t, hub)
	second := dial(t, hub)

	time.Sleep(50 * time.Millisecond)

	hub.Broadcast("alert.created", map[string]any{"id": "a1"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var event Event
		require.NoError(t, conn.ReadJSON(&event))
		require.Equal(t, "alert.created", event.Type)
	}
}

func TestStopClosesClients(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	go hub.Run()
	conn := dial(t, hub)

	time.Sleep(50 * time.Millisecond)
	hub.Stop()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "connection should close after hub stop")
}
