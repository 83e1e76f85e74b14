package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/amterp/filecolor/internal/logging"
)

func newTestClient(hub *WebSocketHub, buffer int) *WebSocketClient {
	return &WebSocketClient{hub: hub, send: make(chan []byte, buffer)}
}

func receive(t *testing.T, client *WebSocketClient) WebSocketMessage {
	t.Helper()
	select {
	case data := <-client.send:
		var msg WebSocketMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		return msg
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Did not receive message")
	}
	return WebSocketMessage{}
}

func TestWebSocketHub_AddRemoveClient(t *testing.T) {
	hub := NewWebSocketHub(logging.Discard())
	client := newTestClient(hub, 10)

	hub.addClient(client)
	if hub.ClientCount() != 1 {
		t.Errorf("Expected 1 client, got %d", hub.ClientCount())
	}

	hub.removeClient(client)
	hub.removeClient(client) // Second removal must not panic
	if hub.ClientCount() != 0 {
		t.Errorf("Expected 0 clients, got %d", hub.ClientCount())
	}
	if _, ok := <-client.send; ok {
		t.Error("Expected send channel closed after removal")
	}
}

func TestWebSocketHub_BroadcastTyped(t *testing.T) {
	hub := NewWebSocketHub(logging.Discard())
	a := newTestClient(hub, 10)
	b := newTestClient(hub, 10)
	hub.addClient(a)
	hub.addClient(b)

	hub.Broadcast(MessageDraftChanged, map[string]bool{"dirty": true})

	for _, client := range []*WebSocketClient{a, b} {
		msg := receive(t, client)
		if msg.Type != MessageDraftChanged {
			t.Errorf("Type = %q, want %q", msg.Type, MessageDraftChanged)
		}
		if data, ok := msg.Data.(map[string]any); !ok || data["dirty"] != true {
			t.Errorf("unexpected payload: %#v", msg.Data)
		}
	}
}

func TestWebSocketHub_BroadcastToRemovedClient(t *testing.T) {
	hub := NewWebSocketHub(logging.Discard())
	client := newTestClient(hub, 10)
	hub.addClient(client)
	hub.removeClient(client)

	// Must not panic on the closed channel
	hub.Broadcast(MessageSettingsChanged, nil)
	hub.trySend(client, []byte("late"))
}

func TestWebSocketHub_BroadcastFullBuffer(t *testing.T) {
	hub := NewWebSocketHub(logging.Discard())
	client := newTestClient(hub, 1)
	hub.addClient(client)
	client.send <- []byte("first")

	hub.Broadcast(MessageSettingsChanged, nil)

	if hub.ClientCount() != 0 {
		t.Errorf("Expected slow client dropped, got %d clients", hub.ClientCount())
	}
}

func TestWebSocketHub_ServeWS(t *testing.T) {
	hub := NewWebSocketHub(logging.Discard())
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg WebSocketMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if msg.Type != MessageConnected {
		t.Errorf("Type = %q, want %q", msg.Type, MessageConnected)
	}

	hub.Broadcast(MessageSettingsChanged, map[string]int{"colors": 2})
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if msg.Type != MessageSettingsChanged {
		t.Errorf("Type = %q, want %q", msg.Type, MessageSettingsChanged)
	}
}
