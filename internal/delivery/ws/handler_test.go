package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestHandler_SubscribeAndReceive(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dial(t, srv, "?category=Programming")

	var ack ackMsg
	readJSON(t, conn, &ack)
	assert.Equal(t, "subscribed", ack.Status)
	assert.Equal(t, "Programming", ack.Category)

	// после ack подписка гарантированно зарегистрирована
	hub.SendToRoom("Programming", []byte(`{"action":"created"}`))

	var event struct {
		Action string `json:"action"`
	}
	readJSON(t, conn, &event)
	assert.Equal(t, "created", event.Action)
}

func TestHandler_DefaultRoomIsAll(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dial(t, srv, "")

	var ack ackMsg
	readJSON(t, conn, &ack)
	assert.Equal(t, "all", ack.Category)

	hub.SendToRoom("all", []byte(`{"action":"deleted"}`))

	var event struct {
		Action string `json:"action"`
	}
	readJSON(t, conn, &event)
	assert.Equal(t, "deleted", event.Action)
}

func TestHandler_OtherRoomNotDelivered(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	conn := dial(t, srv, "?category=Design")

	var ack ackMsg
	readJSON(t, conn, &ack)

	hub.SendToRoom("Programming", []byte(`{"action":"created"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err) // ничего не пришло, дедлайн
}
