package ws

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
)

type ackMsg struct {
	Status   string `json:"status"`
	Category string `json:"category"`
}

// Handler подписывает соединение на события каталога.
// GET /ws?category=X — только события этой категории, без параметра — все.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "ws upgrade failed", http.StatusBadRequest)
			return
		}

		room := r.URL.Query().Get("category")
		if room == "" {
			room = "all"
		}

		hub.Register(room, conn)
		defer hub.Unregister(room, conn)

		ack, _ := json.Marshal(ackMsg{Status: "subscribed", Category: room})
		if err := conn.WriteMessage(websocket.TextMessage, ack); err != nil {
			return
		}

		// держим соединение до дисконнекта, входящие сообщения игнорируем
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
