package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/currency-exchanger/internal/logger"
	"github.com/sbilibin2017/currency-exchanger/internal/models"
)

// StateBroadcaster pushes every recomputed view state to connected
// websocket clients. Register Broadcast as an engine subscriber.
type StateBroadcaster struct {
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
	upgrader websocket.Upgrader
}

// NewStateBroadcaster creates a broadcaster with no connected clients.
func NewStateBroadcaster() *StateBroadcaster {
	return &StateBroadcaster{
		clients:  make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
	}
}

// Broadcast sends the state to every connected client, dropping clients
// whose connection fails.
func (b *StateBroadcaster) Broadcast(state models.ExchangeViewState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg, err := json.Marshal(state)
	if err != nil {
		logger.Log.Errorw("failed to marshal view state", "error", err)
		return
	}
	for conn := range b.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Log.Errorw("websocket write failed", "error", err)
			conn.Close()
			delete(b.clients, conn)
		}
	}
}

// Handler returns an http.HandlerFunc accepting websocket connections.
func (b *StateBroadcaster) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Log.Errorw("websocket upgrade failed", "error", err)
			return
		}

		b.mu.Lock()
		b.clients[conn] = struct{}{}
		b.mu.Unlock()

		// read loop keeps the connection alive and detects closure
		go func() {
			defer func() {
				b.mu.Lock()
				delete(b.clients, conn)
				b.mu.Unlock()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
