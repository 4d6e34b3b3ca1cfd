package utils

import (
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatHub is a process-scoped registry of live chat connections, keyed by
// connection id. It is created once at startup and injected where needed;
// there are no ambient globals.
type ChatHub struct {
	mu    sync.RWMutex
	conns map[string]*websocket.Conn
}

// NewChatHub creates an empty connection registry
func NewChatHub() *ChatHub {
	return &ChatHub{conns: make(map[string]*websocket.Conn)}
}

// Register adds a connection and returns its id
func (h *ChatHub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()

	return id
}

// Unregister removes a connection by id
func (h *ChatHub) Unregister(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// Count returns the number of live connections
func (h *ChatHub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast writes a JSON payload to every live connection. Write errors
// are ignored; a dead connection cleans itself up on its read loop.
func (h *ChatHub) Broadcast(payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.conns {
		conn.WriteJSON(payload)
	}
}
