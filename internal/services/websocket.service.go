package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"hotelops/internal/metrics"
	"hotelops/internal/models"
)

// WSMessage is the frame sent to realtime subscribers.
type WSMessage struct {
	Type string           `json:"type"`
	Data *models.Snapshot `json:"data"`
}

// MessageTypeDashboardUpdate is the only frame type pushed to clients.
const MessageTypeDashboardUpdate = "dashboard_update"

// ClientConnection represents one connected subscriber. Each
// connection owns its own push ticker; connections do not share a
// broadcast cycle, so two subscribers connecting at different times
// push at different phase offsets.
type ClientConnection struct {
	ID   string
	Conn *websocket.Conn
	Done chan struct{}
}

// WebSocketHub tracks connected subscribers for counting and shutdown.
// Pushing happens in each connection's write pump, not here.
type WebSocketHub struct {
	mu           sync.RWMutex
	clients      map[string]*ClientConnection
	log          *slog.Logger
	pushInterval time.Duration
}

// NewWebSocketHub creates the hub. A zero push interval defaults to 5
// seconds.
func NewWebSocketHub(log *slog.Logger, pushInterval time.Duration) *WebSocketHub {
	if pushInterval <= 0 {
		pushInterval = 5 * time.Second
	}
	return &WebSocketHub{
		clients:      make(map[string]*ClientConnection),
		log:          log,
		pushInterval: pushInterval,
	}
}

// PushInterval is the per-connection broadcast cadence.
func (h *WebSocketHub) PushInterval() time.Duration {
	return h.pushInterval
}

// Register adds a new subscriber.
func (h *WebSocketHub) Register(client *ClientConnection) {
	h.mu.Lock()
	h.clients[client.ID] = client
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	h.log.Info("websocket client connected", "client", client.ID, "total", total)
}

// Unregister removes a subscriber and cancels its push timer by
// closing Done. No dangling timers may persist past connection close.
func (h *WebSocketHub) Unregister(clientID string) {
	h.mu.Lock()
	client, exists := h.clients[clientID]
	if exists {
		delete(h.clients, clientID)
		close(client.Done)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if exists {
		metrics.WSConnections.Dec()
		h.log.Info("websocket client disconnected", "client", clientID, "total", total)
	}
}

// ClientCount returns the number of connected subscribers.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CloseAll disconnects every subscriber. Used on shutdown.
func (h *WebSocketHub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, client := range h.clients {
		close(client.Done)
		client.Conn.Close()
		delete(h.clients, id)
		metrics.WSConnections.Dec()
	}
}
