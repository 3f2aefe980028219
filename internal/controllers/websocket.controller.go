package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"hotelops/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin policy is enforced by the CORS middleware for the REST
		// surface; the ws endpoint accepts any origin.
		return true
	},
}

// WebSocketController upgrades realtime subscriptions and runs the
// per-connection pumps.
type WebSocketController struct {
	hub      *services.WebSocketHub
	overview *services.OverviewService
	log      *slog.Logger
}

func NewWebSocketController(hub *services.WebSocketHub, overview *services.OverviewService, log *slog.Logger) *WebSocketController {
	return &WebSocketController{hub: hub, overview: overview, log: log}
}

// Handle handles GET /ws: upgrade, register, start the pumps. The
// write pump pushes one snapshot immediately, then one per interval
// until the connection closes.
func (wc *WebSocketController) Handle(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		wc.log.Error("websocket upgrade failed", "error", err)
		return
	}

	client := &services.ClientConnection{
		ID:   c.ClientIP() + "-" + uuid.NewString(),
		Conn: ws,
		Done: make(chan struct{}),
	}
	wc.hub.Register(client)

	go wc.readPump(client)
	go wc.writePump(client)
}

// readPump exists to surface disconnects and transport errors; inbound
// frames carry no meaning on this channel.
func (wc *WebSocketController) readPump(client *services.ClientConnection) {
	defer func() {
		wc.hub.Unregister(client.ID)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				wc.log.Error("websocket read failed", "client", client.ID, "error", err)
			}
			return
		}
	}
}

// writePump owns this connection's push timer. Snapshot composition
// errors are logged and the ticker continues; a failed send ends the
// connection, and the timer stops with it.
func (wc *WebSocketController) writePump(client *services.ClientConnection) {
	ticker := time.NewTicker(wc.hub.PushInterval())
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	if err := wc.push(client); err != nil {
		wc.log.Error("initial snapshot push failed", "client", client.ID, "error", err)
		return
	}

	for {
		select {
		case <-client.Done:
			client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			if err := wc.push(client); err != nil {
				wc.log.Error("snapshot push failed", "client", client.ID, "error", err)
				return
			}
		}
	}
}

func (wc *WebSocketController) push(client *services.ClientConnection) error {
	snap, err := wc.overview.Snapshot(context.Background())
	if err != nil {
		// Composition failure should not tear the connection down.
		wc.log.Error("snapshot composition failed", "client", client.ID, "error", err)
		return nil
	}
	return client.Conn.WriteJSON(services.WSMessage{
		Type: services.MessageTypeDashboardUpdate,
		Data: snap,
	})
}
