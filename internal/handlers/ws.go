package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/client"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/hub"
)

// WSHandler upgrades live-feed connections and attaches them to the hub
type WSHandler struct {
	hub      *hub.Hub
	ctx      context.Context
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a WebSocket handler. ctx outlives requests and stops
// the client pumps on shutdown. An empty origins list accepts any origin.
func NewWSHandler(ctx context.Context, h *hub.Hub, origins []string, logger *slog.Logger) *WSHandler {
	if logger == nil {
		logger = slog.Default()
	}

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}

	return &WSHandler{
		hub:    h,
		ctx:    ctx,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || allowed["*"] || origin == "" || allowed[origin]
			},
		},
	}
}

// HandleWebSocket upgrades HTTP connections to WebSocket
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade error", "error", err)
		return
	}

	c := client.NewClient(uuid.New().String(), conn, h.hub, h.logger)
	h.hub.Register(c)

	// pumps use the handler context, not the request context
	go c.WritePump(h.ctx)
	go c.ReadPump(h.ctx)
}

// HandleMetrics returns hub metrics
func (h *WSHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.hub.GetMetrics())
}
