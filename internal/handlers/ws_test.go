package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/hub"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

func TestWebSocket_ReceivesSubscribedPicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := testutil.DiscardLogger()
	h := hub.NewHub(logger)
	go h.Run(ctx)

	handler := handlers.NewHandler(testutil.NewEngine(), nil, h, logger)
	ws := handlers.NewWSHandler(ctx, h, nil, logger)
	server := httptest.NewServer(handlers.NewRouter(handler, ws, []string{"*"}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	defer conn.Close()

	subscribe := models.ClientMessage{
		Type:    models.MessageTypeSubscribe,
		Payload: map[string]interface{}{"sports": []string{"NFL"}},
	}
	if err := conn.WriteJSON(subscribe); err != nil {
		t.Fatalf("failed to subscribe: %v", err)
	}

	// the heartbeat reply proves the subscription was processed
	if err := conn.WriteJSON(models.ClientMessage{Type: models.MessageTypeHeartbeat}); err != nil {
		t.Fatalf("failed to send heartbeat: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply models.ServerMessage
	if err := conn.ReadJSON(&reply); err != nil || reply.Type != models.MessageTypeHeartbeat {
		t.Fatalf("expected heartbeat reply, got %+v (%v)", reply, err)
	}

	resp, err := http.Post(server.URL+"/api/v1/standardize", "text/plain", strings.NewReader("Lakers -3 -110\nbills ml 1h"))
	if err != nil {
		t.Fatalf("standardize request failed: %v", err)
	}
	resp.Body.Close()

	var msg struct {
		Type    string           `json:"type"`
		Payload models.PickBatch `json:"payload"`
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read pick message: %v", err)
	}

	if msg.Type != models.MessageTypePicks {
		t.Fatalf("expected picks message, got %s", msg.Type)
	}
	if len(msg.Payload.Picks) != 1 || msg.Payload.Picks[0].PickTeam != "Buffalo Bills" {
		t.Errorf("expected only the NFL pick, got %+v", msg.Payload.Picks)
	}
}
