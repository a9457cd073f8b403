package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
)

// MockPublisher records published batches
type MockPublisher struct {
	batches     [][]models.Pick
	shouldError bool
}

func (m *MockPublisher) PublishBatch(ctx context.Context, picks []models.Pick) (int, error) {
	if m.shouldError {
		return 0, errors.New("redis unavailable")
	}
	m.batches = append(m.batches, picks)
	return len(picks), nil
}

// MockBroadcaster records broadcast batches
type MockBroadcaster struct {
	batches []models.PickBatch
}

func (m *MockBroadcaster) Broadcast(batch models.PickBatch) {
	m.batches = append(m.batches, batch)
}

func newRouter(pub handlers.Publisher, hub handlers.Broadcaster) http.Handler {
	h := handlers.NewHandler(testutil.NewEngine(), pub, hub, testutil.DiscardLogger())
	return handlers.NewRouter(h, nil, []string{"*"})
}

func TestHealthCheck(t *testing.T) {
	router := newRouter(nil, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["status"] != "healthy" || response["service"] != "pick-standardizer" {
		t.Errorf("unexpected response: %v", response)
	}
}

func TestStandardize_JSON(t *testing.T) {
	pub := &MockPublisher{}
	hub := &MockBroadcaster{}
	router := newRouter(pub, hub)

	body := `{"input": "Spurs 2.5 -105 $50\nunder 220", "unitMultiplier": 100}`
	req := httptest.NewRequest("POST", "/api/v1/standardize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response handlers.StandardizeResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.Count != 2 || len(response.Picks) != 2 {
		t.Fatalf("expected 2 picks, got %d", response.Count)
	}
	if response.Format != models.FormatBetHistory {
		t.Errorf("Format = %s", response.Format)
	}
	if !response.Picks[0].Risk.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Risk = %s, want 5000 with unit multiplier 100", response.Picks[0].Risk)
	}
	if response.Published != 2 || len(pub.batches) != 1 {
		t.Errorf("expected one published batch of 2, got %d / %d", response.Published, len(pub.batches))
	}
	if len(hub.batches) != 1 || len(hub.batches[0].Picks) != 2 {
		t.Errorf("expected one broadcast batch, got %+v", hub.batches)
	}
}

func TestStandardize_PlainText(t *testing.T) {
	router := newRouter(nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/standardize", strings.NewReader("bills ml 1h"))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response handlers.StandardizeResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Count != 1 || response.Picks[0].PickTeam != "Buffalo Bills" {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestStandardize_EmptyInput(t *testing.T) {
	router := newRouter(nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/standardize", strings.NewReader(`{"input": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"picks":[]`) {
		t.Errorf("expected an empty picks array, got %s", w.Body.String())
	}
}

func TestStandardize_PublishFailureStillResponds(t *testing.T) {
	router := newRouter(&MockPublisher{shouldError: true}, nil)

	req := httptest.NewRequest("POST", "/api/v1/standardize", strings.NewReader("under 220"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response handlers.StandardizeResponse
	json.NewDecoder(w.Body).Decode(&response)
	if response.Count != 1 || response.Published != 0 {
		t.Errorf("unexpected response: %+v", response)
	}
}

func TestStandardize_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Malformed JSON", `{"input": `},
		{"Non-positive multiplier", `{"input": "under 220", "unitMultiplier": 0}`},
		{"Empty JSON body", ``},
	}

	router := newRouter(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/standardize", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected status 400, got %d", w.Code)
			}

			var errResp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&errResp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if errResp.Code != http.StatusBadRequest || errResp.Error != "Bad Request" {
				t.Errorf("unexpected error envelope: %+v", errResp)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	router := newRouter(nil, nil)

	req := httptest.NewRequest("POST", "/api/v1/detect", strings.NewReader(`{"input": "Lakers vs Celtics | Full Game | Lakers -3"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]string
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response["format"] != string(models.FormatPipeDelimited) {
		t.Errorf("format = %s", response["format"])
	}
}

func TestResolveTeam(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		status     int
		canonical  string
		leagueName string
		found      bool
	}{
		{"Global alias", "?q=kings", http.StatusOK, "Sacramento Kings", "NBA Basketball", true},
		{"League scoped", "?q=kings&league=NHL", http.StatusOK, "Los Angeles Kings", "NHL Hockey", true},
		{"Unknown", "?q=Foothill%20Owls", http.StatusOK, "Foothill Owls", "", false},
		{"Missing q", "", http.StatusBadRequest, "", "", false},
	}

	router := newRouter(nil, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/teams/resolve"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("Expected status %d, got %d", tt.status, w.Code)
			}
			if tt.status != http.StatusOK {
				return
			}

			var response struct {
				Canonical  string `json:"canonical"`
				LeagueName string `json:"leagueName"`
				Found      bool   `json:"found"`
			}
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if response.Canonical != tt.canonical || response.Found != tt.found || response.LeagueName != tt.leagueName {
				t.Errorf("got %+v, want %s/%s/%v", response, tt.canonical, tt.leagueName, tt.found)
			}
		})
	}
}
