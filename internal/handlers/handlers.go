package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/models"
	"github.com/XavierBriggs/fortuna/services/pick-standardizer/pkg/standardize"
)

// maxBodyBytes caps request bodies; pasted bet slips are rarely over a few hundred KB
const maxBodyBytes = 2 << 20

// Standardizer is the engine surface the handlers use
type Standardizer interface {
	StandardizeDetailed(input string, opts ...standardize.Option) standardize.Result
	ResolveTeam(league, token string) (models.AliasEntry, bool)
	LeagueName(code string) string
}

// Publisher sends standardized picks downstream
type Publisher interface {
	PublishBatch(ctx context.Context, picks []models.Pick) (int, error)
}

// Broadcaster fans picks out to live-feed subscribers
type Broadcaster interface {
	Broadcast(batch models.PickBatch)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	engine    Standardizer
	publisher Publisher
	hub       Broadcaster
	logger    *slog.Logger
}

// NewHandler creates a new handler. publisher and hub may be nil.
func NewHandler(engine Standardizer, publisher Publisher, hub Broadcaster, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		engine:    engine,
		publisher: publisher,
		hub:       hub,
		logger:    logger,
	}
}

// StandardizeRequest is the JSON body of POST /api/v1/standardize
type StandardizeRequest struct {
	Input          string              `json:"input"`
	UnitMultiplier decimal.NullDecimal `json:"unitMultiplier"`
	DefaultSport   string              `json:"defaultSport"`
}

// StandardizeResponse is returned by POST /api/v1/standardize
type StandardizeResponse struct {
	Format    models.FormatKind `json:"format"`
	Step      string            `json:"step,omitempty"`
	Picks     []models.Pick     `json:"picks"`
	Count     int               `json:"count"`
	Published int               `json:"published"`
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "pick-standardizer",
	})
}

// Standardize converts the request input into canonical picks
// Body: JSON StandardizeRequest, or the raw input as text/plain or text/html
func (h *Handler) Standardize(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	var opts []standardize.Option
	if req.UnitMultiplier.Valid {
		if !req.UnitMultiplier.Decimal.IsPositive() {
			respondError(w, http.StatusBadRequest, "unitMultiplier must be positive", nil)
			return
		}
		opts = append(opts, standardize.WithUnitMultiplier(req.UnitMultiplier.Decimal))
	}
	if req.DefaultSport != "" {
		opts = append(opts, standardize.WithDefaultSport(req.DefaultSport))
	}

	result := h.engine.StandardizeDetailed(req.Input, opts...)

	published := 0
	if h.publisher != nil && len(result.Picks) > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		n, err := h.publisher.PublishBatch(ctx, result.Picks)
		cancel()
		if err != nil {
			// the caller still gets its picks
			h.logger.Warn("failed to publish picks", "error", err, "count", len(result.Picks))
		}
		published = n
	}

	if h.hub != nil {
		h.hub.Broadcast(models.PickBatch{Format: result.Format, Picks: result.Picks})
	}

	respondJSON(w, http.StatusOK, StandardizeResponse{
		Format:    result.Format,
		Step:      result.Step,
		Picks:     result.Picks,
		Count:     len(result.Picks),
		Published: published,
	})
}

// Detect reports the input format without parsing picks
func (h *Handler) Detect(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"format": standardize.Detect(req.Input),
	})
}

// ResolveTeam resolves a team token to its canonical name
// Query params: q (required), league
func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondError(w, http.StatusBadRequest, "q is required", nil)
		return
	}
	league := r.URL.Query().Get("league")

	entry, found := h.engine.ResolveTeam(league, q)
	canonical := q
	if found {
		canonical = entry.Canonical
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"input":      q,
		"canonical":  canonical,
		"league":     entry.League,
		"leagueName": h.engine.LeagueName(entry.League),
		"found":      found,
	})
}

// decodeRequest reads a JSON StandardizeRequest or a raw text body
func decodeRequest(w http.ResponseWriter, r *http.Request) (StandardizeRequest, error) {
	var req StandardizeRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return req, fmt.Errorf("empty body")
			}
			return req, err
		}
		return req, nil
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return req, err
	}
	req.Input = string(data)
	return req, nil
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		slog.Warn(message, "error", err)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Error("error encoding error response", "error", err)
	}
}
