package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/stockwatch/digitec-stock-check/internal/models"
)

// ProductChecker is what the handlers need from the checker service.
type ProductChecker interface {
	Check(ctx context.Context, url string) (*models.ProductSnapshot, error)
}

type Handlers struct {
	checker    ProductChecker
	defaultURL string
	logger     *slog.Logger
}

func NewHandlers(checker ProductChecker, defaultURL string, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		checker:    checker,
		defaultURL: defaultURL,
		logger:     logger.With("component", "api"),
	}
}

// CheckResponse is the success shape of a product check.
type CheckResponse struct {
	OK              bool                `json:"ok"`
	Name            string              `json:"name,omitempty"`
	Price           string              `json:"price,omitempty"`
	Availability    models.Availability `json:"availability"`
	Stock           *int                `json:"stock,omitempty"`
	Shipping        string              `json:"shipping,omitempty"`
	PickupLocations []string            `json:"pickup_locations"`
	CheckedAt       time.Time           `json:"checked_at"`
}

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// CheckProduct handles GET /api/v1/check. An optional ?url= overrides
// the configured product URL. Fetch failures map to 500 with ok:false;
// a page with no signal is still a 200 with availability "unknown".
func (h *Handlers) CheckProduct(w http.ResponseWriter, r *http.Request) {
	url := r.URL.Query().Get("url")
	if url == "" {
		url = h.defaultURL
	}
	if url == "" {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "product url is required"})
		return
	}

	snap, err := h.checker.Check(r.Context(), url)
	if err != nil {
		h.logger.Error("check failed", "error", err, "url", url)
		h.respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	h.respondJSON(w, http.StatusOK, CheckResponse{
		OK:              true,
		Name:            snap.Name,
		Price:           snap.Price,
		Availability:    snap.Availability,
		Stock:           snap.Stock,
		Shipping:        snap.Shipping,
		PickupLocations: snap.PickupLocations,
		CheckedAt:       snap.CheckedAt,
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
