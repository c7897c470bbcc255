package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

var startTime = time.Now()

// GalleryStatus reports the state of the fetch pipeline.
type GalleryStatus interface {
	InFlight() bool
}

// CardCounter reports how many cards are rendered.
type CardCounter interface {
	Len() int
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	status  GalleryStatus
	cards   CardCounter
	feedURL string
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(status GalleryStatus, cards CardCounter, feedURL string) *HealthHandler {
	return &HealthHandler{
		status:  status,
		cards:   cards,
		feedURL: feedURL,
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp string        `json:"timestamp"`
	Uptime    string        `json:"uptime,omitempty"`
	Gallery   *GalleryStats `json:"gallery,omitempty"`
}

// GalleryStats contains gallery pipeline statistics.
type GalleryStats struct {
	FeedURL  string `json:"feed_url"`
	Fetching bool   `json:"fetching"`
	Cards    int    `json:"cards"`
}

// Live handles GET /health - liveness probe.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /ready - readiness probe.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).Round(time.Second).String(),
		Gallery: &GalleryStats{
			FeedURL:  h.feedURL,
			Fetching: h.status.InFlight(),
			Cards:    h.cards.Len(),
		},
	})
}
