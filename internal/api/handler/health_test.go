package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthHandler_Live(t *testing.T) {
	env := newTestEnv(t, &stubFetcher{})
	handler := NewHealthHandler(env.app.Controller, env.app.Renderer, "https://example.com/feed.json")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.Live(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json")
	}

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Timestamp == "" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	env := newTestEnv(t, &stubFetcher{items: sampleFeed()})
	env.app.Fetch(t.Context())
	handler := NewHealthHandler(env.app.Controller, env.app.Renderer, "https://example.com/feed.json")

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	handler.Ready(w, req)

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Gallery == nil {
		t.Fatal("gallery stats missing")
	}
	if resp.Gallery.Cards != 2 || resp.Gallery.Fetching {
		t.Errorf("gallery = %+v, want 2 cards and idle", resp.Gallery)
	}
	if resp.Gallery.FeedURL != "https://example.com/feed.json" {
		t.Errorf("feed url = %q", resp.Gallery.FeedURL)
	}
}
