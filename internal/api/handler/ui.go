package handler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/iconidentify/spacegallery/internal/screen"
	"github.com/iconidentify/spacegallery/pkg/ui"
)

// UIHandler serves the gallery page.
type UIHandler struct {
	screen *screen.Screen
	logger *slog.Logger
}

// NewUIHandler creates a new UI handler.
func NewUIHandler(s *screen.Screen, logger *slog.Logger) *UIHandler {
	return &UIHandler{
		screen: s,
		logger: logger,
	}
}

// Index serves the gallery page rendered from the current screen state.
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := ui.RenderPage(&buf, h.screen.Snapshot()); err != nil {
		h.logger.Error("render page failed", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}
