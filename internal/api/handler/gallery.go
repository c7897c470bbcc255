package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iconidentify/spacegallery/internal/app"
	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/modal"
	"github.com/iconidentify/spacegallery/internal/screen"
)

// GalleryHandler handles gallery, modal and fact actions.
type GalleryHandler struct {
	app    *app.App
	screen *screen.Screen
	logger *slog.Logger
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(a *app.App, s *screen.Screen, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		app:    a,
		screen: s,
		logger: logger,
	}
}

// FactResponse is returned after a new fact is shown.
type FactResponse struct {
	Fact string `json:"fact"`
}

// State handles GET /api/v1/state
func (h *GalleryHandler) State(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.screen.Snapshot())
}

// Fetch handles POST /api/v1/fetch
func (h *GalleryHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	err := h.fetch(r.Context())
	switch {
	case errors.Is(err, domain.ErrFetchInFlight):
		h.writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		// The failure is part of the rendered state (error placeholder).
		h.writeJSON(w, http.StatusBadGateway, h.screen.Snapshot())
		return
	}
	h.writeJSON(w, http.StatusOK, h.screen.Snapshot())
}

// Fact handles POST /api/v1/fact
func (h *GalleryHandler) Fact(w http.ResponseWriter, r *http.Request) {
	text, ok := h.app.NextFact()
	if !ok {
		h.writeError(w, http.StatusNotFound, "no fact display")
		return
	}
	h.writeJSON(w, http.StatusOK, FactResponse{Fact: text})
}

// OpenCard handles POST /api/v1/cards/{index}/open
func (h *GalleryHandler) OpenCard(w http.ResponseWriter, r *http.Request) {
	if err := h.openCard(r); err != nil {
		h.writeCardError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.screen.Snapshot().Modal)
}

// CloseModal handles POST /api/v1/modal/close
func (h *GalleryHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.closeModal(r)
	h.writeJSON(w, http.StatusOK, h.screen.Snapshot().Modal)
}

// FetchPage handles POST /fetch from the page form.
func (h *GalleryHandler) FetchPage(w http.ResponseWriter, r *http.Request) {
	h.fetch(r.Context())
	redirectHome(w, r)
}

// FactPage handles POST /fact from the page form.
func (h *GalleryHandler) FactPage(w http.ResponseWriter, r *http.Request) {
	h.app.NextFact()
	redirectHome(w, r)
}

// CardPage handles GET /cards/{index}, the href of every card link.
func (h *GalleryHandler) CardPage(w http.ResponseWriter, r *http.Request) {
	if err := h.openCard(r); err != nil {
		h.writeCardError(w, err)
		return
	}
	redirectHome(w, r)
}

// ClosePage handles POST /modal/close from the page form.
func (h *GalleryHandler) ClosePage(w http.ResponseWriter, r *http.Request) {
	h.closeModal(r)
	redirectHome(w, r)
}

// fetch detaches from the request so a dropped client does not cancel
// the in-flight fetch.
func (h *GalleryHandler) fetch(ctx context.Context) error {
	err := h.app.Fetch(context.WithoutCancel(ctx))
	if errors.Is(err, domain.ErrFetchInFlight) {
		h.logger.Debug("fetch rejected, another fetch is running")
	}
	return err
}

func (h *GalleryHandler) openCard(r *http.Request) error {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return errInvalidIndex
	}
	return h.app.OpenCard(index)
}

func (h *GalleryHandler) closeModal(r *http.Request) {
	via := r.URL.Query().Get("via")
	if via == "" {
		via = r.FormValue("via")
	}
	switch trigger := modal.ParseCloseTrigger(via); trigger {
	case modal.CloseEscape:
		h.app.Modal.HandleKey(modal.KeyEscape)
	case modal.CloseBackdrop:
		h.app.Modal.HandleClick(modal.TargetBackdrop)
	default:
		h.app.Modal.Close(trigger)
	}
}

var errInvalidIndex = errors.New("invalid card index")

func (h *GalleryHandler) writeCardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidIndex):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCardNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("open card failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to open card")
	}
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *GalleryHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *GalleryHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
