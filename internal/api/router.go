package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/iconidentify/spacegallery/internal/api/handler"
	mw "github.com/iconidentify/spacegallery/internal/api/middleware"
)

// NewRouter creates the HTTP router with all routes configured.
func NewRouter(
	galleryHandler *handler.GalleryHandler,
	healthHandler *handler.HealthHandler,
	uiHandler *handler.UIHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CleanPath)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger)
	r.Use(middleware.Recoverer)

	// Health endpoints
	r.Get("/health", healthHandler.Live)
	r.Get("/ready", healthHandler.Ready)

	// Page and its form actions
	r.Get("/", uiHandler.Index)
	r.Post("/fetch", galleryHandler.FetchPage)
	r.Post("/fact", galleryHandler.FactPage)
	r.Get("/cards/{index}", galleryHandler.CardPage)
	r.Post("/modal/close", galleryHandler.ClosePage)

	// JSON API
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", galleryHandler.State)
		r.Post("/fetch", galleryHandler.Fetch)
		r.Post("/fact", galleryHandler.Fact)
		r.Post("/cards/{index}/open", galleryHandler.OpenCard)
		r.Post("/modal/close", galleryHandler.CloseModal)
	})

	return r
}
