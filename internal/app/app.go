// Package app wires the gallery components to a set of UI handles.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iconidentify/spacegallery/internal/config"
	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/facts"
	"github.com/iconidentify/spacegallery/internal/feed"
	"github.com/iconidentify/spacegallery/internal/gallery"
	"github.com/iconidentify/spacegallery/internal/modal"
)

// Handles names the UI elements the core writes to. Fact is optional;
// the others are required.
type Handles struct {
	Trigger feed.Trigger
	Gallery gallery.Surface
	Modal   modal.Surface
	Fact    facts.Display
}

// Validate checks that every required handle is present.
func (h Handles) Validate() error {
	switch {
	case h.Trigger == nil:
		return fmt.Errorf("trigger: %w", domain.ErrMissingHandle)
	case h.Gallery == nil:
		return fmt.Errorf("gallery: %w", domain.ErrMissingHandle)
	case h.Modal == nil:
		return fmt.Errorf("modal: %w", domain.ErrMissingHandle)
	}
	return nil
}

// App holds the wired components.
type App struct {
	Controller *feed.Controller
	Renderer   *gallery.Renderer
	Modal      *modal.Modal
	Facts      *facts.Picker

	logger *slog.Logger
}

// New wires the components to handles.
func New(cfg *config.Config, handles Handles, fetcher feed.Fetcher, logger *slog.Logger) (*App, error) {
	if err := handles.Validate(); err != nil {
		return nil, err
	}

	m := modal.New(handles.Modal)
	renderer := gallery.NewRenderer(handles.Gallery, m)

	return &App{
		Controller: feed.NewController(fetcher, renderer, handles.Trigger, logger),
		Renderer:   renderer,
		Modal:      m,
		Facts: facts.NewPicker(facts.Space, handles.Fact, facts.Config{
			Seed:   cfg.Facts.Seed,
			Prefix: cfg.Facts.Prefix,
		}),
		logger: logger,
	}, nil
}

// Start shows the first fact.
func (a *App) Start() {
	if text, ok := a.Facts.ShowRandomFact(); ok {
		a.logger.Debug("fact shown", "text", text)
	}
}

// Fetch runs one fetch-and-render cycle.
func (a *App) Fetch(ctx context.Context) error {
	return a.Controller.FetchAndRender(ctx)
}

// OpenCard opens the modal for the card at index.
func (a *App) OpenCard(index int) error {
	return a.Renderer.Click(index)
}

// NextFact shows a new fact.
func (a *App) NextFact() (string, bool) {
	return a.Facts.ShowRandomFact()
}
