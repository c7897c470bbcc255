// Package screen holds the UI state rendered by the HTTP frontend. It
// implements every handle the core writes to and serves consistent
// snapshots to concurrent requests.
package screen

import (
	"sync"

	"github.com/iconidentify/spacegallery/internal/domain"
)

// State is a snapshot of everything on screen.
type State struct {
	Trigger  domain.TriggerView `json:"trigger"`
	Gallery  domain.GalleryView `json:"gallery"`
	Modal    domain.ModalView   `json:"modal"`
	FactText string             `json:"fact"`
}

// Screen is a mutex-guarded State.
type Screen struct {
	mu    sync.RWMutex
	state State
}

// New creates a Screen with an idle trigger and an empty gallery.
func New() *Screen {
	return &Screen{
		state: State{Trigger: domain.IdleTrigger()},
	}
}

// SetTrigger implements feed.Trigger.
func (s *Screen) SetTrigger(view domain.TriggerView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Trigger = view
}

// ShowGallery implements gallery.Surface.
func (s *Screen) ShowGallery(view domain.GalleryView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	view.Cards = append([]domain.Card(nil), view.Cards...)
	s.state.Gallery = view
}

// ShowModal implements modal.Surface.
func (s *Screen) ShowModal(view domain.ModalView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Modal = view
}

// SetFactText implements facts.Display.
func (s *Screen) SetFactText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FactText = text
}

// Snapshot returns a copy of the current state.
func (s *Screen) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.Gallery.Cards = append([]domain.Card(nil), s.state.Gallery.Cards...)
	return st
}
