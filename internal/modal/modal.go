// Package modal implements the detail view shown when a gallery card is
// activated. It has two states, closed and open.
package modal

import (
	"sync"

	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/media"
)

// Embedded player attributes.
const (
	EmbedAllow          = "accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share"
	EmbedReferrerPolicy = "strict-origin-when-cross-origin"
	ExternalLinkLabel   = "Open video in new tab"
)

// KeyEscape is the key name that closes an open modal.
const KeyEscape = "Escape"

// Surface displays the modal's visual state.
type Surface interface {
	ShowModal(view domain.ModalView)
}

// CloseTrigger identifies what asked the modal to close.
type CloseTrigger string

const (
	CloseButton   CloseTrigger = "button"
	CloseEscape   CloseTrigger = "escape"
	CloseBackdrop CloseTrigger = "backdrop"
)

// ParseCloseTrigger maps a trigger name to a CloseTrigger. Unknown names
// fall back to CloseButton.
func ParseCloseTrigger(s string) CloseTrigger {
	switch CloseTrigger(s) {
	case CloseEscape:
		return CloseEscape
	case CloseBackdrop:
		return CloseBackdrop
	default:
		return CloseButton
	}
}

// ClickTarget is the element a pointer click landed on while open.
type ClickTarget int

const (
	// TargetBackdrop is the overlay around the content area.
	TargetBackdrop ClickTarget = iota
	// TargetContent is anything inside the content area.
	TargetContent
)

// Modal is the detail view state machine. State changes are published
// to the surface while the lock is held, so the surface always ends on
// the latest state.
type Modal struct {
	surface Surface

	mu       sync.Mutex
	view     domain.ModalView
	closedBy CloseTrigger
}

// New creates a closed modal and publishes its initial state.
func New(surface Surface) *Modal {
	m := &Modal{surface: surface}
	m.surface.ShowModal(m.view)
	return m
}

// Open populates the modal from item and shows it. Opening an open
// modal replaces its content.
func (m *Modal) Open(item domain.MediaItem) {
	view := Populate(item)
	view.Open = true
	view.ScrollLocked = true
	view.Focus = domain.FocusClose

	m.mu.Lock()
	defer m.mu.Unlock()
	m.view = view
	m.surface.ShowModal(view)
}

// Close hides the modal, releases the image source and removes any
// embedded player. It reports whether the modal was open.
func (m *Modal) Close(trigger CloseTrigger) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.view.Open {
		return false
	}
	m.view.Open = false
	m.view.ScrollLocked = false
	m.view.Focus = domain.FocusNone
	m.view.Image.Src = ""
	m.view.Video = nil
	m.closedBy = trigger

	m.surface.ShowModal(m.view)
	return true
}

// HandleKey closes the modal on Escape while open.
func (m *Modal) HandleKey(key string) bool {
	if key != KeyEscape {
		return false
	}
	return m.Close(CloseEscape)
}

// HandleClick closes the modal when the click landed on the backdrop.
func (m *Modal) HandleClick(target ClickTarget) bool {
	if target != TargetBackdrop {
		return false
	}
	return m.Close(CloseBackdrop)
}

// IsOpen reports whether the modal is open.
func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view.Open
}

// ClosedBy returns the trigger of the last effective close.
func (m *Modal) ClosedBy() CloseTrigger {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closedBy
}

// View returns a copy of the current visual state.
func (m *Modal) View() domain.ModalView {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// Populate builds the content fields for item without touching the
// open/scroll/focus state.
func Populate(item domain.MediaItem) domain.ModalView {
	title := item.DisplayTitle()
	view := domain.ModalView{
		Title:       title,
		Date:        item.Date,
		Description: item.DisplayExplanation(),
	}

	if item.IsVideo() {
		if embed, ok := embedFor(item.URL, title); ok {
			view.Video = embed
		} else {
			view.Link = &domain.ExternalLink{Href: item.URL, Label: ExternalLinkLabel}
		}
		return view
	}

	view.Image = domain.ImageView{
		Src:     item.FullResolutionURL(),
		Alt:     title,
		Visible: true,
	}
	return view
}

func embedFor(rawURL, title string) (*domain.Embed, bool) {
	if !media.IsEmbeddable(rawURL) {
		return nil, false
	}
	id, ok := media.ExtractVideoID(rawURL)
	if !ok {
		return nil, false
	}
	return &domain.Embed{
		Src:             media.EmbedURL(id),
		Title:           title,
		Allow:           EmbedAllow,
		ReferrerPolicy:  EmbedReferrerPolicy,
		AllowFullscreen: true,
	}, true
}
