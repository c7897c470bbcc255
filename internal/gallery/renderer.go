// Package gallery turns feed items into card view models and routes card
// clicks to the detail modal.
package gallery

import (
	"fmt"
	"sync"

	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/media"
)

// Labels shown on gallery tiles.
const (
	VideoTitlePrefix = "📺 "
	VideoPlaceholder = "🎬 Video"
)

// Surface displays a gallery view.
type Surface interface {
	ShowGallery(view domain.GalleryView)
}

// Opener opens the detail view for one item.
type Opener interface {
	Open(item domain.MediaItem)
}

// Renderer renders items to a Surface and keeps the rendered slice so a
// card index always resolves to the item it was built from.
type Renderer struct {
	surface Surface
	opener  Opener

	mu    sync.RWMutex
	items []domain.MediaItem
}

// NewRenderer creates a new Renderer.
func NewRenderer(surface Surface, opener Opener) *Renderer {
	return &Renderer{
		surface: surface,
		opener:  opener,
	}
}

// Render replaces the gallery with one card per item, in order. An empty
// slice renders the "no results" placeholder.
func (r *Renderer) Render(items []domain.MediaItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append([]domain.MediaItem(nil), items...)
	if len(items) == 0 {
		r.surface.ShowGallery(domain.GalleryView{Placeholder: EmptyPlaceholder()})
		return
	}

	cards := make([]domain.Card, len(items))
	for i, item := range items {
		cards[i] = BuildCard(i, item)
	}
	r.surface.ShowGallery(domain.GalleryView{Cards: cards})
}

// ShowLoading replaces the gallery with the loading placeholder.
func (r *Renderer) ShowLoading() {
	r.showPlaceholder(LoadingPlaceholder(), true)
}

// ShowError replaces the gallery with the error placeholder for err.
func (r *Renderer) ShowError(err error) {
	r.showPlaceholder(ErrorPlaceholder(err), false)
}

func (r *Renderer) showPlaceholder(p *domain.Placeholder, busy bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	r.surface.ShowGallery(domain.GalleryView{Placeholder: p, Busy: busy})
}

// Item returns the item behind the card at index.
func (r *Renderer) Item(index int) (domain.MediaItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.items) {
		return domain.MediaItem{}, fmt.Errorf("card %d: %w", index, domain.ErrCardNotFound)
	}
	return r.items[index], nil
}

// Len returns the number of cards currently rendered.
func (r *Renderer) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Click opens the modal for the card at index. A click on the card's
// link and a click elsewhere on the card are the same event: the modal
// opens once and no navigation happens.
func (r *Renderer) Click(index int) error {
	item, err := r.Item(index)
	if err != nil {
		return err
	}
	r.opener.Open(item)
	return nil
}

// BuildCard builds the view model for item at position index.
func BuildCard(index int, item domain.MediaItem) domain.Card {
	title := item.DisplayTitle()
	card := domain.Card{
		Index: index,
		Href:  item.URL,
		Title: title,
		Alt:   title,
		Date:  item.Date,
	}

	if item.IsVideo() {
		card.MediaType = domain.MediaTypeVideo
		card.Title = VideoTitlePrefix + title
		if thumb, ok := media.ThumbnailFor(item.URL); ok {
			card.ImageSrc = thumb
		} else {
			card.VideoLabel = VideoPlaceholder
		}
		return card
	}

	card.MediaType = domain.MediaTypeImage
	card.ImageSrc = item.URL
	return card
}
