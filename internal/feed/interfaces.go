package feed

import (
	"context"

	"github.com/iconidentify/spacegallery/internal/domain"
)

// Fetcher retrieves the raw media feed.
type Fetcher interface {
	// Fetch returns every record of the feed, unfiltered.
	Fetch(ctx context.Context) ([]domain.MediaItem, error)
}

// Trigger is the control that starts a fetch.
type Trigger interface {
	SetTrigger(view domain.TriggerView)
}
