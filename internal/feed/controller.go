// Package feed fetches the media feed and drives the gallery render.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/gallery"
)

// Controller runs fetch-and-render cycles, at most one at a time.
type Controller struct {
	fetcher  Fetcher
	renderer *gallery.Renderer
	trigger  Trigger
	logger   *slog.Logger

	mu       sync.Mutex
	inFlight bool
}

// NewController creates a new fetch controller and publishes the idle
// trigger state.
func NewController(fetcher Fetcher, renderer *gallery.Renderer, trigger Trigger, logger *slog.Logger) *Controller {
	c := &Controller{
		fetcher:  fetcher,
		renderer: renderer,
		trigger:  trigger,
		logger:   logger,
	}
	c.trigger.SetTrigger(domain.IdleTrigger())
	return c
}

// InFlight reports whether a fetch is running.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// FetchAndRender fetches the feed, keeps the renderable items and renders
// them. Failures are shown as the error placeholder and returned. While a
// fetch runs the trigger is disabled and further calls return
// domain.ErrFetchInFlight without side effects. There is no retry.
func (c *Controller) FetchAndRender(ctx context.Context) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return domain.ErrFetchInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	fetchID := "fetch_" + uuid.New().String()[:8]
	start := time.Now()

	c.trigger.SetTrigger(domain.TriggerView{Label: domain.TriggerLabelLoading, Disabled: true})
	c.renderer.ShowLoading()

	// Idle is published before the flag clears.
	defer func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.trigger.SetTrigger(domain.IdleTrigger())
		c.inFlight = false
	}()

	items, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.renderer.ShowError(err)
		c.logFailure(fetchID, err, time.Since(start))
		return err
	}

	usable := domain.FilterRenderable(items)
	c.renderer.Render(usable)

	c.logger.Info("gallery rendered",
		"fetch_id", fetchID,
		"records", len(items),
		"cards", len(usable),
		"duration", time.Since(start),
	)
	return nil
}

func (c *Controller) logFailure(fetchID string, err error, elapsed time.Duration) {
	attrs := []any{"fetch_id", fetchID, "error", err, "duration", elapsed}

	var netErr *domain.NetworkError
	var parseErr *domain.ParseError
	switch {
	case errors.As(err, &netErr):
		attrs = append(attrs, "kind", "network", "status", netErr.StatusCode)
	case errors.As(err, &parseErr):
		attrs = append(attrs, "kind", "parse")
	default:
		attrs = append(attrs, "kind", "runtime")
	}
	c.logger.Warn("feed fetch failed", attrs...)
}
