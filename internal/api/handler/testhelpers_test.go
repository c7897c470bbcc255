package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iconidentify/spacegallery/internal/app"
	"github.com/iconidentify/spacegallery/internal/config"
	"github.com/iconidentify/spacegallery/internal/domain"
	"github.com/iconidentify/spacegallery/internal/screen"
)

// testLogger returns a silent logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubFetcher is a test implementation of feed.Fetcher.
type stubFetcher struct {
	items []domain.MediaItem
	err   error
	block chan struct{}
}

func (f *stubFetcher) Fetch(ctx context.Context) ([]domain.MediaItem, error) {
	if f.block != nil {
		<-f.block
	}
	return f.items, f.err
}

func sampleFeed() []domain.MediaItem {
	return []domain.MediaItem{
		{MediaType: domain.MediaTypeImage, URL: "https://apod.example/a.jpg", HDURL: "https://apod.example/a_hd.jpg", Title: "Andromeda", Date: "2024-01-01", Explanation: "A galaxy."},
		{MediaType: domain.MediaTypeOther, URL: "https://apod.example/b"},
		{MediaType: domain.MediaTypeVideo, URL: "https://www.youtube.com/watch?v=abc123", Title: "Launch", Date: "2024-01-02"},
	}
}

type testEnv struct {
	app     *app.App
	screen  *screen.Screen
	gallery *GalleryHandler
	ui      *UIHandler
	router  *chi.Mux
}

func newTestEnv(t *testing.T, fetcher *stubFetcher) *testEnv {
	t.Helper()

	s := screen.New()
	a, err := app.New(&config.Config{Facts: config.FactsConfig{Seed: 1}}, app.Handles{
		Trigger: s,
		Gallery: s,
		Modal:   s,
		Fact:    s,
	}, fetcher, testLogger())
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	a.Start()

	env := &testEnv{
		app:     a,
		screen:  s,
		gallery: NewGalleryHandler(a, s, testLogger()),
		ui:      NewUIHandler(s, testLogger()),
	}

	// chi resolves {index} only through a router
	r := chi.NewRouter()
	r.Get("/cards/{index}", env.gallery.CardPage)
	r.Post("/api/v1/cards/{index}/open", env.gallery.OpenCard)
	env.router = r

	return env
}
