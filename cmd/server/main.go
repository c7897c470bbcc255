package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iconidentify/spacegallery/internal/api"
	"github.com/iconidentify/spacegallery/internal/api/handler"
	"github.com/iconidentify/spacegallery/internal/app"
	"github.com/iconidentify/spacegallery/internal/config"
	"github.com/iconidentify/spacegallery/internal/feed"
	"github.com/iconidentify/spacegallery/internal/screen"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Path to config file")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("spacegallery %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	logger.Info("starting spacegallery",
		"version", Version,
		"build_time", BuildTime,
		"feed_url", cfg.Feed.URL,
	)

	// Initialize dependencies
	fetcher := feed.NewHTTPFetcher(cfg.Feed)
	fetcher.SetLogger(logger)

	s := screen.New()
	gallery, err := app.New(cfg, app.Handles{
		Trigger: s,
		Gallery: s,
		Modal:   s,
		Fact:    s,
	}, fetcher, logger)
	if err != nil {
		logger.Error("failed to initialize gallery", "error", err)
		os.Exit(1)
	}
	gallery.Start()

	// Initialize handlers
	galleryHandler := handler.NewGalleryHandler(gallery, s, logger)
	healthHandler := handler.NewHealthHandler(gallery.Controller, gallery.Renderer, cfg.Feed.URL)
	uiHandler := handler.NewUIHandler(s, logger)

	// Setup router
	router := api.NewRouter(galleryHandler, healthHandler, uiHandler)

	// Setup HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
