package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iconidentify/spacegallery/internal/config"
	"github.com/iconidentify/spacegallery/internal/domain"
)

// HTTPFetcher implements Fetcher with a single uncached GET.
type HTTPFetcher struct {
	client       *http.Client
	url          string
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// NewHTTPFetcher creates a new HTTP feed fetcher.
func NewHTTPFetcher(cfg config.FeedConfig) *HTTPFetcher {
	return &HTTPFetcher{
		// Timeout 0 leaves the request unbounded
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		url:          cfg.URL,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		logger:       slog.Default(),
	}
}

// SetLogger sets the logger used for request diagnostics.
func (f *HTTPFetcher) SetLogger(logger *slog.Logger) {
	f.logger = logger
}

// URL returns the feed address.
func (f *HTTPFetcher) URL() string {
	return f.url
}

// Fetch issues one GET with caching disabled and decodes the JSON array.
// A non-success status yields *domain.NetworkError; a body that cannot
// be decoded yields *domain.ParseError.
func (f *HTTPFetcher) Fetch(ctx context.Context) ([]domain.MediaItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &domain.NetworkError{StatusCode: resp.StatusCode}
	}

	body := io.Reader(resp.Body)
	if f.maxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBodyBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if f.maxBodyBytes > 0 && int64(len(data)) > f.maxBodyBytes {
		return nil, domain.NewParseError(fmt.Errorf("feed larger than %d bytes", f.maxBodyBytes))
	}

	items, err := decodeFeed(data)
	if err != nil {
		return nil, domain.NewParseError(err)
	}

	f.logger.Debug("feed fetched",
		"url", f.url,
		"status", resp.StatusCode,
		"bytes", len(data),
		"records", len(items),
	)

	return items, nil
}

// decodeFeed decodes a JSON array of records. A null feed or a null
// record is an error, not an empty gallery.
func decodeFeed(data []byte) ([]domain.MediaItem, error) {
	var records []*domain.MediaItem
	if err := json.Unmarshal(data, &records); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			err = fmt.Errorf("feed is not a JSON array of records: %w", err)
		}
		return nil, err
	}
	if records == nil {
		return nil, errors.New("feed is null, want a JSON array of records")
	}

	items := make([]domain.MediaItem, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
		items[i] = *rec
	}
	return items, nil
}
