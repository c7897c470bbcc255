// Package media classifies feed URLs that point at the supported video
// host and derives thumbnail and embed addresses from them.
package media

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	hostMain      = "youtube.com"
	hostPrivacy   = "youtube-nocookie.com"
	hostShortLink = "youtu.be"

	thumbnailPattern = "https://img.youtube.com/vi/%s/hqdefault.jpg"
	embedBase        = "https://www.youtube.com/embed/"
	embedParams      = "?autoplay=1&rel=0"
)

// parseHost returns the lower-cased host and the parsed URL, or ok=false
// when the string is not an absolute URL.
func parseHost(rawURL string) (string, *url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", nil, false
	}
	return strings.ToLower(u.Hostname()), u, true
}

func hostMatches(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// IsRecognizedVideoHost reports whether the URL's host belongs to the
// supported video platform, including its short-link and privacy domains.
func IsRecognizedVideoHost(rawURL string) bool {
	host, _, ok := parseHost(rawURL)
	if !ok {
		return false
	}
	return hostMatches(host, hostMain) ||
		hostMatches(host, hostPrivacy) ||
		hostMatches(host, hostShortLink)
}

// ExtractVideoID returns the platform video ID encoded in the URL.
//
// Short links carry the ID as the first path segment. On the main and
// privacy domains a "v" query parameter wins; otherwise /embed/<id> and
// /shorts/<id> paths are understood. Any other shape yields no ID.
func ExtractVideoID(rawURL string) (string, bool) {
	host, u, ok := parseHost(rawURL)
	if !ok {
		return "", false
	}

	if hostMatches(host, hostShortLink) {
		return firstSegment(u.Path)
	}

	if !hostMatches(host, hostMain) && !hostMatches(host, hostPrivacy) {
		return "", false
	}

	if v := u.Query().Get("v"); v != "" {
		return v, true
	}
	for _, prefix := range []string{"/embed/", "/shorts/"} {
		if rest, found := strings.CutPrefix(u.Path, prefix); found {
			id, _, _ := strings.Cut(rest, "/")
			return id, id != ""
		}
	}
	return "", false
}

func firstSegment(path string) (string, bool) {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg, true
		}
	}
	return "", false
}

// ThumbnailURL builds the fixed-pattern thumbnail address for a video ID.
func ThumbnailURL(id string) string {
	return fmt.Sprintf(thumbnailPattern, url.PathEscape(id))
}

// ThumbnailFor returns the thumbnail for a feed URL when the host is
// recognized and an ID can be derived.
func ThumbnailFor(rawURL string) (string, bool) {
	if !IsRecognizedVideoHost(rawURL) {
		return "", false
	}
	id, ok := ExtractVideoID(rawURL)
	if !ok {
		return "", false
	}
	return ThumbnailURL(id), true
}

// IsEmbeddable is the modal's looser check: any URL mentioning the main
// or short-link domain is a candidate for an inline player.
func IsEmbeddable(rawURL string) bool {
	return strings.Contains(rawURL, hostMain) || strings.Contains(rawURL, hostShortLink)
}

// EmbedURL builds the inline player address with autoplay on and
// related content off.
func EmbedURL(id string) string {
	return embedBase + url.PathEscape(id) + embedParams
}
