package domain

// MediaType identifies what kind of asset a feed item describes.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeOther MediaType = "other"
)

// Normalize maps unknown or empty media types to MediaTypeOther.
func (t MediaType) Normalize() MediaType {
	switch t {
	case MediaTypeImage, MediaTypeVideo:
		return t
	default:
		return MediaTypeOther
	}
}

// Default labels used when a feed item omits optional fields.
const (
	DefaultTitle       = "Untitled"
	DefaultExplanation = "No description available."
)

// MediaItem is one record of the astronomy feed. It is read-only once
// decoded; the gallery and the modal only ever read it.
type MediaItem struct {
	MediaType   MediaType `json:"media_type"`
	URL         string    `json:"url"`
	HDURL       string    `json:"hdurl,omitempty"`
	Title       string    `json:"title,omitempty"`
	Date        string    `json:"date,omitempty"`
	Explanation string    `json:"explanation,omitempty"`
}

// IsVideo reports whether the item is a video entry.
func (m MediaItem) IsVideo() bool {
	return m.MediaType.Normalize() == MediaTypeVideo
}

// Renderable reports whether the item can be shown in the gallery:
// an image or a video with a non-empty url.
func (m MediaItem) Renderable() bool {
	return m.MediaType.Normalize() != MediaTypeOther && m.URL != ""
}

// DisplayTitle returns the title or the default label.
func (m MediaItem) DisplayTitle() string {
	if m.Title == "" {
		return DefaultTitle
	}
	return m.Title
}

// DisplayExplanation returns the explanation or the default sentence.
func (m MediaItem) DisplayExplanation() string {
	if m.Explanation == "" {
		return DefaultExplanation
	}
	return m.Explanation
}

// FullResolutionURL returns hdurl when present, else url.
func (m MediaItem) FullResolutionURL() string {
	if m.HDURL != "" {
		return m.HDURL
	}
	return m.URL
}

// FilterRenderable keeps the renderable items in their original order.
func FilterRenderable(items []MediaItem) []MediaItem {
	out := make([]MediaItem, 0, len(items))
	for _, item := range items {
		if item.Renderable() {
			out = append(out, item)
		}
	}
	return out
}
