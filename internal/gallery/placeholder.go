package gallery

import "github.com/iconidentify/spacegallery/internal/domain"

// LoadingPlaceholder is shown while the feed is being fetched.
func LoadingPlaceholder() *domain.Placeholder {
	return &domain.Placeholder{
		Kind:    domain.PlaceholderLoading,
		Icon:    "🔄",
		Message: "Loading space photos…",
	}
}

// EmptyPlaceholder is shown when the feed has no usable items.
func EmptyPlaceholder() *domain.Placeholder {
	return &domain.Placeholder{
		Kind:    domain.PlaceholderEmpty,
		Icon:    "🛰️",
		Message: "No images found. Please try again later.",
	}
}

// ErrorPlaceholder is shown when a fetch fails; Detail carries err's text.
func ErrorPlaceholder(err error) *domain.Placeholder {
	p := &domain.Placeholder{
		Kind:    domain.PlaceholderError,
		Icon:    "⚠️",
		Message: "Sorry, something went wrong. Please try again.",
	}
	if err != nil {
		p.Detail = err.Error()
	}
	return p
}
