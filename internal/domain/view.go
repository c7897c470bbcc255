package domain

// PlaceholderKind identifies which informational tile is shown in place
// of the gallery cards.
type PlaceholderKind string

const (
	PlaceholderLoading PlaceholderKind = "loading"
	PlaceholderEmpty   PlaceholderKind = "empty"
	PlaceholderError   PlaceholderKind = "error"
)

// Placeholder is a static tile shown for loading, empty and error states.
type Placeholder struct {
	Kind    PlaceholderKind `json:"kind"`
	Icon    string          `json:"icon"`
	Message string          `json:"message"`
	Detail  string          `json:"detail,omitempty"`
}

// Card is the view model of one gallery tile. Index is the position of
// the source item in the slice that was rendered.
type Card struct {
	Index     int       `json:"index"`
	MediaType MediaType `json:"media_type"`
	Href      string    `json:"href"`
	Title     string    `json:"title"`
	Alt       string    `json:"alt"`
	Date      string    `json:"date"`

	// ImageSrc is set for image cards and for video cards with a thumbnail.
	ImageSrc string `json:"image_src,omitempty"`

	// VideoLabel is set for video cards without a thumbnail.
	VideoLabel string `json:"video_label,omitempty"`
}

// HasImage reports whether the card shows an image or thumbnail.
func (c Card) HasImage() bool {
	return c.ImageSrc != ""
}

// GalleryView is either a list of cards or a single placeholder.
type GalleryView struct {
	Cards       []Card       `json:"cards,omitempty"`
	Placeholder *Placeholder `json:"placeholder,omitempty"`
	Busy        bool         `json:"busy"`
}

// Embed describes an inline video player.
type Embed struct {
	Src             string `json:"src"`
	Title           string `json:"title"`
	Allow           string `json:"allow"`
	ReferrerPolicy  string `json:"referrer_policy"`
	AllowFullscreen bool   `json:"allow_fullscreen"`
}

// ImageView is the modal's image element.
type ImageView struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Visible bool   `json:"visible"`
}

// ExternalLink is a plain link appended to the modal description when a
// video cannot be embedded.
type ExternalLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Focus targets inside the modal.
const (
	FocusNone  = ""
	FocusClose = "close"
)

// ModalView is the full visual state of the detail modal.
type ModalView struct {
	Open         bool          `json:"open"`
	ScrollLocked bool          `json:"scroll_locked"`
	Focus        string        `json:"focus,omitempty"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`
	Description  string        `json:"description"`
	Link         *ExternalLink `json:"link,omitempty"`
	Image        ImageView     `json:"image"`
	Video        *Embed        `json:"video,omitempty"`
}

// Trigger button labels.
const (
	TriggerLabelIdle    = "Get Space Images"
	TriggerLabelLoading = "Loading..."
)

// TriggerView is the state of the fetch trigger control.
type TriggerView struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// IdleTrigger returns the trigger state when no fetch is running.
func IdleTrigger() TriggerView {
	return TriggerView{Label: TriggerLabelIdle}
}
