package domain

import "image"

// DesignState is everything the composer needs to draw one ad.
type DesignState struct {
	Title      string
	Subtitle   string
	CTALabel   string
	Background RGB
	Accent     RGB
	Text       RGB
	Font       FontFamily
	Size       SizePreset
	// BackgroundImage is nil when no image is set or the upload failed to decode.
	BackgroundImage image.Image
}

const (
	DefaultTitle    = "Transform Your Brand"
	DefaultSubtitle = "Create stunning ads in seconds — free"
	DefaultCTALabel = "Get Started"
)

// NewDesignState returns the state a fresh editing session starts with.
func NewDesignState() DesignState {
	return DesignState{
		Title:      DefaultTitle,
		Subtitle:   DefaultSubtitle,
		CTALabel:   DefaultCTALabel,
		Background: MustHex("#0b1020"),
		Accent:     MustHex("#3b82f6"),
		Text:       MustHex("#ffffff"),
		Font:       FontInter,
		Size:       PresetInstagram,
	}
}

// HasImage reports whether a decoded background image with a usable area is set.
func (s DesignState) HasImage() bool {
	if s.BackgroundImage == nil {
		return false
	}
	b := s.BackgroundImage.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}
