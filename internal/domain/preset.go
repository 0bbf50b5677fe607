package domain

import (
	"fmt"
	"strings"
)

// SizePreset is one of the fixed output resolutions an ad can be exported at.
type SizePreset struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

var (
	PresetInstagram = SizePreset{Key: "instagram", Label: "Instagram", Width: 1200, Height: 1200}
	PresetStory     = SizePreset{Key: "story", Label: "Story", Width: 1080, Height: 1920}
	PresetFacebook  = SizePreset{Key: "facebook", Label: "Facebook", Width: 1200, Height: 628}
	PresetYouTube   = SizePreset{Key: "youtube", Label: "YouTube", Width: 1600, Height: 900}
)

// Presets returns the presets in display order.
func Presets() []SizePreset {
	return []SizePreset{PresetInstagram, PresetStory, PresetFacebook, PresetYouTube}
}

// Dimensions formats the preset as "WxH".
func (p SizePreset) Dimensions() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// LookupPreset resolves a preset by key ("facebook") or by dimensions ("1200x628").
func LookupPreset(v string) (SizePreset, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, p := range Presets() {
		if v == p.Key || v == p.Dimensions() {
			return p, nil
		}
	}
	return SizePreset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, v)
}
