package jsoncfg

import (
	"encoding/json"
	"fmt"

	"addesigner/internal/domain"
)

// DesignPatch is the JSON contract for partial design updates. Nil fields are
// left untouched; an empty string is a valid value for the text fields.
type DesignPatch struct {
	Title      *string `json:"title,omitempty"`
	Subtitle   *string `json:"subtitle,omitempty"`
	CTALabel   *string `json:"cta,omitempty"`
	Background *string `json:"background_color,omitempty"`
	Accent     *string `json:"accent_color,omitempty"`
	Text       *string `json:"text_color,omitempty"`
	Font       *string `json:"font,omitempty"`
	Size       *string `json:"size,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p DesignPatch) Empty() bool {
	return p.Title == nil && p.Subtitle == nil && p.CTALabel == nil &&
		p.Background == nil && p.Accent == nil && p.Text == nil &&
		p.Font == nil && p.Size == nil
}

// Apply validates every field first and only then mutates s, so a rejected
// patch leaves the design unchanged.
func (p DesignPatch) Apply(s *domain.DesignState) error {
	next := *s
	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Subtitle != nil {
		next.Subtitle = *p.Subtitle
	}
	if p.CTALabel != nil {
		next.CTALabel = *p.CTALabel
	}
	colors := []struct {
		name string
		in   *string
		out  *domain.RGB
	}{
		{"background_color", p.Background, &next.Background},
		{"accent_color", p.Accent, &next.Accent},
		{"text_color", p.Text, &next.Text},
	}
	for _, c := range colors {
		if c.in == nil {
			continue
		}
		parsed, err := domain.ParseHex(*c.in)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		*c.out = parsed
	}
	if p.Font != nil {
		f, err := domain.LookupFont(*p.Font)
		if err != nil {
			return fmt.Errorf("font: %w", err)
		}
		next.Font = f
	}
	if p.Size != nil {
		preset, err := domain.LookupPreset(*p.Size)
		if err != nil {
			return fmt.Errorf("size: %w", err)
		}
		next.Size = preset
	}
	*s = next
	return nil
}

// DesignView is the JSON representation of a design state.
type DesignView struct {
	Title           string            `json:"title"`
	Subtitle        string            `json:"subtitle"`
	CTALabel        string            `json:"cta"`
	Background      domain.RGB        `json:"background_color"`
	Accent          domain.RGB        `json:"accent_color"`
	Text            domain.RGB        `json:"text_color"`
	Font            string            `json:"font"`
	Size            domain.SizePreset `json:"size"`
	BackgroundImage *ImageInfo        `json:"background_image,omitempty"`
}

type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewOf converts a design state into its JSON view.
func ViewOf(s domain.DesignState) DesignView {
	v := DesignView{
		Title:      s.Title,
		Subtitle:   s.Subtitle,
		CTALabel:   s.CTALabel,
		Background: s.Background,
		Accent:     s.Accent,
		Text:       s.Text,
		Font:       s.Font.Key,
		Size:       s.Size,
	}
	if s.HasImage() {
		b := s.BackgroundImage.Bounds()
		v.BackgroundImage = &ImageInfo{Width: b.Dx(), Height: b.Dy()}
	}
	return v
}

func MustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("json marshal: %w", err))
	}
	return b
}
