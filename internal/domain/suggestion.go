package domain

import (
	"fmt"
	"strings"
)

// Category is the kind of marketing copy a suggestion belongs to.
type Category string

const (
	CategoryHeadline    Category = "headline"
	CategoryDescription Category = "description"
	CategoryCTA         Category = "cta"
)

// Categories lists every category in generation order.
func Categories() []Category {
	return []Category{CategoryHeadline, CategoryDescription, CategoryCTA}
}

// MaxSuggestions is the per-category cap applied after parsing.
func (c Category) MaxSuggestions() int {
	switch c {
	case CategoryDescription:
		return 6
	case CategoryHeadline, CategoryCTA:
		return 8
	default:
		return 0
	}
}

// ParseCategory accepts the category name plus the plural and long forms.
func ParseCategory(v string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "headline", "headlines", "title":
		return CategoryHeadline, nil
	case "description", "descriptions", "subtitle":
		return CategoryDescription, nil
	case "cta", "ctas", "call-to-action":
		return CategoryCTA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, v)
}

// ApplyTo copies text into the design field the category feeds.
func (c Category) ApplyTo(s *DesignState, text string) error {
	switch c {
	case CategoryHeadline:
		s.Title = text
	case CategoryDescription:
		s.Subtitle = text
	case CategoryCTA:
		s.CTALabel = text
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return nil
}

// Default product pitch and tone offered to a fresh suggestion form.
const (
	DefaultProduct = "All-in-one AI-powered design tool for small businesses."
	DefaultTone    = "Friendly, bold, benefit-driven, concise"
)
