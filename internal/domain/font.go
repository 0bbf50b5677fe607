package domain

import (
	"fmt"
	"strings"
)

// FontWeight follows the CSS numeric weight scale.
type FontWeight int

const (
	WeightRegular FontWeight = 400
	WeightMedium  FontWeight = 500
	WeightBold    FontWeight = 700
)

func (w FontWeight) String() string {
	switch w {
	case WeightBold:
		return "Bold"
	case WeightMedium:
		return "Medium"
	default:
		return "Regular"
	}
}

// FontFamily is a selectable typeface together with the families tried after it.
type FontFamily struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Fallback []string `json:"fallback"`
}

// BuiltinFamily is always resolvable; it is the tail of every fallback chain.
const BuiltinFamily = "Go"

var (
	FontInter   = FontFamily{Key: "inter", Name: "Inter", Fallback: []string{BuiltinFamily}}
	FontPoppins = FontFamily{Key: "poppins", Name: "Poppins", Fallback: []string{"Inter", BuiltinFamily}}
	FontOswald  = FontFamily{Key: "oswald", Name: "Oswald", Fallback: []string{"Inter", BuiltinFamily}}
)

func FontFamilies() []FontFamily {
	return []FontFamily{FontInter, FontPoppins, FontOswald}
}

// Chain lists the family itself followed by its fallbacks.
func (f FontFamily) Chain() []string {
	return append([]string{f.Name}, f.Fallback...)
}

// LookupFont resolves a family by key or display name, case-insensitively.
func LookupFont(v string) (FontFamily, error) {
	v = strings.TrimSpace(v)
	for _, f := range FontFamilies() {
		if strings.EqualFold(v, f.Key) || strings.EqualFold(v, f.Name) {
			return f, nil
		}
	}
	return FontFamily{}, fmt.Errorf("%w: %q", ErrUnknownFont, v)
}
