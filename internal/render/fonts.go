package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"addesigner/internal/domain"
	"addesigner/internal/infra"
)

// FontOptions configures where non-builtin families are loaded from.
type FontOptions struct {
	// Dir holds files named "{Family}-{Weight}.ttf", e.g. "Inter-Bold.ttf".
	Dir    string
	Logger *infra.Logger
}

type fontKey struct {
	family string
	weight domain.FontWeight
}

// FontRegistry resolves a family and weight to a parsed TrueType font by
// walking the family's fallback chain. Parsed fonts are immutable and shared;
// faces are not, so every call to Face returns a new one.
type FontRegistry struct {
	dir    string
	logger *infra.Logger

	mu       sync.Mutex
	parsed   map[fontKey]*truetype.Font
	resolved map[fontKey]*truetype.Font
}

func NewFontRegistry(opts FontOptions) *FontRegistry {
	return &FontRegistry{
		dir:      opts.Dir,
		logger:   opts.Logger,
		parsed:   make(map[fontKey]*truetype.Font),
		resolved: make(map[fontKey]*truetype.Font),
	}
}

// Face builds a face of the given pixel size for the first family in the
// chain that can be loaded. The builtin Go family terminates every chain.
func (r *FontRegistry) Face(family domain.FontFamily, weight domain.FontWeight, size float64) font.Face {
	f := r.resolve(family, weight)
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (r *FontRegistry) resolve(family domain.FontFamily, weight domain.FontWeight) *truetype.Font {
	key := fontKey{family: family.Key, weight: weight}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.resolved[key]; ok {
		return f
	}
	for _, name := range family.Chain() {
		f, err := r.load(name, weight)
		if err != nil {
			continue
		}
		if name != family.Name && r.logger != nil {
			r.logger.Debug().Str("family", family.Name).Str("weight", weight.String()).Str("using", name).Msg("font fallback")
		}
		r.resolved[key] = f
		return f
	}
	// The chain always ends in the builtin family, which cannot fail to parse.
	f, _ := r.load(domain.BuiltinFamily, weight)
	r.resolved[key] = f
	return f
}

func (r *FontRegistry) load(name string, weight domain.FontWeight) (*truetype.Font, error) {
	key := fontKey{family: name, weight: weight}
	if f, ok := r.parsed[key]; ok {
		return f, nil
	}
	var data []byte
	if name == domain.BuiltinFamily {
		data = builtinTTF(weight)
	} else {
		if r.dir == "" {
			return nil, fmt.Errorf("font %s: no font directory configured", name)
		}
		raw, err := os.ReadFile(filepath.Join(r.dir, name+"-"+weight.String()+".ttf"))
		if err != nil {
			return nil, fmt.Errorf("font %s: %w", name, err)
		}
		data = raw
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font %s: parse: %w", name, err)
	}
	r.parsed[key] = f
	return f, nil
}

func builtinTTF(weight domain.FontWeight) []byte {
	switch weight {
	case domain.WeightBold:
		return gobold.TTF
	case domain.WeightMedium:
		return gomedium.TTF
	default:
		return goregular.TTF
	}
}
