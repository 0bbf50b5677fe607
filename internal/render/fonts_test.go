package render

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomedium"

	"addesigner/internal/domain"
)

func TestFontRegistryFallsBackToBuiltin(t *testing.T) {
	r := NewFontRegistry(FontOptions{})
	got := r.resolve(domain.FontOswald, domain.WeightBold)
	builtin, err := r.load(domain.BuiltinFamily, domain.WeightBold)
	if err != nil {
		t.Fatalf("load builtin: %v", err)
	}
	if got != builtin {
		t.Fatal("Oswald without a font dir should resolve to the builtin bold font")
	}
	if r.Face(domain.FontOswald, domain.WeightBold, 32) == nil {
		t.Fatal("Face returned nil")
	}
}

func TestFontRegistryWalksChain(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Inter-Bold.ttf"), gomedium.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Oswald-Bold.ttf"), []byte("not a font"), 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	r := NewFontRegistry(FontOptions{Dir: dir})

	inter := r.resolve(domain.FontInter, domain.WeightBold)
	builtin, _ := r.load(domain.BuiltinFamily, domain.WeightBold)
	if inter == builtin {
		t.Fatal("Inter-Bold.ttf should be loaded from the font dir")
	}
	if got := r.resolve(domain.FontPoppins, domain.WeightBold); got != inter {
		t.Fatal("Poppins should fall back to Inter")
	}
	if got := r.resolve(domain.FontOswald, domain.WeightBold); got != inter {
		t.Fatal("unparseable Oswald should fall back to Inter")
	}
	if got := r.resolve(domain.FontInter, domain.WeightMedium); got == inter {
		t.Fatal("Inter medium has no file and should not reuse the bold font")
	}
}
