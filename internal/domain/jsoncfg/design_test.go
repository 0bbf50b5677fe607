package jsoncfg

import (
	"encoding/json"
	"errors"
	"testing"

	"addesigner/internal/domain"
)

func TestDesignPatchApply(t *testing.T) {
	var p DesignPatch
	if err := json.Unmarshal([]byte(`{"title":"Sale","subtitle":"","accent_color":"#ff0000","font":"Oswald","size":"1200x628"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s := domain.NewDesignState()
	if err := p.Apply(&s); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if s.Title != "Sale" {
		t.Fatalf("Title = %q, want %q", s.Title, "Sale")
	}
	if s.Subtitle != "" {
		t.Fatalf("Subtitle = %q, want empty", s.Subtitle)
	}
	if s.CTALabel != domain.DefaultCTALabel {
		t.Fatalf("CTALabel changed to %q", s.CTALabel)
	}
	if s.Accent != (domain.RGB{R: 0xff}) {
		t.Fatalf("Accent = %v, want #ff0000", s.Accent)
	}
	if s.Font.Key != "oswald" {
		t.Fatalf("Font = %q, want oswald", s.Font.Key)
	}
	if s.Size != domain.PresetFacebook {
		t.Fatalf("Size = %+v, want facebook preset", s.Size)
	}
}

func TestDesignPatchApplyRejectsWithoutMutating(t *testing.T) {
	title := "Changed"
	bad := "#zzz"
	p := DesignPatch{Title: &title, Text: &bad}
	s := domain.NewDesignState()
	err := p.Apply(&s)
	if !errors.Is(err, domain.ErrInvalidColor) {
		t.Fatalf("Apply error = %v, want ErrInvalidColor", err)
	}
	if s.Title != domain.DefaultTitle {
		t.Fatalf("Title mutated to %q on rejected patch", s.Title)
	}
}

func TestDesignPatchEmpty(t *testing.T) {
	if !(DesignPatch{}).Empty() {
		t.Fatal("zero patch should be empty")
	}
	size := "story"
	if (DesignPatch{Size: &size}).Empty() {
		t.Fatal("patch with size should not be empty")
	}
}

func TestViewOfMarshalsHexColors(t *testing.T) {
	raw := MustMarshal(ViewOf(domain.NewDesignState()))
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["background_color"] != "#0b1020" {
		t.Fatalf("background_color = %v", out["background_color"])
	}
	if _, ok := out["background_image"]; ok {
		t.Fatal("background_image should be omitted without an image")
	}
}
