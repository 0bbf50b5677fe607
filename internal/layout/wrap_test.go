package layout

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// fixedWidth measures every rune as the same width.
type fixedWidth float64

func (f fixedWidth) MeasureString(s string) (float64, float64) {
	return float64(utf8.RuneCountInString(s)) * float64(f), float64(f)
}

func TestWrap(t *testing.T) {
	m := fixedWidth(10)
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		maxLines int
		want     []string
	}{
		{name: "empty", text: "", maxWidth: 100, want: nil},
		{name: "whitespace only", text: " \t\n ", maxWidth: 100, want: nil},
		{name: "fits on one line", text: "Sale", maxWidth: 100, want: []string{"Sale"}},
		{name: "exact fit stays", text: "ab cd", maxWidth: 50, want: []string{"ab cd"}},
		{name: "greedy break", text: "Transform Your Brand", maxWidth: 130, want: []string{"Transform", "Your Brand"}},
		{name: "collapses whitespace", text: "a   b\n\nc", maxWidth: 1000, want: []string{"a b c"}},
		{name: "long word kept whole", text: "hi supercalifragilistic yo", maxWidth: 50, want: []string{"hi", "supercalifragilistic", "yo"}},
		{name: "zero width one word per line", text: "one two three", maxWidth: 0, want: []string{"one", "two", "three"}},
		{name: "negative width one word per line", text: "one two", maxWidth: -5, want: []string{"one", "two"}},
		{name: "truncates silently", text: "a b c d e f", maxWidth: 10, maxLines: 4, want: []string{"a", "b", "c", "d"}},
		{name: "unbounded", text: "a b c d e f", maxWidth: 10, maxLines: 0, want: []string{"a", "b", "c", "d", "e", "f"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.text, tc.maxWidth, m, tc.maxLines)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Wrap(%q, %v) = %q, want %q", tc.text, tc.maxWidth, got, tc.want)
			}
		})
	}
}

func TestWrapLinesFitOrAreSingleWords(t *testing.T) {
	m := fixedWidth(7)
	text := "Create stunning ads in seconds with an editor built for small businesses that need results yesterday"
	for _, width := range []float64{1, 30, 70, 140, 333, 1000} {
		for _, line := range Wrap(text, width, m, 0) {
			w, _ := m.MeasureString(line)
			if w > width && strings.Contains(line, " ") {
				t.Fatalf("width %v: line %q measures %v", width, line, w)
			}
		}
	}
}

func TestWrapTitleNeverExceedsLimit(t *testing.T) {
	m := fixedWidth(10)
	text := strings.Repeat("word ", 200)
	for _, width := range []float64{0, 10, 55, 300} {
		if got := Wrap(text, width, m, TitleMaxLines); len(got) > TitleMaxLines {
			t.Fatalf("width %v: %d lines, want <= %d", width, len(got), TitleMaxLines)
		}
	}
}

func TestWrapPreservesWordOrder(t *testing.T) {
	m := fixedWidth(10)
	text := "the quick brown fox jumps over the lazy dog"
	got := strings.Join(Wrap(text, 95, m, 0), " ")
	if got != text {
		t.Fatalf("rejoined = %q, want %q", got, text)
	}
}
