// Package layout breaks ad copy into lines that fit a pixel width.
package layout

import "strings"

// Measurer reports the rendered size of a string under the current font.
// *gg.Context satisfies it once a font face is set.
type Measurer interface {
	MeasureString(s string) (w, h float64)
}

// TitleMaxLines bounds the headline block.
const TitleMaxLines = 4

// SubtitleMaxLines bounds the subtitle block.
const SubtitleMaxLines = 4

// Wrap greedily packs the whitespace-separated words of text into lines no
// wider than maxWidth. A single word wider than maxWidth is kept whole on its
// own line. At most maxLines lines are returned and the rest is dropped
// without any marker; maxLines <= 0 means no limit.
func Wrap(text string, maxWidth float64, m Measurer, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	if maxWidth <= 0 {
		lines = words
	} else {
		line := ""
		for _, word := range words {
			if line == "" {
				line = word
				continue
			}
			candidate := line + " " + word
			if w, _ := m.MeasureString(candidate); w > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
