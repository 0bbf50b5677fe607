package copygen

import (
	"regexp"
	"strings"
)

var (
	newlineRuns = regexp.MustCompile(`[^\S\r\n]*[\r\n][\s]*`)
	spaceRuns   = regexp.MustCompile(`[^\S\r\n]+`)
)

// Cleanup removes the echoed prompt from a raw completion and normalizes
// whitespace: every run containing a line break becomes a single "\n" and
// every other whitespace run becomes a single space.
func Cleanup(raw, prompt string) string {
	out := raw
	if prompt != "" {
		out = strings.Replace(out, prompt, "", 1)
	}
	out = strings.TrimSpace(out)
	out = newlineRuns.ReplaceAllString(out, "\n")
	out = spaceRuns.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// ParseSuggestions splits cleaned text into lines, strips one leading bullet
// marker (-, * or •) from each, drops empty lines and keeps at most limit
// entries. limit <= 0 keeps everything.
func ParseSuggestions(text string, limit int) []string {
	lines := strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '\r' })
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		out = append(out, line)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func stripBullet(line string) string {
	for _, marker := range []string{"-", "*", "•"} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest)
		}
	}
	return line
}
