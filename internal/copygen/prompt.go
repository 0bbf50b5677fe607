package copygen

import (
	"fmt"

	"addesigner/internal/domain"
)

var instructions = map[domain.Category]string{
	domain.CategoryHeadline:    "Generate 8 short punchy ad headlines as a bulleted list.",
	domain.CategoryDescription: "Generate 6 benefit-focused ad descriptions, one per line.",
	domain.CategoryCTA:         "Generate 8 strong call-to-actions, terse, one per line.",
}

// ContextPrefix is shared by the three requests of one suggestion run.
func ContextPrefix(product, tone string) string {
	return fmt.Sprintf("Product: %s\nTone: %s\n", product, tone)
}

// BuildPrompt appends the category instruction to the shared prefix.
func BuildPrompt(c domain.Category, product, tone string) string {
	return ContextPrefix(product, tone) + instructions[c]
}
