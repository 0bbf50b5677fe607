package copygen

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"addesigner/internal/domain"
)

const staticProviderName = "static"

// StaticLoader serves canned copy built from the product line of the prompt.
// It needs no model and is used for offline development and tests.
type StaticLoader struct{}

func NewStaticLoader() StaticLoader { return StaticLoader{} }

func (StaticLoader) Name() string { return staticProviderName }

func (StaticLoader) Load(context.Context) (Model, error) { return staticModel{}, nil }

type staticModel struct{}

// Generate echoes the prompt followed by a list, the way a causal language
// model continues its input.
func (staticModel) Generate(_ context.Context, prompt string, _ GenerateOptions) (string, error) {
	// Casers are stateful; one per call.
	title := cases.Title(language.English)
	subject := subjectOf(prompt)
	var lines []string
	switch {
	case strings.HasSuffix(prompt, instructions[domain.CategoryHeadline]):
		s := title.String(subject)
		lines = []string{
			"- " + s + ", Made Simple",
			"- Meet Your New " + s,
			"- Work Smarter Today",
			"- Less Effort. More Impact.",
			"- Built For Busy Owners",
			"- Stand Out In Seconds",
			"- Your Brand, Leveled Up",
			"- Start Free, Grow Fast",
		}
	case strings.HasSuffix(prompt, instructions[domain.CategoryDescription]):
		lines = []string{
			fmt.Sprintf("Get more done with %s.", subject),
			"Save hours every week with tools that just work.",
			"Look professional without hiring a designer.",
			"Everything you need in one simple place.",
			"Launch campaigns in minutes, not days.",
			"Grow your business with less guesswork.",
		}
	default:
		lines = []string{
			"* Get Started", "* Try It Free", "* Shop Now", "* Learn More",
			"* Sign Up Today", "* Claim Your Offer", "* Start Creating", "* Join Now",
		}
	}
	return prompt + "\n" + strings.Join(lines, "\n"), nil
}

// subjectOf pulls a short noun phrase from the "Product:" line.
func subjectOf(prompt string) string {
	line, _, _ := strings.Cut(strings.TrimPrefix(prompt, "Product:"), "\n")
	line = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), "."))
	words := strings.Fields(line)
	if len(words) == 0 {
		return "your product"
	}
	if len(words) > 4 {
		words = words[:4]
	}
	return strings.Join(words, " ")
}
