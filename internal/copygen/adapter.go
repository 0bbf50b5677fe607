package copygen

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"addesigner/internal/domain"
	"addesigner/internal/infra"
)

// Generator is the single-request capability the adapter fans out over.
// *Capability implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// Suggestions holds the three lists of one run. A category whose request
// failed has an empty list and an entry in Failures.
type Suggestions struct {
	Headlines    []string                   `json:"headlines"`
	Descriptions []string                   `json:"descriptions"`
	CTAs         []string                   `json:"ctas"`
	Failures     map[domain.Category]error `json:"-"`
}

// List returns the suggestions of one category.
func (s Suggestions) List(c domain.Category) []string {
	switch c {
	case domain.CategoryHeadline:
		return s.Headlines
	case domain.CategoryDescription:
		return s.Descriptions
	case domain.CategoryCTA:
		return s.CTAs
	}
	return nil
}

func (s *Suggestions) set(c domain.Category, items []string) {
	switch c {
	case domain.CategoryHeadline:
		s.Headlines = items
	case domain.CategoryDescription:
		s.Descriptions = items
	case domain.CategoryCTA:
		s.CTAs = items
	}
}

// Err joins the per-category failures in category order.
func (s Suggestions) Err() error {
	var errs []error
	for _, c := range domain.Categories() {
		if err := s.Failures[c]; err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}
	return errors.Join(errs...)
}

// Adapter builds the per-category prompts, runs them concurrently and parses
// the responses.
type Adapter struct {
	gen    Generator
	opts   GenerateOptions
	logger *infra.Logger
}

func NewAdapter(gen Generator, opts GenerateOptions, logger *infra.Logger) *Adapter {
	return &Adapter{gen: gen, opts: opts, logger: logger}
}

// Suggest issues the headline, description and CTA requests concurrently and
// waits for all three. Failures are isolated per category; an error is
// returned only when every category failed.
func (a *Adapter) Suggest(ctx context.Context, product, tone string) (Suggestions, error) {
	cats := domain.Categories()
	items := make([][]string, len(cats))
	errs := make([]error, len(cats))

	var wg sync.WaitGroup
	for i, c := range cats {
		i, c := i, c
		wg.Add(1)
		go func() {
			defer wg.Done()
			prompt := BuildPrompt(c, product, tone)
			raw, err := a.gen.Generate(ctx, prompt, a.opts)
			if err != nil {
				errs[i] = err
				return
			}
			items[i] = ParseSuggestions(Cleanup(raw, prompt), c.MaxSuggestions())
		}()
	}
	wg.Wait()

	out := Suggestions{Failures: map[domain.Category]error{}}
	for i, c := range cats {
		if errs[i] != nil {
			out.Failures[c] = errs[i]
			out.set(c, []string{})
			if a.logger != nil {
				a.logger.Warn().Err(errs[i]).Str("category", string(c)).Msg("suggestion request failed")
			}
			continue
		}
		out.set(c, items[i])
	}
	if len(out.Failures) == len(cats) {
		return out, out.Err()
	}
	return out, nil
}
