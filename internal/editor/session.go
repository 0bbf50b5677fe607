// Package editor holds live editing sessions. A session owns one design, the
// latest copy suggestions and the surface rendered from the current design.
// Every mutation re-renders and notifies subscribers.
package editor

import (
	"fmt"
	"image"
	"sync"
	"time"

	"addesigner/internal/copygen"
	"addesigner/internal/domain"
	"addesigner/internal/render"
)

// Session is safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	composer *render.Composer

	mu             sync.Mutex
	state          domain.DesignState
	suggestions    copygen.Suggestions
	hasSuggestions bool
	surface        *render.Surface
	updatedAt      time.Time
	subs           map[int]func(*render.Surface)
	nextSub        int
}

func newSession(id string, composer *render.Composer, state domain.DesignState) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        id,
		CreatedAt: now,
		composer:  composer,
		state:     state,
		updatedAt: now,
		subs:      make(map[int]func(*render.Surface)),
	}
	s.surface = composer.Render(state)
	return s
}

// State returns a copy of the current design.
func (s *Session) State() domain.DesignState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Surface returns the surface rendered from the current design.
func (s *Session) Surface() *render.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surface
}

// Snapshot returns the design together with the surface rendered from it.
func (s *Session) Snapshot() (domain.DesignState, *render.Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.surface
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Update runs fn against a copy of the design. When fn fails the design is
// left as it was and nothing is re-rendered. fn runs with the session locked
// and must not call back into s.
func (s *Session) Update(fn func(*domain.DesignState) error) (*render.Surface, error) {
	s.mu.Lock()
	next := s.state
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	surface, subs := s.commitLocked(next)
	s.mu.Unlock()

	notify(subs, surface)
	return surface, nil
}

// SetBackgroundImage replaces the background image. A nil image clears it.
func (s *Session) SetBackgroundImage(img image.Image) *render.Surface {
	surface, _ := s.Update(func(st *domain.DesignState) error {
		st.BackgroundImage = img
		return nil
	})
	return surface
}

func (s *Session) ClearBackgroundImage() *render.Surface {
	return s.SetBackgroundImage(nil)
}

// ApplySuggestion overwrites the design field fed by category c with text.
// There is no undo.
func (s *Session) ApplySuggestion(c domain.Category, text string) (*render.Surface, error) {
	return s.Update(func(st *domain.DesignState) error {
		return c.ApplyTo(st, text)
	})
}

// ApplySuggestionAt applies the index-th stored suggestion of category c. The
// lookup and the edit happen under one lock, so a concurrent
// ReplaceSuggestions cannot swap the list in between.
func (s *Session) ApplySuggestionAt(c domain.Category, index int) (string, *render.Surface, error) {
	var text string
	surface, err := s.Update(func(st *domain.DesignState) error {
		list := s.suggestions.List(c)
		if index < 0 || index >= len(list) {
			return fmt.Errorf("%w: %s #%d of %d", domain.ErrInvalidSuggestion, c, index, len(list))
		}
		text = list[index]
		return c.ApplyTo(st, text)
	})
	if err != nil {
		return "", nil, err
	}
	return text, surface, nil
}

// ReplaceSuggestions swaps in the lists of a new generation run wholesale.
func (s *Session) ReplaceSuggestions(sg copygen.Suggestions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = sg
	s.hasSuggestions = true
	s.updatedAt = time.Now().UTC()
}

// Suggestions returns the latest lists and whether a run has completed yet.
func (s *Session) Suggestions() (copygen.Suggestions, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions, s.hasSuggestions
}

// Subscribe registers fn to receive every newly rendered surface. The
// returned func removes the subscription.
func (s *Session) Subscribe(fn func(*render.Surface)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) commitLocked(next domain.DesignState) (*render.Surface, []func(*render.Surface)) {
	s.state = next
	s.surface = s.composer.Render(next)
	s.updatedAt = time.Now().UTC()
	subs := make([]func(*render.Surface), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.surface, subs
}

func notify(subs []func(*render.Surface), surface *render.Surface) {
	for _, fn := range subs {
		fn(surface)
	}
}
