package editor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"addesigner/internal/domain"
	"addesigner/internal/render"
)

// Store keeps sessions in memory for the lifetime of the process.
type Store struct {
	composer *render.Composer

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(composer *render.Composer) *Store {
	return &Store{composer: composer, sessions: make(map[string]*Session)}
}

// Create starts a session from the default design, optionally adjusted by
// init. A failing init creates nothing.
func (s *Store) Create(init func(*domain.DesignState) error) (*Session, error) {
	state := domain.NewDesignState()
	if init != nil {
		if err := init(&state); err != nil {
			return nil, err
		}
	}
	sess := newSession(uuid.NewString(), s.composer, state)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess, nil
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("design %q: %w", id, domain.ErrNotFound)
	}
	return sess, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("design %q: %w", id, domain.ErrNotFound)
	}
	delete(s.sessions, id)
	return nil
}

// List returns sessions oldest first.
func (s *Store) List() []*Session {
	s.mu.Lock()
	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	s.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
