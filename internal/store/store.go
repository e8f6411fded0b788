package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/abhisek/drillplan/internal/planner"
)

// ErrSessionNotFound is returned when an operation targets an unknown
// session id. The store is left untouched.
var ErrSessionNotFound = errors.New("session not found")

// View selects which sessions a filter returns.
type View string

const (
	// ViewUpcoming returns sessions dated today or later, soonest first.
	ViewUpcoming View = "upcoming"

	// ViewPast returns sessions dated before today, most recent first.
	ViewPast View = "past"
)

// ParseView returns the View named s.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewUpcoming, ViewPast:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q: must be %s or %s", s, ViewUpcoming, ViewPast)
}

// Store holds the generated sessions in memory. Reads return copies, so
// the only way to change a session is ReplaceExercises.
type Store struct {
	mu       sync.RWMutex
	sessions []planner.Session
	index    map[string]int
}

// New creates a Store holding a copy of sessions, in the given order.
func New(sessions []planner.Session) *Store {
	s := &Store{
		sessions: make([]planner.Session, len(sessions)),
		index:    make(map[string]int, len(sessions)),
	}
	for i, sess := range sessions {
		s.sessions[i] = sess.Clone()
		s.index[sess.ID] = i
	}
	return s
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// All returns every session in generation order.
func (s *Store) All() []planner.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]planner.Session, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = sess.Clone()
	}
	return out
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (planner.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return planner.Session{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s.sessions[i].Clone(), nil
}

// Filter returns the sessions of the given view relative to today
// (YYYY-MM-DD). Dates are compared as plain strings, which orders
// correctly because every date shares the same fixed-width layout.
func (s *Store) Filter(view View, today string) []planner.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []planner.Session
	for _, sess := range s.sessions {
		upcoming := sess.Date >= today
		if upcoming == (view == ViewUpcoming) {
			out = append(out, sess.Clone())
		}
	}

	if view == ViewUpcoming {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}

// ReplaceExercises swaps the whole exercise list of session id for
// exercises. It never merges. Returns ErrSessionNotFound for an unknown id.
func (s *Store) ReplaceExercises(id string, exercises []planner.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.sessions[i].Exercises = append([]planner.Exercise(nil), exercises...)
	return nil
}
