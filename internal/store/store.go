// ABOUTME: Central state container owning history, rest days, profile,
// ABOUTME: and templates. Every mutation recomputes derived fields and persists.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/storage"
	"github.com/JaumCarvalho/iron-tracker/internal/streak"
)

// Clock supplies "now" so streak and seed logic are testable with a
// fixed today.
type Clock func() time.Time

// ErrTemplateNotFound is returned when a template ID has no match.
var ErrTemplateNotFound = errors.New("template not found")

const devLogMax = 50

// Store is the single source of truth for application state. All
// operations take the lock; reads hand out deep copies so callers
// never observe a live mutable reference.
type Store struct {
	mu      sync.Mutex
	backend storage.Backend
	clock   Clock
	state   *models.State
}

// New loads state from the backend and wraps it in a store. On a
// corrupted blob the store is still usable with factory defaults and
// the wrapped storage.ErrCorruptState is returned alongside it.
func New(backend storage.Backend, clock Clock) (*Store, error) {
	if clock == nil {
		clock = time.Now
	}
	st, err := backend.Load()
	if err != nil && !errors.Is(err, storage.ErrCorruptState) {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s := &Store{backend: backend, clock: clock, state: st}
	return s, err
}

// logf appends a timestamped line to the dev log, newest first,
// keeping at most the last 50 entries. The log lives in the state
// blob, so the persist following each mutation carries it along.
func (s *Store) logf(format string, args ...any) {
	line := fmt.Sprintf("[%s] %s", s.clock().Format("15:04:05"), fmt.Sprintf(format, args...))
	s.state.DevLog = append([]string{line}, s.state.DevLog...)
	if len(s.state.DevLog) > devLogMax {
		s.state.DevLog = s.state.DevLog[:devLogMax]
	}
}

// persist writes the full state blob. Callers hold the lock.
func (s *Store) persist() error {
	if err := s.backend.Save(s.state); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// recomputeStreak refreshes the derived streak field. Callers hold
// the lock.
func (s *Store) recomputeStreak() {
	s.state.User.Streak = streak.Compute(s.state.History, s.state.RestDays, s.clock())
}

// RecomputeStreak forces a streak recompute and persists the result.
func (s *Store) RecomputeStreak() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeStreak()
	if err := s.persist(); err != nil {
		return 0, err
	}
	return s.state.User.Streak, nil
}

// User returns a copy of the profile.
func (s *Store) User() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.User.Clone()
}

// History returns a deep copy of the workout history, most recent
// first.
func (s *Store) History() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutSession, len(s.state.History))
	for i, w := range s.state.History {
		out[i] = w.Clone()
	}
	return out
}

// RestDays returns a copy of the rest-day set.
func (s *Store) RestDays() models.RestDays {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.RestDays.Clone()
}

// Templates returns a deep copy of the saved templates.
func (s *Store) Templates() []models.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutTemplate, len(s.state.Templates))
	for i, t := range s.state.Templates {
		out[i] = t.Clone()
	}
	return out
}

// DevLog returns the dev-log lines, newest first.
func (s *Store) DevLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.state.DevLog))
	copy(out, s.state.DevLog)
	return out
}

// Snapshot returns a deep copy of the full state, for export.
func (s *Store) Snapshot() *models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.clock()
}
