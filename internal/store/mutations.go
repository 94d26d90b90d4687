// ABOUTME: Mutating store operations: workouts, rest days, resets.
// ABOUTME: Each one updates derived fields, recomputes the streak, persists.
package store

import (
	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
)

// AddWorkout validates and records a finished session: prepends it to
// history, clears any rest marking on its day (a workout always wins
// over rest for the same day), credits XP, and refreshes the derived
// level, last-activity, and streak fields before persisting.
func (s *Store) AddWorkout(w models.WorkoutSession) error {
	if len(w.Exercises) == 0 {
		return session.ErrEmptyWorkout
	}
	if w.CompletedSets() == 0 {
		return session.ErrNoCompletedSets
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.History = append([]models.WorkoutSession{w}, s.state.History...)
	s.state.RestDays.Remove(w.Day())

	s.state.User.TotalXP += w.XPEarned
	s.state.User.Level = progression.Level(s.state.User.TotalXP)
	date := w.Date
	s.state.User.LastActivityDate = &date

	s.recomputeStreak()
	s.logf("Treino registrado: %d exercícios, +%d XP.", len(w.Exercises), w.XPEarned)
	return s.persist()
}

// ToggleRestDay flips rest marking for the given day and reports
// whether the day is marked after the call.
func (s *Store) ToggleRestDay(day string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := s.state.RestDays.Toggle(day)
	s.recomputeStreak()
	if marked {
		s.logf("Descanso marcado: %s.", day)
	} else {
		s.logf("Descanso desmarcado: %s.", day)
	}
	if err := s.persist(); err != nil {
		return marked, err
	}
	return marked, nil
}

// ClearHistoryOnly empties the workout history, leaving profile, rest
// days, and templates alone. The streak is not recomputed here; call
// RecomputeStreak afterwards to refresh it against the empty history.
func (s *Store) ClearHistoryOnly() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.History = nil
	s.logf("Histórico limpo.")
	return s.persist()
}

// ClearProfileOnly resets the progression fields (level 1, zero XP,
// zero streak) without touching history or rest days.
func (s *Store) ClearProfileOnly() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.User.TotalXP = 0
	s.state.User.Level = 1
	s.state.User.Streak = 0
	s.state.User.LastActivityDate = nil
	s.logf("Perfil resetado.")
	return s.persist()
}

// ResetData performs a full factory reset, including the dev log.
func (s *Store) ResetData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.DefaultState()
	s.logf("Factory Reset executado.")
	return s.persist()
}

// SetProfile updates the display-only profile fields. Empty arguments
// leave the current value in place.
func (s *Store) SetProfile(name, accentColor, avatarURI string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name != "" {
		s.state.User.Name = name
	}
	if accentColor != "" {
		s.state.User.AccentColor = accentColor
	}
	if avatarURI != "" {
		s.state.User.AvatarURI = avatarURI
	}
	return s.persist()
}
