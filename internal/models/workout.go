// ABOUTME: WorkoutSession and ExerciseLog models for completed workouts.
// ABOUTME: Sessions are created atomically at finish time and immutable after.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DayKey truncates a timestamp to its local calendar day, the unit of
// streak and rest-day bookkeeping.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ExerciseLog is one exercise performed within a session. Name is the
// identity key used for historical aggregation; ExerciseID is a weak
// reference into the read-only catalog.
type ExerciseLog struct {
	ExerciseID string      `json:"exercise_id,omitempty"`
	Name       string      `json:"name"`
	Group      MuscleGroup `json:"group"`
	Sets       []Set       `json:"sets"`
}

// CompletedSets counts the completed sets in the log.
func (e ExerciseLog) CompletedSets() int {
	n := 0
	for _, s := range e.Sets {
		if s.Completed {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the exercise log.
func (e ExerciseLog) Clone() ExerciseLog {
	out := e
	out.Sets = make([]Set, len(e.Sets))
	for i, s := range e.Sets {
		out.Sets[i] = s.Clone()
	}
	return out
}

// WorkoutSession is one completed workout. XPEarned is computed once
// at finish time and stored immutably thereafter.
type WorkoutSession struct {
	ID              string        `json:"id"`
	Date            time.Time     `json:"date"`
	DurationSeconds int           `json:"duration_seconds"`
	Exercises       []ExerciseLog `json:"exercises"`
	XPEarned        int           `json:"xp_earned"`
}

// NewWorkoutSession creates a session with a generated UUID.
func NewWorkoutSession(date time.Time, durationSeconds int, exercises []ExerciseLog, xp int) WorkoutSession {
	return WorkoutSession{
		ID:              uuid.New().String(),
		Date:            date,
		DurationSeconds: durationSeconds,
		Exercises:       exercises,
		XPEarned:        xp,
	}
}

// Day returns the session's local calendar day.
func (w WorkoutSession) Day() string {
	return DayKey(w.Date)
}

// TotalSets counts every set in the session, completed or not.
func (w WorkoutSession) TotalSets() int {
	n := 0
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// CompletedSets counts the completed sets across all exercises.
func (w WorkoutSession) CompletedSets() int {
	n := 0
	for _, ex := range w.Exercises {
		n += ex.CompletedSets()
	}
	return n
}

// Clone returns a deep copy of the session.
func (w WorkoutSession) Clone() WorkoutSession {
	out := w
	out.Exercises = make([]ExerciseLog, len(w.Exercises))
	for i, ex := range w.Exercises {
		out.Exercises[i] = ex.Clone()
	}
	return out
}
