// ABOUTME: Active workout builder: the in-progress session between start and finish.
// ABOUTME: Enforces complete-in-order sequencing and per-variant set validation.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
)

var (
	// ErrEmptyWorkout rejects finishing a session with no exercises.
	ErrEmptyWorkout = errors.New("workout has no exercises")

	// ErrNoCompletedSets rejects finishing with zero completed sets.
	ErrNoCompletedSets = errors.New("workout has no completed sets")

	// ErrOutOfOrder rejects completing a set before every earlier set
	// (same exercise, and all prior exercises) is completed.
	ErrOutOfOrder = errors.New("earlier sets must be completed first")

	// ErrInvalidSet rejects completing a set with no usable measurement.
	ErrInvalidSet = errors.New("invalid set values")

	// ErrUndoBlocked rejects undoing a set that later completed sets
	// depend on for ordering.
	ErrUndoBlocked = errors.New("later sets are already completed")
)

// ActiveSet is one planned set in the builder. Completed sets carry
// their measured values; idle sets only carry targets.
type ActiveSet struct {
	TargetReps  string     `json:"target_reps,omitempty"`
	Weight      float64    `json:"weight,omitempty"`
	Reps        int        `json:"reps,omitempty"`
	Distance    float64    `json:"distance,omitempty"`
	Minutes     float64    `json:"minutes,omitempty"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ActiveExercise is one exercise in the builder.
type ActiveExercise struct {
	ExerciseID string             `json:"exercise_id,omitempty"`
	Name       string             `json:"name"`
	Group      models.MuscleGroup `json:"group"`
	Sets       []ActiveSet        `json:"sets"`
}

// ActiveWorkout is the persisted in-progress session. Nothing reaches
// the store until Finish succeeds; cancel discards everything.
type ActiveWorkout struct {
	StartedAt  time.Time        `json:"started_at"`
	TemplateID string           `json:"template_id,omitempty"`
	Exercises  []ActiveExercise `json:"exercises"`
}

// Start opens a blank session.
func Start(now time.Time) *ActiveWorkout {
	return &ActiveWorkout{StartedAt: now}
}

// StartFromTemplate opens a session pre-filled with a template's plan.
func StartFromTemplate(now time.Time, t models.WorkoutTemplate) *ActiveWorkout {
	w := &ActiveWorkout{StartedAt: now, TemplateID: t.ID}
	for _, ex := range t.Exercises {
		sets := make([]ActiveSet, ex.Sets)
		for i := range sets {
			sets[i] = ActiveSet{TargetReps: ex.Reps}
		}
		w.Exercises = append(w.Exercises, ActiveExercise{
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			Group:      ex.Group,
			Sets:       sets,
		})
	}
	return w
}

// AddExercise appends an exercise with the given number of idle sets.
func (w *ActiveWorkout) AddExercise(name string, group models.MuscleGroup, sets int) {
	if sets < 1 {
		sets = 1
	}
	w.Exercises = append(w.Exercises, ActiveExercise{
		Name:  name,
		Group: group,
		Sets:  make([]ActiveSet, sets),
	})
}

// AddSet appends an idle set to an exercise, inheriting the target of
// the exercise's last set.
func (w *ActiveWorkout) AddSet(exIdx int) error {
	if exIdx < 0 || exIdx >= len(w.Exercises) {
		return fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &w.Exercises[exIdx]
	var target string
	if n := len(ex.Sets); n > 0 {
		target = ex.Sets[n-1].TargetReps
	}
	ex.Sets = append(ex.Sets, ActiveSet{TargetReps: target})
	return nil
}

// checkOrder verifies every set before (exIdx, setIdx) is completed.
func (w *ActiveWorkout) checkOrder(exIdx, setIdx int) error {
	for e := 0; e <= exIdx; e++ {
		limit := len(w.Exercises[e].Sets)
		if e == exIdx {
			limit = setIdx
		}
		for s := 0; s < limit; s++ {
			if !w.Exercises[e].Sets[s].Completed {
				return fmt.Errorf("%w: exercise %d set %d is still open",
					ErrOutOfOrder, e+1, s+1)
			}
		}
	}
	return nil
}

func (w *ActiveWorkout) set(exIdx, setIdx int) (*ActiveSet, *ActiveExercise, error) {
	if exIdx < 0 || exIdx >= len(w.Exercises) {
		return nil, nil, fmt.Errorf("exercise index %d out of range", exIdx+1)
	}
	ex := &w.Exercises[exIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return nil, nil, fmt.Errorf("set index %d out of range", setIdx+1)
	}
	return &ex.Sets[setIdx], ex, nil
}

// CompleteStrengthSet marks a strength set done with its measured
// weight and reps. Rejected without state change when the exercise is
// cardio, the values are unusable, or an earlier set is still open.
func (w *ActiveWorkout) CompleteStrengthSet(exIdx, setIdx int, weight float64, reps int, now time.Time) error {
	s, ex, err := w.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	if ex.Group.IsCardio() {
		return fmt.Errorf("%w: %s is a cardio exercise", ErrInvalidSet, ex.Name)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrInvalidSet)
	}
	if reps <= 0 {
		return fmt.Errorf("%w: reps must be positive", ErrInvalidSet)
	}
	if err := w.checkOrder(exIdx, setIdx); err != nil {
		return err
	}
	s.Weight = weight
	s.Reps = reps
	s.Completed = true
	s.CompletedAt = &now
	return nil
}

// CompleteCardioSet marks a cardio set done with its distance and
// duration. At least one of the two must be positive.
func (w *ActiveWorkout) CompleteCardioSet(exIdx, setIdx int, distance, minutes float64, now time.Time) error {
	s, ex, err := w.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	if !ex.Group.IsCardio() {
		return fmt.Errorf("%w: %s is not a cardio exercise", ErrInvalidSet, ex.Name)
	}
	if distance < 0 || minutes < 0 {
		return fmt.Errorf("%w: values must not be negative", ErrInvalidSet)
	}
	if distance == 0 && minutes == 0 {
		return fmt.Errorf("%w: distance or duration required", ErrInvalidSet)
	}
	if err := w.checkOrder(exIdx, setIdx); err != nil {
		return err
	}
	s.Distance = distance
	s.Minutes = minutes
	s.Completed = true
	s.CompletedAt = &now
	return nil
}

// UndoSet reverts a completed set to idle. Only allowed when no later
// set is completed, so the ordering invariant survives.
func (w *ActiveWorkout) UndoSet(exIdx, setIdx int) error {
	s, _, err := w.set(exIdx, setIdx)
	if err != nil {
		return err
	}
	if !s.Completed {
		return nil
	}
	for e := exIdx; e < len(w.Exercises); e++ {
		start := 0
		if e == exIdx {
			start = setIdx + 1
		}
		for i := start; i < len(w.Exercises[e].Sets); i++ {
			if w.Exercises[e].Sets[i].Completed {
				return fmt.Errorf("%w: exercise %d set %d", ErrUndoBlocked, e+1, i+1)
			}
		}
	}
	*s = ActiveSet{TargetReps: s.TargetReps}
	return nil
}

// CompletedSets counts completed sets across the builder.
func (w *ActiveWorkout) CompletedSets() int {
	n := 0
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				n++
			}
		}
	}
	return n
}

// Finish validates the session and emits an immutable WorkoutSession
// with XP computed by the progression rules. Exercises with no
// completed set are dropped; idle sets of kept exercises persist as
// uncompleted entries. The builder is unchanged on error.
func (w *ActiveWorkout) Finish(now time.Time) (models.WorkoutSession, error) {
	if len(w.Exercises) == 0 {
		return models.WorkoutSession{}, ErrEmptyWorkout
	}
	if w.CompletedSets() == 0 {
		return models.WorkoutSession{}, ErrNoCompletedSets
	}

	var logs []models.ExerciseLog
	for _, ex := range w.Exercises {
		var sets []models.Set
		kept := false
		for _, s := range ex.Sets {
			if s.Completed {
				kept = true
			}
			sets = append(sets, toModelSet(ex.Group, s))
		}
		if !kept {
			continue
		}
		logs = append(logs, models.ExerciseLog{
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			Group:      ex.Group,
			Sets:       sets,
		})
	}

	duration := int(now.Sub(w.StartedAt).Seconds())
	if duration < 0 {
		duration = 0
	}
	xp := progression.XPForSession(logs)
	return models.NewWorkoutSession(w.StartedAt, duration, logs, xp), nil
}

func toModelSet(group models.MuscleGroup, s ActiveSet) models.Set {
	if group.IsCardio() {
		return models.Set{
			Completed: s.Completed,
			Cardio:    &models.CardioSet{Distance: s.Distance, Duration: s.Minutes},
		}
	}
	return models.Set{
		Completed: s.Completed,
		Strength:  &models.StrengthSet{Weight: s.Weight, Reps: s.Reps},
	}
}
