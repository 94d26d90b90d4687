// ABOUTME: WorkoutTemplate model for reusable workout plans.
// ABOUTME: Templates have an independent lifecycle and no effect on streak or XP.
package models

import "time"

// TemplateExercise is one planned exercise in a template. Reps is a
// display target like "8-12", not a number.
type TemplateExercise struct {
	ExerciseID string      `json:"exercise_id,omitempty"`
	Name       string      `json:"name"`
	Group      MuscleGroup `json:"group"`
	Sets       int         `json:"sets"`
	Reps       string      `json:"reps"`
}

// WorkoutTemplate is a reusable workout plan.
type WorkoutTemplate struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Color     string             `json:"color,omitempty"`
	LastUsed  *time.Time         `json:"last_used,omitempty"`
	Exercises []TemplateExercise `json:"exercises"`
}

// Clone returns a deep copy of the template.
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	out := t
	if t.LastUsed != nil {
		d := *t.LastUsed
		out.LastUsed = &d
	}
	out.Exercises = make([]TemplateExercise, len(t.Exercises))
	copy(out.Exercises, t.Exercises)
	return out
}
