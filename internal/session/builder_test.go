// ABOUTME: Tests for the active workout builder.
// ABOUTME: Covers sequencing, validation, undo, and finish semantics.
package session

import (
	"errors"
	"testing"
	"time"

	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

var t0 = time.Date(2024, 3, 11, 18, 0, 0, 0, time.Local)

func benchPress(sets int) *ActiveWorkout {
	w := Start(t0)
	w.AddExercise("Supino Reto (Barra)", models.GroupPeito, sets)
	return w
}

func TestCompleteInOrder(t *testing.T) {
	w := benchPress(2)

	if err := w.CompleteStrengthSet(0, 0, 40, 10, t0); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := w.CompleteStrengthSet(0, 1, 40, 8, t0); err != nil {
		t.Fatalf("second set: %v", err)
	}
	if w.CompletedSets() != 2 {
		t.Errorf("CompletedSets = %d, want 2", w.CompletedSets())
	}
}

func TestCompleteOutOfOrderRejected(t *testing.T) {
	w := benchPress(2)

	err := w.CompleteStrengthSet(0, 1, 40, 8, t0)
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("err = %v, want ErrOutOfOrder", err)
	}
	// No state change on rejection.
	if w.CompletedSets() != 0 {
		t.Error("rejected completion mutated state")
	}
}

func TestCompleteBeforePriorExerciseRejected(t *testing.T) {
	w := benchPress(1)
	w.AddExercise("Tríceps Corda", models.GroupBracos, 1)

	err := w.CompleteStrengthSet(1, 0, 15, 12, t0)
	if !errors.Is(err, ErrOutOfOrder) {
		t.Fatalf("err = %v, want ErrOutOfOrder", err)
	}
}

func TestStrengthValidation(t *testing.T) {
	w := benchPress(1)

	if err := w.CompleteStrengthSet(0, 0, 0, 10, t0); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("zero weight: err = %v, want ErrInvalidSet", err)
	}
	if err := w.CompleteStrengthSet(0, 0, 40, 0, t0); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("zero reps: err = %v, want ErrInvalidSet", err)
	}
}

func TestCardioValidation(t *testing.T) {
	w := Start(t0)
	w.AddExercise("Esteira", models.GroupCardio, 1)

	if err := w.CompleteCardioSet(0, 0, 0, 0, t0); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("all-zero cardio: err = %v, want ErrInvalidSet", err)
	}
	if err := w.CompleteCardioSet(0, 0, 5, 0, t0); err != nil {
		t.Errorf("distance-only cardio should pass: %v", err)
	}
}

func TestVariantMismatchRejected(t *testing.T) {
	w := benchPress(1)
	if err := w.CompleteCardioSet(0, 0, 5, 30, t0); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("cardio completion on strength exercise: err = %v", err)
	}

	w2 := Start(t0)
	w2.AddExercise("Esteira", models.GroupCardio, 1)
	if err := w2.CompleteStrengthSet(0, 0, 40, 10, t0); !errors.Is(err, ErrInvalidSet) {
		t.Errorf("strength completion on cardio exercise: err = %v", err)
	}
}

func TestUndo(t *testing.T) {
	w := benchPress(2)
	if err := w.CompleteStrengthSet(0, 0, 40, 10, t0); err != nil {
		t.Fatal(err)
	}
	if err := w.CompleteStrengthSet(0, 1, 40, 8, t0); err != nil {
		t.Fatal(err)
	}

	// Undoing the first set is blocked while the second stands.
	if err := w.UndoSet(0, 0); !errors.Is(err, ErrUndoBlocked) {
		t.Fatalf("err = %v, want ErrUndoBlocked", err)
	}
	if err := w.UndoSet(0, 1); err != nil {
		t.Fatalf("undo last set: %v", err)
	}
	if err := w.UndoSet(0, 0); err != nil {
		t.Fatalf("undo first set after: %v", err)
	}
	if w.CompletedSets() != 0 {
		t.Errorf("CompletedSets = %d after undo, want 0", w.CompletedSets())
	}
}

func TestFinishEmpty(t *testing.T) {
	w := Start(t0)
	if _, err := w.Finish(t0.Add(time.Hour)); !errors.Is(err, ErrEmptyWorkout) {
		t.Errorf("err = %v, want ErrEmptyWorkout", err)
	}
}

func TestFinishNothingCompleted(t *testing.T) {
	w := benchPress(3)
	if _, err := w.Finish(t0.Add(time.Hour)); !errors.Is(err, ErrNoCompletedSets) {
		t.Errorf("err = %v, want ErrNoCompletedSets", err)
	}
}

func TestFinishDropsUntouchedExercises(t *testing.T) {
	w := benchPress(2)
	w.AddExercise("Rosca Direta", models.GroupBracos, 3)
	if err := w.CompleteStrengthSet(0, 0, 40, 10, t0); err != nil {
		t.Fatal(err)
	}

	done, err := w.Finish(t0.Add(45 * time.Minute))
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	if len(done.Exercises) != 1 {
		t.Fatalf("Exercises = %d, want 1 (untouched exercise dropped)", len(done.Exercises))
	}
	// The kept exercise preserves its idle second set as uncompleted.
	if len(done.Exercises[0].Sets) != 2 || done.Exercises[0].Sets[1].Completed {
		t.Errorf("kept exercise sets wrong: %+v", done.Exercises[0].Sets)
	}
	if done.DurationSeconds != 45*60 {
		t.Errorf("DurationSeconds = %d, want %d", done.DurationSeconds, 45*60)
	}
	// 1 completed strength set: 15 + 50 baseline.
	if done.XPEarned != 65 {
		t.Errorf("XPEarned = %d, want 65", done.XPEarned)
	}
	if done.Date != t0 {
		t.Errorf("Date = %v, want start time", done.Date)
	}
	if done.ID == "" {
		t.Error("session ID not assigned")
	}
}

func TestFinishCardio(t *testing.T) {
	w := Start(t0)
	w.AddExercise("Esteira", models.GroupCardio, 1)
	if err := w.CompleteCardioSet(0, 0, 5, 30, t0); err != nil {
		t.Fatal(err)
	}

	done, err := w.Finish(t0.Add(30 * time.Minute))
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	set := done.Exercises[0].Sets[0]
	if set.Cardio == nil || set.Strength != nil {
		t.Fatal("cardio set not stored under the cardio variant")
	}
	if set.Cardio.Distance != 5 || set.Cardio.Minutes() != 30 {
		t.Errorf("cardio values wrong: %+v", set.Cardio)
	}
	// 5*5 + 30*2 + 50.
	if done.XPEarned != 135 {
		t.Errorf("XPEarned = %d, want 135", done.XPEarned)
	}
}

func TestStartFromTemplate(t *testing.T) {
	tmpl := models.WorkoutTemplate{
		ID:   "tmpl-1",
		Name: "Treino A",
		Exercises: []models.TemplateExercise{
			{Name: "Supino Reto (Barra)", Group: models.GroupPeito, Sets: 3, Reps: "8-12"},
			{Name: "Tríceps Corda", Group: models.GroupBracos, Sets: 2, Reps: "12"},
		},
	}

	w := StartFromTemplate(t0, tmpl)
	if w.TemplateID != "tmpl-1" {
		t.Errorf("TemplateID = %q", w.TemplateID)
	}
	if len(w.Exercises) != 2 || len(w.Exercises[0].Sets) != 3 {
		t.Fatalf("plan not expanded: %+v", w.Exercises)
	}
	if w.Exercises[0].Sets[0].TargetReps != "8-12" {
		t.Errorf("TargetReps = %q, want 8-12", w.Exercises[0].Sets[0].TargetReps)
	}
}
