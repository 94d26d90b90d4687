// ABOUTME: CLI commands for the active workout workflow.
// ABOUTME: Builds a session across invocations: start, sets, finish, cancel.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/exercises"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/session"
	"github.com/JaumCarvalho/iron-tracker/internal/storage"
	"github.com/JaumCarvalho/iron-tracker/internal/streak"
)

var (
	startTemplate string
	exerciseGroup string
	exerciseSets  int
)

// loadActive reads the persisted in-progress workout.
func loadActive() (*session.ActiveWorkout, error) {
	w, err := appBackend.LoadSession()
	if errors.Is(err, storage.ErrNoSession) {
		return nil, fmt.Errorf("no active workout; run 'iron start' first")
	}
	return w, err
}

// nextPending finds the first incomplete set in order.
func nextPending(w *session.ActiveWorkout) (exIdx, setIdx int, ok bool) {
	for e, ex := range w.Exercises {
		for s, set := range ex.Sets {
			if !set.Completed {
				return e, s, true
			}
		}
	}
	return 0, 0, false
}

// lastCompleted finds the most recent completed set in order.
func lastCompleted(w *session.ActiveWorkout) (exIdx, setIdx int, ok bool) {
	for e := len(w.Exercises) - 1; e >= 0; e-- {
		for s := len(w.Exercises[e].Sets) - 1; s >= 0; s-- {
			if w.Exercises[e].Sets[s].Completed {
				return e, s, true
			}
		}
	}
	return 0, 0, false
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a workout session",
	Long: `Start a workout session. The session persists between commands until
you finish or cancel it.

Examples:
  iron start
  iron start --template 4f8a...   # Pre-fill from a saved template`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := appBackend.LoadSession(); err == nil {
			return fmt.Errorf("a workout is already active; finish or cancel it first")
		}

		var w *session.ActiveWorkout
		if startTemplate != "" {
			t, err := appStore.Template(startTemplate)
			if err != nil {
				return fmt.Errorf("template not found: %s", startTemplate)
			}
			w = session.StartFromTemplate(appStore.Now(), t)
			if err := appStore.MarkTemplateUsed(t.ID); err != nil {
				return err
			}
			color.Green("✓ Workout started from template %q", t.Name)
		} else {
			w = session.Start(appStore.Now())
			color.Green("✓ Workout started")
		}

		return appBackend.SaveSession(w)
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Manage exercises in the active workout",
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise to the active workout",
	Long: `Add an exercise to the active workout. The muscle group is looked up
from the catalog when --group is omitted.

Examples:
  iron exercise add "Supino Reto (Barra)"
  iron exercise add "Esteira" --sets 1
  iron exercise add "Farmer Walk" --group Outros --sets 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}

		name := args[0]
		group := models.MuscleGroup(exerciseGroup)
		if exerciseGroup == "" {
			group = exercises.GroupOf(name)
		} else if !models.IsValidGroup(group) {
			return fmt.Errorf("unknown muscle group: %s", exerciseGroup)
		}

		w.AddExercise(name, group, exerciseSets)
		if err := appBackend.SaveSession(w); err != nil {
			return err
		}

		color.Green("✓ Added %s", name)
		fmt.Printf("  %s %d sets planned\n", color.New(color.Faint).Sprint(group), exerciseSets)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Work through sets in the active workout",
}

var setAddCmd = &cobra.Command{
	Use:   "add [exercise-number]",
	Short: "Add an extra set to an exercise",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}
		if len(w.Exercises) == 0 {
			return fmt.Errorf("no exercises in the active workout")
		}

		exIdx := len(w.Exercises) - 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid exercise number: %s", args[0])
			}
			exIdx = n - 1
		}
		if err := w.AddSet(exIdx); err != nil {
			return err
		}
		if err := appBackend.SaveSession(w); err != nil {
			return err
		}

		color.Green("✓ Set added to %s", w.Exercises[exIdx].Name)
		return nil
	},
}

var setDoneCmd = &cobra.Command{
	Use:   "done <weight> <reps> | <distance> <minutes>",
	Short: "Complete the next pending set",
	Long: `Complete the next pending set, in order. Strength exercises take
weight (kg) and reps; cardio exercises take distance (km) and minutes.
Either cardio value may be 0, but not both.

Examples:
  iron set done 40 10     # 40kg x 10 reps
  iron set done 5 30      # 5km in 30 minutes (cardio exercise)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}

		exIdx, setIdx, ok := nextPending(w)
		if !ok {
			return fmt.Errorf("no pending sets; use 'iron set add' or 'iron finish'")
		}
		ex := w.Exercises[exIdx]

		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[0])
		}

		now := appStore.Now()
		if ex.Group.IsCardio() {
			minutes, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid minutes: %s", args[1])
			}
			if err := w.CompleteCardioSet(exIdx, setIdx, a, minutes, now); err != nil {
				return err
			}
			color.Green("✓ %s: %.1f km / %.0f min", ex.Name, a, minutes)
		} else {
			reps, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid reps: %s", args[1])
			}
			if err := w.CompleteStrengthSet(exIdx, setIdx, a, reps, now); err != nil {
				return err
			}
			color.Green("✓ %s: %.1f kg x %d (set %d/%d)", ex.Name, a, reps, setIdx+1, len(ex.Sets))
		}

		return appBackend.SaveSession(w)
	},
}

var setUndoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recently completed set",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}

		exIdx, setIdx, ok := lastCompleted(w)
		if !ok {
			return fmt.Errorf("no completed sets to undo")
		}
		name := w.Exercises[exIdx].Name
		if err := w.UndoSet(exIdx, setIdx); err != nil {
			return err
		}
		if err := appBackend.SaveSession(w); err != nil {
			return err
		}

		color.Green("✓ Undid set %d of %s", setIdx+1, name)
		return nil
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish the active workout and record it",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}

		done, err := w.Finish(appStore.Now())
		if err != nil {
			if errors.Is(err, session.ErrNoCompletedSets) || errors.Is(err, session.ErrEmptyWorkout) {
				return fmt.Errorf("nothing to record; complete at least one set or cancel")
			}
			return err
		}
		if err := appStore.AddWorkout(done); err != nil {
			return err
		}
		if err := appBackend.ClearSession(); err != nil {
			return err
		}

		user := appStore.User()
		color.Green("✓ Workout saved: %d exercises, %d sets", len(done.Exercises), done.CompletedSets())
		fmt.Printf("  +%d XP  level %d  streak %d (%s)\n",
			done.XPEarned, user.Level, user.Streak, streak.TierFor(user.Streak).Label)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadActive(); err != nil {
			return err
		}
		if err := appBackend.ClearSession(); err != nil {
			return err
		}
		color.Yellow("! Workout discarded")
		return nil
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadActive()
		if err != nil {
			return err
		}

		elapsed := appStore.Now().Sub(w.StartedAt)
		fmt.Printf("Workout in progress (%s)\n", elapsed.Round(time.Second))
		faint := color.New(color.Faint)
		for i, ex := range w.Exercises {
			fmt.Printf("%d. %s %s\n", i+1, ex.Name, faint.Sprintf("(%s)", ex.Group))
			for j, s := range ex.Sets {
				switch {
				case s.Completed && ex.Group.IsCardio():
					fmt.Printf("   [x] set %d: %.1f km / %.0f min\n", j+1, s.Distance, s.Minutes)
				case s.Completed:
					fmt.Printf("   [x] set %d: %.1f kg x %d\n", j+1, s.Weight, s.Reps)
				case s.TargetReps != "":
					fmt.Printf("   [ ] set %d (target %s)\n", j+1, s.TargetReps)
				default:
					fmt.Printf("   [ ] set %d\n", j+1)
				}
			}
		}
		return nil
	},
}

func init() {
	startCmd.Flags().StringVarP(&startTemplate, "template", "t", "", "Template ID to pre-fill from")
	exerciseAddCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "Muscle group (defaults to catalog lookup)")
	exerciseAddCmd.Flags().IntVarP(&exerciseSets, "sets", "s", 3, "Planned set count")

	exerciseCmd.AddCommand(exerciseAddCmd)
	setCmd.AddCommand(setAddCmd)
	setCmd.AddCommand(setDoneCmd)
	setCmd.AddCommand(setUndoCmd)

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(exerciseCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(activeCmd)
}
