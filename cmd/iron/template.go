// ABOUTME: CLI commands for workout templates.
// ABOUTME: List, show, add, and delete reusable workout plans.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/exercises"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

var templateColor string

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Manage workout templates",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		templates := appStore.Templates()
		if len(templates) == 0 {
			fmt.Println("No templates saved.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range templates {
			line := fmt.Sprintf("%s  %s  %d exercises", t.Name, faint.Sprint(t.ID[:8]), len(t.Exercises))
			if t.LastUsed != nil {
				line += faint.Sprintf("  last used %s", t.LastUsed.Format("2006-01-02"))
			}
			fmt.Println(line)
		}
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a template's plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTemplate(args[0])
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(t.Name), faint.Sprint(t.ID))
		for _, ex := range t.Exercises {
			reps := ex.Reps
			if reps == "" {
				reps = "-"
			}
			fmt.Printf("  %s %s\n", ex.Name, faint.Sprintf("(%s, %d sets, reps %s)", ex.Group, ex.Sets, reps))
		}
		return nil
	},
}

var templateAddCmd = &cobra.Command{
	Use:   "add <name> <exercise:sets[:reps]>...",
	Short: "Create a template",
	Long: `Create a template from a name and a list of exercise specs. Each
spec is "exercise:sets" or "exercise:sets:reps"; the muscle group comes
from the catalog.

Examples:
  iron template add "Push A" "Supino Reto (Barra):3:8-12" "Tríceps Corda:3:12"
  iron template add "Cardio" "Esteira:1"`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := models.WorkoutTemplate{Name: args[0], Color: templateColor}
		for _, spec := range args[1:] {
			parts := strings.Split(spec, ":")
			if len(parts) < 2 || len(parts) > 3 {
				return fmt.Errorf("invalid exercise spec %q (use name:sets[:reps])", spec)
			}
			sets, err := strconv.Atoi(parts[1])
			if err != nil || sets < 1 {
				return fmt.Errorf("invalid set count in %q", spec)
			}
			ex := models.TemplateExercise{
				Name:  parts[0],
				Group: exercises.GroupOf(parts[0]),
				Sets:  sets,
			}
			if len(parts) == 3 {
				ex.Reps = parts[2]
			}
			t.Exercises = append(t.Exercises, ex)
		}

		saved, err := appStore.SaveTemplate(t)
		if err != nil {
			return err
		}

		color.Green("✓ Template saved: %s", saved.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(saved.ID))
		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTemplate(args[0])
		if err != nil {
			return err
		}
		if err := appStore.DeleteTemplate(t.ID); err != nil {
			return err
		}
		color.Green("✓ Deleted template: %s", t.Name)
		return nil
	},
}

// resolveTemplate matches a template by full ID, ID prefix, or name.
func resolveTemplate(key string) (models.WorkoutTemplate, error) {
	if t, err := appStore.Template(key); err == nil {
		return t, nil
	}
	var match *models.WorkoutTemplate
	for _, t := range appStore.Templates() {
		if strings.HasPrefix(t.ID, key) || t.Name == key {
			if match != nil {
				return models.WorkoutTemplate{}, fmt.Errorf("ambiguous template: %s", key)
			}
			t := t
			match = &t
		}
	}
	if match == nil {
		return models.WorkoutTemplate{}, fmt.Errorf("template not found: %s", key)
	}
	return *match, nil
}

func init() {
	templateAddCmd.Flags().StringVarP(&templateColor, "color", "c", "", "Display color (hex)")

	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateAddCmd)
	templateCmd.AddCommand(templateDeleteCmd)
	rootCmd.AddCommand(templateCmd)
}
