// ABOUTME: CLI command for browsing the exercise catalog.
// ABOUTME: Read-only listing grouped by muscle group.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/exercises"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [group]",
	Short: "Browse the exercise catalog",
	Long: `Browse the built-in exercise catalog, optionally filtered by muscle
group (Peito, Costas, Pernas, Ombros, Braços, Abdômen, Cardio, Outros).

Examples:
  iron catalog
  iron catalog Peito`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups := models.AllGroups
		if len(args) == 1 {
			g := models.MuscleGroup(args[0])
			if !models.IsValidGroup(g) {
				return fmt.Errorf("unknown muscle group: %s", args[0])
			}
			groups = []models.MuscleGroup{g}
		}

		bold := color.New(color.Bold)
		for _, g := range groups {
			names := exercises.Names(g)
			if len(names) == 0 {
				continue
			}
			fmt.Println(bold.Sprint(g))
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
