// ABOUTME: CLI commands for streak, rest days, and profile status.
// ABOUTME: Read-side views plus the rest-day toggle.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/analytics"
	"github.com/JaumCarvalho/iron-tracker/internal/models"
	"github.com/JaumCarvalho/iron-tracker/internal/progression"
	"github.com/JaumCarvalho/iron-tracker/internal/streak"
)

var restCmd = &cobra.Command{
	Use:   "rest [day]",
	Short: "Toggle a rest day",
	Long: `Mark or unmark a calendar day as intentional rest. Rest days freeze
the streak instead of breaking it. Defaults to today.

Examples:
  iron rest                # Toggle today
  iron rest 2026-08-30     # Toggle a specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := models.DayKey(appStore.Now())
		if len(args) == 1 {
			if _, err := time.Parse("2006-01-02", args[0]); err != nil {
				return fmt.Errorf("invalid day %q (use YYYY-MM-DD)", args[0])
			}
			day = args[0]
		}

		marked, err := appStore.ToggleRestDay(day)
		if err != nil {
			return err
		}

		if marked {
			color.Green("✓ Rest day marked: %s", day)
		} else {
			color.Yellow("! Rest day unmarked: %s", day)
		}
		fmt.Printf("  streak %d\n", appStore.User().Streak)
		return nil
	},
}

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := appStore.User()
		tier := streak.TierFor(user.Streak)

		fmt.Printf("%d day streak  %s\n", user.Streak, color.New(color.Bold).Sprint(tier.Label))
		for i := len(streak.Tiers) - 1; i >= 0; i-- {
			if streak.Tiers[i].Days > user.Streak {
				fmt.Printf("  next: %s at %d days (%d to go)\n",
					streak.Tiers[i].Label, streak.Tiers[i].Days, streak.Tiers[i].Days-user.Streak)
				break
			}
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show profile, level, XP, and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := appStore.User()
		history := appStore.History()
		current, needed := progression.LevelProgress(user.TotalXP)
		tier := streak.TierFor(user.Streak)
		faint := color.New(color.Faint)

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(user.Name))
		fmt.Printf("  Level %d  %s\n", user.Level, faint.Sprintf("%d/%d XP", current, current+needed))
		fmt.Printf("  Streak %d  %s\n", user.Streak, faint.Sprint(tier.Label))
		fmt.Printf("  Workouts %d  Sets %d\n", len(history), analytics.TotalSets(history))
		if user.LastActivityDate != nil {
			fmt.Printf("  Last activity %s\n", faint.Sprint(user.LastActivityDate.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		history := appStore.History()
		if len(history) == 0 {
			fmt.Println("No workouts recorded.")
			return nil
		}
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, w := range history {
			fmt.Printf("%s  %s  %d exercises, %d sets, +%d XP\n",
				w.Date.Format("2006-01-02"),
				faint.Sprint(w.ID[:8]),
				len(w.Exercises), w.CompletedSets(), w.XPEarned)
			for _, ex := range w.Exercises {
				fmt.Printf("  %s %s\n", ex.Name, faint.Sprintf("(%s, %d sets)", ex.Group, len(ex.Sets)))
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Max workouts to show")

	rootCmd.AddCommand(restCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
}
