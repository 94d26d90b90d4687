// ABOUTME: CLI commands for development tooling.
// ABOUTME: Deterministic seeding, the dev log, and data resets.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	resetHistory bool
	resetProfile bool
	resetAll     bool
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Development tooling",
}

var devSeedCmd = &cobra.Command{
	Use:   "seed [days]",
	Short: "Seed deterministic workout history",
	Long: `Replace history and rest days with a deterministic simulation.
Every 7th day back from today is rest; the others rotate through a push
pair, a pull pair, and cardio. Defaults to 365 days.

Examples:
  iron dev seed
  iron dev seed 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days := 365
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid day count: %s", args[0])
			}
			days = n
		}

		if err := appStore.SeedData(days); err != nil {
			return err
		}

		user := appStore.User()
		color.Green("✓ Seeded %d days", days)
		fmt.Printf("  %d workouts, level %d, streak %d\n",
			len(appStore.History()), user.Level, user.Streak)
		return nil
	},
}

var devLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the dev log",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := appStore.DevLog()
		if len(log) == 0 {
			fmt.Println("Dev log is empty.")
			return nil
		}
		for _, line := range log {
			fmt.Println(line)
		}
		return nil
	},
}

var devResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset stored data",
	Long: `Reset stored data. Exactly one scope flag is required.

  --history   Clear workout history only (streak is then recomputed)
  --profile   Reset level, XP, and streak only
  --all       Factory reset: everything, including templates`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := 0
		for _, b := range []bool{resetHistory, resetProfile, resetAll} {
			if b {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("pick exactly one of --history, --profile, --all")
		}

		switch {
		case resetHistory:
			if err := appStore.ClearHistoryOnly(); err != nil {
				return err
			}
			if _, err := appStore.RecomputeStreak(); err != nil {
				return err
			}
			color.Yellow("! History cleared")
		case resetProfile:
			if err := appStore.ClearProfileOnly(); err != nil {
				return err
			}
			color.Yellow("! Profile reset")
		case resetAll:
			if err := appStore.ResetData(); err != nil {
				return err
			}
			color.Yellow("! Factory reset complete")
		}
		return nil
	},
}

func init() {
	devResetCmd.Flags().BoolVar(&resetHistory, "history", false, "Clear workout history only")
	devResetCmd.Flags().BoolVar(&resetProfile, "profile", false, "Reset level, XP, and streak only")
	devResetCmd.Flags().BoolVar(&resetAll, "all", false, "Factory reset")

	devCmd.AddCommand(devSeedCmd)
	devCmd.AddCommand(devLogCmd)
	devCmd.AddCommand(devResetCmd)
	rootCmd.AddCommand(devCmd)
}
