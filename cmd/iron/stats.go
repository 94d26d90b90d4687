// ABOUTME: CLI commands for analytics views.
// ABOUTME: Per-exercise series, muscle distribution, and cardio breakdown.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/analytics"
)

var (
	statsRange  string
	statsAnchor string
	statsPage   int
)

func parseStatsWindow() (analytics.TimeRange, time.Time, error) {
	rng, err := analytics.ParseRange(statsRange)
	if err != nil {
		return rng, time.Time{}, err
	}
	anchor := appStore.Now()
	if statsAnchor != "" {
		anchor, err = time.ParseInLocation("2006-01-02", statsAnchor, time.Local)
		if err != nil {
			return rng, time.Time{}, fmt.Errorf("invalid anchor %q (use YYYY-MM-DD)", statsAnchor)
		}
	}
	return rng, anchor, nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Analytics over workout history",
	Long: `Analytics over workout history. All subcommands accept --range
(7d, 30d, 1y, all) and --anchor (YYYY-MM-DD, defaults to today).`,
}

var statsExerciseCmd = &cobra.Command{
	Use:   "exercise <name>",
	Short: "Progression series and stats for one exercise",
	Long: `Show the progression series and all-time stats for one exercise.
Stats cover everything up to the anchor; the series and log are limited
to the window.

Examples:
  iron stats exercise "Supino Reto (Barra)"
  iron stats exercise "Esteira" --range 1y
  iron stats exercise "Agachamento Livre" --anchor 2026-06-01 --page 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, anchor, err := parseStatsWindow()
		if err != nil {
			return err
		}

		series := analytics.ExerciseSeries(appStore.History(), args[0], rng, anchor)
		if series.Stats.Sessions == 0 {
			fmt.Printf("No history for %q.\n", args[0])
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", color.New(color.Bold).Sprint(series.Name), faint.Sprintf("(%s)", series.Group))
		if series.Group.IsCardio() {
			fmt.Printf("  PR %.1f km  total %.1f km / %.0f min  %d sessions\n",
				series.Stats.PR, series.Stats.TotalDistance, series.Stats.TotalMinutes, series.Stats.Sessions)
		} else {
			fmt.Printf("  PR %.1f kg  best volume %.0f  %d sets in %d sessions\n",
				series.Stats.PR, series.Stats.MaxVolume, series.Stats.TotalSets, series.Stats.Sessions)
		}

		fmt.Println()
		for _, p := range series.Points {
			marker := " "
			if p.Anchor {
				marker = "*"
			}
			if series.Group.IsCardio() {
				fmt.Printf("%s %s  %.1f km / %.0f min\n", marker, p.Day, p.Distance, p.Minutes)
			} else {
				fmt.Printf("%s %s  %.1f kg  vol %.0f\n", marker, p.Day, p.MaxWeight, p.Volume)
			}
		}

		logs, more := analytics.Paginate(series.Logs, statsPage)
		if len(logs) > 0 {
			fmt.Println()
			fmt.Printf("Sessions (page %d):\n", statsPage)
			for _, l := range logs {
				fmt.Printf("  %s  %s  %d sets\n", l.Day, faint.Sprint(l.SessionID[:8]), len(l.Sets))
			}
			if more {
				fmt.Println(faint.Sprintf("  more on page %d", statsPage+1))
			}
		}
		return nil
	},
}

var statsMusclesCmd = &cobra.Command{
	Use:   "muscles",
	Short: "Completed-set distribution per muscle group",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, anchor, err := parseStatsWindow()
		if err != nil {
			return err
		}

		dist := analytics.MuscleDistribution(appStore.History(), rng, anchor)
		if dist.TotalSets == 0 {
			fmt.Println("No completed sets in this window.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%d completed sets\n", dist.TotalSets)
		for _, g := range dist.Groups {
			fmt.Printf("  %-8s %4d  %s\n", g.Group, g.Sets, faint.Sprintf("%.0f%%", g.Share*100))
		}
		return nil
	},
}

var statsCardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Cardio distance and time per activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		rng, anchor, err := parseStatsWindow()
		if err != nil {
			return err
		}

		summary := analytics.CardioBreakdown(appStore.History(), rng, anchor)
		if summary.TotalSets == 0 {
			fmt.Println("No cardio in this window.")
			return nil
		}

		fmt.Printf("%.1f km / %.0f min across %d sets\n",
			summary.TotalDistance, summary.TotalMinutes, summary.TotalSets)
		for _, a := range summary.Activities {
			fmt.Printf("  %-12s %6.1f km  %5.0f min  %d sets\n", a.Name, a.Distance, a.Minutes, a.Sets)
		}
		return nil
	},
}

func init() {
	statsCmd.PersistentFlags().StringVarP(&statsRange, "range", "r", "30d", "Time range: 7d, 30d, 1y, all")
	statsCmd.PersistentFlags().StringVarP(&statsAnchor, "anchor", "a", "", "Anchor day (YYYY-MM-DD), defaults to today")
	statsExerciseCmd.Flags().IntVarP(&statsPage, "page", "p", 1, "Session log page")

	statsCmd.AddCommand(statsExerciseCmd)
	statsCmd.AddCommand(statsMusclesCmd)
	statsCmd.AddCommand(statsCardioCmd)
	rootCmd.AddCommand(statsCmd)
}
