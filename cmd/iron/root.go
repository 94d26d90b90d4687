// ABOUTME: Root Cobra command for iron CLI.
// ABOUTME: Handles storage backend lifecycle via PersistentPre/PostRunE.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/config"
	"github.com/JaumCarvalho/iron-tracker/internal/storage"
	"github.com/JaumCarvalho/iron-tracker/internal/store"
)

var (
	appBackend storage.Backend
	appStore   *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "iron",
	Short: "Workout streak and progression tracker",
	Long: `Iron is a CLI tool for tracking workouts, streaks, and progression.

WHAT IT TRACKS:

  Workouts       strength sets (weight x reps) and cardio (distance/time)
  Streak         consecutive active days; rest days freeze the chain
  Progression    XP per workout, levels every 1000 XP
  Templates      reusable workout plans with target sets and reps

QUICK START:

  $ iron start                          # Begin a workout
  $ iron exercise add "Supino Reto (Barra)"
  $ iron set done 40 10                 # Complete the next set (40kg x 10)
  $ iron finish                         # Save the workout, earn XP
  $ iron streak                         # Check your streak
  $ iron rest 2026-08-30                # Mark an intentional rest day

ANALYTICS:

  $ iron status                         # Level, XP, streak, totals
  $ iron stats exercise "Supino Reto (Barra)" --range 30d
  $ iron stats muscles --range 7d       # Set distribution per muscle group
  $ iron stats cardio --range 1y        # Distance and time per activity

MCP INTEGRATION:

  Run 'iron mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants:

  {
    "mcpServers": {
      "iron": { "command": "iron", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  State is stored locally at ~/.local/share/iron (Badger by default,
  SQLite via config). See ~/.config/iron/config.json.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't need storage
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "catalog" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appBackend, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		appStore, err = store.New(appBackend, nil)
		if errors.Is(err, storage.ErrCorruptState) {
			color.Yellow("! Stored data was unreadable; starting from defaults")
			err = nil
		}
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appBackend != nil {
			return appBackend.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
