// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs the stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "iron": {
        "command": "iron",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_streak           Current streak and tier
  get_profile          Profile with level and XP progress
  toggle_rest_day      Mark or unmark a rest day
  log_workout          Record a completed workout
  list_history         List recent workouts
  exercise_series      Per-exercise progression and stats
  muscle_distribution  Completed sets per muscle group
  cardio_breakdown     Distance and time per cardio activity
  list_templates       List saved templates
  save_template        Create or update a template
  delete_template      Delete a template

AVAILABLE RESOURCES:

  iron://profile   Profile dashboard
  iron://today     Today's workouts and rest status
  iron://streak    Streak with tier ladder context`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appStore)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
