// ABOUTME: CLI command for exporting tracker data.
// ABOUTME: Supports JSON and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JaumCarvalho/iron-tracker/internal/storage"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export the full state in various formats.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  iron export json                 # Export all data as JSON
  iron export json -o backup.json  # Save to file
  iron export yaml                 # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := appStore.Snapshot()
		now := appStore.Now()

		var data []byte
		var err error
		switch args[0] {
		case "json":
			data, err = storage.ExportJSON(snapshot, now)
		case "yaml":
			data, err = storage.ExportYAML(snapshot, now)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportOutput, err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
