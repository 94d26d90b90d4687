// ABOUTME: CLI command printing the build version.
// ABOUTME: Version is overridable at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("iron %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
