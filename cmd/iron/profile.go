// ABOUTME: CLI command for editing display-only profile fields.
// ABOUTME: Name, accent color, and avatar have no behavioral effect.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	profileName   string
	profileAccent string
	profileAvatar string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the user profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile display fields",
	Long: `Update profile display fields. Flags left unset keep their current
value.

Examples:
  iron profile set --name "Ana"
  iron profile set --accent "#ea580c"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appStore.SetProfile(profileName, profileAccent, profileAvatar); err != nil {
			return err
		}
		color.Green("✓ Profile updated")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&profileAccent, "accent", "", "Accent color (hex)")
	profileSetCmd.Flags().StringVar(&profileAvatar, "avatar", "", "Avatar URI")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
