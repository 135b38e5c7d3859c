package cmd

import (
	"github.com/spf13/cobra"
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Repository management commands",
	Long: `Commands for managing the repositories of the authenticated GitHub user.

Available commands:
  delete - Interactively select and delete repositories

All commands authenticate with the token resolved from GITHUB_TOKEN, the
ghpurge configuration file, or ~/.gitconfig.`,
}

func init() {
	// Subcommands are added in their respective files
}
