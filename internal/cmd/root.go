package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ghpurge",
	Short: "A CLI tool for bulk-deleting GitHub repositories",
	Long: `Ghpurge is a command-line tool for cleaning up GitHub accounts. It lists
the repositories of the authenticated user and deletes a hand-picked subset
after an explicit confirmation. Deletion is irreversible, so the tool never
touches a repository before you type the confirmation token.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reposCmd)
}
