package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ghpurge/pkg/config"
	"ghpurge/pkg/github"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  "Commands for managing GitHub authentication",
}

var authValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the GitHub token and its permissions",
	Long: `Resolve the GitHub token, authenticate against the API, and report the
token's user and scopes.

The token is resolved in order from the GITHUB_TOKEN environment variable,
the ghpurge configuration file, and ~/.gitconfig. Repository deletion
requires the 'repo' and 'delete_repo' scopes; missing scopes are reported.`,
	RunE: runAuthValidate,
}

func init() {
	authCmd.AddCommand(authValidateCmd)
}

func runAuthValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  Could not load ghpurge config: %v\n", err)
		cfg = &config.Config{}
	}

	authManager := github.NewAuthManager()
	token, err := authManager.GetToken(cfg)
	if err != nil {
		fmt.Println(github.GetAuthInstructions())
		return nil
	}

	if err := authManager.Authenticate(token); err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	tokenInfo, err := authManager.ValidateToken(cmd.Context())
	if tokenInfo != nil {
		fmt.Printf("✓ Authenticated as %s\n", tokenInfo.User)
		if len(tokenInfo.Scopes) > 0 {
			fmt.Printf("✓ Token scopes: %s\n", strings.Join(tokenInfo.Scopes, ", "))
		}
	}
	if err != nil {
		return fmt.Errorf("token validation failed: %w", err)
	}

	return nil
}
