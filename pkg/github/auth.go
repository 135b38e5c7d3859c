package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
	"golang.org/x/term"
	"gopkg.in/ini.v1"

	"ghpurge/pkg/config"
)

// AuthManager handles GitHub authentication
type AuthManager struct {
	client *github.Client
	token  string
}

// NewAuthManager creates a new authentication manager
func NewAuthManager() *AuthManager {
	return &AuthManager{}
}

// GetToken resolves the GitHub token. Sources are tried in order: the
// GITHUB_TOKEN environment variable, the ghpurge config file, the
// [github] token entry in ~/.gitconfig, and finally an interactive
// prompt with echo suppressed. The token is never logged or persisted by
// this package.
func (am *AuthManager) GetToken(cfg *config.Config) (string, error) {
	// First, check environment variable
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return strings.TrimSpace(token), nil
	}

	// Then check config file
	if cfg != nil && cfg.GitHub.Token != "" {
		return strings.TrimSpace(cfg.GitHub.Token), nil
	}

	// Then check the user's git configuration
	if token := tokenFromGitConfig(); token != "" {
		return token, nil
	}

	// Last resort: prompt interactively, without echoing
	if term.IsTerminal(int(os.Stdin.Fd())) {
		token, err := promptForToken()
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("no GitHub token found: set GITHUB_TOKEN, configure token in ~/.ghpurge/config.yaml, or set github.token in ~/.gitconfig")
}

// tokenFromGitConfig reads github.token from ~/.gitconfig. Git config files
// use INI syntax, so a missing file or section simply yields no token.
func tokenFromGitConfig() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return tokenFromGitConfigPath(filepath.Join(homeDir, ".gitconfig"))
}

func tokenFromGitConfigPath(path string) string {
	gitConfig, err := ini.Load(path)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(gitConfig.Section("github").Key("token").String())
}

// promptForToken asks for the token on the terminal with input suppressed
func promptForToken() (string, error) {
	fmt.Print("Enter your GitHub Personal Access Token: ")
	tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(string(tokenBytes)), nil
}

// Authenticate sets up the GitHub client with the provided token
func (am *AuthManager) Authenticate(token string) error {
	if token == "" {
		return fmt.Errorf("GitHub token cannot be empty")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)

	am.client = github.NewClient(tc)
	am.token = token

	return nil
}

// ValidateToken validates the GitHub token and checks permissions
func (am *AuthManager) ValidateToken(ctx context.Context) (*TokenInfo, error) {
	if am.client == nil {
		return nil, fmt.Errorf("not authenticated: call Authenticate() first")
	}

	user, resp, err := am.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to validate GitHub token: %w", WrapAPIError(err))
	}

	scopes := []string{}
	if scopeHeader := resp.Header.Get("X-OAuth-Scopes"); scopeHeader != "" {
		scopes = strings.Split(strings.ReplaceAll(scopeHeader, " ", ""), ",")
	}

	tokenInfo := &TokenInfo{
		User:   user.GetLogin(),
		Scopes: scopes,
	}

	// Repository deletion needs both scopes
	if err := am.validatePermissions(tokenInfo.Scopes); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// validatePermissions checks if the token has required permissions
func (am *AuthManager) validatePermissions(scopes []string) error {
	requiredScopes := []string{"repo", "delete_repo"}
	scopeMap := make(map[string]bool)

	for _, scope := range scopes {
		scopeMap[scope] = true
	}

	var missingScopes []string
	for _, required := range requiredScopes {
		if !scopeMap[required] {
			missingScopes = append(missingScopes, required)
		}
	}

	if len(missingScopes) > 0 {
		return fmt.Errorf("GitHub token missing required permissions: %s. Please ensure your token has the following scopes: %s",
			strings.Join(missingScopes, ", "), strings.Join(requiredScopes, ", "))
	}

	return nil
}

// TokenInfo contains information about the authenticated token
type TokenInfo struct {
	User   string   `json:"user"`
	Scopes []string `json:"scopes"`
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Please set up authentication using one of the following methods:

1. Environment Variable (Recommended):
   export GITHUB_TOKEN="your_personal_access_token"

2. Configuration File:
   Add the following to ~/.ghpurge/config.yaml:

   github:
     token: "your_personal_access_token"

3. Git Configuration:
   git config --global github.token "your_personal_access_token"

To create a personal access token:
1. Go to GitHub Settings > Developer settings > Personal access tokens
2. Click "Generate new token (classic)"
3. Select the following scopes:
   - repo (Full control of private repositories)
   - delete_repo (Delete repositories)
4. Copy the generated token and use it with one of the methods above

Note: The token must have 'delete_repo' scope to delete repositories.`
}
