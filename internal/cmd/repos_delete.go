package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"ghpurge/pkg/config"
	"ghpurge/pkg/fuzzy"
	"ghpurge/pkg/github"
	"ghpurge/pkg/selection"
)

var (
	deleteInteractive bool
	deleteTimeout     time.Duration
)

var reposDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Interactively select and delete repositories",
	Long: `List the repositories of the authenticated user and delete a selected
subset after explicit confirmation.

WORKFLOW:

1. All repositories are fetched (the listing is paginated internally) and
   shown in a numbered table.
2. You pick repositories either by typing numbers and ranges (e.g. 1,3,5-8)
   or, with --interactive, through an fzf-style multi-select picker.
3. The resolved repositories are shown once more and deletion only proceeds
   after you type the literal token DELETE.
4. Each repository is deleted independently; a failed deletion never stops
   the rest of the batch. The final line reports the success tally.

SAFETY:

• Nothing is deleted before the confirmation token is typed.
• A failed listing aborts the run before any destructive action.
• Ctrl-C at any point is a normal, clean way out.

Examples:
  # Select by numbers and ranges
  ghpurge repos delete

  # Fuzzy multi-select picker (TAB to mark, Enter to confirm)
  ghpurge repos delete --interactive

  # Slow network: allow each API call 30 seconds
  ghpurge repos delete --timeout 30s`,
	RunE: runReposDelete,
}

func init() {
	reposDeleteCmd.Flags().BoolVar(&deleteInteractive, "interactive", false, "Pick repositories with an fzf-style multi-select instead of typing numbers")
	reposDeleteCmd.Flags().DurationVar(&deleteTimeout, "timeout", 0, "Per-request timeout for GitHub API calls (default 10s)")
	reposCmd.AddCommand(reposDeleteCmd)
}

func runReposDelete(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("⚠️  Could not load ghpurge config: %v\n", err)
		cfg = &config.Config{}
	}

	authManager := github.NewAuthManager()
	token, err := authManager.GetToken(cfg)
	if err != nil {
		fmt.Println("Error: GitHub token is required.")
		fmt.Println()
		fmt.Println(github.GetAuthInstructions())
		return nil
	}

	timeout := deleteTimeout
	if timeout == 0 && cfg.GitHub.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.GitHub.RequestTimeoutSeconds) * time.Second
	}

	workflow := &deleteWorkflow{
		client:      github.NewClient(token, timeout),
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: deleteInteractive,
	}

	return workflow.run(cmd.Context())
}

// deleteWorkflow runs the fetch → display → select → confirm → delete flow.
// Input and output streams are injected so the whole flow is testable
// without a terminal.
type deleteWorkflow struct {
	client      github.APIClient
	in          io.Reader
	out         io.Writer
	interactive bool
	picker      fuzzy.FzfFinderInterface // nil means the real fzf picker
}

func (w *deleteWorkflow) run(ctx context.Context) error {
	fmt.Fprintln(w.out, "GitHub Repository Bulk Deletion Tool")
	fmt.Fprintln(w.out, "=====================================")
	fmt.Fprintln(w.out, "WARNING: This action is irreversible!")
	fmt.Fprintln(w.out, "Please be absolutely sure before proceeding.")
	fmt.Fprintln(w.out)

	fmt.Fprintln(w.out, "Fetching your repositories...")
	repos, err := w.client.ListRepositories(ctx)
	if err != nil {
		// Abort before any destructive action; listing is all-or-nothing
		fmt.Fprintln(w.out, color.RedString("Error: %v", err))
		return nil
	}

	if len(repos) == 0 {
		fmt.Fprintln(w.out, "No repositories found.")
		return nil
	}

	fmt.Fprintf(w.out, "\nFound %d repositories:\n", len(repos))
	w.renderTable(repos)

	reader := bufio.NewReader(w.in)

	indices, err := w.selectIndices(reader, repos)
	if err != nil {
		if errors.Is(err, selection.ErrInvalidFormat) {
			fmt.Fprintln(w.out, "Invalid input format. Please use numbers and ranges like 1,3,5-8.")
			return nil
		}
		fmt.Fprintln(w.out, "Operation cancelled.")
		return nil
	}

	if len(indices) == 0 {
		fmt.Fprintln(w.out, "No valid repositories selected.")
		return nil
	}

	selected := make([]github.Repository, 0, len(indices))
	for _, index := range indices {
		selected = append(selected, repos[index])
	}

	if !w.confirm(reader, selected) {
		fmt.Fprintln(w.out, "Operation cancelled.")
		return nil
	}

	fmt.Fprintln(w.out, "\nDeleting repositories...")
	successCount := 0
	for _, repo := range selected {
		fmt.Fprintf(w.out, "Deleting %s... ", repo.Name)
		if w.client.DeleteRepository(ctx, repo.Owner, repo.Name) {
			fmt.Fprintln(w.out, color.GreenString("✓ Success"))
			successCount++
		} else {
			fmt.Fprintln(w.out, color.RedString("✗ Failed"))
		}
	}

	fmt.Fprintf(w.out, "\nOperation completed. %d/%d repositories deleted successfully.\n",
		successCount, len(selected))

	return nil
}

// renderTable prints the numbered repository listing
func (w *deleteWorkflow) renderTable(repos []github.Repository) {
	table := tablewriter.NewTable(w.out,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
		})),
	)

	table.Header([]string{"#", "Repository Name", "Visibility"})
	for i, repo := range repos {
		table.Append([]string{
			strconv.Itoa(i + 1),
			repo.Name,
			repo.Visibility(),
		})
	}

	table.Render()
}

// selectIndices resolves the user's selection to zero-based repository
// indices, either from the range prompt or the interactive picker.
func (w *deleteWorkflow) selectIndices(reader *bufio.Reader, repos []github.Repository) ([]int, error) {
	if w.interactive {
		return w.pickInteractive(repos)
	}

	fmt.Fprintln(w.out, "\nEnter the numbers of repositories you want to delete, separated by commas:")
	fmt.Fprintln(w.out, "Example: 1,3,5-8 (to delete repos 1, 3, and 5 through 8)")
	fmt.Fprint(w.out, "Repositories to delete: ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	return selection.Parse(line, len(repos))
}

// pickInteractive runs the fzf multi-select picker and maps the chosen
// entries back to repository indices, in listing order.
func (w *deleteWorkflow) pickInteractive(repos []github.Repository) ([]int, error) {
	picker := w.picker
	if picker == nil {
		picker = fuzzy.NewFzf("Select repositories to delete (TAB to mark, Enter to confirm):")
	}

	options := make([]fuzzy.Option, 0, len(repos))
	byFullName := make(map[string]int, len(repos))
	for i, repo := range repos {
		options = append(options, fuzzy.Option{
			Value:       repo.FullName(),
			Description: repo.Visibility(),
		})
		byFullName[repo.FullName()] = i
	}

	if err := picker.SetOptions(options); err != nil {
		return nil, err
	}

	values, err := picker.SelectMany()
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(values))
	indices := make([]int, 0, len(values))
	for _, value := range values {
		if index, ok := byFullName[value]; ok && !seen[index] {
			indices = append(indices, index)
			seen[index] = true
		}
	}
	sort.Ints(indices)

	return indices, nil
}

// confirm lists the resolved repositories and requires the literal token
// DELETE, case-sensitive, surrounding whitespace trimmed. Anything else
// cancels.
func (w *deleteWorkflow) confirm(reader *bufio.Reader, selected []github.Repository) bool {
	fmt.Fprintf(w.out, "\nWARNING: You are about to delete %d repositories!\n", len(selected))
	fmt.Fprintln(w.out, "The following repositories will be deleted:")
	for _, repo := range selected {
		fmt.Fprintf(w.out, "- %s (owner: %s)\n", repo.Name, repo.Owner)
	}

	fmt.Fprint(w.out, "\nTo confirm deletion, type 'DELETE': ")

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}

	return strings.TrimSpace(line) == "DELETE"
}
