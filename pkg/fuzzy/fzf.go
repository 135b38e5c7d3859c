package fuzzy

import (
	"fmt"
	"io"
	"os"
	"strings"

	fzf "github.com/junegunn/fzf/src"
)

// FzfRunner defines the interface for running fzf
type FzfRunner interface {
	Run(opts *fzf.Options) (int, error)
}

// DefaultFzfRunner implements the FzfRunner interface using the real fzf library
type DefaultFzfRunner struct{}

// Run executes fzf with the given options
func (r *DefaultFzfRunner) Run(opts *fzf.Options) (int, error) {
	return fzf.Run(opts)
}

// FzfFinder implements interactive multi-selection using the fzf library.
// TAB marks entries, Enter confirms.
type FzfFinder struct {
	options []Option
	prompt  string
	runner  FzfRunner
}

// NewFzf creates a new fzf-style multi-selector
func NewFzf(prompt string) *FzfFinder {
	return &FzfFinder{
		prompt:  prompt,
		options: make([]Option, 0),
		runner:  &DefaultFzfRunner{},
	}
}

// NewFzfWithRunner creates a new fzf-style multi-selector with a custom runner (for testing)
func NewFzfWithRunner(prompt string, runner FzfRunner) *FzfFinder {
	return &FzfFinder{
		prompt:  prompt,
		options: make([]Option, 0),
		runner:  runner,
	}
}

// SetOptions sets the available options for selection
func (f *FzfFinder) SetOptions(options []Option) error {
	if options == nil {
		return fmt.Errorf("options cannot be nil")
	}

	f.options = make([]Option, len(options))
	copy(f.options, options)
	return nil
}

// SetPrompt sets the display prompt
func (f *FzfFinder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// SelectMany starts the multi-selection process using the fzf library and
// returns the chosen option values.
func (f *FzfFinder) SelectMany() ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	// Create a temporary file with the options
	tmpFile, err := os.CreateTemp("", "fzf-options-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Ignore cleanup errors
	}()
	defer func() {
		_ = tmpFile.Close() // Ignore close errors
	}()

	// Write options to temporary file
	for _, option := range f.options {
		displayText := option.Value
		if option.Description != "" {
			displayText = fmt.Sprintf("%s  │  %s", option.Value, option.Description)
		}
		if _, err := fmt.Fprintln(tmpFile, displayText); err != nil {
			return nil, fmt.Errorf("failed to write option to file: %w", err)
		}
	}

	// Close the file so fzf can read it
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temporary file: %w", err)
	}

	// Prepare fzf arguments
	args := []string{
		"--prompt=" + f.prompt + " ",
		"--height=15",
		"--layout=default",
		"--multi",
		"--marker=✗",
		"--cycle",
		"--hscroll",
		"--hscroll-off=10",
		"--tabstop=8",
		"--clear",
		"--extended",
		"--algo=v2",
		"--tiebreak=length",
		"--no-mouse",
		"--no-reverse",
		"--border=none",
	}

	// Parse options and run fzf
	opts, err := fzf.ParseOptions(true, args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fzf options: %w", err)
	}

	// Redirect stdin to read from our temporary file
	originalStdin := os.Stdin
	defer func() { os.Stdin = originalStdin }()

	tmpFileForReading, err := os.Open(tmpFile.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to open temporary file for reading: %w", err)
	}
	defer func() {
		_ = tmpFileForReading.Close() // Ignore close errors
	}()

	os.Stdin = tmpFileForReading

	// Capture stdout to get the selected result
	originalStdout := os.Stdout
	defer func() { os.Stdout = originalStdout }()

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipe: %w", err)
	}
	defer func() {
		_ = r.Close() // Ignore close errors
	}()
	defer func() {
		_ = w.Close() // Ignore close errors
	}()

	os.Stdout = w

	// Run fzf
	exitCode, err := f.runner.Run(opts)

	// Restore stdout before reading result
	_ = w.Close() // Ignore close errors
	os.Stdout = originalStdout

	if err != nil {
		// Fallback to the numbered menu if fzf fails
		return f.fallbackSelectMany()
	}

	if exitCode != fzf.ExitOk {
		return nil, fmt.Errorf("fzf selection cancelled or failed")
	}

	// Read the result
	result, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read fzf result: %w", err)
	}

	return f.parseSelectedLines(string(result)), nil
}

// parseSelectedLines extracts option values from fzf output, one selected
// entry per line. The display format is "value  │  description".
func (f *FzfFinder) parseSelectedLines(output string) []string {
	known := make(map[string]struct{}, len(f.options))
	for _, option := range f.options {
		known[option.Value] = struct{}{}
	}

	var values []string
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, "  │  ")
		value := strings.TrimSpace(parts[0])

		if _, ok := known[value]; ok {
			values = append(values, value)
			continue
		}

		// Fallback: keep the selected text as-is
		values = append(values, value)
	}

	return values
}

// FzfFinderInterface defines the interface for fzf-based multi-selection
type FzfFinderInterface interface {
	SetOptions(options []Option) error
	SetPrompt(prompt string)
	SelectMany() ([]string, error)
}

// fallbackSelectMany provides a simple selection for when fzf fails
func (f *FzfFinder) fallbackSelectMany() ([]string, error) {
	finder := New(f.prompt, os.Stdin, os.Stdout)
	for _, option := range f.options {
		finder.AddOption(option.Value, option.Description)
	}
	return finder.SelectMany()
}

// Ensure FzfFinder implements the interface
var _ FzfFinderInterface = (*FzfFinder)(nil)
