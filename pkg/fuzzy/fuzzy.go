package fuzzy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ghpurge/pkg/selection"
)

// Option represents a selectable option in the fuzzy finder
type Option struct {
	Value       string
	Description string
}

// Finder is a plain numbered-menu multi-selector used when fzf is not
// usable (e.g. no TTY). Input uses the same comma/range syntax as the main
// selection prompt.
type Finder struct {
	prompt  string
	options []Option
	in      io.Reader
	out     io.Writer
}

// New creates a new finder with the given prompt reading from in and
// writing to out
func New(prompt string, in io.Reader, out io.Writer) *Finder {
	return &Finder{
		prompt:  prompt,
		options: make([]Option, 0),
		in:      in,
		out:     out,
	}
}

// AddOption adds an option to the finder
func (f *Finder) AddOption(value, description string) {
	f.options = append(f.options, Option{
		Value:       value,
		Description: description,
	})
}

// SetPrompt updates the prompt message
func (f *Finder) SetPrompt(prompt string) {
	f.prompt = prompt
}

// SelectMany displays the numbered options and reads a comma/range
// selection, returning the chosen values in listing order.
func (f *Finder) SelectMany() ([]string, error) {
	if len(f.options) == 0 {
		return nil, fmt.Errorf("no options available")
	}

	fmt.Fprintln(f.out, f.prompt)
	fmt.Fprintln(f.out, strings.Repeat("-", len(f.prompt)))

	for i, option := range f.options {
		fmt.Fprintf(f.out, "%d. %s", i+1, option.Value)
		if option.Description != "" {
			fmt.Fprintf(f.out, " - %s", option.Description)
		}
		fmt.Fprintln(f.out)
	}

	fmt.Fprintf(f.out, "\nSelect options (e.g. 1,3,5-8): ")

	reader := bufio.NewReader(f.in)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	indices, err := selection.Parse(input, len(f.options))
	if err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	values := make([]string, 0, len(indices))
	for _, index := range indices {
		values = append(values, f.options[index].Value)
	}

	return values, nil
}
