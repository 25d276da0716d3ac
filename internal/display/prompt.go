package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrSelectionCancelled is returned when the user aborts the prompt
// (EOF / Ctrl-D) instead of choosing a file.
var ErrSelectionCancelled = errors.New("selection cancelled")

// Prompt is the interactive file selector used when directory scanning
// finds more than one candidate video. It satisfies the pipeline's
// Resolver interface. Reader and writer are fields so tests can drive the
// prompt without a TTY.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

// NewPrompt returns a Prompt wired to stdin/stdout.
func NewPrompt() *Prompt {
	return &Prompt{In: os.Stdin, Out: os.Stdout}
}

// Resolve shows a numbered list of candidates and reads a 1-based choice.
// Invalid input re-prompts; EOF cancels.
func (p *Prompt) Resolve(candidates []string) (string, error) {
	fmt.Fprintln(p.Out, "\nFound multiple video files:")
	for i, c := range candidates {
		fmt.Fprintf(p.Out, "  %d: %s\n", i+1, filepath.Base(c))
	}

	scanner := bufio.NewScanner(p.In)
	for {
		fmt.Fprintf(p.Out, "Enter the number of the video to process (1-%d): ", len(candidates))
		if !scanner.Scan() {
			fmt.Fprintln(p.Out)
			return "", ErrSelectionCancelled
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > len(candidates) {
			fmt.Fprintln(p.Out, "Invalid choice. Please enter a number from the list.")
			continue
		}
		return candidates[n-1], nil
	}
}
