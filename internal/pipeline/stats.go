package pipeline

import (
	"fmt"

	"github.com/backmassage/sheetmaster/internal/display"
	"github.com/backmassage/sheetmaster/internal/term"
)

// RunStats aggregates the outcome of a run across every processed video.
type RunStats struct {
	Total            int
	Current          int
	Generated        int
	Skipped          int
	Failed           int
	TotalOutputBytes int64
}

// Summary renders the end-of-run report line.
func (s *RunStats) Summary() string {
	line := fmt.Sprintf("%sGenerated: %d%s  |  %sSkipped: %d%s  |  %sFailed: %d%s",
		term.Green, s.Generated, term.NC,
		term.Yellow, s.Skipped, term.NC,
		term.Red, s.Failed, term.NC)
	if s.TotalOutputBytes > 0 {
		line += fmt.Sprintf("  |  Output: %s", display.FormatBytes(s.TotalOutputBytes))
	}
	return line
}
