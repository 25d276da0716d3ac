package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/sheetmaster/internal/config"
	"github.com/backmassage/sheetmaster/internal/display"
	"github.com/backmassage/sheetmaster/internal/logging"
	"github.com/backmassage/sheetmaster/internal/naming"
	"github.com/backmassage/sheetmaster/internal/planner"
	"github.com/backmassage/sheetmaster/internal/probe"
	"github.com/backmassage/sheetmaster/internal/term"
)

// videoRow holds the probed per-file data for the listing table.
type videoRow struct {
	Name     string
	Duration string
	Size     string
	Grid     string
	HasSheet bool
}

// List discovers videos, probes each one, and prints a tabular report
// of duration, file size, the grid a contact sheet would use, and
// whether a sheet already exists next to the video.
func List(ctx context.Context, cfg *config.Config, log *logging.Logger) {
	videos, err := Discover(cfg.ScanDir, cfg.Extensions)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return
	}
	if len(videos) == 0 {
		log.Warn("No video files matching %s found in %s", strings.Join(cfg.Extensions, " "), cfg.ScanDir)
		return
	}

	total := len(videos)
	log.Info("Probing %d videos in %s …", total, cfg.ScanDir)
	fmt.Println()

	isTTY := term.IsTerminal(os.Stdout)
	prober := probe.NewProber()
	var rows []videoRow
	var skipped int

	for i, path := range videos {
		if ctx.Err() != nil {
			if isTTY {
				clearProgress()
			}
			log.Warn("Interrupted")
			return
		}

		printProgress(isTTY, i+1, total, skipped, filepath.Base(path))

		dur, err := prober.Probe(ctx, path)
		if err != nil {
			skipped++
			if isTTY {
				clearProgress()
			}
			log.Warn("Skip (probe failed): %s", filepath.Base(path))
			continue
		}

		row := videoRow{
			Name:     filepath.Base(path),
			Duration: display.FormatTimestamp(dur.Seconds),
			Grid:     "n/a",
		}
		if info, err := os.Stat(path); err == nil {
			row.Size = display.FormatBytes(info.Size())
		}
		if plan, err := planner.BuildPlan(dur.Seconds, cfg); err == nil {
			row.Grid = display.FormatGridLabel(plan.Filter.Columns, plan.Rows, plan.ThumbnailCount)
		}
		sheetPath := naming.OutputPath(path, "", cfg.OutputFormat)
		if _, err := os.Stat(sheetPath); err == nil {
			row.HasSheet = true
		}

		rows = append(rows, row)
	}

	if isTTY {
		clearProgress()
	}

	if len(rows) == 0 {
		log.Warn("No videos could be probed")
		return
	}

	printListTable(rows)

	existing := 0
	for _, r := range rows {
		if r.HasSheet {
			existing++
		}
	}
	log.Info("Probed %d videos, %d with existing contact sheets", len(rows), existing)
	if skipped > 0 {
		log.Warn("  %d video(s) could not be probed", skipped)
	}
}

func printListTable(rows []videoRow) {
	nameW := len("File")
	durW := len("Duration")
	sizeW := len("Size")
	gridW := len("Sheet Layout")

	for _, r := range rows {
		if len(r.Name) > nameW {
			nameW = len(r.Name)
		}
		if len(r.Duration) > durW {
			durW = len(r.Duration)
		}
		if len(r.Size) > sizeW {
			sizeW = len(r.Size)
		}
		if len(r.Grid) > gridW {
			gridW = len(r.Grid)
		}
	}

	if nameW > 50 {
		nameW = 50
	}

	header := fmt.Sprintf("  %-*s  %-*s  %-*s  %-*s  %s",
		nameW, "File",
		durW, "Duration",
		sizeW, "Size",
		gridW, "Sheet Layout",
		"Sheet",
	)
	separator := "  " + strings.Repeat("─", len(header)-2)

	fmt.Println(header)
	fmt.Println(separator)

	for _, r := range rows {
		name := truncateName(r.Name, nameW)

		fmt.Printf("  %-*s  %-*s  %-*s  %-*s  %s\n",
			nameW, name,
			durW, r.Duration,
			sizeW, r.Size,
			gridW, r.Grid,
			sheetCell(r.HasSheet),
		)
	}
	fmt.Println()
}

// truncateName shortens a display name to at most max characters, ending
// in an ellipsis. Truncation is by rune, not byte: media filenames are
// frequently multibyte and a byte slice can cut mid-character.
func truncateName(name string, max int) string {
	runes := []rune(name)
	if len(runes) <= max {
		return name
	}
	return string(runes[:max-1]) + "…"
}

// sheetCell wraps the plain text in ANSI color after formatting, so
// column alignment never counts escape bytes as visible width.
func sheetCell(exists bool) string {
	if exists {
		return term.Green + "yes" + term.NC
	}
	return term.Yellow + "no" + term.NC
}

// printProgress shows a live probe counter. On a TTY it writes an
// inline \r-overwritten line; otherwise it is a no-op (the skip warnings
// already provide enough breadcrumbs in piped/logged output).
func printProgress(isTTY bool, current, total, skipped int, name string) {
	if !isTTY {
		return
	}
	pct := current * 100 / total
	status := fmt.Sprintf("  Probing [%d/%d] %d%% ", current, total, pct)
	if skipped > 0 {
		status += fmt.Sprintf("(%d skipped) ", skipped)
	}

	status += truncateName(name, 40)

	// Pad to 80 chars to overwrite previous longer lines, then \r.
	if len(status) < 80 {
		status += strings.Repeat(" ", 80-len(status))
	}
	fmt.Fprintf(os.Stdout, "\r%s", status)
}

// clearProgress erases the inline progress line on a TTY.
func clearProgress() {
	fmt.Fprintf(os.Stdout, "\r%s\r", strings.Repeat(" ", 80))
}
