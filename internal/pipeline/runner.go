package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/sheetmaster/internal/config"
	"github.com/backmassage/sheetmaster/internal/display"
	"github.com/backmassage/sheetmaster/internal/ffmpeg"
	"github.com/backmassage/sheetmaster/internal/logging"
	"github.com/backmassage/sheetmaster/internal/naming"
	"github.com/backmassage/sheetmaster/internal/planner"
	"github.com/backmassage/sheetmaster/internal/probe"
)

// Resolver picks one video out of several discovered candidates.
// *display.Prompt satisfies it; a nil Resolver means non-interactive
// mode, where ambiguity is an error instead of a question.
type Resolver interface {
	Resolve(candidates []string) (string, error)
}

// Run processes the videos selected by cfg sequentially and returns
// aggregate statistics. A failing video never aborts the run; it is
// counted and the next video proceeds.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, resolver Resolver) RunStats {
	var stats RunStats

	videos, err := selectVideos(cfg, log, resolver)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}
	if len(videos) == 0 {
		log.Warn("No video files matching %s found in %s", strings.Join(cfg.Extensions, " "), cfg.ScanDir)
		return stats
	}

	stats.Total = len(videos)
	collisions := naming.NewCollisionResolver()

	prober := probe.NewProber()
	renderer := ffmpeg.NewRenderer()

	for _, video := range videos {
		if ctx.Err() != nil {
			log.Warn("Interrupted, stopping after %d of %d videos", stats.Current, stats.Total)
			break
		}
		stats.Current++
		processVideo(ctx, cfg, log, video, prober, renderer, collisions, &stats)
	}

	log.Info("%s", stats.Summary())
	return stats
}

// selectVideos narrows the run down to the videos to process: the
// explicit file argument, everything discovered with --all, or a
// single discovered candidate. Multiple candidates without --all go
// through the resolver, or fail in non-interactive mode.
func selectVideos(cfg *config.Config, log *logging.Logger, resolver Resolver) ([]string, error) {
	if cfg.VideoFile != "" {
		return []string{cfg.VideoFile}, nil
	}

	videos, err := Discover(cfg.ScanDir, cfg.Extensions)
	if err != nil {
		return nil, err
	}

	switch {
	case len(videos) <= 1:
		return videos, nil
	case cfg.ProcessAll:
		log.Info("Found %d video files in %s", len(videos), cfg.ScanDir)
		return videos, nil
	case resolver == nil:
		return nil, fmt.Errorf("found %d video files in %s; pass a file argument or use --all", len(videos), cfg.ScanDir)
	}

	chosen, err := resolver.Resolve(videos)
	if err != nil {
		if errors.Is(err, display.ErrSelectionCancelled) {
			return nil, errors.New("selection cancelled")
		}
		return nil, err
	}
	return []string{chosen}, nil
}

func processVideo(ctx context.Context, cfg *config.Config, log *logging.Logger, video string,
	prober *probe.Prober, renderer *ffmpeg.Renderer, collisions *naming.CollisionResolver, stats *RunStats) {

	name := filepath.Base(video)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, name)

	info, err := os.Stat(video)
	if err != nil {
		log.Error("Cannot read %s: %v", video, err)
		stats.Failed++
		return
	}
	if info.IsDir() {
		log.Error("%s is a directory, not a video file", video)
		stats.Failed++
		return
	}

	dur, err := prober.Probe(ctx, video)
	if err != nil {
		var execErr *probe.ExecError
		if errors.As(err, &execErr) {
			log.Error("ffprobe failed for %s: %v", name, execErr.Err)
			logStderr(log, execErr.Stderr)
		} else {
			log.Error("Probing %s: %v", name, err)
		}
		stats.Failed++
		return
	}
	if dur.Note != "" {
		log.Warn("%s: %s", name, dur.Note)
	}

	plan, err := planner.BuildPlan(dur.Seconds, cfg)
	if err != nil {
		log.Error("Planning %s: %v", name, err)
		stats.Failed++
		return
	}

	outputPath := naming.OutputPath(video, cfg.OutputPath, cfg.OutputFormat)
	outputPath = collisions.Resolve(video, outputPath)

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skipping %s: %s already exists (use --force to overwrite)", name, filepath.Base(outputPath))
			stats.Skipped++
			return
		}
	}

	log.Info("Duration %s, %s", display.FormatTimestamp(dur.Seconds),
		display.FormatGridLabel(plan.Filter.Columns, plan.Rows, plan.ThumbnailCount))

	if cfg.DryRun {
		log.Success("[DRY] Would write %s", outputPath)
		stats.Generated++
		return
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Creating output directory %s: %v", dir, err)
			stats.Failed++
			return
		}
	}

	req := ffmpeg.NewRenderRequest(plan, cfg, video, outputPath)
	log.Render("Rendering %s", filepath.Base(outputPath))
	start := time.Now()
	if err := renderer.Render(ctx, req, log); err != nil {
		var renderErr *ffmpeg.RenderError
		if errors.As(err, &renderErr) {
			log.Error("Rendering %s: %v", name, renderErr.Err)
			if renderErr.Hint != "" {
				log.Warn("%s", renderErr.Hint)
			}
			if !cfg.Verbose {
				logStderr(log, renderErr.Stderr)
			}
		} else {
			log.Error("Rendering %s: %v", name, err)
		}
		stats.Failed++
		return
	}

	if err := verifyArtifact(outputPath); err != nil {
		log.Error("%v", err)
		if rmErr := os.Remove(outputPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			log.Warn("Could not remove bad output %s: %v", outputPath, rmErr)
		}
		stats.Failed++
		return
	}

	size := int64(0)
	if outInfo, err := os.Stat(outputPath); err == nil {
		size = outInfo.Size()
	}
	stats.TotalOutputBytes += size
	stats.Generated++
	log.Success("Wrote %s (%s) in %s", outputPath, display.FormatBytes(size), time.Since(start).Round(100*time.Millisecond))
}

// logStderr surfaces the tail of a tool's stderr so failures are
// diagnosable without rerunning in verbose mode.
func logStderr(log *logging.Logger, stderr string) {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	const maxLines = 20
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		log.Warn("  %s", line)
	}
}
