package ffmpeg

import (
	"strconv"

	"github.com/backmassage/sheetmaster/internal/config"
	"github.com/backmassage/sheetmaster/internal/planner"
)

// RenderRequest is the immutable value handed to the renderer: one input
// video, one serialized filtergraph, one output path. Constructed right
// before the invocation and discarded after it returns.
type RenderRequest struct {
	InputPath  string
	OutputPath string
	Filter     string
	Format     config.SheetFormat
	Quality    int
	Verbose    bool
}

// NewRenderRequest combines the plan, config, and paths into a request.
// The filtergraph is serialized here, at the invocation boundary.
func NewRenderRequest(plan *planner.SheetPlan, cfg *config.Config, videoPath, outputPath string) RenderRequest {
	return RenderRequest{
		InputPath:  videoPath,
		OutputPath: outputPath,
		Filter:     plan.Filter.String(),
		Format:     cfg.OutputFormat,
		Quality:    cfg.Quality,
		Verbose:    cfg.Verbose,
	}
}

// Build constructs the complete ffmpeg argument slice for a request.
//
// -frames:v 1 emits exactly one output frame (the tiled sheet collapses all
// sampled frames into it), and -y overwrites without prompting. -q:v is the
// VBR quality scale and applies to the lossy formats only; PNG ignores it,
// so it is omitted there.
func Build(req RenderRequest) []string {
	args := make([]string, 0, 16)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin")

	if req.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "warning")
	}

	args = append(args, "-i", req.InputPath)
	args = append(args, "-vf", req.Filter)
	args = append(args, "-frames:v", "1")

	if req.Format != config.FormatPNG {
		args = append(args, "-q:v", strconv.Itoa(req.Quality))
	}

	args = append(args, "-y", req.OutputPath)
	return args
}
