package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// RenderError is returned when ffmpeg exits non-zero. Stderr carries the
// captured diagnostic text; Hint is the classification from errors.go
// (empty when no known pattern matched).
type RenderError struct {
	Stderr string
	Hint   string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("ffmpeg render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Logger is the minimal logging interface the renderer needs for its
// cleanup warning. Defined here (rather than importing the logging package)
// so the renderer stays dependency-light and testable with a mock.
type Logger interface {
	Warn(string, ...interface{})
}

// Renderer executes render requests. The run function is swappable so the
// failure and cleanup paths are testable without a real ffmpeg.
type Renderer struct {
	run func(ctx context.Context, args []string, verbose bool) (stderr string, err error)
}

// NewRenderer returns a Renderer backed by the real ffmpeg binary.
func NewRenderer() *Renderer {
	return &Renderer{run: runFfmpeg}
}

// Render runs ffmpeg for the request, blocking until it exits. On failure
// it removes any partially written artifact at the output path before
// returning, so the path is either absent or a fully valid image when this
// returns. Removal failure is logged as a warning, never escalated.
func (r *Renderer) Render(ctx context.Context, req RenderRequest, log Logger) error {
	args := Build(req)

	stderr, err := r.run(ctx, args, req.Verbose)
	if err == nil {
		return nil
	}

	if rmErr := os.Remove(req.OutputPath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
		log.Warn("Could not remove incomplete output %s: %v", req.OutputPath, rmErr)
	}

	return &RenderError{
		Stderr: strings.TrimSpace(stderr),
		Hint:   ClassifyStderr(stderr),
		Err:    err,
	}
}

// runFfmpeg executes the argument slice. When verbose, stderr is tee'd to
// os.Stderr in real time; otherwise it is captured silently for the error
// report.
func runFfmpeg(ctx context.Context, args []string, verbose bool) (string, error) {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return stderrBuf.String(), err
}
