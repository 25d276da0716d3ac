package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

// ErrParse indicates ffprobe produced output that is not a number.
var ErrParse = errors.New("unparseable ffprobe duration")

// ExecError is returned when ffprobe itself exits non-zero. Stderr carries
// the diagnostic text for the caller's error report.
type ExecError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("ffprobe %q: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Duration is the probed video length. Note is non-empty when the raw
// output needed a warning-level normalization (empty output, negative
// value); the pipeline logs it but does not treat it as a failure.
type Duration struct {
	Seconds float64
	Note    string
}

// Prober runs the duration query. The run function is swappable so planning
// and error paths are testable without a real ffprobe.
type Prober struct {
	run func(ctx context.Context, path string) (stdout, stderr string, err error)
}

// NewProber returns a Prober backed by the real ffprobe binary.
func NewProber() *Prober {
	return &Prober{run: runFfprobe}
}

// Probe queries ffprobe for the duration of the video at path. One
// invocation, no retry; errors carry the stage diagnostics per the
// taxonomy in the package comment.
func (p *Prober) Probe(ctx context.Context, path string) (Duration, error) {
	stdout, stderr, err := p.run(ctx, path)
	if err != nil {
		return Duration{}, &ExecError{Path: path, Stderr: strings.TrimSpace(stderr), Err: err}
	}
	return ParseOutput(stdout)
}

// ParseOutput converts raw ffprobe stdout into a Duration, applying the
// empty-output and negative-clamp normalizations. Exported for testing
// without a real ffprobe binary.
func ParseOutput(stdout string) (Duration, error) {
	s := strings.TrimSpace(stdout)
	if s == "" {
		return Duration{Seconds: 0, Note: "ffprobe returned empty duration, assuming 0"}, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	// strconv accepts "inf" and "nan"; neither is a usable duration.
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Duration{}, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if f < 0 {
		return Duration{
			Seconds: 0,
			Note:    fmt.Sprintf("ffprobe returned negative duration (%.2fs), using 0", f),
		}, nil
	}
	return Duration{Seconds: f}, nil
}

// runFfprobe performs the real process invocation. Stdout carries exactly
// the duration number (noprint_wrappers + nokey strip all wrapper text).
func runFfprobe(ctx context.Context, path string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
