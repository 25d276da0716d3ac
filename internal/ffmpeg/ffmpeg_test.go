package ffmpeg

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/sheetmaster/internal/config"
	"github.com/backmassage/sheetmaster/internal/planner"
)

func testRequest(t *testing.T, format config.SheetFormat) RenderRequest {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.OutputFormat = format
	plan, err := planner.BuildPlan(600, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	return NewRenderRequest(plan, &cfg, "/media/movie.mkv", "/media/movie_contact."+format.Ext())
}

// --- Build tests ---

func TestBuild_ArgumentSkeleton(t *testing.T) {
	args := Build(testRequest(t, config.FormatJPEG))

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"ffmpeg", "-hide_banner", "-nostdin",
		"-loglevel warning",
		"-i /media/movie.mkv",
		"-frames:v 1",
		"-q:v 3",
		"-y /media/movie_contact.jpg",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}
}

func TestBuild_FilterBeforeFrames(t *testing.T) {
	args := Build(testRequest(t, config.FormatJPEG))
	joined := strings.Join(args, " ")

	vf := strings.Index(joined, "-vf ")
	frames := strings.Index(joined, "-frames:v")
	out := strings.Index(joined, "-y ")
	if vf < 0 || frames < 0 || out < 0 || !(vf < frames && frames < out) {
		t.Errorf("argument order wrong: %s", joined)
	}
}

func TestBuild_QualityByFormat(t *testing.T) {
	tests := []struct {
		name        string
		format      config.SheetFormat
		wantQuality bool
	}{
		{"jpeg takes q:v", config.FormatJPEG, true},
		{"webp takes q:v", config.FormatWebP, true},
		{"png is lossless", config.FormatPNG, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := Build(testRequest(t, tt.format))
			has := strings.Contains(strings.Join(args, " "), "-q:v")
			if has != tt.wantQuality {
				t.Errorf("-q:v present=%v, want %v", has, tt.wantQuality)
			}
		})
	}
}

func TestBuild_VerboseLoglevel(t *testing.T) {
	req := testRequest(t, config.FormatJPEG)
	req.Verbose = true
	joined := strings.Join(Build(req), " ")
	if !strings.Contains(joined, "-loglevel info") {
		t.Errorf("verbose should raise loglevel: %s", joined)
	}
}

// --- Render failure and cleanup tests ---

type warnRecorder struct{ lines []string }

func (w *warnRecorder) Warn(format string, args ...interface{}) {
	w.lines = append(w.lines, format)
}

func TestRender_CleansUpPartialOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sheet.jpg")

	r := &Renderer{run: func(ctx context.Context, args []string, verbose bool) (string, error) {
		// Simulate ffmpeg writing a partial file before dying.
		if err := os.WriteFile(out, []byte("partial"), 0o644); err != nil {
			t.Fatal(err)
		}
		return "movie.mkv: Invalid data found when processing input", errors.New("exit status 1")
	}}

	req := testRequest(t, config.FormatJPEG)
	req.OutputPath = out

	err := r.Render(context.Background(), req, &warnRecorder{})
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("want *RenderError, got %T: %v", err, err)
	}
	if !strings.Contains(re.Stderr, "Invalid data") {
		t.Errorf("stderr not carried: %q", re.Stderr)
	}
	if re.Hint == "" {
		t.Error("known pattern should produce a hint")
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, os.ErrNotExist) {
		t.Errorf("partial output not cleaned up: %v", statErr)
	}
}

func TestRender_NoArtifactNoWarning(t *testing.T) {
	// ffmpeg failed before creating the file; Remove finds nothing and the
	// logger stays silent.
	rec := &warnRecorder{}
	r := &Renderer{run: func(ctx context.Context, args []string, verbose bool) (string, error) {
		return "boom", errors.New("exit status 1")
	}}

	req := testRequest(t, config.FormatJPEG)
	req.OutputPath = filepath.Join(t.TempDir(), "never-written.jpg")

	if err := r.Render(context.Background(), req, rec); err == nil {
		t.Fatal("want error")
	}
	if len(rec.lines) != 0 {
		t.Errorf("unexpected cleanup warning: %v", rec.lines)
	}
}

func TestRender_Success(t *testing.T) {
	r := &Renderer{run: func(ctx context.Context, args []string, verbose bool) (string, error) {
		return "", nil
	}}
	req := testRequest(t, config.FormatJPEG)
	if err := r.Render(context.Background(), req, &warnRecorder{}); err != nil {
		t.Errorf("Render: %v", err)
	}
}

// --- Stderr classification tests ---

func TestClassifyStderr(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		wantHint string
	}{
		{"drawtext missing", "No such filter: 'drawtext'", "drawtext"},
		{"fontconfig broken", "Fontconfig error: Cannot load default config file", "drawtext"},
		{"tile layout", "Error initializing filter 'tile' with args 'layout=0x4'", "tile"},
		{"missing input", "movie.mkv: No such file or directory", "input video"},
		{"corrupt input", "Invalid data found when processing input", "input video"},
		{"no encoder", "Unknown encoder 'libwebp'", "encoder"},
		{"unknown noise", "frame=    1 fps=0.0 q=3.0", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ClassifyStderr(tt.stderr)
			if tt.wantHint == "" {
				if hint != "" {
					t.Errorf("got hint %q, want none", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.wantHint) {
				t.Errorf("hint %q does not mention %q", hint, tt.wantHint)
			}
		})
	}
}
