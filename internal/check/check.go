// Package check provides system diagnostics (--check mode) and the
// up-front dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
// These are environment preconditions, detected once before any per-video
// work begins.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// CheckDeps verifies that ffmpeg and ffprobe are on PATH. Returns a
// sentinel error on failure; run before any video is touched.
func CheckDeps() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	return nil
}

// RunCheck runs the interactive --check flow: tool versions, a synthetic
// render through the contact sheet filter chain, and a host report. This is
// informational only; it returns false when a hard requirement failed.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkTool(log, "ffmpeg")
	ok = checkTool(log, "ffprobe") && ok
	if ok {
		ok = checkFilterChain(log)
	}
	reportHost(log)
	return ok
}

// checkTool verifies the binary is on PATH and logs its version string.
func checkTool(log Logger, name string) bool {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return false
	}
	cmd := exec.Command(name, "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return true
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
	return true
}

// checkFilterChain renders a short lavfi color source through the same
// fps/scale/drawtext/tile chain used for real sheets, discarding the
// output. This catches ffmpeg builds without drawtext (fontconfig) or tile
// support before a real video is processed.
func checkFilterChain(log Logger) bool {
	log.Info("Testing contact sheet filter chain...")
	ok := runSilent("ffmpeg",
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=320x240:d=2",
		"-vf", "fps=1,scale=-1:120,"+
			"drawtext=text='%{pts\\:hms}':x=10:y=10:fontsize=24:"+
			"fontcolor=white@0.8:box=1:boxcolor=black@0.5:boxborderw=5,"+
			"tile=layout=2x1:padding=10:margin=10",
		"-frames:v", "1",
		"-f", "null", "-",
	)
	if ok {
		log.Success("Filter chain works (fps, scale, drawtext, tile)")
	} else {
		log.Error("Filter chain test failed (drawtext/fontconfig or tile unavailable)")
	}
	return ok
}

// reportHost logs CPU count, memory, and platform so support requests carry
// the environment context.
func reportHost(log Logger) {
	log.Info("Host: %d logical CPUs (%s/%s)", runtime.NumCPU(), runtime.GOOS, runtime.GOARCH)

	if vm, err := mem.VirtualMemory(); err == nil {
		log.Info("Memory: %.1f GiB total, %.1f GiB available",
			float64(vm.Total)/(1<<30), float64(vm.Available)/(1<<30))
	}
	if info, err := host.Info(); err == nil {
		log.Info("Platform: %s %s (kernel %s)", info.Platform, info.PlatformVersion, info.KernelVersion)
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
