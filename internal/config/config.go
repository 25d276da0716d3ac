// Package config holds runtime configuration: defaults, optional YAML config
// file, CLI flag parsing, and validation. Defaults match the classic contact
// sheet workflow: one thumbnail every 30 seconds, 5 columns, 250 px tall.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// --- Enum types for validated string fields ---

// SheetFormat is the output image format for the contact sheet.
type SheetFormat string

const (
	FormatJPEG SheetFormat = "jpg"  // Quality-biased JPEG (default).
	FormatPNG  SheetFormat = "png"  // Lossless PNG.
	FormatWebP SheetFormat = "webp" // WebP via libwebp.
)

// Ext returns the file extension for the format, without the dot.
func (f SheetFormat) Ext() string { return string(f) }

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultExtensions are the video file extensions considered during
// directory scanning when the user supplies none.
var DefaultExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv"}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [LoadFile], and then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Input selection.
	VideoFile  string   // Explicit video path (positional arg). Empty → scan ScanDir.
	ScanDir    string   // Directory scanned when VideoFile is empty. Default: ".".
	Extensions []string // Lowercase extensions with leading dot.

	// Sheet geometry.
	Interval    float64 // Seconds between sampled frames. Default: 30.
	Columns     int     // Grid width in thumbnails. Default: 5.
	ThumbHeight int     // Thumbnail height in pixels. Default: 250.
	Padding     int     // Pixels between grid cells. Default: 10.
	Margin      int     // Pixels around the grid. Default: 10.

	// Output.
	OutputPath   string      // Explicit output path; empty → derived from video name.
	OutputFormat SheetFormat // Default: jpg.
	Quality      int         // ffmpeg -q:v scale, 1 (best) to 31. Default: 3.

	// Behavior flags.
	ProcessAll     bool // Generate a sheet for every discovered video.
	ListOnly       bool // Print the probe table for discovered videos and exit.
	NonInteractive bool // Refuse to prompt when multiple candidates are found.
	SkipExisting   bool // Default: true. Cleared by --force.
	DryRun         bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Config file (resolved before flag parsing).
	ConfigFile string
}

// DefaultConfig returns a Config with the stock contact sheet defaults.
// Used as the base before [LoadFile] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		ScanDir:      ".",
		Extensions:   append([]string(nil), DefaultExtensions...),
		Interval:     30,
		Columns:      5,
		ThumbHeight:  250,
		Padding:      10,
		Margin:       10,
		OutputFormat: FormatJPEG,
		Quality:      3,
		SkipExisting: true,
		ColorMode:    ColorAuto,
	}
}

// NormalizeExtension lowercases an extension and ensures a leading dot,
// so "-e MKV" and "-e .mkv" select the same files.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Validate checks numeric ranges and enum fields, and canonicalizes the
// extension list. The geometry invariants (interval, columns, thumbnail
// height all positive) are enforced here so the planner never sees an
// out-of-range value from the CLI path; the planner re-checks them for
// callers that construct a Config directly.
func (c *Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New("interval must be a positive number of seconds")
	}
	if c.Columns <= 0 {
		return errors.New("columns must be a positive integer")
	}
	if c.ThumbHeight <= 0 {
		return errors.New("thumbnail height must be a positive integer")
	}
	if c.Padding < 0 || c.Margin < 0 {
		return errors.New("padding and margin must not be negative")
	}
	if c.Quality < 1 || c.Quality > 31 {
		return fmt.Errorf("quality must be 1-31 (got %d)", c.Quality)
	}

	switch c.OutputFormat {
	case FormatJPEG, FormatPNG, FormatWebP:
		// valid
	default:
		return errors.New("invalid format (use 'jpg', 'png' or 'webp')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := c.normalizeExtensions(); err != nil {
		return err
	}

	if c.CheckOnly {
		return nil
	}
	if c.VideoFile == "" && c.ScanDir == "" {
		return errors.New("need a video file or a directory to scan")
	}
	return nil
}

// normalizeExtensions dedupes, lowercases, and sorts the extension list.
func (c *Config) normalizeExtensions() error {
	if len(c.Extensions) == 0 {
		return errors.New("at least one video extension is required")
	}
	seen := make(map[string]bool, len(c.Extensions))
	normalized := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		n := NormalizeExtension(e)
		if n == "" || n == "." {
			return fmt.Errorf("invalid extension %q", e)
		}
		if !seen[n] {
			seen[n] = true
			normalized = append(normalized, n)
		}
	}
	sort.Strings(normalized)
	c.Extensions = normalized
	return nil
}
