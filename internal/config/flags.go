package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into geometry, output, selection, display, and utility.
// Negated flags (e.g. --force) are applied after Parse so Config defaults
// (and config-file values) hold unless the flag is actually set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// version is shown in --version and help; override at build time with -ldflags "-X ...config.version=...".
var version = "1.0.0-dev"

// extensionList implements flag.Value for the repeatable -e/--ext flag.
// The first -e replaces the default list; later ones append.
type extensionList struct {
	exts    *[]string
	touched bool
}

func (e *extensionList) String() string {
	if e.exts == nil {
		return ""
	}
	return strings.Join(*e.exts, ",")
}

func (e *extensionList) Set(s string) error {
	n := NormalizeExtension(s)
	if n == "" || n == "." {
		return fmt.Errorf("invalid extension %q", s)
	}
	if !e.touched {
		*e.exts = nil
		e.touched = true
	}
	*e.exts = append(*e.exts, n)
	return nil
}

// ParseFlags parses args (os.Args[1:]) into cfg. On --help or --version it
// prints and exits. On error it returns non-nil (e.g. unknown flag, too
// many positional args).
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("sheetmaster", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var overrides overrideFlags

	defineGeometryFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineSelectionFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &overrides)
	defineUtilityFlags(fs, cfg, &overrides)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyOverrideFlags(cfg, &overrides)

	if overrides.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if overrides.showVersion {
		fmt.Fprintln(os.Stdout, "sheetmaster v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags that are applied after Parse.
// These either invert a default (force -> SkipExisting=false) or trigger
// exit (showHelp, showVersion).
type overrideFlags struct {
	force       bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineGeometryFlags registers -i/--interval, -c/--columns, -H/--height, --padding, --margin.
func defineGeometryFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.Interval, "interval", cfg.Interval, "Seconds between thumbnails")
	fs.Float64Var(&cfg.Interval, "i", cfg.Interval, "Same as --interval")
	fs.IntVar(&cfg.Columns, "columns", cfg.Columns, "Thumbnail grid columns")
	fs.IntVar(&cfg.Columns, "c", cfg.Columns, "Same as --columns")
	fs.IntVar(&cfg.ThumbHeight, "height", cfg.ThumbHeight, "Thumbnail height in pixels")
	fs.IntVar(&cfg.ThumbHeight, "H", cfg.ThumbHeight, "Same as --height")
	fs.IntVar(&cfg.Padding, "padding", cfg.Padding, "Pixels between grid cells")
	fs.IntVar(&cfg.Margin, "margin", cfg.Margin, "Pixels around the grid")
}

// defineOutputFlags registers -o/--output, --format, -q/--quality, -f/--force, -d/--dry-run.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputPath, "output", "", "Output path (default: <video>_contact.<ext> beside the video)")
	fs.StringVar(&cfg.OutputPath, "o", "", "Same as --output")
	fs.Var(&sheetFormatValue{&cfg.OutputFormat}, "format", "Sheet image format: jpg | png | webp")
	fs.IntVar(&cfg.Quality, "quality", cfg.Quality, "Image quality, 1 (best) to 31 (jpg/webp)")
	fs.IntVar(&cfg.Quality, "q", cfg.Quality, "Same as --quality")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Plan only; do not invoke ffmpeg")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
}

// defineSelectionFlags registers --dir, -e/--ext, --all, --list, -n/--non-interactive.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ScanDir, "dir", cfg.ScanDir, "Directory to scan when no video file is given")
	el := &extensionList{exts: &cfg.Extensions}
	fs.Var(el, "ext", "Video extension to scan for (repeatable)")
	fs.Var(el, "e", "Same as --ext")
	fs.BoolVar(&cfg.ProcessAll, "all", false, "Process every discovered video")
	fs.BoolVar(&cfg.ListOnly, "list", false, "List discovered videos with durations and exit")
	fs.BoolVar(&cfg.NonInteractive, "non-interactive", false, "Never prompt; fail if the video is ambiguous")
	fs.BoolVar(&cfg.NonInteractive, "n", false, "Same as --non-interactive")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	fs.BoolVar(&o.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output (full ffmpeg log)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --force, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, o *overrideFlags) {
	// --config is consumed by FindConfigArg before parsing; registered here
	// so the flag package accepts it and help lists it.
	fs.String("config", "", "YAML config file (default: "+DefaultConfigFile+" if present)")
	fs.BoolVar(&o.force, "force", false, "Overwrite an existing contact sheet")
	fs.BoolVar(&o.force, "f", false, "Same as --force")
	fs.BoolVar(&o.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&o.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&o.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&o.showHelp, "h", false, "Same as --help")
}

// applyOverrideFlags copies override flag values into cfg.
func applyOverrideFlags(cfg *Config, o *overrideFlags) {
	if o.force {
		cfg.SkipExisting = false
	}
	if o.noColor {
		cfg.ColorMode = ColorNever
	} else if o.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs accepts an optional single video file path.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.VideoFile = args[0]
		return nil
	default:
		return fmt.Errorf("at most one video file argument is accepted (got %d)", len(args))
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "SheetMaster v" + version + " - video contact sheet generator"},
		{"", ""},
		{"  sheetmaster [OPTIONS] [video_file]", ""},
		{"", ""},
		{"Grid", ""},
		{"  -i, --interval <sec>", "Seconds between thumbnails (default: 30)"},
		{"  -c, --columns <n>", "Grid columns (default: 5)"},
		{"  -H, --height <px>", "Thumbnail height (default: 250)"},
		{"  --padding <px>", "Pixels between cells (default: 10)"},
		{"  --margin <px>", "Pixels around the grid (default: 10)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "Output path (default: <video>_contact.<ext>)"},
		{"  --format <jpg|png|webp>", "Sheet image format (default: jpg)"},
		{"  -q, --quality <1-31>", "Image quality, 1 is best (default: 3)"},
		{"  -f, --force", "Overwrite an existing contact sheet"},
		{"  -d, --dry-run", "Plan only; do not invoke ffmpeg"},
		{"", ""},
		{"Selection", ""},
		{"  --dir <path>", "Directory to scan when no file is given (default: .)"},
		{"  -e, --ext <.mkv>", "Video extension to scan for (repeatable)"},
		{"  --all", "Process every discovered video"},
		{"  --list", "List discovered videos with durations"},
		{"  -n, --non-interactive", "Never prompt; fail if ambiguous"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (full ffmpeg log)"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: " + DefaultConfigFile + ")"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --check", "System diagnostics (ffmpeg, ffprobe, filters)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so the SheetFormat enum works with flag.Var.

type sheetFormatValue struct{ p *SheetFormat }

func (v *sheetFormatValue) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v *sheetFormatValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "jpg", "jpeg":
		*v.p = FormatJPEG
	case "png":
		*v.p = FormatPNG
	case "webp":
		*v.p = FormatWebP
	default:
		return fmt.Errorf("invalid format %q (use 'jpg', 'png' or 'webp')", s)
	}
	return nil
}
