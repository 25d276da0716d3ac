package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase with dot", ".mkv", ".mkv"},
		{"missing dot", "mkv", ".mkv"},
		{"uppercase", "MKV", ".mkv"},
		{"mixed with dot", ".Mp4", ".mp4"},
		{"surrounding spaces", " mov ", ".mov"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeExtension(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeExtension(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Geometry(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero interval", func(c *Config) { c.Interval = 0 }, true},
		{"negative interval", func(c *Config) { c.Interval = -5 }, true},
		{"fractional interval", func(c *Config) { c.Interval = 0.5 }, false},
		{"zero columns", func(c *Config) { c.Columns = 0 }, true},
		{"negative columns", func(c *Config) { c.Columns = -1 }, true},
		{"zero height", func(c *Config) { c.ThumbHeight = 0 }, true},
		{"negative padding", func(c *Config) { c.Padding = -1 }, true},
		{"negative margin", func(c *Config) { c.Margin = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Quality(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		wantErr bool
	}{
		{"best", 1, false},
		{"default", 3, false},
		{"worst", 31, false},
		{"zero", 0, true},
		{"too high", 32, true},
		{"negative", -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Quality = tt.quality
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Format(t *testing.T) {
	tests := []struct {
		name    string
		format  SheetFormat
		wantErr bool
	}{
		{"jpg is valid", FormatJPEG, false},
		{"png is valid", FormatPNG, false},
		{"webp is valid", FormatWebP, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "gif", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.OutputFormat = tt.format
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NormalizesExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{"MKV", ".mkv", "mp4", ".webm"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := []string{".mkv", ".mp4", ".webm"}
	if len(cfg.Extensions) != len(want) {
		t.Fatalf("extensions: got %v, want %v", cfg.Extensions, want)
	}
	for i, e := range want {
		if cfg.Extensions[i] != e {
			t.Errorf("extensions[%d]: got %q, want %q", i, cfg.Extensions[i], e)
		}
	}
}

func TestParseFlags_Positional(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-i", "20", "movie.mkv"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.VideoFile != "movie.mkv" {
		t.Errorf("VideoFile: got %q, want movie.mkv", cfg.VideoFile)
	}
	if cfg.Interval != 20 {
		t.Errorf("Interval: got %v, want 20", cfg.Interval)
	}
}

func TestParseFlags_TooManyArgs(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"a.mkv", "b.mkv"}); err == nil {
		t.Error("expected error for two positional args")
	}
}

func TestParseFlags_ForceClearsSkipExisting(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"--force", "movie.mkv"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.SkipExisting {
		t.Error("--force should clear SkipExisting")
	}
}

func TestParseFlags_ExtReplacesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"-e", "ts", "-e", ".m2ts"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	want := []string{".ts", ".m2ts"}
	if len(cfg.Extensions) != 2 || cfg.Extensions[0] != want[0] || cfg.Extensions[1] != want[1] {
		t.Errorf("Extensions: got %v, want %v", cfg.Extensions, want)
	}
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheetmaster.yaml")
	data := []byte("interval: 15\ncolumns: 4\nheight: 180\nformat: png\nextensions: [.mkv, .webm]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path, true); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Interval != 15 || cfg.Columns != 4 || cfg.ThumbHeight != 180 {
		t.Errorf("geometry: got %v/%v/%v", cfg.Interval, cfg.Columns, cfg.ThumbHeight)
	}
	if cfg.OutputFormat != FormatPNG {
		t.Errorf("format: got %q, want png", cfg.OutputFormat)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("extensions: got %v", cfg.Extensions)
	}
	// Unset keys keep their defaults.
	if cfg.Quality != 3 {
		t.Errorf("quality: got %d, want default 3", cfg.Quality)
	}
}

func TestLoadFile_ValuesSurviveFlagParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheetmaster.yaml")
	data := []byte("verbose: true\ninterval: 15\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path, true); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !cfg.Verbose {
		t.Fatal("verbose: not set from file")
	}

	// Flag definitions must take the current config value as the flag
	// default, so unset flags leave file values intact.
	if err := ParseFlags(&cfg, []string{"movie.mkv"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !cfg.Verbose {
		t.Error("verbose: file value reset by flag parsing")
	}
	if cfg.Interval != 15 {
		t.Errorf("interval: got %v, want file value 15", cfg.Interval)
	}

	// An explicit flag still wins over the file.
	cfg2 := DefaultConfig()
	if err := LoadFile(&cfg2, path, true); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if err := ParseFlags(&cfg2, []string{"--interval", "60", "movie.mkv"}); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg2.Interval != 60 {
		t.Errorf("interval: got %v, want flag value 60", cfg2.Interval)
	}
}

func TestLoadFile_MissingDefaultIsFine(t *testing.T) {
	cfg := DefaultConfig()
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	if err := LoadFile(&cfg, missing, false); err != nil {
		t.Errorf("missing default config should not error, got %v", err)
	}
	if err := LoadFile(&cfg, missing, true); err == nil {
		t.Error("missing explicit config should error")
	}
}

func TestFindConfigArg(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantPath     string
		wantExplicit bool
	}{
		{"absent", []string{"-i", "20", "a.mkv"}, DefaultConfigFile, false},
		{"separate value", []string{"--config", "x.yaml"}, "x.yaml", true},
		{"equals form", []string{"--config=x.yaml"}, "x.yaml", true},
		{"single dash", []string{"-config=x.yaml"}, "x.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, explicit := FindConfigArg(tt.args)
			if path != tt.wantPath || explicit != tt.wantExplicit {
				t.Errorf("FindConfigArg(%v) = (%q, %v), want (%q, %v)",
					tt.args, path, explicit, tt.wantPath, tt.wantExplicit)
			}
		})
	}
}
