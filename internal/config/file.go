package config

// This file implements the optional YAML config file. The file supplies
// defaults only: CLI flags parsed afterwards always win. Field names mirror
// the long flag names.

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is probed in the working directory when --config is not given.
const DefaultConfigFile = "sheetmaster.yaml"

// fileConfig is the YAML wire form. Pointer fields distinguish "absent"
// from zero values so an empty file changes nothing.
type fileConfig struct {
	Dir        *string  `yaml:"dir"`
	Interval   *float64 `yaml:"interval"`
	Columns    *int     `yaml:"columns"`
	Height     *int     `yaml:"height"`
	Padding    *int     `yaml:"padding"`
	Margin     *int     `yaml:"margin"`
	Format     *string  `yaml:"format"`
	Quality    *int     `yaml:"quality"`
	Extensions []string `yaml:"extensions"`
	Log        *string  `yaml:"log"`
	Color      *string  `yaml:"color"`
	Verbose    *bool    `yaml:"verbose"`
}

// LoadFile overlays cfg with values from a YAML config file. A missing
// explicit path is an error; a missing default path is not (the feature is
// opt-in). Values are validated later by [Config.Validate] together with
// the flag overrides.
func LoadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.Dir != nil {
		cfg.ScanDir = *fc.Dir
	}
	if fc.Interval != nil {
		cfg.Interval = *fc.Interval
	}
	if fc.Columns != nil {
		cfg.Columns = *fc.Columns
	}
	if fc.Height != nil {
		cfg.ThumbHeight = *fc.Height
	}
	if fc.Padding != nil {
		cfg.Padding = *fc.Padding
	}
	if fc.Margin != nil {
		cfg.Margin = *fc.Margin
	}
	if fc.Format != nil {
		cfg.OutputFormat = SheetFormat(*fc.Format)
	}
	if fc.Quality != nil {
		cfg.Quality = *fc.Quality
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = append([]string(nil), fc.Extensions...)
	}
	if fc.Log != nil {
		cfg.LogFile = *fc.Log
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(*fc.Color)
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}

	cfg.ConfigFile = path
	return nil
}

// FindConfigArg pre-scans argv for --config/-config so the file can be
// loaded before the main flag pass (flags must override file values).
// Returns the path and whether it was explicitly given.
func FindConfigArg(args []string) (string, bool) {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1], true
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config="), true
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config="), true
		}
	}
	return DefaultConfigFile, false
}
