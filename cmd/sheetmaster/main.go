// Command sheetmaster is the entrypoint for the SheetMaster contact
// sheet generator CLI. It layers config from defaults, an optional YAML
// file, and CLI flags, then either runs the system check (--check), the
// probe listing (--list), or the contact sheet pipeline.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/sheetmaster/internal/check"
	"github.com/backmassage/sheetmaster/internal/config"
	"github.com/backmassage/sheetmaster/internal/display"
	"github.com/backmassage/sheetmaster/internal/logging"
	"github.com/backmassage/sheetmaster/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Load config: defaults, then the YAML file (if any), then CLI
	// flags on top. The config path itself is a flag, so it is scanned
	// out of the arguments before the full parse.
	cfg := config.DefaultConfig()

	cfgPath, explicit := config.FindConfigArg(os.Args[1:])
	if err := config.LoadFile(&cfg, cfgPath, explicit); err != nil {
		fmt.Fprintf(os.Stderr, "sheetmaster: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "sheetmaster: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "sheetmaster: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sheetmaster: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner()

	// 2. If user asked for system check, run it and report.
	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	// 3. Ensure ffmpeg/ffprobe are available; fail fast otherwise.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.DryRun {
		log.Warn("DRY RUN")
	}

	// 4. Cancel in-flight ffmpeg/ffprobe work on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ListOnly {
		pipeline.List(ctx, &cfg, log)
		return 0
	}

	var resolver pipeline.Resolver
	if !cfg.NonInteractive {
		resolver = display.NewPrompt()
	}

	stats := pipeline.Run(ctx, &cfg, log, resolver)
	if stats.Failed > 0 {
		return 1
	}
	return 0
}
