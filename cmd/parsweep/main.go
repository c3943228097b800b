package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/fatih/color"
	"github.com/utkarsh5026/parsweep/experiment"
)

var red = color.New(color.FgRed)

func main() {
	// Enable ANSI escape sequences on Windows so the tables and progress
	// bars render properly.
	enableWindowsANSI()

	if err := run(); err != nil {
		colorFprintf(os.Stderr, red, "parsweep: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	trialsFlag := flag.Int("trials", experiment.DefaultTrials, "timed trials per measurement")
	warmupFlag := flag.Bool("warmup", true, "discard the first trial of every measurement")
	seedFlag := flag.Int64("seed", experiment.DefaultSeed, "seed for input vector generation")
	phasesFlag := flag.String("phases", "all", `phases to run: "all" or a subset like "bd"`)
	cooldownFlag := flag.Duration("cooldown", 5*time.Millisecond, "minimum gap between timed trials (0 disables pacing)")
	gcFlag := flag.Bool("gc", false, "force a garbage collection before every timed trial")
	pinFlag := flag.Bool("pin", false, "pin worker goroutines to CPU cores")
	jsonFlag := flag.Bool("json", false, "emit a JSON report instead of the rendered one")
	progressFlag := flag.Bool("progress", true, "render sweep progress on stderr")
	cpuProfileFlag := flag.String("cpuprofile", "", "write a CPU profile to this file")
	memProfileFlag := flag.String("memprofile", "", "write a memory profile to this file")
	flag.Parse()

	cleanup, err := setupProfiling(*cpuProfileFlag, *memProfileFlag)
	if err != nil {
		return err
	}
	defer cleanup()

	exp := experiment.New(experiment.Config{
		Trials:   *trialsFlag,
		NoWarmup: !*warmupFlag,
		Seed:     *seedFlag,
		Phases:   *phasesFlag,
		Cooldown: *cooldownFlag,
		GC:       *gcFlag,
		Pin:      *pinFlag,
		JSON:     *jsonFlag,
		Progress: *progressFlag,
	})

	return exp.Run(context.Background())
}

// setupProfiling starts CPU profiling and arranges a heap snapshot, returning
// the cleanup to defer. Either profile may be empty.
func setupProfiling(cpuProfile, memProfile string) (func(), error) {
	cleanups := make([]func(), 0, 2)

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return nil, fmt.Errorf("creating CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("starting CPU profile: %w", err)
		}

		cleanups = append(cleanups, func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		})
	}

	if memProfile != "" {
		cleanups = append(cleanups, func() {
			f, err := os.Create(memProfile)
			if err != nil {
				colorFprintf(os.Stderr, red, "creating memory profile: %v\n", err)
				return
			}
			defer func() {
				_ = f.Close()
			}()

			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				colorFprintf(os.Stderr, red, "writing memory profile: %v\n", err)
			}
		})
	}

	return func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}, nil
}

func colorFprintf(w *os.File, c *color.Color, format string, a ...any) {
	_, _ = c.Fprintf(w, format, a...)
}
