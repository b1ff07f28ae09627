// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game options
	startFEN = flag.String("fen", "", "Start new games from this FEN position")
	workers  = flag.Int("j", 0, "Number of perft workers (default: number of CPUs)")
	maxDepth = flag.Int("maxdepth", config.DefaultMaxPerftDepth, "Deepest perft accepted")

	// Display options
	noColour  = flag.Bool("nocolor", false, "Draw the board without ANSI colours")
	flipBoard = flag.Bool("flip", false, "Draw the board from Black's side")
	noTargets = flag.Bool("notargets", false, "Don't mark move destinations on the board")
	quiet     = flag.Bool("s", false, "Silent mode: no prompt")

	// Logging
	verbosity = flag.Int("v", config.Results, "Verbosity: 0=silent, 1=results, 2=running commentary")
	logFile   = flag.String("l", "", "Write the log to this file (default: stderr)")

	// Other
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StartFEN = *startFEN
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.MaxPerftDepth = *maxDepth
	applyDisplayFlags(cfg)
	if *quiet {
		cfg.Prompt = ""
	}
}

// applyDisplayFlags configures board drawing.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.UseColour = !*noColour
	cfg.Display.Flip = *flipBoard
	cfg.Display.ShowTargets = !*noTargets
}
