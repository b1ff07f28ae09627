// Package config provides configuration for chessplay.
package config

import (
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Silent     = 0 // nothing
	Results    = 1 // one line per finished game
	Commentary = 2 // every command and its outcome
)

// DefaultMaxPerftDepth is the deepest perft accepted unless configured.
const DefaultMaxPerftDepth = 5

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// StartFEN is the position new games start from; empty means the
	// standard starting position.
	StartFEN string

	// Prompt is printed before each command; empty disables it.
	Prompt string

	Display *DisplayConfig

	// Workers is the number of goroutines perft spreads root moves over.
	Workers int

	// MaxPerftDepth is the deepest perft the REPL accepts.
	MaxPerftDepth int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:     Results,
		Prompt:        "> ",
		Display:       NewDisplayConfig(),
		Workers:       runtime.NumCPU(),
		MaxPerftDepth: DefaultMaxPerftDepth,
		OutputFile:    os.Stdout,
		LogFile:       os.Stderr,
	}
}

// Validate reports the first inconsistent setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d outside %d-%d", c.Verbosity, Silent, Commentary)
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "%d workers", c.Workers)
	}
	if c.MaxPerftDepth < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max perft depth %d", c.MaxPerftDepth)
	}
	if c.OutputFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no output stream")
	}
	if c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "no log stream")
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "start position: %v", err)
		}
	}
	return nil
}
