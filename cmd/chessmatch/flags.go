// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Match options
	layoutName = flag.String("layout", "standard", "Opening layout: standard, rooks")
	movesFile  = flag.String("moves", "", "Replay the moves in this file before prompting")

	// Display options
	colourName = flag.String("color", "auto", "Colour output: auto, always, never")
	formatName = flag.String("format", "text", "Output format: text, json")
	jsonOutput = flag.Bool("J", false, "Output in JSON format (same as -format json)")
	noClear    = flag.Bool("noclear", false, "Don't clear the screen before drawing the board")
	noCaptured = flag.Bool("nocaptured", false, "Don't list captured pieces")

	// Batch replay
	batchMode = flag.Bool("batch", false, "Replay each move file given as an argument and report the outcome")
	workers   = flag.Int("workers", 0, "Number of replay workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	appendLog = flag.String("L", "", "Append diagnostics to this file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 match summary, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Note: -A flag is handled manually before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyMatchFlags(cfg); err != nil {
		return err
	}
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

func applyMatchFlags(cfg *config.Config) error {
	layout, err := config.ParseLayout(*layoutName)
	if err != nil {
		return err
	}
	cfg.Layout = layout
	cfg.MovesFile = *movesFile
	return nil
}

func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseColourMode(*colourName)
	if err != nil {
		return err
	}
	format, err := config.ParseOutputFormat(*formatName)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.FormatJSON
	}

	cfg.Display.Colour = mode
	cfg.Display.Format = format
	cfg.Display.ClearScreen = !*noClear
	cfg.Display.ShowCaptured = !*noCaptured
	return nil
}
