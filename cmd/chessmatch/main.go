// chessmatch is a two-player console chess game.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-colorable"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	loadArgsFromFileIfSpecified()
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmatch version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	// Decide on colour before wrapping stdout; the wrapper hides the file
	// descriptor from the terminal check.
	colour := output.ColourEnabled(os.Stdout, cfg.Display.Colour)
	cfg.OutputFile = colorable.NewColorable(os.Stdout)

	if *batchMode {
		failed, err := runBatch(cfg, flag.Args(), *workers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, colour); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmatch [options]\n")
	fmt.Fprintf(os.Stderr, "       chessmatch -batch [options] move-files...\n\n")
	fmt.Fprintf(os.Stderr, "A two-player chess game for the terminal.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove files hold one move per line (e2 e4, e2-e4 or e2e4);\n")
	fmt.Fprintf(os.Stderr, "blank lines and text after '#' are ignored.\n")
	fmt.Fprintf(os.Stderr, "\nLayouts (-layout):\n")
	fmt.Fprintf(os.Stderr, "  standard  the usual opening position\n")
	fmt.Fprintf(os.Stderr, "  rooks     five rooks and a king per side\n")
}
