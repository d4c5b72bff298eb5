// Package config provides configuration for the chess match console.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Layout selects the opening arrangement placed on the board.
type Layout int

const (
	LayoutStandard Layout = iota // Full 16-piece-per-side opening array
	LayoutRooks                  // Reduced five rooks and a king per side
)

// String returns the flag spelling of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutStandard:
		return "standard"
	case LayoutRooks:
		return "rooks"
	}
	return "unknown"
}

// ParseLayout converts a flag value into a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return LayoutStandard, nil
	case "rooks":
		return LayoutRooks, nil
	}
	return LayoutStandard, fmt.Errorf("layout %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// Layout chooses the opening arrangement.
	Layout Layout

	// Verbosity: 0=nothing, 1=match summary, 2=every move.
	Verbosity int

	// Display groups board rendering settings.
	Display *DisplayConfig

	// MovesFile optionally names a file of scripted moves replayed before
	// the interactive prompt.
	MovesFile string

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Layout:     LayoutStandard,
		Verbosity:  1,
		Display:    NewDisplayConfig(),
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
