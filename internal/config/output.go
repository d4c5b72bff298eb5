package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ColourMode controls ANSI colouring of the rendered board.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Colour only when writing to a terminal
	ColourAlways                   // Always emit ANSI sequences
	ColourNever                    // Plain text
)

// String returns the flag spelling of the mode.
func (m ColourMode) String() string {
	switch m {
	case ColourAuto:
		return "auto"
	case ColourAlways:
		return "always"
	case ColourNever:
		return "never"
	}
	return "unknown"
}

// ParseColourMode converts a flag value into a ColourMode.
func ParseColourMode(s string) (ColourMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColourAuto, nil
	case "always", "on":
		return ColourAlways, nil
	case "never", "off":
		return ColourNever, nil
	}
	return ColourAuto, fmt.Errorf("colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// OutputFormat selects how the match is written to the output.
type OutputFormat int

const (
	FormatText OutputFormat = iota // Board diagram for a human player
	FormatJSON                     // One JSON object per line
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// Colour controls ANSI colouring
	Colour ColourMode

	// ClearScreen clears the terminal before each board is drawn
	ClearScreen bool

	// ShowCaptured lists captured pieces under the board
	ShowCaptured bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Format:       FormatText,
		Colour:       ColourAuto,
		ClearScreen:  true,
		ShowCaptured: true,
	}
}
