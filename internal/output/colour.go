package output

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

// ANSI escape sequences used by the text renderer.
const (
	ansiReset           = "\u001B[0m"
	ansiWhite           = "\u001B[37m"
	ansiYellow          = "\u001B[33m"
	ansiBlue            = "\u001B[34m"
	ansiBlackBackground = "\u001B[40m"
	ansiWhiteBackground = "\u001B[47m"
	ansiBlueBackground  = "\u001B[44m"
	ansiClearScreen     = "\u001B[H\u001B[2J"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// ColourEnabled decides whether ANSI sequences should be written to w.
// In auto mode colour is used only when w is a terminal and NO_COLOR is unset.
func ColourEnabled(w io.Writer, mode config.ColourMode) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
