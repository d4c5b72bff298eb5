// Package errors provides sentinel errors and error types for the chess match
// engine. It defines common error conditions and structured error types that
// preserve context while allowing error inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	// It is the only error the console shell reports and re-prompts on.
	ErrIllegalMove = errors.New("illegal move")

	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("position not on the board")

	// ErrSquareOccupied indicates a placement onto a square that already holds a piece.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrEmptySquare indicates a removal from a square that holds no piece.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrNoKing indicates a colour has no king on the board.
	// This is a broken invariant, not a user error.
	ErrNoKing = errors.New("no king on the board")

	// ErrMatchOver indicates a move was requested after checkmate.
	ErrMatchOver = errors.New("match is over")

	// ErrInvalidSquare indicates malformed square notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidBoard indicates board dimensions that cannot hold pieces.
	ErrInvalidBoard = errors.New("invalid board dimensions")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidCommand indicates console input that is neither a square,
	// a move nor a known command.
	ErrInvalidCommand = errors.New("invalid command")
)

// MoveError wraps a rejected move with its context: the squares involved,
// the turn it was attempted on and a human-readable reason. Err is normally
// ErrIllegalMove; Cause optionally names a finer condition such as
// ErrOutOfBounds or ErrMatchOver.
type MoveError struct {
	Err    error  // The underlying error
	Cause  error  // Finer-grained reason (optional)
	Reason string // Human-readable explanation shown to the player
	From   string // Source square (if known)
	To     string // Target square (if known)
	Turn   int    // Turn number the move was attempted on (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Turn > 0 {
		parts = append(parts, fmt.Sprintf("turn %d", e.Turn))
	}

	switch {
	case e.From != "" && e.To != "":
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	case e.From != "":
		parts = append(parts, fmt.Sprintf("square %s", e.From))
	}

	msg := "illegal move"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	if len(parts) == 0 {
		return msg
	}
	return strings.Join(parts, ", ") + ": " + msg
}

// Unwrap returns the underlying errors so that both Err and Cause can be
// matched with errors.Is() and errors.As().
func (e *MoveError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// NewMoveError creates an illegal-move error with the given reason.
func NewMoveError(reason string) *MoveError {
	return &MoveError{Err: ErrIllegalMove, Reason: reason}
}

// ParseError represents an input parsing error with location context.
// It's used for square notation and console command errors.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text that failed to parse
	Column   int    // Column number (1-based, 0 if not applicable)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		loc := fmt.Sprintf("%q", e.Input)
		if e.Column > 0 {
			loc += fmt.Sprintf(" at column %d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
