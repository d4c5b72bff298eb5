package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Position is an internal zero-based (row, column) coordinate.
// Row 0 is rank 8 and column 0 is file a.
type Position struct {
	Row    int
	Column int
}

// String returns the position as "(row, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Offset returns the position shifted by the given row and column deltas.
func (p Position) Offset(dRow, dColumn int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dColumn}
}

// Square is the user-facing coordinate: a file letter 'a'-'h' and a 1-based rank.
type Square struct {
	File byte
	Rank int
}

// NewSquare creates a square, validating its file and rank.
func NewSquare(file byte, rank int) (Square, error) {
	if file < FirstFile || file > LastFile || rank < FirstRank || rank > LastRank {
		return Square{}, fmt.Errorf("square %c%d: %w", file, rank, errors.ErrOutOfBounds)
	}
	return Square{File: file, Rank: rank}, nil
}

// MustSquare is like ParseSquare but panics on malformed input.
// It is intended for package-level tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// ParseSquare parses two-character square notation such as "e2".
func ParseSquare(s string) (Square, error) {
	text := strings.TrimSpace(s)
	if len(text) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "file and rank such as e2",
			Got:      fmt.Sprintf("%d characters", len(text)),
		}
	}

	file := text[0]
	if file < FirstFile || file > LastFile {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}

	rank := int(text[1] - '0')
	if text[1] < '0' || text[1] > '9' || rank < FirstRank || rank > LastRank {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", text[1]),
		}
	}

	return Square{File: file, Rank: rank}, nil
}

// SquareFromPosition converts an internal position to square notation.
func SquareFromPosition(p Position) Square {
	return Square{File: byte(FirstFile + p.Column), Rank: BoardSize - p.Row}
}

// Position converts the square to its internal coordinate.
// Squares outside a1-h8 are rejected with ErrOutOfBounds.
func (s Square) Position() (Position, error) {
	if s.File < FirstFile || s.File > LastFile || s.Rank < FirstRank || s.Rank > LastRank {
		return Position{}, fmt.Errorf("square %s: %w", s, errors.ErrOutOfBounds)
	}
	return Position{Row: BoardSize - s.Rank, Column: int(s.File - FirstFile)}, nil
}

// String returns the square in notation form, e.g. "e2".
func (s Square) String() string {
	return fmt.Sprintf("%c%d", s.File, s.Rank)
}
