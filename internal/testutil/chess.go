package testutil

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Mover is anything that plays moves, normally *engine.Match.
type Mover interface {
	PerformMove(source, target chess.Square) (*chess.Piece, error)
}

// PlayMoves plays moves written as "e2e4" and fails the test on the first
// rejection.
func PlayMoves(t testing.TB, m Mover, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		source, target := MustMove(t, mv)
		if _, err := m.PerformMove(source, target); err != nil {
			t.Fatalf("PerformMove(%s) error = %v", mv, err)
		}
	}
}

// MustMove splits "e2e4" into its two squares.
func MustMove(t testing.TB, mv string) (chess.Square, chess.Square) {
	t.Helper()
	if len(mv) != 4 {
		t.Fatalf("move %q is not of the form e2e4", mv)
	}
	source, err := chess.ParseSquare(mv[:2])
	if err != nil {
		t.Fatalf("move %q: %v", mv, err)
	}
	target, err := chess.ParseSquare(mv[2:])
	if err != nil {
		t.Fatalf("move %q: %v", mv, err)
	}
	return source, target
}

// Squares returns the sorted names of the squares marked in moves.
func Squares(moves chess.Moves) []string {
	var out []string
	for _, pos := range moves.Positions() {
		out = append(out, chess.SquareFromPosition(pos).String())
	}
	slices.Sort(out)
	return out
}

// GridRows renders a piece grid as one string per rank, rank 8 first:
// upper case for White, lower case for Black and '.' for an empty square.
func GridRows(grid [][]*chess.Piece) []string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		var sb strings.Builder
		for _, p := range row {
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.Colour() == chess.Black:
				sb.WriteString(strings.ToLower(p.String()))
			default:
				sb.WriteString(p.String())
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}
