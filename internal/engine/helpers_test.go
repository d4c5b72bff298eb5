package engine

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// snapshot is a comparable picture of everything a move may change.
type snapshot struct {
	Grid      []string       // rank 8 first; upper case White, lower case Black, '.' empty
	Counts    map[string]int // move count per occupied square, zero counts omitted
	Captured  []string
	OnBoard   int
	Turn      int
	Player    chess.Colour
	Check     bool
	Checkmate bool
}

func takeSnapshot(m *Match) snapshot {
	s := snapshot{
		Counts:    map[string]int{},
		OnBoard:   len(m.PiecesOnBoard()),
		Turn:      m.Turn(),
		Player:    m.CurrentPlayer(),
		Check:     m.Check(),
		Checkmate: m.Checkmate(),
	}
	for r, row := range m.Pieces() {
		var sb strings.Builder
		for c, p := range row {
			sb.WriteByte(pieceChar(p))
			if p != nil && p.MoveCount() != 0 {
				sq := chess.SquareFromPosition(chess.Position{Row: r, Column: c})
				s.Counts[sq.String()] = p.MoveCount()
			}
		}
		s.Grid = append(s.Grid, sb.String())
	}
	for _, p := range m.CapturedPieces() {
		s.Captured = append(s.Captured, string(pieceChar(p)))
	}
	return s
}

func pieceChar(p *chess.Piece) byte {
	if p == nil {
		return '.'
	}
	if p.Colour() == chess.Black {
		return p.Kind().Letter() + ('a' - 'A')
	}
	return p.Kind().Letter()
}

// sq parses a square or fails the test.
func sq(t testing.TB, s string) chess.Square {
	t.Helper()
	square, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error = %v", s, err)
	}
	return square
}

// play performs moves written as "e2e4", failing on the first rejection.
func play(t testing.TB, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.PerformMove(sq(t, mv[:2]), sq(t, mv[2:])); err != nil {
			t.Fatalf("PerformMove(%s) error = %v", mv, err)
		}
	}
}

var kindByLetter = map[byte]chess.Kind{
	'P': chess.Pawn, 'N': chess.Knight, 'B': chess.Bishop,
	'R': chess.Rook, 'Q': chess.Queen, 'K': chess.King,
}

// layout builds placements from specs such as "Ke1" (White) or "ke8" (Black).
func layout(t testing.TB, specs ...string) []Placement {
	t.Helper()
	var placements []Placement
	for _, spec := range specs {
		colour := chess.White
		letter := spec[0]
		if letter >= 'a' && letter <= 'z' {
			colour = chess.Black
			letter -= 'a' - 'A'
		}
		kind, ok := kindByLetter[letter]
		if !ok {
			t.Fatalf("bad piece spec %q", spec)
		}
		placements = append(placements, Placement{Square: sq(t, spec[1:]), Kind: kind, Colour: colour})
	}
	return placements
}

// customMatch builds a match from layout specs or fails the test.
func customMatch(t testing.TB, specs ...string) *Match {
	t.Helper()
	m, err := NewCustomMatch(layout(t, specs...)...)
	if err != nil {
		t.Fatalf("NewCustomMatch(%v) error = %v", specs, err)
	}
	return m
}

// pieceOn returns the piece on the named square.
func pieceOn(t testing.TB, m *Match, s string) *chess.Piece {
	t.Helper()
	pos, err := sq(t, s).Position()
	if err != nil {
		t.Fatal(err)
	}
	return m.Board().PieceAt(pos)
}
