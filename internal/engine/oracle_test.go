package engine

import (
	"testing"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
)

// Games replayed against github.com/notnil/chess. They avoid en passant and
// promotion, which this engine does not model, and only castle legally.
var oracleGames = []struct {
	name  string
	moves []string
	mate  bool
}{
	{
		name:  "fool's mate",
		moves: []string{"f2f3", "e7e5", "g2g4", "d8h4"},
		mate:  true,
	},
	{
		name:  "scholar's mate",
		moves: []string{"e2e4", "e7e5", "d1h5", "b8c6", "f1c4", "g8f6", "h5f7"},
		mate:  true,
	},
	{
		name: "italian, both sides castle short",
		moves: []string{
			"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5", "e1g1", "g8f6",
			"d2d3", "e8g8", "c1g5", "d7d6", "b1c3", "c8g4",
		},
	},
	{
		name: "both sides castle long",
		moves: []string{
			"d2d4", "d7d5", "b1c3", "b8c6", "c1f4", "c8f5", "d1d2", "d8d7",
			"e1c1", "e8c8",
		},
	},
	{
		name: "scandinavian with check",
		moves: []string{
			"e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5e5", "f1e2", "c8g4",
			"d2d4", "e5f5", "g1f3", "g4f3", "e2f3", "f5f3",
		},
	},
}

func TestOracle_GamesAgree(t *testing.T) {
	for _, game := range oracleGames {
		t.Run(game.name, func(t *testing.T) {
			m := NewMatch(config.LayoutStandard)
			ref := nchess.NewGame()

			for i, mv := range game.moves {
				refMove, err := nchess.UCINotation{}.Decode(ref.Position(), mv)
				if err != nil {
					t.Fatalf("oracle cannot decode %s: %v", mv, err)
				}
				if err := ref.Move(refMove); err != nil {
					t.Fatalf("oracle rejects %s: %v", mv, err)
				}
				play(t, m, mv)

				assertSameBoard(t, m, ref.Position().Board(), mv)

				// Move stores the generated move, which carries the check tag.
				played := ref.Moves()
				refCheck := played[len(played)-1].HasTag(nchess.Check)
				if m.Check() != refCheck {
					t.Errorf("after %s: Check() = %v; oracle says %v", mv, m.Check(), refCheck)
				}
				last := i == len(game.moves)-1
				if !last && m.Checkmate() {
					t.Fatalf("after %s: checkmate before the final move", mv)
				}
			}

			refMate := ref.Method() == nchess.Checkmate
			if m.Checkmate() != refMate || m.Checkmate() != game.mate {
				t.Errorf("Checkmate() = %v; oracle %v, want %v", m.Checkmate(), refMate, game.mate)
			}
		})
	}
}

var oracleKinds = map[chess.Kind]nchess.PieceType{
	chess.Pawn:   nchess.Pawn,
	chess.Knight: nchess.Knight,
	chess.Bishop: nchess.Bishop,
	chess.Rook:   nchess.Rook,
	chess.Queen:  nchess.Queen,
	chess.King:   nchess.King,
}

func assertSameBoard(t *testing.T, m *Match, ref *nchess.Board, after string) {
	t.Helper()
	for r, row := range m.Pieces() {
		for c, p := range row {
			refPiece := ref.Piece(nchess.NewSquare(nchess.File(c), nchess.Rank(chess.BoardSize-1-r)))
			name := chess.SquareFromPosition(chess.Position{Row: r, Column: c})

			if p == nil {
				if refPiece != nchess.NoPiece {
					t.Errorf("after %s: %s empty; oracle has %v", after, name, refPiece)
				}
				continue
			}

			wantColour := nchess.White
			if p.Colour() == chess.Black {
				wantColour = nchess.Black
			}
			if refPiece.Type() != oracleKinds[p.Kind()] || refPiece.Color() != wantColour {
				t.Errorf("after %s: %s holds %v %v; oracle has %v", after, name, p.Colour(), p.Kind(), refPiece)
			}
		}
	}
}
