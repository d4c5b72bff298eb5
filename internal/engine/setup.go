package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Placement puts one new piece on a square when a match is set up.
type Placement struct {
	Square chess.Square
	Kind   chess.Kind
	Colour chess.Colour
}

// backRank is the standard order of pieces from the a-file to the h-file.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StandardLayout returns the 32-piece opening array.
func StandardLayout() []Placement {
	placements := make([]Placement, 0, 4*chess.BoardSize)
	for i, kind := range backRank {
		file := byte(chess.FirstFile + i)
		placements = append(placements,
			Placement{chess.Square{File: file, Rank: 1}, kind, chess.White},
			Placement{chess.Square{File: file, Rank: 2}, chess.Pawn, chess.White},
			Placement{chess.Square{File: file, Rank: 7}, chess.Pawn, chess.Black},
			Placement{chess.Square{File: file, Rank: 8}, kind, chess.Black},
		)
	}
	return placements
}

// RooksLayout returns the reduced arrangement of five rooks and a king per side.
func RooksLayout() []Placement {
	placement := func(sq string, kind chess.Kind, colour chess.Colour) Placement {
		return Placement{chess.MustSquare(sq), kind, colour}
	}
	return []Placement{
		placement("c1", chess.Rook, chess.White),
		placement("c2", chess.Rook, chess.White),
		placement("d2", chess.Rook, chess.White),
		placement("e2", chess.Rook, chess.White),
		placement("e1", chess.Rook, chess.White),
		placement("d1", chess.King, chess.White),

		placement("c7", chess.Rook, chess.Black),
		placement("c8", chess.Rook, chess.Black),
		placement("d7", chess.Rook, chess.Black),
		placement("e7", chess.Rook, chess.Black),
		placement("e8", chess.Rook, chess.Black),
		placement("d8", chess.King, chess.Black),
	}
}

// NewMatch creates a match with White to move on turn 1.
func NewMatch(layout config.Layout) *Match {
	placements := StandardLayout()
	if layout == config.LayoutRooks {
		placements = RooksLayout()
	}
	m, err := NewCustomMatch(placements...)
	if err != nil {
		panic(fmt.Sprintf("engine: %v layout: %v", layout, err))
	}
	return m
}

// NewCustomMatch creates a match from explicit placements with White to move.
// Each colour needs exactly one king, and Black may not start in check.
// White's check and checkmate flags are computed from the position.
func NewCustomMatch(placements ...Placement) (*Match, error) {
	m := &Match{
		id:            uuid.New(),
		board:         chess.NewStandardBoard(),
		turn:          1,
		currentPlayer: chess.White,
	}

	kings := map[chess.Colour]int{}
	for _, pl := range placements {
		pos, err := pl.Square.Position()
		if err != nil {
			return nil, err
		}
		p := chess.NewPiece(pl.Kind, pl.Colour)
		if err := m.board.Place(p, pos); err != nil {
			return nil, errors.Wrapf(err, "setup %s", pl.Square)
		}
		m.onBoard = append(m.onBoard, p)
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch kings[colour] {
		case 0:
			return nil, fmt.Errorf("setup: %s: %w", colour, errors.ErrNoKing)
		case 1:
		default:
			return nil, fmt.Errorf("setup: %d %s kings: %w", kings[colour], colour, errors.ErrInvalidBoard)
		}
	}

	blackInCheck, err := m.InCheck(chess.Black)
	if err != nil {
		return nil, err
	}
	if blackInCheck {
		return nil, fmt.Errorf("setup: Black is in check with White to move: %w", errors.ErrInvalidBoard)
	}

	if m.check, err = m.InCheck(chess.White); err != nil {
		return nil, err
	}
	if m.checkmate, err = m.InCheckmate(chess.White); err != nil {
		return nil, err
	}
	m.winner = chess.Black
	return m, nil
}
