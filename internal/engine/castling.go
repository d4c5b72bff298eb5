package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// rookShift is the rook half of a castling move.
type rookShift struct {
	from, to chess.Position
}

// castlingRook returns the rook relocation implied by moving p from one
// square to another. A king moving two columns right takes the rook three
// columns right of its start to the square next to it; two columns left
// takes the rook four columns left.
func castlingRook(p *chess.Piece, from, to chess.Position) (rookShift, bool) {
	if p.Kind() != chess.King || from.Row != to.Row {
		return rookShift{}, false
	}
	switch to.Column - from.Column {
	case chess.CastlingKingStep:
		return rookShift{
			from: from.Offset(0, chess.KingsideRookOffset),
			to:   from.Offset(0, 1),
		}, true
	case -chess.CastlingKingStep:
		return rookShift{
			from: from.Offset(0, chess.QueensideRookOffset),
			to:   from.Offset(0, -1),
		}, true
	}
	return rookShift{}, false
}

// shiftRook moves the castling rook and counts the move.
func (m *Match) shiftRook(s rookShift) error {
	return m.relocate(s.from, s.to, 1)
}

// unshiftRook puts the castling rook back.
func (m *Match) unshiftRook(s rookShift) error {
	return m.relocate(s.to, s.from, -1)
}

// relocate moves the piece on from to the empty square to and adjusts its
// move count by delta.
func (m *Match) relocate(from, to chess.Position, delta int) error {
	p, err := m.board.Remove(from)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("relocate from %v: %w", from, errors.ErrEmptySquare)
	}
	if err := m.board.Place(p, to); err != nil {
		if restoreErr := m.board.Place(p, from); restoreErr != nil {
			return fmt.Errorf("%w; restore: %w", err, restoreErr)
		}
		return err
	}
	if delta > 0 {
		p.IncrementMoveCount()
	} else {
		p.DecrementMoveCount()
	}
	return nil
}
