package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// king returns the king of the given colour.
func (m *Match) king(colour chess.Colour) (*chess.Piece, error) {
	for _, p := range m.onBoard {
		if p.Kind() == chess.King && p.Colour() == colour {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", colour, errors.ErrNoKing)
}

// InCheck reports whether any opposing piece can reach the king of colour.
// A missing king is reported as errors.ErrNoKing.
func (m *Match) InCheck(colour chess.Colour) (bool, error) {
	k, err := m.king(colour)
	if err != nil {
		return false, err
	}
	pos, _ := k.Position()

	for _, p := range m.onBoard {
		if p.Colour() != colour && p.PossibleMove(m.board, pos) {
			return true, nil
		}
	}
	return false, nil
}

// InCheckmate reports whether colour is in check and every move of every
// one of its pieces still leaves it in check. Each candidate move is played
// on the live board and undone.
func (m *Match) InCheckmate(colour chess.Colour) (bool, error) {
	inCheck, err := m.InCheck(colour)
	if err != nil || !inCheck {
		return false, err
	}

	for _, p := range m.piecesOf(colour) {
		from, _ := p.Position()
		for _, to := range p.PossibleMoves(m.board).Positions() {
			var stillInCheck bool
			err := m.simulate(from, to, func() (err error) {
				stillInCheck, err = m.InCheck(colour)
				return err
			})
			if err != nil {
				return false, err
			}
			if !stillInCheck {
				return false, nil
			}
		}
	}
	return true, nil
}
