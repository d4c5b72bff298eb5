package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// PerformMove moves the current player's piece from source to target and
// returns the captured piece, if any.
//
// Rejected moves return an error matching errors.ErrIllegalMove and leave
// the match untouched. An accepted move either passes the turn to the
// opponent or ends the match in checkmate.
func (m *Match) PerformMove(source, target chess.Square) (*chess.Piece, error) {
	if m.checkmate {
		return nil, m.illegal(source.String(), target.String(), errors.ErrMatchOver, ReasonMatchOver)
	}

	p, from, err := m.validateSource(source, target.String())
	if err != nil {
		return nil, err
	}
	to, err := m.validateTarget(p, source, target)
	if err != nil {
		return nil, err
	}

	captured, err := m.makeMove(from, to)
	if err != nil {
		return nil, err
	}

	opponent := m.currentPlayer.Opposite()
	selfCheck, err := m.InCheck(m.currentPlayer)
	if err == nil && selfCheck {
		err = m.illegal(source.String(), target.String(), nil, ReasonSelfCheck)
	}
	var opponentCheck bool
	if err == nil {
		opponentCheck, err = m.InCheck(opponent)
	}
	if err != nil {
		if undoErr := m.undoMove(from, to, captured); undoErr != nil {
			return nil, fmt.Errorf("%w; undo: %w", err, undoErr)
		}
		return nil, err
	}

	m.check = opponentCheck
	mate, err := m.InCheckmate(opponent)
	if err != nil {
		return captured, err
	}
	if mate {
		m.checkmate = true
		m.winner = m.currentPlayer
	} else {
		m.nextTurn()
	}
	return captured, nil
}

// makeMove relocates the piece on from to to without any rule checks,
// taking a castling rook along. It returns the piece captured on to.
func (m *Match) makeMove(from, to chess.Position) (*chess.Piece, error) {
	p := m.board.PieceAt(from)
	if p == nil {
		return nil, fmt.Errorf("move from %v: %w", from, errors.ErrEmptySquare)
	}

	captured, err := m.board.Remove(to)
	if err != nil {
		return nil, err
	}
	if err := m.relocate(from, to, 1); err != nil {
		if captured != nil {
			if restoreErr := m.board.Place(captured, to); restoreErr != nil {
				return nil, fmt.Errorf("%w; restore: %w", err, restoreErr)
			}
		}
		return nil, err
	}
	if captured != nil {
		m.capture(captured)
	}

	if shift, ok := castlingRook(p, from, to); ok {
		if err := m.shiftRook(shift); err != nil {
			if undoErr := m.relocate(to, from, -1); undoErr != nil {
				return nil, fmt.Errorf("%w; undo: %w", err, undoErr)
			}
			return nil, err
		}
	}
	return captured, nil
}

// undoMove reverses makeMove, restoring captured to the board and roster.
func (m *Match) undoMove(from, to chess.Position, captured *chess.Piece) error {
	p := m.board.PieceAt(to)
	if p == nil {
		return fmt.Errorf("undo move to %v: %w", to, errors.ErrEmptySquare)
	}

	if shift, ok := castlingRook(p, from, to); ok {
		if err := m.unshiftRook(shift); err != nil {
			return err
		}
	}
	if err := m.relocate(to, from, -1); err != nil {
		return err
	}
	if captured != nil {
		if err := m.board.Place(captured, to); err != nil {
			return err
		}
		m.release(captured)
	}
	return nil
}

// simulate plays a move on the live board, runs fn and always undoes the
// move before returning.
func (m *Match) simulate(from, to chess.Position, fn func() error) (err error) {
	captured, err := m.makeMove(from, to)
	if err != nil {
		return err
	}
	defer func() {
		if undoErr := m.undoMove(from, to, captured); undoErr != nil {
			if err != nil {
				err = fmt.Errorf("%w; undo: %w", err, undoErr)
			} else {
				err = undoErr
			}
		}
	}()
	return fn()
}
