package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Reasons reported with ErrIllegalMove.
const (
	ReasonNoPiece     = "no piece on source position"
	ReasonNotYours    = "this piece is not yours"
	ReasonNoMoves     = "no moves to execute"
	ReasonCannotReach = "piece can't move to target position"
	ReasonSelfCheck   = "you can not put yourself in check"
	ReasonMatchOver   = "the match is over"
	ReasonOffTheBoard = "position not on the board"
)

// PossibleMoves returns the destinations of the current player's piece on
// source. Moves that would leave the player in check are included; they are
// rejected by PerformMove.
func (m *Match) PossibleMoves(source chess.Square) (chess.Moves, error) {
	p, _, err := m.validateSource(source, "")
	if err != nil {
		return nil, err
	}
	return p.PossibleMoves(m.board), nil
}

// validateSource checks that source holds a movable piece of the current
// player. target is only used to decorate the error.
func (m *Match) validateSource(source chess.Square, target string) (*chess.Piece, chess.Position, error) {
	from, err := source.Position()
	if err != nil {
		return nil, from, m.illegal(source.String(), target, errors.ErrOutOfBounds, ReasonOffTheBoard)
	}

	p := m.board.PieceAt(from)
	switch {
	case p == nil:
		return nil, from, m.illegal(source.String(), target, errors.ErrEmptySquare, ReasonNoPiece)
	case p.Colour() != m.currentPlayer:
		return nil, from, m.illegal(source.String(), target, nil, ReasonNotYours)
	case !p.HasAnyMove(m.board):
		return nil, from, m.illegal(source.String(), target, nil, ReasonNoMoves)
	}
	return p, from, nil
}

// validateTarget checks that p can reach target.
func (m *Match) validateTarget(p *chess.Piece, source, target chess.Square) (chess.Position, error) {
	to, err := target.Position()
	if err != nil {
		return to, m.illegal(source.String(), target.String(), errors.ErrOutOfBounds, ReasonOffTheBoard)
	}
	if !p.PossibleMove(m.board, to) {
		return to, m.illegal(source.String(), target.String(), nil, ReasonCannotReach)
	}
	return to, nil
}

func (m *Match) illegal(from, to string, cause error, reason string) error {
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Cause:  cause,
		Reason: reason,
		From:   from,
		To:     to,
		Turn:   m.turn,
	}
}
