// Package engine implements the chess match: turn order, move validation,
// move execution with castling, self-check rejection and check/checkmate
// detection. All speculative moves are made on the live board and undone
// before control returns to the caller.
package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// Match is one game between two players.
// A Match is not safe for concurrent use.
type Match struct {
	id    uuid.UUID
	board *chess.Board

	// Every piece is in exactly one of these two lists.
	onBoard  []*chess.Piece
	captured []*chess.Piece

	turn          int
	currentPlayer chess.Colour
	check         bool
	checkmate     bool
	winner        chess.Colour
}

// ID returns the random identifier of the match.
func (m *Match) ID() uuid.UUID {
	return m.id
}

// Turn returns the turn number, starting at 1.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour to move.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.currentPlayer
}

// Check reports whether the player to move is in check.
// After checkmate it refers to the mated player.
func (m *Match) Check() bool {
	return m.check
}

// Checkmate reports whether the match has ended in checkmate.
func (m *Match) Checkmate() bool {
	return m.checkmate
}

// Winner returns the colour that delivered checkmate.
// The second result is false while the match is still being played.
func (m *Match) Winner() (chess.Colour, bool) {
	return m.winner, m.checkmate
}

// Board returns the board the match is played on.
// Callers must not mutate it.
func (m *Match) Board() *chess.Board {
	return m.board
}

// Pieces returns a snapshot of the piece grid, row 0 being rank 8.
func (m *Match) Pieces() [][]*chess.Piece {
	return m.board.Grid()
}

// PiecesOnBoard returns the pieces still on the board.
func (m *Match) PiecesOnBoard() []*chess.Piece {
	return append([]*chess.Piece(nil), m.onBoard...)
}

// CapturedPieces returns the captured pieces in capture order.
func (m *Match) CapturedPieces() []*chess.Piece {
	return append([]*chess.Piece(nil), m.captured...)
}

// piecesOf returns a copy of the on-board roster filtered by colour.
// Simulations mutate the roster, so callers iterate the copy.
func (m *Match) piecesOf(colour chess.Colour) []*chess.Piece {
	var pieces []*chess.Piece
	for _, p := range m.onBoard {
		if p.Colour() == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// capture moves p from the on-board roster to the captured list.
func (m *Match) capture(p *chess.Piece) {
	m.onBoard = removePiece(m.onBoard, p)
	m.captured = append(m.captured, p)
}

// release reverses capture.
func (m *Match) release(p *chess.Piece) {
	m.captured = removePiece(m.captured, p)
	m.onBoard = append(m.onBoard, p)
}

func removePiece(pieces []*chess.Piece, p *chess.Piece) []*chess.Piece {
	for i := len(pieces) - 1; i >= 0; i-- {
		if pieces[i] == p {
			return append(pieces[:i], pieces[i+1:]...)
		}
	}
	return pieces
}
