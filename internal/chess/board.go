package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Board is a fixed-size grid of piece slots.
// It enforces at most one piece per square and keeps each piece's own
// position in step with the square it occupies; it knows no chess rules.
type Board struct {
	rows    int
	columns int
	squares [][]*Piece
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%d x %d: %w", rows, columns, errors.ErrInvalidBoard)
	}
	b := &Board{
		rows:    rows,
		columns: columns,
		squares: make([][]*Piece, rows),
	}
	for r := range b.squares {
		b.squares[r] = make([]*Piece, columns)
	}
	return b, nil
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	b, _ := NewBoard(BoardSize, BoardSize)
	return b
}

// Rows returns the number of rows on the board.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns on the board.
func (b *Board) Columns() int {
	return b.columns
}

// Contains reports whether the position lies on the board.
func (b *Board) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Column >= 0 && pos.Column < b.columns
}

// PieceAt returns the piece on the given square, or nil if the square is
// empty or off the board.
func (b *Board) PieceAt(pos Position) *Piece {
	if !b.Contains(pos) {
		return nil
	}
	return b.squares[pos.Row][pos.Column]
}

// IsOccupied reports whether a piece stands on the given square.
// Squares off the board are never occupied.
func (b *Board) IsOccupied(pos Position) bool {
	return b.PieceAt(pos) != nil
}

// Place puts a piece on an empty square.
func (b *Board) Place(p *Piece, pos Position) error {
	if !b.Contains(pos) {
		return fmt.Errorf("place at %v: %w", pos, errors.ErrOutOfBounds)
	}
	if b.squares[pos.Row][pos.Column] != nil {
		return fmt.Errorf("place at %v: %w", pos, errors.ErrSquareOccupied)
	}
	if p.placed {
		return fmt.Errorf("place at %v: piece already on %v: %w", pos, p.position, errors.ErrSquareOccupied)
	}
	b.squares[pos.Row][pos.Column] = p
	p.position = pos
	p.placed = true
	return nil
}

// Remove takes the piece off the given square and returns it.
// Removing from an empty square returns (nil, nil).
func (b *Board) Remove(pos Position) (*Piece, error) {
	if !b.Contains(pos) {
		return nil, fmt.Errorf("remove at %v: %w", pos, errors.ErrOutOfBounds)
	}
	p := b.squares[pos.Row][pos.Column]
	if p == nil {
		return nil, nil
	}
	b.squares[pos.Row][pos.Column] = nil
	p.placed = false
	return p, nil
}

// Grid returns a copy of the piece slots, row by row.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, b.rows)
	for r := range b.squares {
		grid[r] = make([]*Piece, b.columns)
		copy(grid[r], b.squares[r])
	}
	return grid
}
