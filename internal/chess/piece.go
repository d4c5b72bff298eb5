package chess

// Piece is one chess man. Its kind selects the movement rules used by
// PossibleMoves; its position is maintained by the Board it stands on.
type Piece struct {
	kind      Kind
	colour    Colour
	moveCount int
	position  Position
	placed    bool
}

// NewPiece creates a piece that is not yet on any board.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// Kind returns the piece type.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Colour returns the colour of the piece.
func (p *Piece) Colour() Colour {
	return p.colour
}

// MoveCount returns how many times the piece has been relocated.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// IncrementMoveCount records one relocation.
func (p *Piece) IncrementMoveCount() {
	p.moveCount++
}

// DecrementMoveCount reverses one relocation.
func (p *Piece) DecrementMoveCount() {
	p.moveCount--
}

// Position returns the square the piece stands on.
// The second result is false while the piece is off the board.
func (p *Piece) Position() (Position, bool) {
	return p.position, p.placed
}

// Square returns the piece's location in square notation.
// The second result is false while the piece is off the board.
func (p *Piece) Square() (Square, bool) {
	if !p.placed {
		return Square{}, false
	}
	return SquareFromPosition(p.position), true
}

// String returns the piece letter, e.g. "K".
func (p *Piece) String() string {
	return string(p.kind.Letter())
}

// PossibleMoves returns the pseudo-legal destinations of the piece on b.
// Self-check is not taken into account. A piece that is off the board has
// no destinations.
func (p *Piece) PossibleMoves(b *Board) Moves {
	moves := NewMoves(b.Rows(), b.Columns())
	if !p.placed {
		return moves
	}

	switch p.kind {
	case Pawn:
		pawnMoves(b, p, moves)
	case Knight:
		stepMoves(b, p, knightOffsets, moves)
	case Bishop:
		slideMoves(b, p, diagonalDirs, moves)
	case Rook:
		slideMoves(b, p, straightDirs, moves)
	case Queen:
		slideMoves(b, p, diagonalDirs, moves)
		slideMoves(b, p, straightDirs, moves)
	case King:
		stepMoves(b, p, kingOffsets, moves)
		castlingMoves(b, p, moves)
	}
	return moves
}

// PossibleMove reports whether pos is among the piece's pseudo-legal destinations.
func (p *Piece) PossibleMove(b *Board, pos Position) bool {
	return p.PossibleMoves(b).Has(pos)
}

// HasAnyMove reports whether the piece has at least one pseudo-legal destination.
func (p *Piece) HasAnyMove(b *Board) bool {
	return p.PossibleMoves(b).Any()
}

// isOpponent reports whether a different-coloured piece stands on pos.
func (p *Piece) isOpponent(b *Board, pos Position) bool {
	other := b.PieceAt(pos)
	return other != nil && other.colour != p.colour
}

// canLandOn reports whether pos is on the board and either empty or held by an opponent.
func (p *Piece) canLandOn(b *Board, pos Position) bool {
	return b.Contains(pos) && (!b.IsOccupied(pos) || p.isOpponent(b, pos))
}
