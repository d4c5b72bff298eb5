package chess

// Castling geometry relative to the king's starting column.
const (
	KingsideRookOffset  = 3  // rook stands three columns right of the king
	QueensideRookOffset = -4 // rook stands four columns left of the king
	CastlingKingStep    = 2  // the king travels two columns either way
)

// castlingMoves marks the two-column king moves when the king and the
// matching rook have never moved and every square between them is empty.
// Check and attacked transit squares are not examined.
func castlingMoves(b *Board, king *Piece, moves Moves) {
	if king.moveCount != 0 {
		return
	}

	if canCastleWith(b, king, KingsideRookOffset) {
		moves.mark(king.position.Offset(0, CastlingKingStep))
	}
	if canCastleWith(b, king, QueensideRookOffset) {
		moves.mark(king.position.Offset(0, -CastlingKingStep))
	}
}

// canCastleWith checks the rook at rookOffset columns from the king and the
// squares in between.
func canCastleWith(b *Board, king *Piece, rookOffset int) bool {
	rook := b.PieceAt(king.position.Offset(0, rookOffset))
	if rook == nil || rook.kind != Rook || rook.colour != king.colour || rook.moveCount != 0 {
		return false
	}

	step := 1
	if rookOffset < 0 {
		step = -1
	}
	for c := step; c != rookOffset; c += step {
		if b.IsOccupied(king.position.Offset(0, c)) {
			return false
		}
	}
	return true
}
