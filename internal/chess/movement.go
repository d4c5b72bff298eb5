package chess

// Direction and offset tables, as (row, column) deltas.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// slideMoves marks every square along each direction until the edge of the
// board or the first occupied square, which is included if it holds an opponent.
func slideMoves(b *Board, p *Piece, dirs [][2]int, moves Moves) {
	for _, dir := range dirs {
		pos := p.position.Offset(dir[0], dir[1])
		for b.Contains(pos) && !b.IsOccupied(pos) {
			moves.mark(pos)
			pos = pos.Offset(dir[0], dir[1])
		}
		if p.isOpponent(b, pos) {
			moves.mark(pos)
		}
	}
}

// stepMoves marks each single-step target that is empty or holds an opponent.
func stepMoves(b *Board, p *Piece, offsets [][2]int, moves Moves) {
	for _, off := range offsets {
		pos := p.position.Offset(off[0], off[1])
		if p.canLandOn(b, pos) {
			moves.mark(pos)
		}
	}
}

// pawnMoves marks the forward push, the double push from an unmoved pawn and
// diagonal captures. En passant and promotion are not modelled.
func pawnMoves(b *Board, p *Piece, moves Moves) {
	dir := ForwardDirection(p.colour)

	one := p.position.Offset(dir, 0)
	if b.Contains(one) && !b.IsOccupied(one) {
		moves.mark(one)

		two := p.position.Offset(2*dir, 0)
		if p.moveCount == 0 && b.Contains(two) && !b.IsOccupied(two) {
			moves.mark(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		capture := p.position.Offset(dir, dc)
		if p.isOpponent(b, capture) {
			moves.mark(capture)
		}
	}
}
