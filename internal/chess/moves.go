package chess

// Moves is a destination matrix with the same dimensions as the board it was
// computed on. moves[row][column] is true when the square is reachable.
type Moves [][]bool

// NewMoves creates an all-false matrix.
func NewMoves(rows, columns int) Moves {
	m := make(Moves, rows)
	for r := range m {
		m[r] = make([]bool, columns)
	}
	return m
}

// Has reports whether pos is marked. Positions outside the matrix are not.
func (m Moves) Has(pos Position) bool {
	if pos.Row < 0 || pos.Row >= len(m) {
		return false
	}
	row := m[pos.Row]
	if pos.Column < 0 || pos.Column >= len(row) {
		return false
	}
	return row[pos.Column]
}

// Any reports whether at least one square is marked.
func (m Moves) Any() bool {
	for _, row := range m {
		for _, ok := range row {
			if ok {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked squares.
func (m Moves) Count() int {
	n := 0
	for _, row := range m {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

// Positions returns the marked squares in row-major order.
func (m Moves) Positions() []Position {
	var out []Position
	for r, row := range m {
		for c, ok := range row {
			if ok {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}

func (m Moves) mark(pos Position) {
	m[pos.Row][pos.Column] = true
}
