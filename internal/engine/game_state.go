package engine

// Status summarises the match for display.
type Status int

const (
	Playing Status = iota
	Check
	Checkmate
)

// String returns the banner text for the status.
func (s Status) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	}
	return "Unknown"
}

// Status returns the current state of the match.
func (m *Match) Status() Status {
	switch {
	case m.checkmate:
		return Checkmate
	case m.check:
		return Check
	}
	return Playing
}

// nextTurn passes the move to the other player.
func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opposite()
}
