package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// JSONMatch represents the state of a match in JSON format.
type JSONMatch struct {
	ID            string   `json:"id"`
	Turn          int      `json:"turn"`
	CurrentPlayer string   `json:"currentPlayer"`
	Status        string   `json:"status"`
	Winner        string   `json:"winner,omitempty"`
	Board         []string `json:"board"` // rank 8 first, '-' for empty squares
	Captured      []string `json:"captured,omitempty"`
	Highlight     []string `json:"highlight,omitempty"`
}

// JSONMessage carries feedback such as a rejected move.
type JSONMessage struct {
	Message string `json:"message"`
}

// MatchToJSON converts a match to JSON format.
func MatchToJSON(m *engine.Match, highlight chess.Moves) *JSONMatch {
	jm := &JSONMatch{
		ID:            m.ID().String(),
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer().String(),
		Status:        m.Status().String(),
	}
	if winner, over := m.Winner(); over {
		jm.Winner = winner.String()
	}

	for _, row := range m.Pieces() {
		var sb strings.Builder
		for _, p := range row {
			if p == nil {
				sb.WriteByte('-')
			} else {
				sb.WriteString(pieceText(p))
			}
		}
		jm.Board = append(jm.Board, sb.String())
	}

	for _, p := range m.CapturedPieces() {
		jm.Captured = append(jm.Captured, pieceText(p))
	}
	for _, pos := range highlight.Positions() {
		jm.Highlight = append(jm.Highlight, chess.SquareFromPosition(pos).String())
	}
	return jm
}

// encodeJSON writes v as a single line.
func encodeJSON(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
