// Package output renders a chess match for the console, either as a text
// board diagram or as JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// Renderer draws boards, captured pieces and the status banner as text.
type Renderer struct {
	w       io.Writer
	display *config.DisplayConfig
	colour  bool
}

// NewRenderer creates a text renderer. colour enables ANSI sequences; see
// ColourEnabled.
func NewRenderer(w io.Writer, display *config.DisplayConfig, colour bool) *Renderer {
	if display == nil {
		display = config.NewDisplayConfig()
	}
	return &Renderer{w: w, display: display, colour: colour}
}

// ClearScreen clears the terminal when colour output and clearing are both on.
func (r *Renderer) ClearScreen() {
	if r.colour && r.display.ClearScreen {
		fmt.Fprint(r.w, ansiClearScreen)
	}
}

// PrintMatch draws the whole match. Squares marked in highlight are shown
// as possible destinations; highlight may be nil.
func (r *Renderer) PrintMatch(m *engine.Match, highlight chess.Moves) {
	r.ClearScreen()
	r.PrintBoard(m.Pieces(), highlight)
	fmt.Fprintln(r.w)
	if r.display.ShowCaptured {
		r.PrintCaptured(m.CapturedPieces())
		fmt.Fprintln(r.w)
	}
	r.PrintStatus(m)
}

// PrintBoard draws the grid with rank numbers on the left and files below.
func (r *Renderer) PrintBoard(grid [][]*chess.Piece, highlight chess.Moves) {
	for row, pieces := range grid {
		fmt.Fprintf(r.w, "%d ", len(grid)-row)
		for col, p := range pieces {
			r.printSquare(p, highlight.Has(chess.Position{Row: row, Column: col}))
		}
		fmt.Fprintln(r.w)
	}

	var files []string
	if len(grid) > 0 {
		for col := range grid[0] {
			files = append(files, string(rune(chess.FirstFile+col)))
		}
	}
	fmt.Fprintf(r.w, "  %s\n", strings.Join(files, " "))
}

func (r *Renderer) printSquare(p *chess.Piece, highlighted bool) {
	if !r.colour {
		switch {
		case p != nil:
			fmt.Fprintf(r.w, "%s ", pieceText(p))
		case highlighted:
			fmt.Fprint(r.w, "* ")
		default:
			fmt.Fprint(r.w, "- ")
		}
		return
	}

	if highlighted {
		fmt.Fprint(r.w, ansiBlueBackground)
	}
	if p == nil {
		fmt.Fprint(r.w, "-"+ansiReset)
	} else {
		fmt.Fprint(r.w, pieceColour(p.Colour())+p.String()+ansiReset)
	}
	fmt.Fprint(r.w, " ")
}

// PrintCaptured lists captured pieces by colour.
func (r *Renderer) PrintCaptured(captured []*chess.Piece) {
	fmt.Fprintln(r.w, "Captured pieces:")
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var names []string
		for _, p := range captured {
			if p.Colour() == colour {
				names = append(names, pieceText(p))
			}
		}
		list := "[" + strings.Join(names, ", ") + "]"
		if r.colour {
			list = pieceColour(colour) + list + ansiReset
		}
		fmt.Fprintf(r.w, "%s: %s\n", colour, list)
	}
}

// PrintStatus writes the turn banner.
func (r *Renderer) PrintStatus(m *engine.Match) {
	fmt.Fprintf(r.w, "Turn : %d\n", m.Turn())
	if winner, over := m.Winner(); over {
		fmt.Fprintln(r.w, "CHECKMATE!")
		fmt.Fprintf(r.w, "Winner: %s\n", winner)
		return
	}
	fmt.Fprintf(r.w, "Waiting player: %s\n", m.CurrentPlayer())
	if m.Check() {
		fmt.Fprintln(r.w, "CHECK!")
	}
}

// Prompt asks the player for a square.
func (r *Renderer) Prompt(label string, player chess.Colour) {
	if !r.colour {
		fmt.Fprintf(r.w, "%s: ", label)
		return
	}
	style := ansiBlackBackground + ansiBlue
	if player == chess.Black {
		style = ansiWhiteBackground + ansiYellow
	}
	fmt.Fprintf(r.w, "%s %s: %s ", style, label, ansiReset)
}

// Message writes one line of feedback, such as a rejected move.
func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, msg)
}

// pieceText is the piece letter, lower case for Black.
func pieceText(p *chess.Piece) string {
	if p.Colour() == chess.Black {
		return strings.ToLower(p.String())
	}
	return p.String()
}

func pieceColour(c chess.Colour) string {
	if c == chess.Black {
		return ansiYellow
	}
	return ansiWhite
}
