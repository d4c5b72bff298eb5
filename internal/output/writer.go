package output

import (
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// MatchWriter is the interface the console uses to show a match.
// Different implementations handle different output formats (text, JSON).
type MatchWriter interface {
	// WriteMatch shows the match, marking highlight as possible destinations.
	WriteMatch(m *engine.Match, highlight chess.Moves) error

	// WriteMessage shows one line of feedback.
	WriteMessage(msg string) error

	// Prompt asks the given player for a square.
	Prompt(label string, player chess.Colour) error
}

// NewMatchWriter creates the writer selected by display.Format.
func NewMatchWriter(w io.Writer, display *config.DisplayConfig, colour bool) MatchWriter {
	if display != nil && display.Format == config.FormatJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, display, colour)
}

// TextWriter writes matches as board diagrams.
type TextWriter struct {
	r *Renderer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, display *config.DisplayConfig, colour bool) *TextWriter {
	return &TextWriter{r: NewRenderer(w, display, colour)}
}

// WriteMatch draws the match.
func (tw *TextWriter) WriteMatch(m *engine.Match, highlight chess.Moves) error {
	tw.r.PrintMatch(m, highlight)
	return nil
}

// WriteMessage writes msg on its own line.
func (tw *TextWriter) WriteMessage(msg string) error {
	tw.r.Message(msg)
	return nil
}

// Prompt writes the input prompt.
func (tw *TextWriter) Prompt(label string, player chess.Colour) error {
	tw.r.Prompt(label, player)
	return nil
}

// JSONWriter writes one JSON object per line.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteMatch encodes the match state.
func (jw *JSONWriter) WriteMatch(m *engine.Match, highlight chess.Moves) error {
	return encodeJSON(jw.w, MatchToJSON(m, highlight))
}

// WriteMessage encodes msg as a JSONMessage.
func (jw *JSONWriter) WriteMessage(msg string) error {
	return encodeJSON(jw.w, &JSONMessage{Message: msg})
}

// Prompt writes nothing; JSON output is meant for scripts.
func (jw *JSONWriter) Prompt(label string, player chess.Colour) error {
	return nil
}
