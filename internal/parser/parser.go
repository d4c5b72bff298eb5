package parser

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// CommandKind identifies what a line of console input asks for.
type CommandKind int

const (
	CommandEmpty  CommandKind = iota // blank line or comment
	CommandSquare                    // one square, e.g. "e2"
	CommandMove                      // source and target, e.g. "e2 e4", "e2-e4", "e2e4"
	CommandQuit
	CommandHelp
)

// Command is a parsed line of console input.
type Command struct {
	Kind    CommandKind
	Squares []chess.Square // one for CommandSquare, two for CommandMove
	Input   string
}

// Source returns the first square of a square or move command.
func (c Command) Source() chess.Square {
	return c.Squares[0]
}

// Target returns the second square of a move command.
func (c Command) Target() chess.Square {
	return c.Squares[1]
}

var keywords = map[string]CommandKind{
	"quit": CommandQuit,
	"exit": CommandQuit,
	"q":    CommandQuit,
	"help": CommandHelp,
	"h":    CommandHelp,
}

// ParseCommand parses one line of console input.
// Malformed input is reported as *errors.ParseError.
func ParseCommand(line string) (Command, error) {
	cmd := Command{Input: line}
	tokens := NewLexer(line).Tokens()

	for _, tok := range tokens {
		if tok.Type == ErrorToken {
			return cmd, &errors.ParseError{
				Err:      errors.ErrInvalidCommand,
				Input:    line,
				Column:   tok.Column,
				Expected: "square, move or command",
				Got:      "'" + tok.Text + "'",
			}
		}
	}

	switch len(tokens) {
	case 0:
		cmd.Kind = CommandEmpty
		return cmd, nil

	case 1:
		tok := tokens[0]
		if kind, ok := keywords[tok.Text]; ok {
			cmd.Kind = kind
			return cmd, nil
		}
		if len(tok.Text) == 4 {
			return parseMove(cmd, line, Token{Type: WordToken, Text: tok.Text[:2], Column: tok.Column},
				Token{Type: WordToken, Text: tok.Text[2:], Column: tok.Column + 2})
		}
		sq, err := parseSquare(line, tok)
		if err != nil {
			return cmd, err
		}
		cmd.Kind = CommandSquare
		cmd.Squares = []chess.Square{sq}
		return cmd, nil

	case 2:
		if tokens[0].Type == WordToken && tokens[1].Type == WordToken {
			return parseMove(cmd, line, tokens[0], tokens[1])
		}

	case 3:
		if tokens[0].Type == WordToken && tokens[1].Type == DashToken && tokens[2].Type == WordToken {
			return parseMove(cmd, line, tokens[0], tokens[2])
		}
	}

	return cmd, &errors.ParseError{
		Err:      errors.ErrInvalidCommand,
		Input:    line,
		Expected: "square, move or command",
		Got:      tokens[len(tokens)-1].Text,
		Column:   tokens[len(tokens)-1].Column,
	}
}

func parseMove(cmd Command, line string, from, to Token) (Command, error) {
	source, err := parseSquare(line, from)
	if err != nil {
		return cmd, err
	}
	target, err := parseSquare(line, to)
	if err != nil {
		return cmd, err
	}
	cmd.Kind = CommandMove
	cmd.Squares = []chess.Square{source, target}
	return cmd, nil
}

// parseSquare parses tok as a square and places any error on the full line.
func parseSquare(line string, tok Token) (chess.Square, error) {
	sq, err := chess.ParseSquare(tok.Text)
	if err == nil {
		return sq, nil
	}

	var pe *errors.ParseError
	if errors.As(err, &pe) {
		located := *pe
		located.Input = line
		if located.Column > 0 {
			located.Column += tok.Column - 1
		} else {
			located.Column = tok.Column
		}
		return sq, &located
	}
	return sq, err
}
