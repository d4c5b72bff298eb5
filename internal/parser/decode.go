package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// ReadMoves reads a move script: one move per line, blank lines and '#'
// comments ignored.
func ReadMoves(r io.Reader) ([]Command, error) {
	var moves []Command
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		switch cmd.Kind {
		case CommandEmpty:
			continue
		case CommandMove:
			moves = append(moves, cmd)
		default:
			return nil, fmt.Errorf("line %d: %w", lineNum, &errors.ParseError{
				Err:      errors.ErrInvalidCommand,
				Input:    cmd.Input,
				Expected: "move such as e2 e4",
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading moves")
	}
	return moves, nil
}
