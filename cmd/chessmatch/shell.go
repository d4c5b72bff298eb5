package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/parser"
)

const (
	labelSource = "Source"
	labelTarget = "Target"
)

const helpText = `Enter the square of the piece to move (e.g. e2), then its destination.
A whole move can be typed at once: e2 e4, e2-e4 or e2e4.
Castle by moving the king two squares towards the rook.
Commands: help, quit`

// errQuit ends the session at the player's request.
var errQuit = errors.New("quit")

// shell runs one match on a line-oriented console.
type shell struct {
	cfg    *config.Config
	match  *engine.Match
	out    output.MatchWriter
	in     *bufio.Scanner
	notice string // shown under the next board
}

// run plays a match read from cfg.InputFile until checkmate, quit or end of
// input. Rejected moves and unreadable input are reported and the player is
// asked again; any other error ends the session.
func run(cfg *config.Config, colour bool) error {
	s := &shell{
		cfg:   cfg,
		match: engine.NewMatch(cfg.Layout),
		out:   output.NewMatchWriter(cfg.OutputFile, cfg.Display, colour),
		in:    bufio.NewScanner(cfg.InputFile),
	}
	cfg.Logf(1, "match %s: started, %s layout", s.match.ID(), cfg.Layout)
	defer s.summary()

	if cfg.MovesFile != "" {
		if err := s.replayFile(cfg.MovesFile); err != nil {
			return err
		}
	}
	return s.loop()
}

func (s *shell) loop() error {
	for !s.match.Checkmate() {
		err := s.turn()
		switch {
		case err == nil:
		case errors.Is(err, errQuit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
	return s.show(nil)
}

// turn asks for one move. A lone square selects the piece and highlights its
// destinations before asking for the target.
func (s *shell) turn() error {
	if err := s.show(nil); err != nil {
		return err
	}
	cmd, err := s.ask(labelSource)
	if err != nil {
		return s.report(err)
	}
	if cmd.Kind == parser.CommandMove {
		return s.report(s.play(cmd.Source(), cmd.Target()))
	}

	source := cmd.Source()
	moves, err := s.match.PossibleMoves(source)
	if err != nil {
		return s.report(err)
	}
	if err := s.show(moves); err != nil {
		return err
	}

	cmd, err = s.ask(labelTarget)
	if err != nil {
		return s.report(err)
	}
	if cmd.Kind == parser.CommandMove {
		return s.report(s.play(cmd.Source(), cmd.Target()))
	}
	return s.report(s.play(source, cmd.Source()))
}

// ask prompts until the player enters a square or a move. Help is answered
// in place; quit and end of input are returned as errQuit and io.EOF.
func (s *shell) ask(label string) (parser.Command, error) {
	for {
		if err := s.out.Prompt(label, s.match.CurrentPlayer()); err != nil {
			return parser.Command{}, err
		}
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return parser.Command{}, errors.Wrap(err, "reading input")
			}
			return parser.Command{}, io.EOF
		}

		cmd, err := parser.ParseCommand(s.in.Text())
		if err != nil {
			return cmd, err
		}
		switch cmd.Kind {
		case parser.CommandEmpty:
			continue
		case parser.CommandQuit:
			return cmd, errQuit
		case parser.CommandHelp:
			if err := s.out.WriteMessage(helpText); err != nil {
				return cmd, err
			}
			continue
		}
		return cmd, nil
	}
}

// play performs one move and logs it.
func (s *shell) play(source, target chess.Square) error {
	turn, player := s.match.Turn(), s.match.CurrentPlayer()
	captured, err := s.match.PerformMove(source, target)
	if err != nil {
		s.cfg.Logf(2, "match %s: %v", s.match.ID(), err)
		return err
	}

	line := fmt.Sprintf("match %s: turn %d: %s %s-%s", s.match.ID(), turn, player, source, target)
	if captured != nil {
		line += fmt.Sprintf(" captures %s", captured)
	}
	switch s.match.Status() {
	case engine.Check:
		line += " check"
	case engine.Checkmate:
		line += " checkmate"
	}
	s.cfg.Logf(2, "%s", line)
	return nil
}

// report turns errors the player can recover from into a notice.
func (s *shell) report(err error) error {
	var pe *errors.ParseError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrIllegalMove):
		s.notice = err.Error()
		return nil
	case errors.As(err, &pe):
		s.cfg.Logf(2, "match %s: %v", s.match.ID(), err)
		s.notice = err.Error()
		return nil
	}
	return err
}

// show draws the board followed by any pending notice.
func (s *shell) show(highlight chess.Moves) error {
	if err := s.out.WriteMatch(s.match, highlight); err != nil {
		return err
	}
	if s.notice == "" {
		return nil
	}
	notice := s.notice
	s.notice = ""
	return s.out.WriteMessage(notice)
}

// replayFile plays a move script. Any rejected move aborts the session,
// since a script is not interactive.
func (s *shell) replayFile(path string) error {
	moves, err := readMovesFile(path)
	if err != nil {
		return err
	}
	for _, mv := range moves {
		if err := s.play(mv.Source(), mv.Target()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	s.cfg.Logf(1, "match %s: replayed %d moves from %s", s.match.ID(), len(moves), path)
	return nil
}

func (s *shell) summary() {
	if winner, over := s.match.Winner(); over {
		s.cfg.Logf(1, "match %s: checkmate on turn %d, %s wins", s.match.ID(), s.match.Turn(), winner)
		return
	}
	s.cfg.Logf(1, "match %s: stopped on turn %d, %s to move", s.match.ID(), s.match.Turn(), s.match.CurrentPlayer())
}

// readMovesFile reads a move script from path.
func readMovesFile(path string) ([]parser.Command, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("opening moves file: %w", err)
	}
	defer file.Close()

	moves, err := parser.ReadMoves(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return moves, nil
}
