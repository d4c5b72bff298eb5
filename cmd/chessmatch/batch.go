package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/output"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// runBatch replays every move file on its own match and writes one report
// line per file, in argument order. It returns the number of scripts that
// stopped on a rejected move.
func runBatch(cfg *config.Config, files []string, numWorkers int) (int, error) {
	if len(files) == 0 {
		return 0, fmt.Errorf("batch mode needs at least one move file: %w", errors.ErrInvalidConfig)
	}

	jobs := make([]worker.Job, 0, len(files))
	for i, name := range files {
		moves, err := readMovesFile(name)
		if err != nil {
			return 0, err
		}
		jobs = append(jobs, worker.Job{Index: i, Name: name, Moves: moves})
	}

	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
	}
	cfg.Logf(2, "replaying %d script(s) on %d worker(s)", len(jobs), numWorkers)

	display := *cfg.Display
	display.ClearScreen = false
	out := output.NewMatchWriter(cfg.OutputFile, &display, false)

	failed := 0
	for _, res := range worker.ReplayAll(jobs, cfg.Layout, numWorkers) {
		if res.Err != nil {
			failed++
		}
		cfg.Logf(1, "match %s: %s", res.Match.ID(), res.Name)
		if err := out.WriteMessage(batchReport(res)); err != nil {
			return failed, err
		}
		if cfg.Verbosity >= 2 {
			if err := out.WriteMatch(res.Match, nil); err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}

// batchReport summarises one replay, e.g.
// "fools.txt: 4 moves, checkmate on turn 4, Black wins".
func batchReport(res worker.Result) string {
	parts := []string{fmt.Sprintf("%d moves", res.Applied)}

	m := res.Match
	if winner, over := m.Winner(); over {
		parts = append(parts, fmt.Sprintf("checkmate on turn %d", m.Turn()), fmt.Sprintf("%s wins", winner))
	} else {
		parts = append(parts, fmt.Sprintf("turn %d", m.Turn()), fmt.Sprintf("%s to move", m.CurrentPlayer()))
		if m.Check() {
			parts = append(parts, "check")
		}
	}
	if res.Err != nil {
		parts = append(parts, fmt.Sprintf("stopped: %v", res.Err))
	}
	return res.Name + ": " + strings.Join(parts, ", ")
}
