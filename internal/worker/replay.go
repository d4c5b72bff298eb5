package worker

import (
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// Replay returns a ProcessFunc that plays each job on a fresh match with the
// given layout. Replay stops at the first rejected move, or when the match
// ends; moves left over after checkmate are reported as the match-over
// rejection.
func Replay(layout config.Layout) ProcessFunc {
	return func(job Job) Result {
		res := Result{Index: job.Index, Name: job.Name, Match: engine.NewMatch(layout)}
		for _, mv := range job.Moves {
			if _, err := res.Match.PerformMove(mv.Source(), mv.Target()); err != nil {
				res.Err = err
				break
			}
			res.Applied++
		}
		return res
	}
}

// ReplayAll replays jobs on numWorkers goroutines and returns the results in
// job order.
func ReplayAll(jobs []Job, layout config.Layout, numWorkers int) []Result {
	bufferSize := len(jobs)
	if bufferSize > 100 {
		bufferSize = 100
	}
	pool := NewPool(Replay(layout), WithWorkers(numWorkers), WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
