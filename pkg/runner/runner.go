// Package runner fans independent simulation trials out across a worker
// pool, grounded on the evolutionary worker-pool pattern used elsewhere
// in the retrieval pack (a task channel, a results channel, a
// sync.WaitGroup) adapted from genome-fitness evaluation to goldfish
// trials: each trial is independent, reads the shared read-only catalog,
// and writes its own Record.
package runner

import (
	"math/rand"
	"sync"

	"github.com/mtgsim/goldfish/pkg/results"
	"github.com/mtgsim/goldfish/pkg/simulate"
)

// Task describes one trial to run.
type Task struct {
	Index int
	Opts  simulate.Options
}

// Run executes tasks across jobs worker goroutines and returns every
// resulting Record in task-index order. A jobs value less than 1 is
// treated as 1 (sequential execution, still through the same code path).
func Run(tasks []Task, jobs int) []results.Record {
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(tasks) {
		jobs = len(tasks)
	}
	if jobs == 0 {
		return nil
	}

	taskCh := make(chan Task)
	type indexed struct {
		index  int
		record results.Record
	}
	resultCh := make(chan indexed, len(tasks))

	var wg sync.WaitGroup
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for t := range taskCh {
				opts := t.Opts
				opts.Rand = rnd
				resultCh <- indexed{index: t.Index, record: simulate.Run(opts)}
			}
		}(int64(w) + 1)
	}

	go func() {
		for _, t := range tasks {
			taskCh <- t
		}
		close(taskCh)
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]results.Record, len(tasks))
	for r := range resultCh {
		out[r.index] = r.record
	}
	return out
}
