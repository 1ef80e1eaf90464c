package qsim

import (
	"context"
	"log"
	"sync"
)

// BatchJob pairs a circuit with its shot budget and a caller-chosen ID.
type BatchJob struct {
	ID      string
	Circuit *Circuit
	Shots   int
}

// BatchResult is the outcome of one batch job: exactly one of Result and
// Err is set.
type BatchResult struct {
	ID     string
	Result *RunResult
	Err    error
}

/*
RunBatch executes independent circuits concurrently on a fixed pool of
workers and returns one result per job, in job order. Each run
constructs its own register, so workers share nothing but the engine's
seeded sampler, which serializes its own draws.

Cancelling the context stops workers from picking up further jobs; jobs
already running complete normally, and jobs never started report the
context error.
*/
func (e *Engine) RunBatch(ctx context.Context, jobs []BatchJob, workers int) []BatchResult {
	if workers <= 0 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]BatchResult, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				job := jobs[i]
				result, err := e.Run(job.Circuit, job.Shots)
				if err != nil {
					log.Printf("batch job %s failed: %v", job.ID, err)
				}
				results[i] = BatchResult{ID: job.ID, Result: result, Err: err}
			}
		}()
	}

	for i := range jobs {
		select {
		case indexes <- i:
		case <-ctx.Done():
			results[i] = BatchResult{ID: jobs[i].ID, Err: ctx.Err()}
		}
	}
	close(indexes)
	wg.Wait()

	return results
}
