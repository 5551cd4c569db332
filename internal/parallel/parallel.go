// Package parallel provides fan-out helpers for independent circuit
// evaluations.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // whether parallel execution is enabled
	NumWorkers int  // number of worker goroutines to use
	MinTasks   int  // minimum task count before goroutines pay off
}

// DefaultConfig returns defaults based on CPU count. Each task here is a
// whole circuit evaluation, so even a handful of tasks are worth spreading.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinTasks:   2,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism, falling back
// to a sequential loop when parallelism is disabled or n is too small. Every
// f(i) must be independent: no shared mutable state, results written to
// caller-owned indexed slots.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinTasks {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	workers := cfg.NumWorkers
	if workers <= 0 || workers > n {
		workers = n
	}
	next := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
