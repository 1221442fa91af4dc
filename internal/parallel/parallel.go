// Package parallel splits row-wise matrix kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split.
type Config struct {
	Workers int // Upper bound on goroutines; 1 or less runs inline.
	MinWork int // Minimum units of work (e.g. multiply-adds) per goroutine.
}

// DefaultConfig uses every available CPU and keeps small kernels inline.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.GOMAXPROCS(0),
		MinWork: 1 << 14,
	}
}

// Range calls f on contiguous, disjoint chunks covering [0, n) and waits for
// all of them. cost is the work per index; no chunk carries less than
// cfg.MinWork in total unless n itself is that small.
func Range(n, cost int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}

	workers := min(cfg.Workers, n)
	if cost > 0 && cfg.MinWork > 0 {
		workers = min(workers, n*cost/cfg.MinWork)
	}
	if workers <= 1 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
