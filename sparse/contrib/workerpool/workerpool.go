// Copyright 2026 The go-sparse Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a call-scoped fork-join loop with static
// contiguous partitioning. Workers are spawned for one loop and joined
// before Run returns; no pool state survives a call, which keeps the
// kernels built on top of it reentrant and free of global side effects.
//
// Usage:
//
//	workerpool.Run(workers, nBefore, func(start, end int) {
//	    solveBatches(start, end)
//	})
package workerpool

import "sync"

// Run executes fn over [0, n) split into at most workers contiguous chunks,
// one goroutine per chunk, and blocks until every chunk completes.
//
// The partition is computed before any work starts: chunks cover [0, n)
// exactly once and never overlap, so callers whose output regions are
// indexed by the chunk bounds need no synchronization between workers.
//
// fn receives (start, end) and must process [start, end).
// n <= 0 is a no-op; workers < 1 is treated as 1; a single-chunk loop runs
// inline on the calling goroutine.
func Run(workers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	// Never spawn more workers than items.
	if workers > n {
		workers = n
	}
	if workers == 1 {
		fn(0, n)
		return
	}

	// Ceiling division so the chunks cover all of [0, n).
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}
