// SPDX-License-Identifier: MIT

package backend

import "sync"

// ForEachChunk splits the half-open range [0, n) into at most cfg.Workers
// contiguous chunks and runs body(lo, hi) for each, blocking until all
// complete. With one worker the body runs inline in the calling goroutine,
// which keeps single-threaded execution fully deterministic.
//
// body must treat its chunk as exclusive: chunks never overlap, so kernels
// may write disjoint output rows without locking.
func ForEachChunk(cfg Config, n int, body func(lo, hi int)) {
	if n <= 0 {
		return // nothing to dispatch
	}
	workers := cfg.normalized().Workers
	if workers > n {
		workers = n // never spawn more chunks than items
	}
	if workers == 1 {
		body(0, n)
		return
	}

	// Even split; the first (n % workers) chunks absorb one extra item each.
	base := n / workers
	extra := n % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	lo := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < extra {
			size++
		}
		hi := lo + size
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
		lo = hi
	}
	wg.Wait()
}
