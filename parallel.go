// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grapher

import (
	"runtime"
	"sync"
)

// workerCount returns the number of workers to use for n items:
// the configured count, or GOMAXPROCS if zero, capped at n.
func workerCount(workers, n int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(1, min(workers, n))
}

// parallelChunks partitions [0, n) into contiguous per-worker ranges and
// runs fn(worker, start, end) on each in its own goroutine, blocking until
// all complete. Workers write only to data they own (their index range, or
// a local buffer slot selected by worker), so no locking is needed; callers
// merge local buffers serially in worker order afterward, which also makes
// the merged output deterministic.
func parallelChunks(n, workers int, fn func(worker, start, end int)) {
	nw := workerCount(workers, n)
	if nw == 1 {
		fn(0, 0, n)
		return
	}
	per := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for w := range nw {
		start := w * per
		end := min(start+per, n)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			fn(w, start, end)
		}(w, start, end)
	}
	wg.Wait()
}
