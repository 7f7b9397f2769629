package arrayops

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// parallelCutoff is the smallest input length worth fanning out over
// goroutines. Below it the per-goroutine scheduling cost dwarfs the scan
// itself, so ParallelCountNil falls back to the sequential CountNil.
const parallelCutoff = 2048

// ParallelCountNil is [CountNil] computed across multiple goroutines. The
// input is split into one contiguous chunk per available CPU; each worker
// counts its chunk into a local total that is folded into a shared atomic
// counter once, when the chunk is done. The result is identical to
// CountNil(items...) for every input.
//
// Inputs shorter than an internal cutoff are counted sequentially, so small
// slices pay nothing for the parallel machinery.
func ParallelCountNil[T any](items ...T) int {
	switch len(items) {
	case 0:
		return 0
	case 1:
		if isNil(items[0]) {
			return 1
		}
		return 0
	}
	if len(items) < parallelCutoff {
		return CountNil(items...)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(items) + workers - 1) / workers

	var total atomic.Int64
	g := new(errgroup.Group)
	for lo := 0; lo < len(items); lo += chunk {
		part := items[lo:min(lo+chunk, len(items))]
		g.Go(func() error {
			count := 0
			for _, item := range part {
				if isNil(item) {
					count++
				}
			}
			total.Add(int64(count))
			return nil
		})
	}
	// Counting workers never fail; Wait only fences the goroutines.
	_ = g.Wait()

	return int(total.Load())
}

// ParallelCountNonNil is the parallel complement of [ParallelCountNil],
// equal to CountNonNil(items...) for every input.
func ParallelCountNonNil[T any](items ...T) int {
	return len(items) - ParallelCountNil(items...)
}
