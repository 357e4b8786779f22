// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "golang.org/x/sys/cpu"

// slot holds one worker's partial result, padded so neighbouring workers never
// write to the same cache line.
type slot[T any] struct {
	v T
	_ cpu.CacheLinePad
}

// Reduce splits [0, n) into one contiguous chunk per worker, evaluates body on
// each chunk concurrently and folds the partial results with combine on the
// calling goroutine, in chunk order, starting from identity.
//
// body must only read shared state; each partial is written to a slot owned by
// its chunk, so no locking is needed. Regions with fewer than grain items run
// inline. combine should be associative for the result to be independent of
// the worker count.
func Reduce[T any](p *Pool, n, grain int, identity T, body func(start, end int) T, combine func(acc, v T) T) T {
	if n <= 0 {
		return identity
	}
	workers := p.workersFor(n)
	if workers == 1 || n < max(grain, 1) {
		return combine(identity, body(0, n))
	}

	chunkSize := (n + workers - 1) / workers
	chunks := (n + chunkSize - 1) / chunkSize
	partials := make([]slot[T], chunks)
	p.ParallelForAtomic(chunks, func(c int) {
		start := c * chunkSize
		partials[c].v = body(start, min(start+chunkSize, n))
	})

	acc := identity
	for i := range partials {
		acc = combine(acc, partials[i].v)
	}
	return acc
}
