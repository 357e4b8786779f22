// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the fork-join pool the parallel sorts run on.
// A Pool is created once and reused for every parallel region of a benchmark
// run, so a region costs a few channel sends instead of spawning goroutines.
//
// Every region method blocks the caller until all work has completed, which
// makes each call an implicit barrier:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for round := range n {
//	    pool.ParallelFor(pairs(round), func(start, end int) {
//	        compareSwap(round, start, end)
//	    })
//	}
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent set of worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one chunk of a parallel region.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines. Workers persist until Close.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe; regions started after Close run
// inline on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// workersFor returns how many workers a region over n items should use.
// A result of 1 means the region runs inline.
func (p *Pool) workersFor(n int) int {
	if p == nil || p.closed.Load() {
		return 1
	}
	return min(p.numWorkers, n)
}

// run hands one closure per worker to the pool and waits for all of them.
func (p *Pool) run(workers int, fn func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { fn(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor executes fn over [0, n) split into one contiguous chunk per
// worker. fn receives the half-open range [start, end) it owns.
// Blocks until all chunks complete.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := p.workersFor(n)
	if workers == 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers
	// Recount so no worker is handed an empty chunk.
	workers = (n + chunkSize - 1) / chunkSize
	p.run(workers, func(w int) {
		start := w * chunkSize
		fn(start, min(start+chunkSize, n))
	})
}

// ParallelForAtomic executes fn for each index in [0, n), with workers
// claiming indices through a shared atomic counter.
// Blocks until all indices are processed.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := p.workersFor(n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			i := int(next.Add(1)) - 1
			if i >= n {
				return
			}
			fn(i)
		}
	})
}

// ParallelForAtomicBatched executes fn over [0, n) in batches of batchSize
// indices claimed through a shared atomic counter. It balances load better
// than ParallelFor when the cost per index varies.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := p.workersFor(numBatches)
	if workers == 1 {
		fn(0, n)
		return
	}

	var next atomic.Int64
	p.run(workers, func(int) {
		for {
			start := (int(next.Add(1)) - 1) * batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
