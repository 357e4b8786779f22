// Copyright 2025 go-sortbench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sorts

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ajroetker/go-sortbench/workerpool"
)

// DefaultGrain is the smallest region, in independent items, worth forking.
const DefaultGrain = 1024

// ErrUnknownReduction is returned by ParseReduction for unrecognized names.
var ErrUnknownReduction = errors.New("unknown reduction")

// Reduction selects how parallel selection sort combines per-worker minima.
type Reduction int

const (
	// ReduceMerge stores each worker's candidate in its own slot and folds
	// the slots after the region's barrier.
	ReduceMerge Reduction = iota

	// ReduceMutex merges each worker's candidate into a shared minimum
	// inside a critical section, once per worker and region.
	ReduceMutex
)

// String returns the name accepted by ParseReduction.
func (r Reduction) String() string {
	switch r {
	case ReduceMerge:
		return "merge"
	case ReduceMutex:
		return "mutex"
	default:
		return "unknown"
	}
}

// ParseReduction converts "merge" or "mutex" (case-insensitive) to a Reduction.
func ParseReduction(name string) (Reduction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "merge", "":
		return ReduceMerge, nil
	case "mutex":
		return ReduceMutex, nil
	}
	return ReduceMerge, fmt.Errorf("%w: %q", ErrUnknownReduction, name)
}

// Parallel runs the parallel sort variants on a worker pool.
// A nil Pool runs every region inline.
type Parallel struct {
	Pool      *workerpool.Pool
	Schedule  workerpool.Schedule
	Grain     int
	Reduction Reduction
}

// NewParallel returns a Parallel using pool with the static schedule,
// DefaultGrain and ReduceMerge.
func NewParallel(pool *workerpool.Pool) *Parallel {
	return &Parallel{Pool: pool, Grain: DefaultGrain}
}

// Bubble sorts data with odd-even transposition: len(data) rounds, each a
// parallel region over disjoint adjacent pairs.
func (p *Parallel) Bubble(data []int) {
	for round := range len(data) {
		p.oddEvenRound(data, round)
	}
}

// oddEvenRound compare-swaps every pair (j, j+1) with j ≡ round (mod 2).
func (p *Parallel) oddEvenRound(data []int, round int) {
	first := round % 2
	pairs := (len(data) - first) / 2
	p.Pool.For(p.Schedule, pairs, p.Grain, func(start, end int) {
		for k := start; k < end; k++ {
			j := first + 2*k
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	})
}

// Selection sorts data by selection with a parallel minimum search per
// position. The outer loop is sequential: position i+1 is searched only after
// the swap into i has committed.
func (p *Parallel) Selection(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		best := p.suffixMin(data, i)
		data[i], data[best.index] = data[best.index], data[i]
	}
}

// suffixMin finds the first minimum of data[from:].
func (p *Parallel) suffixMin(data []int, from int) candidate {
	m := len(data) - from
	scan := func(start, end int) candidate {
		return scanMin(data, from+start, from+end)
	}

	if p.Reduction == ReduceMutex {
		var mu sync.Mutex
		global := noCandidate
		p.Pool.For(p.Schedule, m, p.Grain, func(start, end int) {
			local := scan(start, end)
			mu.Lock()
			global = minCandidate(global, local)
			mu.Unlock()
		})
		return global
	}
	return workerpool.Reduce(p.Pool, m, p.Grain, noCandidate, scan, minCandidate)
}

// Insertion sorts data sequentially. Step i depends on the prefix settled by
// step i-1, so there is no region that could run concurrently.
func (p *Parallel) Insertion(data []int) {
	Insertion(data)
}

// candidate is a (value, index) pair ordered by value, then index.
type candidate struct {
	value, index int
}

// noCandidate is the identity of minCandidate.
var noCandidate = candidate{index: -1}

// minCandidate returns the smaller of a and b, the lower index on equal values.
func minCandidate(a, b candidate) candidate {
	switch {
	case a.index < 0:
		return b
	case b.index < 0:
		return a
	case b.value < a.value, b.value == a.value && b.index < a.index:
		return b
	}
	return a
}

// scanMin returns the first minimum of data[start:end], or noCandidate when
// the range is empty.
func scanMin(data []int, start, end int) candidate {
	if start >= end {
		return noCandidate
	}
	best := candidate{value: data[start], index: start}
	for j := start + 1; j < end; j++ {
		if data[j] < best.value {
			best = candidate{value: data[j], index: j}
		}
	}
	return best
}
