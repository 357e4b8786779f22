// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// checkCoverage asserts every index in [0, n) was visited exactly once.
func checkCoverage(t *testing.T, name string, hits []atomic.Int32) {
	t.Helper()
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("%s: index %d visited %d times, want 1", name, i, got)
		}
	}
}

func TestParallelForCoverage(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	// 9 items over 4 workers leaves the last worker without a chunk.
	for _, n := range []int{1, 3, 4, 9, 100, 1001} {
		hits := make([]atomic.Int32, n)
		pool.ParallelFor(n, func(start, end int) {
			if start >= end {
				t.Errorf("n=%d: empty chunk [%d, %d)", n, start, end)
			}
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		checkCoverage(t, "ParallelFor", hits)
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, batch := range []int{0, 1, 7, 10, 1000} {
		n := 101
		hits := make([]atomic.Int32, n)
		pool.ParallelForAtomicBatched(n, batch, func(start, end int) {
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		checkCoverage(t, "ParallelForAtomicBatched", hits)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) { called = true })
	pool.ParallelForAtomic(0, func(i int) { called = true })
	pool.ParallelForAtomicBatched(0, 4, func(start, end int) { called = true })
	pool.For(Dynamic, 0, 1, func(start, end int) { called = true })

	if called {
		t.Error("regions with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	var calls int
	pool.ParallelFor(100, func(start, end int) {
		calls++
		if start != 0 || end != 100 {
			t.Errorf("closed pool chunk = [%d, %d), want [0, 100)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("closed pool made %d calls, want 1", calls)
	}
}

func TestNilPoolRunsInline(t *testing.T) {
	var pool *Pool
	var calls int
	pool.ParallelFor(10, func(start, end int) { calls++ })
	sum := Reduce(pool, 10, 1, 0, func(start, end int) int { return end - start }, func(a, b int) int { return a + b })
	if calls != 1 || sum != 10 {
		t.Errorf("nil pool: calls = %d, sum = %d; want 1, 10", calls, sum)
	}
}

func TestForGrain(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, s := range []Schedule{Static, Dynamic} {
		// Below the grain the region runs as a single inline call.
		var calls atomic.Int32
		pool.For(s, 15, 16, func(start, end int) { calls.Add(1) })
		if calls.Load() != 1 {
			t.Errorf("%v: n < grain made %d calls, want 1", s, calls.Load())
		}

		hits := make([]atomic.Int32, 1000)
		pool.For(s, len(hits), 16, func(start, end int) {
			for i := start; i < end; i++ {
				hits[i].Add(1)
			}
		})
		checkCoverage(t, s.String(), hits)
	}
}

func TestParseSchedule(t *testing.T) {
	for name, want := range map[string]Schedule{"static": Static, "Dynamic": Dynamic, "": Static} {
		got, err := ParseSchedule(name)
		if err != nil || got != want {
			t.Errorf("ParseSchedule(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseSchedule("guided"); !errors.Is(err, ErrUnknownSchedule) {
		t.Errorf("ParseSchedule(guided) error = %v, want ErrUnknownSchedule", err)
	}
}

func TestReduceMatchesSequentialFold(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	data := make([]int, 1003)
	for i := range data {
		data[i] = (i * 7919) % 1009
	}
	sum := func(start, end int) int {
		s := 0
		for _, v := range data[start:end] {
			s += v
		}
		return s
	}
	add := func(a, b int) int { return a + b }

	want := sum(0, len(data))
	for _, grain := range []int{0, 1, 64, 5000} {
		if got := Reduce(pool, len(data), grain, 0, sum, add); got != want {
			t.Errorf("Reduce(grain=%d) = %d, want %d", grain, got, want)
		}
	}
}

func TestReduceChunkOrder(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	// A non-commutative combine exposes the fold order.
	got := Reduce(pool, 9, 1, []int(nil),
		func(start, end int) []int { return []int{start} },
		func(acc, v []int) []int { return append(acc, v...) })
	want := []int{0, 3, 6}
	if len(got) != len(want) {
		t.Fatalf("Reduce chunk starts = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Reduce chunk starts = %v, want %v", got, want)
			break
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.ParallelFor(n, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkReduce(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Reduce(pool, n, 1, 0,
			func(start, end int) int { return end - start },
			func(a, v int) int { return a + v })
	}
}

// BenchmarkPoolOverhead measures the fixed cost of one region.
func BenchmarkPoolOverhead(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for i := 0; i < b.N; i++ {
		pool.ParallelFor(10, func(start, end int) {})
	}
}
