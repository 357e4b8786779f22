// Copyright 2025 The go-sortbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSchedule is returned by ParseSchedule for unrecognized names.
var ErrUnknownSchedule = errors.New("unknown schedule")

// Schedule selects how For distributes a region's iterations.
type Schedule int

const (
	// Static gives each worker one contiguous chunk (ParallelFor).
	Static Schedule = iota

	// Dynamic lets workers claim grain-sized batches (ParallelForAtomicBatched).
	Dynamic
)

// String returns the schedule name accepted by ParseSchedule.
func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// ParseSchedule converts "static" or "dynamic" (case-insensitive) to a Schedule.
func ParseSchedule(name string) (Schedule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "static", "":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	}
	return Static, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
}

// For runs fn over [0, n) with the given schedule. Regions with fewer than
// grain iterations run inline on the caller; for Dynamic, grain is also the
// batch size. grain <= 0 means 1.
func (p *Pool) For(s Schedule, n, grain int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if grain <= 0 {
		grain = 1
	}
	if n < grain {
		fn(0, n)
		return
	}
	if s == Dynamic {
		p.ParallelForAtomicBatched(n, grain, fn)
		return
	}
	p.ParallelFor(n, fn)
}
