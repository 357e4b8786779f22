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

package bench

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-sortbench/gen"
	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid benchmark config")

// DefaultSizes are the input sizes benchmarked when none are configured.
var DefaultSizes = []int{1000, 10000, 100000}

// Config describes one benchmark run.
type Config struct {
	// Sizes are benchmarked in order; duplicates are dropped.
	Sizes []int

	// Range bounds the generated values, inclusive.
	Range gen.Range

	// Seed feeds the generator; equal seeds give equal inputs.
	Seed uint64

	// MaxThreads is the worker pool size. <= 0 means GOMAXPROCS.
	MaxThreads int

	Schedule  workerpool.Schedule
	Grain     int
	Reduction sorts.Reduction

	// Resolution is the unit durations are truncated to.
	Resolution time.Duration

	// Algorithms restricts the run. Empty means all of them.
	Algorithms []sorts.Algorithm

	// Verify checks every sorted working copy and fails the run on disorder.
	Verify bool
}

// DefaultConfig returns the configuration of the reference benchmark.
func DefaultConfig() Config {
	return Config{
		Sizes:      DefaultSizes,
		Range:      gen.DefaultRange,
		Seed:       gen.DefaultSeed,
		MaxThreads: runtime.GOMAXPROCS(0),
		Schedule:   workerpool.Static,
		Grain:      sorts.DefaultGrain,
		Reduction:  sorts.ReduceMerge,
		Resolution: time.Millisecond,
	}
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
		}
	}
	if err := c.Range.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive, got %v", ErrInvalidConfig, c.Resolution)
	}
	return nil
}

// normalized fills in defaults the zero value leaves open.
func (c Config) normalized() Config {
	c.Sizes = lo.Uniq(c.Sizes)
	if c.MaxThreads <= 0 {
		c.MaxThreads = runtime.GOMAXPROCS(0)
	}
	if c.Grain <= 0 {
		c.Grain = 1
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = sorts.Algorithms()
	}
	return c
}

// Variants returns the variants c selects, in benchmark order.
func (c Config) Variants() []sorts.Variant {
	algos := c.Algorithms
	if len(algos) == 0 {
		return sorts.Variants()
	}
	return lo.Filter(sorts.Variants(), func(v sorts.Variant, _ int) bool {
		return lo.Contains(algos, v.Algorithm)
	})
}
