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

// Package bench drives the sort benchmark: it generates one base array per
// size, times every selected variant on its own copy, and hands the samples
// to a Reporter.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ajroetker/go-sortbench/gen"
	"github.com/ajroetker/go-sortbench/sorts"
	"github.com/ajroetker/go-sortbench/workerpool"
)

// ErrUnsorted is returned by a verifying run when a variant leaves its
// working copy out of order or changes its values.
var ErrUnsorted = errors.New("sort result is not an ordered permutation of its input")

// Sample is the timing of one sort invocation.
type Sample struct {
	Size    int
	Variant sorts.Variant
	Elapsed time.Duration
}

// Clock supplies the instants a run is timed with.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used by default.
var SystemClock Clock = systemClock{}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces SystemClock.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger for progress messages. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithSorters replaces the function mapping a variant to its implementation.
func WithSorters(fn func(sorts.Variant) sorts.Sorter) Option {
	return func(r *Runner) { r.sorterFor = fn }
}

// Runner executes benchmark runs. It owns a worker pool; call Close when done.
type Runner struct {
	cfg       Config
	pool      *workerpool.Pool
	clock     Clock
	logger    *slog.Logger
	sorterFor func(sorts.Variant) sorts.Sorter
}

// NewRunner validates cfg and starts the worker pool.
func NewRunner(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()

	pool := workerpool.New(cfg.MaxThreads)
	par := &sorts.Parallel{
		Pool:      pool,
		Schedule:  cfg.Schedule,
		Grain:     cfg.Grain,
		Reduction: cfg.Reduction,
	}
	r := &Runner{
		cfg:       cfg,
		pool:      pool,
		clock:     SystemClock,
		logger:    slog.New(slog.DiscardHandler),
		sorterFor: par.Sorter,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Config returns the normalized configuration the runner uses.
func (r *Runner) Config() Config {
	return r.cfg
}

// Close stops the worker pool.
func (r *Runner) Close() {
	r.pool.Close()
}

// Run benchmarks every (size, variant) pair in order, reporting each sample to
// rep as soon as it is measured, and flushes rep at the end. ctx is checked
// between sorts; a sort in progress always completes.
func (r *Runner) Run(ctx context.Context, rep Reporter) ([]Sample, error) {
	if rep == nil {
		rep = Discard
	}
	variants := r.cfg.Variants()
	samples := make([]Sample, 0, len(r.cfg.Sizes)*len(variants))

	for _, n := range r.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return samples, err
		}
		base := gen.Ints(n, r.cfg.Seed, r.cfg.Range)
		r.logger.Info("benchmarking size", "size", n, "variants", len(variants), "threads", r.cfg.MaxThreads)
		rep.Size(n)

		for _, v := range variants {
			if err := ctx.Err(); err != nil {
				return samples, err
			}
			s, err := r.measure(base, v)
			if err != nil {
				return samples, err
			}
			r.logger.Debug("sort finished", "size", n, "variant", v.Key(), "elapsed", s.Elapsed)
			samples = append(samples, s)
			rep.Sample(s)
		}
	}
	if err := rep.Flush(); err != nil {
		return samples, fmt.Errorf("flush report: %w", err)
	}
	return samples, nil
}

// measure times one sort of a fresh copy of base.
func (r *Runner) measure(base []int, v sorts.Variant) (Sample, error) {
	work := slices.Clone(base)
	sorter := r.sorterFor(v)

	start := r.clock.Now()
	sorter.Sort(work)
	elapsed := max(r.clock.Now().Sub(start), 0)

	if r.cfg.Verify && (!sorts.IsSorted(work) || !sorts.SamePermutation(work, base)) {
		return Sample{}, fmt.Errorf("%s, size %d: %w", v, len(base), ErrUnsorted)
	}
	return Sample{
		Size:    len(base),
		Variant: v,
		Elapsed: elapsed.Truncate(r.cfg.Resolution),
	}, nil
}
