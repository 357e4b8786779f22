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
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/tools/benchmark/parse"

	"github.com/ajroetker/go-sortbench/sorts"
)

// ErrBadBenchmarkName is returned by ParseGoBench for result lines that were
// not written by the gobench reporter.
var ErrBadBenchmarkName = errors.New("unrecognized benchmark name")

// goBenchName returns e.g. "BenchmarkBubbleSort/par/n=1000-8".
func goBenchName(s Sample, threads int) string {
	title := strings.ReplaceAll(s.Variant.Algorithm.Title(), " ", "")
	return fmt.Sprintf("Benchmark%s/%s/n=%d-%d", title, s.Variant.Mode, s.Size, threads)
}

// parseGoBenchName inverts goBenchName.
func parseGoBenchName(name string) (sorts.Variant, int, error) {
	bad := fmt.Errorf("%w: %q", ErrBadBenchmarkName, name)

	rest, ok := strings.CutPrefix(name, "Benchmark")
	if !ok {
		return sorts.Variant{}, 0, bad
	}
	// Drop the -GOMAXPROCS suffix.
	if i := strings.LastIndexByte(rest, '-'); i > 0 {
		if _, err := strconv.Atoi(rest[i+1:]); err == nil {
			rest = rest[:i]
		}
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 3 {
		return sorts.Variant{}, 0, bad
	}
	size, ok := strings.CutPrefix(parts[2], "n=")
	if !ok {
		return sorts.Variant{}, 0, bad
	}
	n, err := strconv.Atoi(size)
	if err != nil {
		return sorts.Variant{}, 0, bad
	}

	var algo sorts.Algorithm
	found := false
	for _, a := range sorts.Algorithms() {
		if strings.EqualFold(parts[0], strings.ReplaceAll(a.Title(), " ", "")) {
			algo, found = a, true
			break
		}
	}
	if !found {
		return sorts.Variant{}, 0, fmt.Errorf("%w: %w", bad, sorts.ErrUnknownAlgorithm)
	}
	mode, err := sorts.ParseMode(parts[1])
	if err != nil {
		return sorts.Variant{}, 0, fmt.Errorf("%w: %w", bad, err)
	}
	return sorts.Variant{Algorithm: algo, Mode: mode}, n, nil
}

// ParseGoBench reads benchmark result lines, as written by the gobench
// reporter, back into samples. Non-result lines are ignored. Samples keep the
// order of their lines.
func ParseGoBench(r io.Reader) ([]Sample, error) {
	set, err := parse.ParseSet(r)
	if err != nil {
		return nil, fmt.Errorf("parse benchmark output: %w", err)
	}

	var results []*parse.Benchmark
	for _, bs := range set {
		results = append(results, bs...)
	}
	slices.SortFunc(results, func(a, b *parse.Benchmark) int {
		return cmp.Compare(a.Ord, b.Ord)
	})

	samples := make([]Sample, 0, len(results))
	for _, b := range results {
		v, n, err := parseGoBenchName(b.Name)
		if err != nil {
			return nil, err
		}
		if b.Measured&parse.NsPerOp == 0 {
			return nil, fmt.Errorf("%s: no ns/op measurement", b.Name)
		}
		samples = append(samples, Sample{
			Size:    n,
			Variant: v,
			Elapsed: time.Duration(b.NsPerOp),
		})
	}
	return samples, nil
}
