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

// Package gen produces the reproducible input arrays the benchmarks sort.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed uint64 = 42

// ErrEmptyRange is returned when a Range has Lo > Hi.
var ErrEmptyRange = errors.New("empty value range")

// Range is an inclusive interval of generated values.
type Range struct {
	Lo, Hi int
}

// DefaultRange is [0, 100000].
var DefaultRange = Range{Lo: 0, Hi: 100000}

// Validate reports whether the range contains at least one value.
func (r Range) Validate() error {
	if r.Lo > r.Hi {
		return fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, r.Lo, r.Hi)
	}
	return nil
}

// String formats the range as "[lo, hi]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// Ints returns n integers drawn uniformly from r using a PCG source seeded
// with seed. The same (n, seed, r) always yields the same slice.
//
// It panics if r is empty; call r.Validate first for untrusted ranges.
func Ints(n int, seed uint64, r Range) []int {
	if err := r.Validate(); err != nil {
		panic(err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	// Unsigned arithmetic keeps the span exact for ranges wider than MaxInt.
	span := uint64(r.Hi) - uint64(r.Lo) + 1

	data := make([]int, max(n, 0))
	for i := range data {
		if span == 0 {
			data[i] = int(rng.Uint64())
			continue
		}
		data[i] = r.Lo + int(rng.Uint64N(span))
	}
	return data
}
