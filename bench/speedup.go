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
	"fmt"
	"time"

	"github.com/ajroetker/go-sortbench/sorts"
)

// Speedup compares the two modes of one algorithm at one size.
type Speedup struct {
	Size      int
	Algorithm sorts.Algorithm
	Seq, Par  time.Duration
}

// Ratio returns Seq/Par. ok is false when Par is zero.
func (s Speedup) Ratio() (ratio float64, ok bool) {
	if s.Par <= 0 {
		return 0, false
	}
	return float64(s.Seq) / float64(s.Par), true
}

// String formats the speedup for console output.
func (s Speedup) String() string {
	ratio, ok := s.Ratio()
	if !ok {
		return fmt.Sprintf("n=%d %s: seq %v, par %v, speedup n/a", s.Size, s.Algorithm.Title(), s.Seq, s.Par)
	}
	return fmt.Sprintf("n=%d %s: seq %v, par %v, speedup %.2fx", s.Size, s.Algorithm.Title(), s.Seq, s.Par, ratio)
}

// Speedups pairs the sequential and parallel samples of each (size,
// algorithm), in order of first appearance. Pairs missing either mode are
// skipped; when a mode appears more than once the last sample wins.
func Speedups(samples []Sample) []Speedup {
	type key struct {
		size int
		algo sorts.Algorithm
	}
	type pair struct {
		seq, par       time.Duration
		hasSeq, hasPar bool
	}

	var order []key
	pairs := make(map[key]*pair)
	for _, s := range samples {
		k := key{s.Size, s.Variant.Algorithm}
		p, ok := pairs[k]
		if !ok {
			p = &pair{}
			pairs[k] = p
			order = append(order, k)
		}
		switch s.Variant.Mode {
		case sorts.ModeSequential:
			p.seq, p.hasSeq = s.Elapsed, true
		case sorts.ModeParallel:
			p.par, p.hasPar = s.Elapsed, true
		}
	}

	var out []Speedup
	for _, k := range order {
		p := pairs[k]
		if !p.hasSeq || !p.hasPar {
			continue
		}
		out = append(out, Speedup{Size: k.size, Algorithm: k.algo, Seq: p.seq, Par: p.par})
	}
	return out
}
