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
)

var (
	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrUnknownMode is returned by ParseMode for unrecognized names.
	ErrUnknownMode = errors.New("unknown mode")
)

// Algorithm identifies one of the benchmarked sorts.
type Algorithm int

// The benchmarked algorithms.
const (
	BubbleSort Algorithm = iota
	SelectionSort
	InsertionSort
)

// Algorithms lists every algorithm in benchmark order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, SelectionSort, InsertionSort}
}

// String returns the short algorithm name, e.g. "bubble".
func (a Algorithm) String() string {
	switch a {
	case BubbleSort:
		return "bubble"
	case SelectionSort:
		return "selection"
	case InsertionSort:
		return "insertion"
	default:
		return "unknown"
	}
}

// Title returns the display name, e.g. "Bubble Sort".
func (a Algorithm) Title() string {
	switch a {
	case BubbleSort:
		return "Bubble Sort"
	case SelectionSort:
		return "Selection Sort"
	case InsertionSort:
		return "Insertion Sort"
	default:
		return "Unknown Sort"
	}
}

// ParseAlgorithm accepts the short name, case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Algorithms() {
		if name == a.String() {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Mode is the execution mode of a variant.
type Mode int

const (
	ModeSequential Mode = iota
	ModeParallel
)

// String returns "seq" or "par".
func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "seq"
	case ModeParallel:
		return "par"
	default:
		return "unknown"
	}
}

// ParseMode accepts "seq"/"sequential" and "par"/"parallel".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "seq", "sequential":
		return ModeSequential, nil
	case "par", "parallel":
		return ModeParallel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Variant is one (algorithm, mode) cell of the benchmark grid.
type Variant struct {
	Algorithm Algorithm
	Mode      Mode
}

// Variants returns every variant in the fixed benchmark order: for each
// algorithm, the sequential variant followed by the parallel one.
func Variants() []Variant {
	var vs []Variant
	for _, a := range Algorithms() {
		vs = append(vs, Variant{a, ModeSequential}, Variant{a, ModeParallel})
	}
	return vs
}

// String returns the console label, e.g. "Bubble Sort (par)".
func (v Variant) String() string {
	return fmt.Sprintf("%s (%s)", v.Algorithm.Title(), v.Mode)
}

// Key returns a compact identifier, e.g. "bubble/par".
func (v Variant) Key() string {
	return v.Algorithm.String() + "/" + v.Mode.String()
}

// ParseVariant parses the form produced by Key.
func ParseVariant(key string) (Variant, error) {
	algo, mode, ok := strings.Cut(key, "/")
	if !ok {
		return Variant{}, fmt.Errorf("%w: variant %q has no mode", ErrUnknownMode, key)
	}
	a, err := ParseAlgorithm(algo)
	if err != nil {
		return Variant{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Variant{}, err
	}
	return Variant{a, m}, nil
}

// Sorter sorts an integer slice in place, ascending.
type Sorter interface {
	Sort(data []int)
}

// SorterFunc adapts a function to Sorter.
type SorterFunc func(data []int)

// Sort calls f(data).
func (f SorterFunc) Sort(data []int) { f(data) }

// Sorter returns the implementation of v. Sequential variants ignore p.
// It panics on a variant outside the Variants set.
func (p *Parallel) Sorter(v Variant) Sorter {
	switch v {
	case Variant{BubbleSort, ModeSequential}:
		return SorterFunc(Bubble)
	case Variant{BubbleSort, ModeParallel}:
		return SorterFunc(p.Bubble)
	case Variant{SelectionSort, ModeSequential}:
		return SorterFunc(Selection)
	case Variant{SelectionSort, ModeParallel}:
		return SorterFunc(p.Selection)
	case Variant{InsertionSort, ModeSequential}:
		return SorterFunc(Insertion)
	case Variant{InsertionSort, ModeParallel}:
		return SorterFunc(p.Insertion)
	}
	panic(fmt.Sprintf("sorts: unknown variant %d/%d", v.Algorithm, v.Mode))
}
