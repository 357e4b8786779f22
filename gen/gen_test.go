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

package gen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntsDeterministic(t *testing.T) {
	for _, n := range []int{0, 1, 10, 1000} {
		a := Ints(n, 42, DefaultRange)
		b := Ints(n, 42, DefaultRange)
		require.Len(t, a, n)
		assert.Equal(t, a, b, "n=%d", n)
	}
}

func TestIntsPrefixStable(t *testing.T) {
	// A longer run extends a shorter one with the same seed.
	short := Ints(100, DefaultSeed, DefaultRange)
	long := Ints(1000, DefaultSeed, DefaultRange)
	assert.Equal(t, short, long[:100])
}

func TestIntsSeedSensitive(t *testing.T) {
	assert.NotEqual(t, Ints(64, 1, DefaultRange), Ints(64, 2, DefaultRange))
}

func TestIntsWithinRange(t *testing.T) {
	ranges := []Range{DefaultRange, {Lo: -5, Hi: 5}, {Lo: 7, Hi: 7}, {Lo: math.MinInt, Hi: math.MaxInt}}
	for _, r := range ranges {
		for _, v := range Ints(2000, 7, r) {
			require.GreaterOrEqual(t, v, r.Lo, "range %v", r)
			require.LessOrEqual(t, v, r.Hi, "range %v", r)
		}
	}
}

func TestIntsCoversSmallRange(t *testing.T) {
	seen := make(map[int]bool)
	for _, v := range Ints(1000, 3, Range{Lo: 0, Hi: 3}) {
		seen[v] = true
	}
	assert.Len(t, seen, 4)
}

func TestIntsNegativeSize(t *testing.T) {
	assert.Empty(t, Ints(-1, 42, DefaultRange))
}

func TestRangeValidate(t *testing.T) {
	require.NoError(t, DefaultRange.Validate())
	err := Range{Lo: 2, Hi: 1}.Validate()
	assert.ErrorIs(t, err, ErrEmptyRange)
	assert.Panics(t, func() { Ints(1, 42, Range{Lo: 2, Hi: 1}) })
}
