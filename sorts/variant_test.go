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
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantsOrder(t *testing.T) {
	labels := lo.Map(Variants(), func(v Variant, _ int) string { return v.String() })
	assert.Equal(t, []string{
		"Bubble Sort (seq)",
		"Bubble Sort (par)",
		"Selection Sort (seq)",
		"Selection Sort (par)",
		"Insertion Sort (seq)",
		"Insertion Sort (par)",
	}, labels)
}

func TestVariantKeyRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		got, err := ParseVariant(v.Key())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	_, err := ParseVariant("bubble")
	assert.ErrorIs(t, err, ErrUnknownMode)
	_, err = ParseVariant("quick/seq")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	_, err = ParseVariant("bubble/gpu")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm(" Selection ")
	require.NoError(t, err)
	assert.Equal(t, SelectionSort, a)

	m, err := ParseMode("parallel")
	require.NoError(t, err)
	assert.Equal(t, ModeParallel, m)
}

func TestSorterUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { NewParallel(nil).Sorter(Variant{Algorithm: 9}) })
}
