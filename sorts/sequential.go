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

// Bubble sorts data in place with the classic adjacent-swap scan.
// After round i the i+1 largest values sit in their final tail positions.
func Bubble(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
}

// Selection sorts data in place by repeatedly swapping the minimum of the
// unsorted suffix into position i. The first minimum wins on ties.
func Selection(data []int) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if data[j] < data[minIdx] {
				minIdx = j
			}
		}
		data[i], data[minIdx] = data[minIdx], data[i]
	}
}

// Insertion sorts data in place. Prefix [0, i] is sorted after step i.
func Insertion(data []int) {
	for i := 1; i < len(data); i++ {
		insertStep(data, i)
	}
}

// insertStep inserts data[i] into the prefix data[:i], which must already be
// sorted for the result data[:i+1] to be sorted.
func insertStep(data []int, i int) {
	key := data[i]
	j := i - 1
	for j >= 0 && data[j] > key {
		data[j+1] = data[j]
		j--
	}
	data[j+1] = key
}
