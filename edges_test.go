// Copyright © 2023 Weald Technology Trading.
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

package pots

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPermutationEdgesEverySinkHasInDegree(t *testing.T) {
	n := 32
	edges, err := NewPermutationEdges(n)
	require.NoError(t, err)
	assert.Equal(t, n, edges.N())

	counts := make([]int, n)
	for _, sinks := range edges.fromSource {
		for _, sink := range sinks {
			counts[sink]++
		}
	}
	for sink, count := range counts {
		assert.Equal(t, InDegree, count, "sink %d", sink)
	}
}

func TestGetParentsMatchesFromSource(t *testing.T) {
	n := 24
	edges, err := NewPermutationEdges(n)
	require.NoError(t, err)

	for sink := 0; sink < n; sink++ {
		parents := edges.GetParents(sink)
		assert.Len(t, parents, InDegree)
		assert.True(t, sort.IntsAreSorted(parents))

		for _, source := range parents {
			assert.True(t, containsSorted(edges.fromSource[source], sink))
		}
	}
}

func TestSecureShuffleIsAPermutation(t *testing.T) {
	s := make([]int, 20)
	for i := range s {
		s[i] = i
	}
	require.NoError(t, secureShuffle(s))

	seen := make(map[int]bool, len(s))
	for _, v := range s {
		seen[v] = true
	}
	assert.Len(t, seen, len(s))
}

func TestContainsSorted(t *testing.T) {
	sorted := []int{1, 3, 5, 7}
	assert.True(t, containsSorted(sorted, 5))
	assert.False(t, containsSorted(sorted, 6))
	assert.False(t, containsSorted(nil, 0))
}
