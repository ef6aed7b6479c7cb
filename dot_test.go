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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOTGraphProducesValidDigraph(t *testing.T) {
	edges, err := NewPermutationEdges(16)
	require.NoError(t, err)

	out := DOTGraph(edges)
	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "s0")
	assert.Contains(t, out, "t0")
}

func TestDOTLabelMatrixDefaultsFormatter(t *testing.T) {
	edges, err := NewPermutationEdges(16)
	require.NoError(t, err)
	lm := NewLabelMatrix(edges, K, []byte("nonce"), newHasherForTest)

	out := DOTLabelMatrix(lm, nil)
	assert.True(t, strings.HasPrefix(out, "digraph"))
	assert.Contains(t, out, "c0r0")
}

func TestMerkleTreeDOTNeverPanicsOnPaddedLeaves(t *testing.T) {
	_, _, tree := buildTestTree(t, 16)

	assert.NotPanics(t, func() {
		out := tree.DOT(nil, nil)
		assert.Contains(t, out, "∅")
	})
}

func TestMerkleTreeDOTWithExplicitFormatters(t *testing.T) {
	_, _, tree := buildTestTree(t, 16)

	out := tree.DOT(new(HexFormatter), new(StringFormatter))
	assert.True(t, strings.HasPrefix(out, "digraph"))
}
