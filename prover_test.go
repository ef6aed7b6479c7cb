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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProver(t *testing.T, n int) *Prover {
	t.Helper()
	params := ProtoParams{N: n, K: K}
	prover, err := newProverWithHasher(params, []byte("nonce"), newHasherForTest)
	require.NoError(t, err)
	return prover
}

func TestProverCreateProofMatchesMerkleTreeOpen(t *testing.T) {
	prover := newTestProver(t, 16)
	proof := prover.CreateProof(10)
	assert.Equal(t, 10, proof.ChallengeIndex)
	assert.Equal(t, prover.merkleTree.Open(10), proof.Path)
}

func TestProverCreateProofsPreservesOrder(t *testing.T) {
	prover := newTestProver(t, 16)
	indices := []int{3, 1, 40}
	proofs := prover.CreateProofs(indices)
	require.Len(t, proofs, len(indices))
	for i, idx := range indices {
		assert.Equal(t, idx, proofs[i].ChallengeIndex)
	}
}

func TestProverMerkleRootIsStable(t *testing.T) {
	prover := newTestProver(t, 16)
	a := prover.MerkleRoot()
	b := prover.MerkleRoot()
	assert.True(t, a.Equal(b))
}

func TestProverCreateMultiProofVerifies(t *testing.T) {
	prover := newTestProver(t, 16)
	indices := []int{0, 5, 37, 95}
	mp := prover.CreateMultiProof(indices)

	leaves := make(map[int]Digest, len(indices))
	for _, idx := range indices {
		leaves[idx] = prover.merkleTree.Leaf(idx)
	}

	ok, err := mp.Verify(leaves, prover.MerkleRoot())
	require.NoError(t, err)
	assert.True(t, ok)
}
