// Copyright © 2018 Weald Technology Trading
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
	"github.com/DrPeterVanNostrand/pots/sha3256"
	"github.com/pkg/errors"
)

// Prover builds the graph, labels it, commits to it with a Merkle tree,
// and answers the Verifier's challenges. It is immutable after
// construction: building proofs never mutates its state.
type Prover struct {
	params      ProtoParams
	edges       *Edges
	labelMatrix *LabelMatrix
	merkleTree  *MerkleTree
	newHasher   func() Hasher
}

// NewProver builds the Prover's graph, labels it under nonce, and commits
// to it with a Merkle tree, in that order.
func NewProver(params ProtoParams, nonce []byte) (*Prover, error) {
	return newProverWithHasher(params, nonce, func() Hasher { return sha3256.New() })
}

func newProverWithHasher(params ProtoParams, nonce []byte, newHasher func() Hasher) (*Prover, error) {
	edges, err := NewPermutationEdges(params.N)
	if err != nil {
		return nil, errors.Wrap(err, "could not build the bipartite expander")
	}
	labelMatrix := NewLabelMatrix(edges, params.K, nonce, newHasher)
	merkleTree := NewMerkleTreeFromLabelMatrix(labelMatrix, newHasher)

	return &Prover{
		params:      params,
		edges:       edges,
		labelMatrix: labelMatrix,
		merkleTree:  merkleTree,
		newHasher:   newHasher,
	}, nil
}

// Edges returns the bipartite expander to publish to the Verifier.
func (p *Prover) Edges() *Edges { return p.edges }

// MerkleRoot returns the commitment to publish to the Verifier.
func (p *Prover) MerkleRoot() Digest { return p.merkleTree.Root() }

// CreateProof returns a Merkle opening for a single challenged index.
func (p *Prover) CreateProof(challengeIndex int) MerkleProof {
	return MerkleProof{
		ChallengeIndex: challengeIndex,
		Path:           p.merkleTree.Open(challengeIndex),
	}
}

// CreateProofs returns one MerkleProof per challenge index, preserving
// order.
func (p *Prover) CreateProofs(challengeIndices []int) []MerkleProof {
	proofs := make([]MerkleProof, len(challengeIndices))
	for i, idx := range challengeIndices {
		proofs[i] = p.CreateProof(idx)
	}
	return proofs
}

// CreateMultiProof returns a compact batched opening for several challenge
// indices that share Merkle siblings (see multiproof.go).
func (p *Prover) CreateMultiProof(challengeIndices []int) *MultiProof {
	return newMultiProofFromTree(p.merkleTree, challengeIndices)
}
