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
)

// Verifier holds the session's nonce, the Prover's published graph
// description, and the last-issued challenge. Its state machine is:
// Created -> (SetGraphDescription) -> GraphKnown -> (GenChallenge) ->
// Challenged -> (VerifyProofs) -> Verified|Rejected. Calling
// VerifyProofs before SetGraphDescription is a usage error (panic), not
// a protocol VerificationError.
type Verifier struct {
	params     ProtoParams
	nonce      []byte
	edges      *Edges
	merkleRoot Digest
	hasher     Hasher
	challenge  []int
}

// NewVerifier creates a Verifier bound to params with a fresh,
// session-reproducible nonce.
func NewVerifier(params ProtoParams, nonce []byte) *Verifier {
	return &Verifier{
		params: params,
		nonce:  nonce,
		hasher: sha3256.New(),
	}
}

// Nonce returns the Verifier's nonce, to be handed to the Prover.
func (v *Verifier) Nonce() []byte { return v.nonce }

// SetGraphDescription stores the Prover's published edges and Merkle
// root. It MUST be called before VerifyProofs.
func (v *Verifier) SetGraphDescription(edges *Edges, merkleRoot Digest) {
	v.edges = edges
	v.merkleRoot = merkleRoot
}

// GenChallenge draws a uniformly random subset of size L0, without
// replacement, from [0, n*k). The challenge is stored internally and
// also returned to the caller.
func (v *Verifier) GenChallenge() ([]int, error) {
	nTotal := v.params.N * v.params.K
	indices := make([]int, nTotal)
	for i := range indices {
		indices[i] = i
	}
	if err := secureShuffle(indices); err != nil {
		return nil, err
	}
	v.challenge = append([]int{}, indices[:v.params.L0]...)
	return append([]int{}, v.challenge...), nil
}

// VerifyProofs verifies every proof in order, short-circuiting on the
// first failure. SetGraphDescription must have been called first.
func (v *Verifier) VerifyProofs(proofs []MerkleProof) error {
	if v.edges == nil || v.merkleRoot == nil {
		panic("pots: VerifyProofs called before SetGraphDescription")
	}
	for _, proof := range proofs {
		if err := v.verifyProof(proof); err != nil {
			return err
		}
	}
	return nil
}

func (v *Verifier) verifyProof(proof MerkleProof) error {
	isSource := proof.ChallengeIndex < v.params.N

	var expected Digest
	if isSource {
		expected = v.hasher.LabelSource(v.nonce, uint64(proof.ChallengeIndex))
	} else {
		expected = v.pebbleTo(proof.ChallengeIndex)
	}

	if !proof.Path[0].Equal(expected) {
		if isSource {
			return ErrInvalidSourceLabel
		}
		return ErrInvalidNonSourceLabel
	}

	return v.verifyMerklePath(proof.ChallengeIndex, proof.Path)
}

func (v *Verifier) verifyMerklePath(index int, path []Digest) error {
	var childLabel Digest
	if isLeft(index) {
		childLabel = v.hasher.LabelMerkleNode(path[0], path[1])
	} else {
		childLabel = v.hasher.LabelMerkleNode(path[1], path[0])
	}

	childIndex := index / 2
	for _, sibling := range path[2 : len(path)-1] {
		if isLeft(childIndex) {
			childLabel = v.hasher.LabelMerkleNode(childLabel, sibling)
		} else {
			childLabel = v.hasher.LabelMerkleNode(sibling, childLabel)
		}
		childIndex /= 2
	}

	calculatedRoot := childLabel
	if !calculatedRoot.Equal(v.merkleRoot) {
		return ErrCalculatedRootDoesNotMatchStoredRoot
	}
	if !calculatedRoot.Equal(path[len(path)-1]) {
		return ErrCalculatedRootDoesNotMatchProof
	}
	return nil
}

// pebbleTo recomputes the label of vertex dest without ever holding more
// than one column of labels in memory, trading time (O(n*stop_col)
// hashes) for the space the Prover was forced to dedicate. This
// asymmetry is the point of the protocol (spec §9) and MUST be
// preserved by any future change here.
func (v *Verifier) pebbleTo(dest int) Digest {
	n := v.params.N
	stopCol := dest / n

	if stopCol == 0 {
		return v.hasher.LabelSource(v.nonce, uint64(dest))
	}

	labels := make([]Digest, n)
	for i := 0; i < n; i++ {
		labels[i] = v.hasher.LabelSource(v.nonce, uint64(i))
	}

	for c := 1; c < stopCol; c++ {
		next := make([]Digest, n)
		for i := 0; i < n; i++ {
			parents := v.edges.GetParents(i)
			parentLabels := make([][]byte, len(parents))
			for j, p := range parents {
				parentLabels[j] = labels[p]
			}
			next[i] = v.hasher.LabelNonSource(parentLabels)
		}
		labels = next
	}

	row := dest % n
	parents := v.edges.GetParents(row)
	parentLabels := make([][]byte, len(parents))
	for j, p := range parents {
		parentLabels[j] = labels[p]
	}
	return v.hasher.LabelNonSource(parentLabels)
}
