// Copyright © 2018 - 2023 Weald Technology Trading.
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
	"github.com/pkg/errors"

	"github.com/DrPeterVanNostrand/pots/sha3256"
)

// nodeKey addresses a single Merkle node by (layer, index within layer).
// This plays the role of the teacher library's single heap-style integer
// index, split in two for clarity since this tree is stored as layers
// rather than one flat binary-heap array.
type nodeKey struct {
	layer, index int
}

// MultiProof is a compact batched opening for several challenge indices.
// It carries only the sibling digests that cannot be recomputed from the
// other indices being proved, rather than a full independent path per
// index.
type MultiProof struct {
	Indices []int
	NLeaves int
	NLayers int
	Hashes  map[nodeKey]Digest
}

// newMultiProofFromTree builds a MultiProof for indices against tree.
func newMultiProofFromTree(tree *MerkleTree, indices []int) *MultiProof {
	nLayers := tree.NLayers()

	// covered[layer][index] marks a node whose value a verifier can
	// derive without being handed it directly, because it lies on the
	// path of one of the requested indices.
	covered := make([]map[int]bool, nLayers)
	for l := range covered {
		covered[l] = make(map[int]bool)
	}
	for _, idx := range indices {
		cur := idx
		for layer := 0; layer < nLayers; layer++ {
			covered[layer][cur] = true
			cur /= 2
		}
	}

	hashes := make(map[nodeKey]Digest)
	for _, idx := range indices {
		cur := idx
		for layer := 0; layer < nLayers-1; layer++ {
			sib := siblingIndex(cur)
			if !covered[layer][sib] {
				key := nodeKey{layer, sib}
				if _, already := hashes[key]; !already {
					hashes[key] = tree.layers[layer][sib]
				}
			}
			cur /= 2
		}
	}

	return &MultiProof{
		Indices: append([]int{}, indices...),
		NLeaves: tree.NLeaves(),
		NLayers: nLayers,
		Hashes:  hashes,
	}
}

// Verify folds the supplied leaves together with the proof's carried
// sibling hashes up to the root, combining any node whose two children
// are both known (left/right order is always index parity, never a
// digest comparison — see DESIGN.md). It reports whether the result
// equals root. The hash is always SHA3-256, the one the protocol fixes;
// use verifyWithHasher directly to exercise this logic against another
// Hasher in tests.
func (mp *MultiProof) Verify(leaves map[int]Digest, root Digest) (bool, error) {
	return mp.verifyWithHasher(leaves, root, func() Hasher { return sha3256.New() })
}

func (mp *MultiProof) verifyWithHasher(leaves map[int]Digest, root Digest, newHasher func() Hasher) (bool, error) {
	h := newHasher()

	values := make(map[nodeKey]Digest, len(leaves)+len(mp.Hashes))
	for idx, d := range leaves {
		values[nodeKey{0, idx}] = d
	}
	for k, d := range mp.Hashes {
		values[k] = d
	}

	layerSize := mp.NLeaves
	for layer := 0; layer < mp.NLayers-1; layer++ {
		nextSize := layerSize / 2
		for i := 0; i < nextSize; i++ {
			parent := nodeKey{layer + 1, i}
			if _, done := values[parent]; done {
				continue
			}
			left, lok := values[nodeKey{layer, 2 * i}]
			right, rok := values[nodeKey{layer, 2*i + 1}]
			if lok && rok {
				values[parent] = h.LabelMerkleNode(left, right)
			}
		}
		layerSize = nextSize
	}

	computedRoot, ok := values[nodeKey{mp.NLayers - 1, 0}]
	if !ok {
		return false, errors.New("pots: insufficient hashes to compute the root")
	}
	return computedRoot.Equal(root), nil
}
