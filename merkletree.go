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

// MerkleTree is a binary Merkle tree over the flattened LabelMatrix,
// padded with zero-length leaves out to the next power of two. Layers
// are stored leaf-first: layers[0] is the leaf layer, layers[len-1] is
// the single-node root layer.
type MerkleTree struct {
	layers [][]Digest
}

// NewMerkleTreeFromLabelMatrix flattens lm in column-major order and
// builds the Merkle tree over it (spec §4.5).
func NewMerkleTreeFromLabelMatrix(lm *LabelMatrix, newHasher func() Hasher) *MerkleTree {
	leaves := lm.Flatten()

	nLeaves := nextPowerOfTwo(len(leaves))
	padded := make([]Digest, nLeaves)
	copy(padded, leaves)
	for i := len(leaves); i < nLeaves; i++ {
		padded[i] = emptyLeaf()
	}

	layers := [][]Digest{padded}
	for len(layers[len(layers)-1]) > 1 {
		prev := layers[len(layers)-1]
		curr := make([]Digest, len(prev)/2)
		parallelFor(len(curr), func(worker, i int) {
			h := newHasher()
			curr[i] = h.LabelMerkleNode(prev[2*i], prev[2*i+1])
		})
		layers = append(layers, curr)
	}

	return &MerkleTree{layers: layers}
}

// nextPowerOfTwo returns n if it is already a power of two (n >= 1),
// otherwise the smallest power of two strictly greater than n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// NLeaves returns the padded number of leaves (a power of two).
func (t *MerkleTree) NLeaves() int { return len(t.layers[0]) }

// NLayers returns ceil(log2(n_leaves)) + 1.
func (t *MerkleTree) NLayers() int { return len(t.layers) }

// Root returns the tree's single root digest.
func (t *MerkleTree) Root() Digest {
	return t.layers[len(t.layers)-1][0]
}

// Leaf returns the leaf digest at the given flat index.
func (t *MerkleTree) Leaf(index int) Digest {
	return t.layers[0][index]
}

// isLeft reports whether a node at the given index within its layer is
// the left input to its parent.
func isLeft(indexWithinLayer int) bool {
	return indexWithinLayer%2 == 0
}

func siblingIndex(i int) int {
	if isLeft(i) {
		return i + 1
	}
	return i - 1
}

// Open returns an authenticated opening path for the leaf at index:
// path[0] is the leaf itself, path[1] is its sibling, each subsequent
// entry is the sibling of the current ascending node, and the final
// entry is the root (spec §4.5).
func (t *MerkleTree) Open(index int) []Digest {
	path := make([]Digest, 0, t.NLayers()+1)
	curr := index
	path = append(path, t.layers[0][curr])

	for layer := 0; layer < t.NLayers()-1; layer++ {
		path = append(path, t.layers[layer][siblingIndex(curr)])
		curr /= 2
	}

	path = append(path, t.Root())
	return path
}
