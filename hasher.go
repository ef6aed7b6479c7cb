// Copyright © 2019 Weald Technology Trading
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

// Hasher is the interface that must be supplied by a labeling hash
// function. The protocol fixes this to SHA3-256 (see package sha3256);
// the interface exists so that components can be exercised in tests
// against a hash other than the production one without changing their
// wiring.
type Hasher interface {
	// LabelSource labels a column-0 vertex from the nonce and its index.
	LabelSource(nonce []byte, i uint64) []byte
	// LabelNonSource labels a non-source vertex from its ordered parent labels.
	LabelNonSource(parentLabels [][]byte) []byte
	// LabelMerkleNode labels an internal Merkle node from its two children.
	LabelMerkleNode(left, right []byte) []byte
}
