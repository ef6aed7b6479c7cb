// Copyright © 2018 - 2023 Weald Technology Trading
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

import "bytes"

// DigestLength is the fixed output size, in bytes, of the protocol's hash.
const DigestLength = 32

// Digest is a 32-byte output of the protocol's collision-resistant hash.
// A VertexLabel and a MerkleLabel are both Digests.
type Digest []byte

// Equal reports whether two digests hold the same bytes. A nil or
// short-length receiver never equals a properly sized digest.
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// emptyLeaf is the zero-length placeholder used to pad the Merkle tree's
// leaf layer out to a power of two (spec §4.5).
func emptyLeaf() Digest {
	return Digest{}
}
