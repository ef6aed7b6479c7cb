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

// Package sha3256 is a thin stateful wrapper around SHA3-256 offering the
// three vertex/node labeling primitives the protocol commits to. Inputs are
// borrowed; every method resets the underlying hash state before returning.
package sha3256

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// DigestLength is the fixed output size of SHA3-256.
const DigestLength = 32

// Hasher wraps a reusable SHA3-256 state. It is not safe for concurrent use
// by multiple goroutines; callers that parallelize labeling give each
// concurrent call its own Hasher.
type Hasher struct {
	h hash.Hash
}

// New creates a Hasher ready for use.
func New() *Hasher {
	return &Hasher{h: sha3.New256()}
}

func (h *Hasher) digest() []byte {
	sum := h.h.Sum(nil)
	h.h.Reset()
	return sum
}

// LabelSource computes the label of a column-0 ("source") vertex: the hash
// of the nonce followed by the vertex index encoded as an 8-byte big-endian
// unsigned integer.
func (h *Hasher) LabelSource(nonce []byte, i uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], i)
	h.h.Write(nonce)
	h.h.Write(buf[:])
	return h.digest()
}

// LabelNonSource computes the label of a non-source vertex: the hash of its
// parent labels, absorbed in the order given. Order matters — callers MUST
// supply parent labels in ascending source-index order.
func (h *Hasher) LabelNonSource(parentLabels [][]byte) []byte {
	for _, parent := range parentLabels {
		h.h.Write(parent)
	}
	return h.digest()
}

// LabelMerkleNode computes the label of an internal Merkle node from its
// two children, left then right.
func (h *Hasher) LabelMerkleNode(left, right []byte) []byte {
	h.h.Write(left)
	h.h.Write(right)
	return h.digest()
}
