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

import "github.com/pkg/errors"

// InDegree is the fixed in-degree of every sink vertex in the bipartite
// expander.
const InDegree = 16

// K is the fixed number of columns in the stacked bipartite expander.
const K = 6

// MinN is the minimum number of vertices per column.
const MinN = 16

// MinSpace is the minimum proveable space: MinN * DigestLength * (K+2).
const MinSpace = MinN * DigestLength * (K + 2)

// Space is the Verifier's space requirement, expressed in one of four
// units. Exactly one of SpaceBytes/SpaceKbs/SpaceMbs/SpaceGbs should be used to build a value;
// the zero value (no bytes) is invalid and will fail NewProtoParams.
type Space struct {
	nBytes int
}

// SpaceBytes specifies a space requirement directly in bytes.
func SpaceBytes(n int) Space { return Space{nBytes: n} }

// SpaceKbs specifies a space requirement in kibibytes (n * 1024).
func SpaceKbs(n int) Space { return Space{nBytes: n * 1024} }

// SpaceMbs specifies a space requirement in mebibytes (n * 1,048,576).
func SpaceMbs(n int) Space { return Space{nBytes: n * 1_048_576} }

// SpaceGbs specifies a space requirement in gibibytes (n * 1,073,741,824).
func SpaceGbs(n int) Space { return Space{nBytes: n * 1_073_741_824} }

// NBytes returns the space requirement expressed in bytes.
func (s Space) NBytes() int { return s.nBytes }

// ProtoParams are the derived Proof-of-Space protocol parameters.
type ProtoParams struct {
	Space int
	N     int
	K     int
	Delta float32
	L0    int
}

// NewProtoParams derives (n, k, delta, l0) from a space requirement. It
// fails with ErrSpaceTooSmall when space is below MinSpace.
//
// All intermediate arithmetic is performed in 32-bit floating point and
// finalized with ceil, matching the original implementation exactly so
// that (n, l0) agree across ports (see params.rs in the original source).
func NewProtoParams(space Space) (ProtoParams, error) {
	nBytes := space.NBytes()
	if nBytes < MinSpace {
		return ProtoParams{}, errors.Wrapf(ErrSpaceTooSmall, "space %d bytes is below the minimum %d", nBytes, MinSpace)
	}

	n := calcN(nBytes)
	delta := calcMinDelta(n)
	l0 := calcL0(K, delta)

	return ProtoParams{
		Space: nBytes,
		N:     n,
		K:     K,
		Delta: delta,
		L0:    l0,
	}, nil
}

// calcN computes n = ceil(space / (DigestLength * (K+2))).
func calcN(space int) int {
	spaceF := float32(space)
	digestLength := float32(DigestLength)
	k := float32(K)
	return int(ceilF32(spaceF / (digestLength * (k + 2.0))))
}

// calcMinDelta finds the smallest delta > 1 such that n - n/delta > n/4,
// by first overshooting downward in whole-unit steps and then correcting
// upward in 0.01 steps. The loop order is part of the commitment to
// cross-implementation numeric agreement (see params.rs).
func calcMinDelta(n int) float32 {
	nF := float32(n)
	delta := nF
	for {
		delta -= 1.0
		if nF-nF/delta < nF/4.0 {
			break
		}
	}
	for {
		delta += 0.01
		if nF-nF/delta > nF/4.0 {
			return delta
		}
	}
}

// calcL0 computes l0 = ceil(ln(2) * delta * k^2).
func calcL0(k int, delta float32) int {
	const ln2 = float32(0.6931472)
	kPow2 := float32(k * k)
	return int(ceilF32(ln2 * delta * kPow2))
}

// ceilF32 is math.Ceil performed entirely in float32, to avoid the
// float64 promotion the standard library's math.Ceil would otherwise
// require.
func ceilF32(x float32) float32 {
	truncated := float32(int64(x))
	if truncated < x {
		return truncated + 1
	}
	return truncated
}
