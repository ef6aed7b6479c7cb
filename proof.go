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

// MerkleProof is a Merkle opening of a single challenged vertex. Path[0]
// is the leaf at ChallengeIndex, Path[1..] are ascending siblings, and
// Path[len-1] is the root the Prover committed to.
type MerkleProof struct {
	ChallengeIndex int
	Path           []Digest
}
