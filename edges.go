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
	"crypto/rand"
	"math/big"
	"sort"

	"github.com/pkg/errors"
)

// Edges is a random bipartite expander: a mapping from each source-column
// vertex index to the ordered, ascending list of sink-column vertices it
// connects to. Every sink has in-degree exactly InDegree.
type Edges struct {
	n          int
	fromSource [][]int
}

// N returns the number of vertices per column.
func (e *Edges) N() int { return e.n }

// NewPermutationEdges builds a random bipartite expander over n vertices
// per side. For each sink, a uniformly random permutation of [0,n) is
// drawn from a cryptographically secure source and its first InDegree
// elements become that sink's parents.
func NewPermutationEdges(n int) (*Edges, error) {
	fromSource := make([][]int, n)
	for i := range fromSource {
		fromSource[i] = []int{}
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	for sink := 0; sink < n; sink++ {
		if err := secureShuffle(indices); err != nil {
			return nil, errors.Wrap(err, "could not draw a secure permutation")
		}
		for _, source := range indices[:InDegree] {
			fromSource[source] = append(fromSource[source], sink)
		}
	}

	for _, sinks := range fromSource {
		sort.Ints(sinks)
	}

	return &Edges{n: n, fromSource: fromSource}, nil
}

// GetParents returns the ordered, ascending list of source indices that
// vertex v (a sink) is connected to. The search stops once InDegree
// parents have been found, which is sound because every sink has exactly
// that many.
func (e *Edges) GetParents(v int) []int {
	parents := make([]int, 0, InDegree)
	for source, sinks := range e.fromSource {
		if containsSorted(sinks, v) {
			parents = append(parents, source)
			if len(parents) == InDegree {
				break
			}
		}
	}
	return parents
}

func containsSorted(sorted []int, v int) bool {
	i := sort.SearchInts(sorted, v)
	return i < len(sorted) && sorted[i] == v
}

// secureShuffle performs an in-place Fisher-Yates shuffle drawing indices
// from the OS CSPRNG (crypto/rand). There is no third-party
// cryptographically secure shuffle primitive anywhere in the example
// pack; math/rand is explicitly not suitable here since the protocol's
// soundness depends on the expander's edges being unpredictable to the
// Prover ahead of time.
func secureShuffle(s []int) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		jj := int(j.Int64())
		s[i], s[jj] = s[jj], s[i]
	}
	return nil
}
