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
	"runtime"
	"sync"
)

// LabelMatrix is the k-column, n-row stacked labeling of the graph.
// Column 0 holds source labels; columns 1..k-1 hold non-source labels
// derived from the previous column through the shared Edges. Labels are
// immutable once constructed.
type LabelMatrix struct {
	n       int
	k       int
	columns [][]Digest
}

// NewLabelMatrix labels every vertex of the stacked bipartite expander
// described by edges, over k columns, under the given nonce.
func NewLabelMatrix(edges *Edges, k int, nonce []byte, newHasher func() Hasher) *LabelMatrix {
	n := edges.N()
	columns := make([][]Digest, k)

	columns[0] = make([]Digest, n)
	parallelFor(n, func(worker int, i int) {
		h := newHasher()
		columns[0][i] = h.LabelSource(nonce, uint64(i))
	})

	for col := 1; col < k; col++ {
		prev := columns[col-1]
		curr := make([]Digest, n)
		parallelFor(n, func(worker int, v int) {
			h := newHasher()
			parents := edges.GetParents(v)
			parentLabels := make([][]byte, len(parents))
			for i, p := range parents {
				parentLabels[i] = prev[p]
			}
			curr[v] = h.LabelNonSource(parentLabels)
		})
		columns[col] = curr
	}

	return &LabelMatrix{n: n, k: k, columns: columns}
}

// At returns the label at (col, row).
func (m *LabelMatrix) At(col, row int) Digest {
	return m.columns[col][row]
}

// N returns the number of rows (vertices per column).
func (m *LabelMatrix) N() int { return m.n }

// K returns the number of columns.
func (m *LabelMatrix) K() int { return m.k }

// Flatten returns the matrix in column-major order: all of column 0, then
// all of column 1, and so on. flat index = col*n + row (spec §4.5).
func (m *LabelMatrix) Flatten() []Digest {
	out := make([]Digest, 0, m.n*m.k)
	for _, col := range m.columns {
		out = append(out, col...)
	}
	return out
}

// parallelFor calls fn(worker, i) for every i in [0, n) using a bounded
// worker pool, then waits for all calls to complete. Each call is given
// a distinct output slot, so results are bit-identical to a sequential
// loop regardless of scheduling (spec §5).
func parallelFor(n int, fn func(worker, i int)) {
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(worker, i)
			}
		}(w, start, end)
	}
	wg.Wait()
}
