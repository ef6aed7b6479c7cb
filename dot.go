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

import (
	"fmt"

	"github.com/emicklei/dot"
)

// DOTGraph renders the bipartite expander as a layered digraph (source
// column above, sink column below, one edge per (source, sink) pair).
// It is display-only: never consulted by Prover or Verifier logic.
func DOTGraph(edges *Edges) string {
	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "TB")

	sources := make([]dot.Node, edges.N())
	sinks := make([]dot.Node, edges.N())
	for i := 0; i < edges.N(); i++ {
		sources[i] = g.Node(fmt.Sprintf("s%d", i)).Attr("label", fmt.Sprintf("src %d", i)).Attr("shape", "ellipse")
		sinks[i] = g.Node(fmt.Sprintf("t%d", i)).Attr("label", fmt.Sprintf("sink %d", i)).Attr("shape", "box")
	}

	for source := 0; source < edges.N(); source++ {
		for _, sink := range edges.fromSource[source] {
			g.Edge(sources[source], sinks[sink])
		}
	}

	return g.String()
}

// DOTLabelMatrix renders every vertex of a LabelMatrix as a node named
// c<col>r<row>, with its label formatted by lf. It emits no edges and no
// rank grouping of the columns.
func DOTLabelMatrix(lm *LabelMatrix, lf Formatter) string {
	if lf == nil {
		lf = new(TruncatedHexFormatter)
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "TB")

	nodes := make([][]dot.Node, lm.K())
	for col := 0; col < lm.K(); col++ {
		nodes[col] = make([]dot.Node, lm.N())
		for row := 0; row < lm.N(); row++ {
			label := lf.Format(lm.At(col, row))
			nodes[col][row] = g.Node(fmt.Sprintf("c%dr%d", col, row)).Attr("label", label)
		}
	}

	return g.String()
}

// DOT renders the Merkle tree's layers as ranked rows of nodes, with
// separate formatters for leaves and branches. It is display-only.
func (t *MerkleTree) DOT(lf, bf Formatter) string {
	if lf == nil {
		lf = new(TruncatedHexFormatter)
	}
	if bf == nil {
		bf = new(TruncatedHexFormatter)
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "BT")

	nodes := make([][]dot.Node, len(t.layers))
	for layer, digests := range t.layers {
		nodes[layer] = make([]dot.Node, len(digests))
		formatter := bf
		if layer == 0 {
			formatter = lf
		}
		for i, d := range digests {
			label := "∅"
			if len(d) > 0 {
				label = formatter.Format(d)
			}
			nodes[layer][i] = g.Node(fmt.Sprintf("l%di%d", layer, i)).Attr("label", label)
		}
	}

	for layer := 1; layer < len(nodes); layer++ {
		for i, parent := range nodes[layer] {
			g.Edge(nodes[layer-1][2*i], parent)
			g.Edge(nodes[layer-1][2*i+1], parent)
		}
	}

	return g.String()
}
