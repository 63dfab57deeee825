/*
 * bondgraph.go, part of dumm.
 *
 * Copyright 2024 The dumm authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package graph wraps the atom-index bond graph as a gonum.org/v1/gonum/graph
// Undirected graph. The neighborhood build (the 1-2..1-5 lists) walks it
// through Neighbors with its own depth-first and breadth-first loops.
package graph

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// BondGraph is an undirected graph over atom indices, one node per atom,
// one edge per 1-2 bond. The bond store adds each new bond to it as the
// bond is created.
type BondGraph struct {
	g *simple.UndirectedGraph
}

// New builds an empty bond graph.
func New() *BondGraph {
	return &BondGraph{g: simple.NewUndirectedGraph()}
}

// EnsureNode adds atom index i as a node if it isn't already present.
func (b *BondGraph) EnsureNode(i int) {
	if b.g.Node(int64(i)) == nil {
		b.g.AddNode(simple.Node(int64(i)))
	}
}

// AddBond adds an undirected edge between atoms i and j. It is a no-op if
// the edge already exists.
func (b *BondGraph) AddBond(i, j int) {
	b.EnsureNode(i)
	b.EnsureNode(j)
	if b.g.HasEdgeBetween(int64(i), int64(j)) {
		return
	}
	b.g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
}

// Neighbors returns the sorted 1-2 neighbors of atom i.
func (b *BondGraph) Neighbors(i int) []int {
	it := b.g.From(int64(i))
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	sort.Ints(out)
	return out
}

// HasBond reports whether i and j are directly bonded.
func (b *BondGraph) HasBond(i, j int) bool {
	return b.g.HasEdgeBetween(int64(i), int64(j))
}

// Nodes returns every atom index currently in the graph, sorted.
func (b *BondGraph) Nodes() []int {
	it := b.g.Nodes()
	out := make([]int, 0, it.Len())
	for it.Next() {
		out = append(out, int(it.Node().ID()))
	}
	sort.Ints(out)
	return out
}

// Underlying exposes the raw gonum graph.Graph, for callers that want to
// run gonum's own traversal/path algorithms directly.
func (b *BondGraph) Underlying() graph.Graph {
	return b.g
}
