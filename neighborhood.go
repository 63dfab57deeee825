/*
 * neighborhood.go, part of dumm.
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

package dumm

import (
	"sort"

	dgraph "dumm/graph"
)

// allSimplePaths returns, for every length in {2,3,4}, every simple
// path starting at focal of exactly that length, expressed as the
// atoms beyond focal (no repeated vertex, focal itself excluded from
// the returned tuples). This is the "bond1N" family: one torsion may
// legitimately arise from more than one path, so nothing here is
// deduplicated by destination.
func allSimplePaths(g *dgraph.BondGraph, focal int) (p2, p3, p4 [][]int) {
	var dfs func(current int, path []int, visited map[int]bool)
	dfs = func(current int, path []int, visited map[int]bool) {
		switch len(path) {
		case 2:
			p2 = append(p2, append([]int(nil), path...))
		case 3:
			p3 = append(p3, append([]int(nil), path...))
		case 4:
			p4 = append(p4, append([]int(nil), path...))
		}
		if len(path) >= 4 {
			return
		}
		for _, nb := range g.Neighbors(current) {
			if nb == focal || visited[nb] {
				continue
			}
			visited[nb] = true
			dfs(nb, append(path, nb), visited)
			delete(visited, nb)
		}
	}
	visited := map[int]bool{focal: true}
	for _, nb := range g.Neighbors(focal) {
		visited[nb] = true
		dfs(nb, []int{nb}, visited)
		delete(visited, nb)
	}
	return
}

// shortestPaths performs the breadth-first expansion described in
// package doc §4.3 step 7: starting from the atom's 1-2 set, it grows
// a single shared visited set level by level, so that every reachable
// atom is assigned to exactly one of shortPath13/14/15, via the first
// (hence shortest) path that reaches it.
func shortestPaths(g *dgraph.BondGraph, focal int) (sp2, sp3, sp4 [][]int) {
	visited := map[int]bool{focal: true}
	level1 := g.Neighbors(focal)
	type entry struct {
		atom int
		path []int
	}
	frontier := make([]entry, 0, len(level1))
	for _, a := range level1 {
		visited[a] = true
		frontier = append(frontier, entry{atom: a, path: []int{a}})
	}

	for depth := 2; depth <= 4; depth++ {
		next := make([]entry, 0)
		for _, e := range frontier {
			for _, nb := range g.Neighbors(e.atom) {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				np := append(append([]int(nil), e.path...), nb)
				next = append(next, entry{atom: nb, path: np})
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i].atom < next[j].atom })
		switch depth {
		case 2:
			for _, e := range next {
				sp2 = append(sp2, e.path)
			}
		case 3:
			for _, e := range next {
				sp3 = append(sp3, e.path)
			}
		case 4:
			for _, e := range next {
				sp4 = append(sp4, e.path)
			}
		}
		frontier = next
	}
	return
}

func sortTuples(xs [][]int) {
	sort.Slice(xs, func(i, j int) bool {
		a, b := xs[i], xs[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}

func to2(xs [][]int) [][2]int {
	out := make([][2]int, len(xs))
	for i, x := range xs {
		out[i] = [2]int{x[0], x[1]}
	}
	return out
}
func to3(xs [][]int) [][3]int {
	out := make([][3]int, len(xs))
	for i, x := range xs {
		out[i] = [3]int{x[0], x[1], x[2]}
	}
	return out
}
func to4(xs [][]int) [][4]int {
	out := make([][4]int, len(xs))
	for i, x := range xs {
		out[i] = [4]int{x[0], x[1], x[2], x[3]}
	}
	return out
}

// buildNeighborhoods fills bond1N/shortPath1N and bonds3Atoms for atom
// focal, per package doc §4.3 step 7-8.
func buildNeighborhoods(g *dgraph.BondGraph, a *Atom) {
	p2, p3, p4 := allSimplePaths(g, a.Index)
	sortTuples(p2)
	sortTuples(p3)
	sortTuples(p4)
	a.Bond13 = to2(p2)
	a.Bond14 = to3(p3)
	a.Bond15 = to4(p4)

	sp2, sp3, sp4 := shortestPaths(g, a.Index)
	sortTuples(sp2)
	sortTuples(sp3)
	sortTuples(sp4)
	a.ShortPath13 = to2(sp2)
	a.ShortPath14 = to3(sp3)
	a.ShortPath15 = to4(sp4)

	if len(a.Bond12) == 3 {
		a.HasBonds3 = true
		a.Bonds3Atoms = [3]int{a.Bond12[0], a.Bond12[1], a.Bond12[2]}
	} else {
		a.HasBonds3 = false
	}
}

func differentBody(atoms *AtomStore, focal int, members ...int) bool {
	fb := atoms.Get(focal).Body
	for _, m := range members {
		if atoms.Get(m).Body != fb {
			return true
		}
	}
	return false
}

// buildCrossBody fills the x-prefixed variants of every neighborhood
// list for atom a: package doc §4.3 step 9.
func buildCrossBody(atoms *AtomStore, a *Atom) {
	a.XBond12 = nil
	for _, n := range a.Bond12 {
		if differentBody(atoms, a.Index, n) {
			a.XBond12 = append(a.XBond12, n)
		}
	}
	a.XBond13 = nil
	for _, t := range a.Bond13 {
		if differentBody(atoms, a.Index, t[0], t[1]) {
			a.XBond13 = append(a.XBond13, t)
		}
	}
	a.XBond14 = nil
	for _, t := range a.Bond14 {
		if differentBody(atoms, a.Index, t[0], t[1], t[2]) {
			a.XBond14 = append(a.XBond14, t)
		}
	}
	a.XShortPath13 = nil
	for _, t := range a.ShortPath13 {
		if differentBody(atoms, a.Index, t[0], t[1]) {
			a.XShortPath13 = append(a.XShortPath13, t)
		}
	}
	a.XShortPath14 = nil
	for _, t := range a.ShortPath14 {
		if differentBody(atoms, a.Index, t[0], t[1], t[2]) {
			a.XShortPath14 = append(a.XShortPath14, t)
		}
	}
	a.XShortPath15 = nil
	for _, t := range a.ShortPath15 {
		if differentBody(atoms, a.Index, t[0], t[1], t[2], t[3]) {
			a.XShortPath15 = append(a.XShortPath15, t)
		}
	}
	if a.HasBonds3 && differentBody(atoms, a.Index, a.Bonds3Atoms[0], a.Bonds3Atoms[1], a.Bonds3Atoms[2]) {
		a.HasXBonds3 = true
		a.XBonds3Atoms = a.Bonds3Atoms
	} else {
		a.HasXBonds3 = false
	}
}
