/*
 * bond.go, part of dumm.
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
	dgraph "dumm/graph"
)

// Bond is an unordered pair of atom indices, canonicalized low-first.
type Bond struct {
	Lo, Hi int
}

// BondStore holds the subsystem's bonds and the bond graph derived from
// them.
type BondStore struct {
	bonds map[[2]int]Bond
	g     *dgraph.BondGraph
	atoms *AtomStore
}

func NewBondStore(atoms *AtomStore) *BondStore {
	return &BondStore{bonds: make(map[[2]int]Bond), g: dgraph.New(), atoms: atoms}
}

// Add inserts a bond between atoms i and j. Fails with TopologyViolation
// if i==j, InvalidKey if either atom is unknown, DuplicateKey if the
// pair is already bonded.
func (s *BondStore) Add(i, j int) error {
	if i == j {
		return newError(TopologyViolation, "bond endpoints must be distinct, got %d twice", i)
	}
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if s.atoms.Get(lo) == nil || s.atoms.Get(hi) == nil {
		return newError(InvalidKey, "bond %d-%d: endpoint atom does not exist", lo, hi)
	}
	key := [2]int{lo, hi}
	if _, ok := s.bonds[key]; ok {
		return newError(DuplicateKey, "bond %d-%d already exists", lo, hi)
	}
	s.bonds[key] = Bond{Lo: lo, Hi: hi}
	s.g.AddBond(lo, hi)

	a, b := s.atoms.Get(lo), s.atoms.Get(hi)
	a.Bond12 = insertSorted(a.Bond12, hi)
	b.Bond12 = insertSorted(b.Bond12, lo)
	return nil
}

func insertSorted(xs []int, v int) []int {
	i := 0
	for i < len(xs) && xs[i] < v {
		i++
	}
	if i < len(xs) && xs[i] == v {
		return xs
	}
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = v
	return xs
}

// HasBond reports whether i and j are bonded.
func (s *BondStore) HasBond(i, j int) bool {
	return s.g.HasBond(i, j)
}

// Graph exposes the underlying bond graph for neighborhood traversal.
func (s *BondStore) Graph() *dgraph.BondGraph {
	return s.g
}

// Len returns the number of distinct bonds.
func (s *BondStore) Len() int {
	return len(s.bonds)
}
