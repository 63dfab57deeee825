/*
 * body.go, part of dumm.
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

	v3 "dumm/v3"
)

// BodyAtom is one entry of a DuMMBody's flattened atom list: an atom
// index paired with its station in the body's own frame.
type BodyAtom struct {
	AtomIndex int
	Station   v3.Vec3
}

// DuMMBody is the flattened, realization-time view of every atom
// transitively attached to one host body. There is exactly one
// DuMMBody per host body that owns any atom.
type DuMMBody struct {
	HostBody  int
	AllAtoms  []BodyAtom // sorted by AtomIndex
	lastRootCluster int // not assigned anywhere; always zero
}

// BodyStore owns the lazily-created host-body -> internal-body mapping
// and the realized DuMMBody views.
type BodyStore struct {
	hostToInternal map[int]int
	nextInternal   int
	bodies         map[int]*DuMMBody // keyed by internal body index
	memberAtoms    map[int]map[int]bool
}

func NewBodyStore() *BodyStore {
	return &BodyStore{
		hostToInternal: make(map[int]int),
		bodies:         make(map[int]*DuMMBody),
		memberAtoms:    make(map[int]map[int]bool),
	}
}

// internalFor returns the internal body index for hostBody, creating
// one lazily on first use.
func (b *BodyStore) internalFor(hostBody int) int {
	if idx, ok := b.hostToInternal[hostBody]; ok {
		return idx
	}
	idx := b.nextInternal
	b.nextInternal++
	b.hostToInternal[hostBody] = idx
	b.bodies[idx] = &DuMMBody{HostBody: hostBody}
	b.memberAtoms[idx] = make(map[int]bool)
	return idx
}

// noteAtom records that atomIdx is (transitively) a member of hostBody,
// used by the cluster tree as atoms are attached; the flattened list
// itself is (re)built at realization by Rebuild.
func (b *BodyStore) noteAtom(hostBody, atomIdx int) {
	idx := b.internalFor(hostBody)
	b.memberAtoms[idx][atomIdx] = true
}

// Rebuild flattens memberAtoms into each DuMMBody's sorted AllAtoms,
// pulling each atom's current station from the atom store. Called at
// topology realization (spec step 5).
func (b *BodyStore) Rebuild(atoms *AtomStore) {
	for idx, members := range b.memberAtoms {
		keys := make([]int, 0, len(members))
		for a := range members {
			keys = append(keys, a)
		}
		sort.Ints(keys)
		all := make([]BodyAtom, 0, len(keys))
		for _, a := range keys {
			at := atoms.Get(a)
			all = append(all, BodyAtom{AtomIndex: a, Station: at.Station})
		}
		b.bodies[idx].AllAtoms = all
	}
}

// Internal returns the internal body index for a host body, or -1 if no
// atom has ever attached to it.
func (b *BodyStore) Internal(hostBody int) int {
	idx, ok := b.hostToInternal[hostBody]
	if !ok {
		return -1
	}
	return idx
}

// Get returns the DuMMBody for an internal body index.
func (b *BodyStore) Get(internal int) *DuMMBody {
	return b.bodies[internal]
}

// InternalIndices returns every internal body index, ascending.
func (b *BodyStore) InternalIndices() []int {
	out := make([]int, 0, len(b.bodies))
	for i := range b.bodies {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
