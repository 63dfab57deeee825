/*
 * atomclass.go, part of dumm.
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

import "sort"

// AtomClass groups atoms that share the same nonbonded and valence
// character: an element, a valence (expected number of covalent
// partners), and a van der Waals radius/well depth pair. Radius and
// well depth may be left unset at creation time and completed later; a
// class only participates in the mixed vdW table once complete.
type AtomClass struct {
	Index        int
	Name         string
	Element      int // atomic number
	Valence      int
	VdwRadius    float64 // nm, radius at minimum energy convention
	VdwWellDepth float64 // kJ/mol

	radiusSet, depthSet bool
}

func (c *AtomClass) complete() bool {
	return c.radiusSet && c.depthSet && c.VdwRadius >= 0 && c.VdwWellDepth >= 0
}

// AtomClassRegistry is the append-mostly, externally-indexed store of
// atom classes. Writes invalidate any realized topology cache they are
// attached to (the Subsystem handles that invalidation).
type AtomClassRegistry struct {
	classes map[int]*AtomClass
}

// NewAtomClassRegistry returns an empty registry.
func NewAtomClassRegistry() *AtomClassRegistry {
	return &AtomClassRegistry{classes: make(map[int]*AtomClass)}
}

// Define installs a new, possibly-incomplete atom class at index idx.
// Fails with DuplicateKey if idx is already taken, RangeError if idx<0,
// valence<0, or a provided radius/depth is negative.
func (r *AtomClassRegistry) Define(idx int, name string, element, valence int, radius, depth float64, haveVdw bool) error {
	if idx < 0 {
		return newError(RangeError, "atom class index %d is negative", idx)
	}
	if valence < 0 {
		return newError(RangeError, "atom class %d: negative valence %d", idx, valence)
	}
	if _, ok := r.classes[idx]; ok {
		return newError(DuplicateKey, "atom class %d already defined", idx)
	}
	c := &AtomClass{Index: idx, Name: name, Element: element, Valence: valence}
	if haveVdw {
		if radius < 0 || depth < 0 {
			return newError(RangeError, "atom class %d: vdW radius and well depth must be non-negative", idx)
		}
		c.VdwRadius, c.VdwWellDepth = radius, depth
		c.radiusSet, c.depthSet = true, true
	}
	r.classes[idx] = c
	return nil
}

// CompleteVdw fills in the vdW radius/well depth of a previously
// partially-defined class.
func (r *AtomClassRegistry) CompleteVdw(idx int, radius, depth float64) error {
	c, ok := r.classes[idx]
	if !ok {
		return newError(InvalidKey, "atom class %d does not exist", idx)
	}
	if radius < 0 || depth < 0 {
		return newError(RangeError, "atom class %d: vdW radius and well depth must be non-negative", idx)
	}
	c.VdwRadius, c.VdwWellDepth = radius, depth
	c.radiusSet, c.depthSet = true, true
	return nil
}

// Get returns the class at idx, or nil if none exists.
func (r *AtomClassRegistry) Get(idx int) *AtomClass {
	return r.classes[idx]
}

// Len returns the number of installed classes. Class indices need not
// be contiguous; this is the count of entries, not a capacity.
func (r *AtomClassRegistry) Len() int {
	return len(r.classes)
}

// Indices returns every defined class index, ascending.
func (r *AtomClassRegistry) Indices() []int {
	out := make([]int, 0, len(r.classes))
	for i := range r.classes {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
