/*
 * chargedatomtype.go, part of dumm.
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

// ChargedAtomType binds a chemical environment (a name, an atom class
// and a partial charge) to an id that atoms reference. Several charged
// atom types can share an atom class -- e.g. "amber99/HC" and
// "amber99/H1" might both be class "aliphatic hydrogen" with different
// charges.
type ChargedAtomType struct {
	Index         int
	Name          string
	AtomClass     int
	PartialCharge float64 // elementary charges
}

// ChargedAtomTypeRegistry is the append-mostly store of charged atom
// types.
type ChargedAtomTypeRegistry struct {
	types   map[int]*ChargedAtomType
	classes *AtomClassRegistry
}

// NewChargedAtomTypeRegistry returns an empty registry that validates
// AtomClass references against classes.
func NewChargedAtomTypeRegistry(classes *AtomClassRegistry) *ChargedAtomTypeRegistry {
	return &ChargedAtomTypeRegistry{types: make(map[int]*ChargedAtomType), classes: classes}
}

// Define installs a new charged atom type at index idx.
func (r *ChargedAtomTypeRegistry) Define(idx int, name string, atomClass int, charge float64) error {
	if idx < 0 {
		return newError(RangeError, "charged atom type index %d is negative", idx)
	}
	if _, ok := r.types[idx]; ok {
		return newError(DuplicateKey, "charged atom type %d already defined", idx)
	}
	if r.classes.Get(atomClass) == nil {
		return newError(InvalidKey, "charged atom type %d: atom class %d does not exist", idx, atomClass)
	}
	r.types[idx] = &ChargedAtomType{Index: idx, Name: name, AtomClass: atomClass, PartialCharge: charge}
	return nil
}

// Get returns the charged atom type at idx, or nil.
func (r *ChargedAtomTypeRegistry) Get(idx int) *ChargedAtomType {
	return r.types[idx]
}

// Indices returns every defined index, ascending.
func (r *ChargedAtomTypeRegistry) Indices() []int {
	out := make([]int, 0, len(r.types))
	for i := range r.types {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
