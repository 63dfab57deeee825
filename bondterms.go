/*
 * bondterms.go, part of dumm.
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
	"math"
	"reflect"
	"sort"
)

// BondStretch holds the harmonic stretch parameters for a class pair.
type BondStretch struct {
	Classes [2]int
	K       float64 // kJ/(mol nm^2)
	D0      float64 // nm
}

// BondBend holds the harmonic bend parameters for a class triple.
type BondBend struct {
	Classes [3]int
	K       float64 // kJ/(mol rad^2)
	Theta0  float64 // radians
}

// TorsionTerm is a single Fourier term of a torsion or improper-torsion
// potential.
type TorsionTerm struct {
	Periodicity int     // 1..6
	Amplitude   float64 // kJ/mol, >= 0
	Phase       float64 // radians, (-pi, pi]
}

// BondTorsion holds up to three non-redundant Fourier terms for a class
// quad. The same struct represents both normal and improper torsions;
// Improper records which canonicalization (or lack of it) applies.
type BondTorsion struct {
	Classes  [4]int
	Terms    []TorsionTerm
	Improper bool
}

func canonPair(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func canonTriple(a, b, c int) [3]int {
	lo, hi := canonPair(a, c)
	return [3]int{lo, b, hi}
}

// canonTorsionQuad canonicalizes a normal-torsion class quad: if the
// outer endpoints are out of order, or equal and the middle pair is out
// of order, reverse the whole quad.
func canonTorsionQuad(a, b, c, d int) [4]int {
	reverse := false
	if a > d {
		reverse = true
	} else if a == d && b > c {
		reverse = true
	}
	if reverse {
		return [4]int{d, c, b, a}
	}
	return [4]int{a, b, c, d}
}

// BondStretchTable is keyed by canonicalized class pairs.
type BondStretchTable struct {
	m map[[2]int]*BondStretch
}

func NewBondStretchTable() *BondStretchTable {
	return &BondStretchTable{m: make(map[[2]int]*BondStretch)}
}

func (t *BondStretchTable) Define(ci, cj int, k, d0 float64) error {
	if k < 0 || d0 < 0 {
		return newError(RangeError, "bond stretch %d-%d: k and d0 must be non-negative", ci, cj)
	}
	key := [2]int(func() [2]int { a, b := canonPair(ci, cj); return [2]int{a, b} }())
	bs := &BondStretch{Classes: key, K: k, D0: d0}
	if old, ok := t.m[key]; ok {
		if old.K == k && old.D0 == d0 {
			return nil // identical redefinition, silently accepted
		}
		return newError(DuplicateKey, "bond stretch %d-%d redefined with different parameters", ci, cj)
	}
	t.m[key] = bs
	return nil
}

func (t *BondStretchTable) Lookup(ci, cj int) (*BondStretch, bool) {
	a, b := canonPair(ci, cj)
	v, ok := t.m[[2]int{a, b}]
	return v, ok
}

// All returns every defined stretch entry, sorted by Classes so repeat
// calls against an unchanged table are byte-for-byte reproducible.
func (t *BondStretchTable) All() []*BondStretch {
	out := make([]*BondStretch, 0, len(t.m))
	for _, v := range t.m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return lessInts(out[i].Classes[:], out[j].Classes[:]) })
	return out
}

// lessInts reports whether a sorts before b, comparing element by
// element. Used to order the bond-term tables' Classes keys so their
// snapshot output is deterministic.
func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// BondBendTable is keyed by canonicalized class triples.
type BondBendTable struct {
	m map[[3]int]*BondBend
}

func NewBondBendTable() *BondBendTable {
	return &BondBendTable{m: make(map[[3]int]*BondBend)}
}

func (t *BondBendTable) Define(ci, cj, ck int, k, theta0 float64) error {
	if k < 0 {
		return newError(RangeError, "bond bend %d-%d-%d: k must be non-negative", ci, cj, ck)
	}
	if theta0 < 0 || theta0 > math.Pi {
		return newError(RangeError, "bond bend %d-%d-%d: theta0 out of [0,pi]", ci, cj, ck)
	}
	key := canonTriple(ci, cj, ck)
	bb := &BondBend{Classes: key, K: k, Theta0: theta0}
	if old, ok := t.m[key]; ok {
		if old.K == k && old.Theta0 == theta0 {
			return nil
		}
		return newError(DuplicateKey, "bond bend %d-%d-%d redefined with different parameters", ci, cj, ck)
	}
	t.m[key] = bb
	return nil
}

func (t *BondBendTable) Lookup(ci, cj, ck int) (*BondBend, bool) {
	v, ok := t.m[canonTriple(ci, cj, ck)]
	return v, ok
}

// All returns every defined bend entry, sorted by Classes so repeat
// calls against an unchanged table are byte-for-byte reproducible.
func (t *BondBendTable) All() []*BondBend {
	out := make([]*BondBend, 0, len(t.m))
	for _, v := range t.m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return lessInts(out[i].Classes[:], out[j].Classes[:]) })
	return out
}

// validateTerms enforces: periodicity in 1..6, amplitude >= 0, phase in
// (-pi, pi], and no two terms sharing a periodicity.
func validateTerms(terms []TorsionTerm) error {
	seen := map[int]bool{}
	for _, term := range terms {
		if term.Periodicity < 1 || term.Periodicity > 6 {
			return newError(RangeError, "torsion term periodicity %d out of [1,6]", term.Periodicity)
		}
		if term.Amplitude < 0 {
			return newError(RangeError, "torsion term amplitude %f negative", term.Amplitude)
		}
		if term.Phase <= -math.Pi || term.Phase > math.Pi {
			return newError(RangeError, "torsion term phase %f out of (-pi,pi]", term.Phase)
		}
		if seen[term.Periodicity] {
			return newError(RangeError, "two torsion terms share periodicity %d", term.Periodicity)
		}
		seen[term.Periodicity] = true
	}
	if len(terms) > 3 {
		return newError(RangeError, "torsion has more than three Fourier terms")
	}
	return nil
}

// BondTorsionTable is keyed by canonicalized (normal) or raw (improper)
// class quads; the two kinds are kept in separate maps since improper
// quads have a fixed central-atom slot and must never be canonicalized
// the way normal torsions are.
type BondTorsionTable struct {
	normal   map[[4]int]*BondTorsion
	improper map[[4]int]*BondTorsion
}

func NewBondTorsionTable() *BondTorsionTable {
	return &BondTorsionTable{
		normal:   make(map[[4]int]*BondTorsion),
		improper: make(map[[4]int]*BondTorsion),
	}
}

func (t *BondTorsionTable) Define(ci, cj, ck, cl int, terms []TorsionTerm, improper bool) error {
	if err := validateTerms(terms); err != nil {
		return err
	}
	var key [4]int
	m := t.normal
	if improper {
		key = [4]int{ci, cj, ck, cl}
		m = t.improper
	} else {
		key = canonTorsionQuad(ci, cj, ck, cl)
	}
	bt := &BondTorsion{Classes: key, Terms: append([]TorsionTerm(nil), terms...), Improper: improper}
	if old, ok := m[key]; ok {
		if reflect.DeepEqual(old.Terms, bt.Terms) {
			return nil
		}
		return newError(DuplicateKey, "torsion %v redefined with different parameters", key)
	}
	m[key] = bt
	return nil
}

func (t *BondTorsionTable) LookupNormal(ci, cj, ck, cl int) (*BondTorsion, bool) {
	v, ok := t.normal[canonTorsionQuad(ci, cj, ck, cl)]
	return v, ok
}

// LookupImproper looks up an improper-torsion entry with the central
// atom fixed at slot 3 (index 2); no canonicalization is applied.
func (t *BondTorsionTable) LookupImproper(ci, cj, ck, cl int) (*BondTorsion, bool) {
	v, ok := t.improper[[4]int{ci, cj, ck, cl}]
	return v, ok
}

// AllNormal returns every defined normal-torsion entry, sorted by
// Classes so repeat calls against an unchanged table are byte-for-byte
// reproducible.
func (t *BondTorsionTable) AllNormal() []*BondTorsion {
	out := make([]*BondTorsion, 0, len(t.normal))
	for _, v := range t.normal {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return lessInts(out[i].Classes[:], out[j].Classes[:]) })
	return out
}

// AllImproper returns every defined improper-torsion entry, sorted by
// Classes so repeat calls against an unchanged table are byte-for-byte
// reproducible.
func (t *BondTorsionTable) AllImproper() []*BondTorsion {
	out := make([]*BondTorsion, 0, len(t.improper))
	for _, v := range t.improper {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return lessInts(out[i].Classes[:], out[j].Classes[:]) })
	return out
}
