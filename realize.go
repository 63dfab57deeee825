/*
 * realize.go, part of dumm.
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

// MixedVdwEntry is the (dmin, emin) pair used directly by the LJ 12-6
// term for a class pair, derived once at realization by applying the
// subsystem's combining rule.
type MixedVdwEntry struct {
	Dmin float64 // nm, = 2*rmix
	Emin float64 // kJ/mol
}

// MixedVdwTable holds one entry per complete class pair (i<=j). The
// source's triangular, offset-by-(j-i) array layout is an optimization
// of exactly this map; a keyed lookup is observably identical and
// avoids committing to a specific class-index numbering scheme.
type MixedVdwTable struct {
	m map[[2]int]MixedVdwEntry
}

func (t *MixedVdwTable) Get(ci, cj int) (MixedVdwEntry, bool) {
	a, b := canonPair(ci, cj)
	v, ok := t.m[[2]int{a, b}]
	return v, ok
}

func buildMixedVdwTable(classes *AtomClassRegistry, rule CombiningRule) *MixedVdwTable {
	t := &MixedVdwTable{m: make(map[[2]int]MixedVdwEntry)}
	idx := classes.Indices()
	for ii, i := range idx {
		ci := classes.Get(i)
		if !ci.complete() {
			continue
		}
		for _, j := range idx[ii:] {
			cj := classes.Get(j)
			if !cj.complete() {
				continue
			}
			r, e := vdwMix(rule, ci.VdwRadius, ci.VdwWellDepth, cj.VdwRadius, cj.VdwWellDepth)
			t.m[[2]int{i, j}] = MixedVdwEntry{Dmin: 2 * r, Emin: e}
		}
	}
	return t
}

// classOf resolves an atom's atom-class index through its charged atom
// type.
func (s *Subsystem) classOf(atomIdx int) (int, error) {
	a := s.Atoms.Get(atomIdx)
	if a == nil {
		return 0, newError(InvalidKey, "atom %d does not exist", atomIdx)
	}
	ct := s.ChargedTypes.Get(a.ChargedAtomType)
	if ct == nil {
		return 0, newError(InvalidKey, "atom %d: charged atom type %d does not exist", atomIdx, a.ChargedAtomType)
	}
	return ct.AtomClass, nil
}

// Realize performs the full topology build of package doc §4.3. It does
// not check the stage itself; RealizeTopology (stage.go) calls it while
// the subsystem is in the Empty or Topology stage.
func (s *Subsystem) Realize() error {
	// Step 1: every atom must resolve a valid charged atom type.
	for _, idx := range s.Atoms.Indices() {
		if _, err := s.classOf(idx); err != nil {
			return errDecorate(err, "Realize")
		}
	}

	// Step 2/3: rebuild the mixed vdW table from scratch.
	s.mixedVdw = buildMixedVdwTable(s.AtomClasses, s.CombiningRule)

	// Step 5/6: flatten body membership and assign host-body index,
	// failing fast on any unattached atom.
	s.Bodies.Rebuild(s.Atoms)
	for _, idx := range s.Atoms.Indices() {
		a := s.Atoms.Get(idx)
		if a.Body == noBody {
			return newError(TopologyViolation, "atom %d has no host body", idx)
		}
	}

	g := s.Bonds.Graph()

	// Step 7/8: neighborhoods and bonds3Atoms.
	for _, idx := range s.Atoms.Indices() {
		buildNeighborhoods(g, s.Atoms.Get(idx))
	}
	// Step 9: cross-body variants.
	for _, idx := range s.Atoms.Indices() {
		buildCrossBody(s.Atoms, s.Atoms.Get(idx))
	}

	// Step 10: per-atom bonded parameter lookups for cross-body tuples.
	for _, idx := range s.Atoms.Indices() {
		if err := s.lookupBondedParameters(s.Atoms.Get(idx)); err != nil {
			return errDecorate(err, "Realize")
		}
	}

	// Step 11: improper-torsion multi-match enumeration.
	for _, idx := range s.Atoms.Indices() {
		if err := s.enumerateImproperMatches(s.Atoms.Get(idx)); err != nil {
			return errDecorate(err, "Realize")
		}
	}

	return nil
}

func (s *Subsystem) lookupBondedParameters(a *Atom) error {
	ci, err := s.classOf(a.Index)
	if err != nil {
		return err
	}

	a.Stretch = nil
	for _, n := range a.XBond12 {
		cj, err := s.classOf(n)
		if err != nil {
			return err
		}
		bs, ok := s.Stretches.Lookup(ci, cj)
		if !ok {
			return newError(MissingParameter, "no stretch parameter for classes %d-%d (atoms %d-%d)", ci, cj, a.Index, n)
		}
		a.Stretch = append(a.Stretch, bs)
	}

	a.Bend = nil
	for _, t := range a.XBond13 {
		cm, err := s.classOf(t[0])
		if err != nil {
			return err
		}
		cf, err := s.classOf(t[1])
		if err != nil {
			return err
		}
		bb, ok := s.Bends.Lookup(ci, cm, cf)
		if !ok {
			return newError(MissingParameter, "no bend parameter for classes %d-%d-%d (atoms %d-%d-%d)", ci, cm, cf, a.Index, t[0], t[1])
		}
		a.Bend = append(a.Bend, bb)
	}

	a.Torsion = nil
	for _, t := range a.XBond14 {
		c1, err := s.classOf(t[0])
		if err != nil {
			return err
		}
		c2, err := s.classOf(t[1])
		if err != nil {
			return err
		}
		c3, err := s.classOf(t[2])
		if err != nil {
			return err
		}
		bt, ok := s.Torsions.LookupNormal(ci, c1, c2, c3)
		if !ok {
			return newError(MissingParameter, "no torsion parameter for classes %d-%d-%d-%d (atoms %d-%d-%d-%d)", ci, c1, c2, c3, a.Index, t[0], t[1], t[2])
		}
		a.Torsion = append(a.Torsion, bt)
	}
	return nil
}

// enumerateImproperMatches implements package doc §4.3 step 11: for an
// atom with exactly three neighbors, try the six permutations of those
// neighbors with the central atom fixed in slot 3 of the class quad,
// and keep every permutation that matches a defined improper-torsion
// entry. All matches are kept; none are divided by the match count --
// the AMBER-style multi-match convention is that each match contributes
// a full-strength term and the sum over matches is the intended total.
func (s *Subsystem) enumerateImproperMatches(a *Atom) error {
	a.ImproperMatches = nil
	if !a.HasXBonds3 {
		return nil
	}
	n := a.XBonds3Atoms
	cc, err := s.classOf(a.Index)
	if err != nil {
		return err
	}
	perms := permutations3(n)
	for _, p := range perms {
		c0, err := s.classOf(p[0])
		if err != nil {
			return err
		}
		c1, err := s.classOf(p[1])
		if err != nil {
			return err
		}
		c2, err := s.classOf(p[2])
		if err != nil {
			return err
		}
		if bt, ok := s.Torsions.LookupImproper(c0, c1, cc, c2); ok {
			a.ImproperMatches = append(a.ImproperMatches, improperMatch{neighbors: p, param: bt})
		}
	}
	return nil
}

// permutations3 returns all six permutations of a 3-element tuple.
func permutations3(n [3]int) [][3]int {
	a, b, c := n[0], n[1], n[2]
	return [][3]int{
		{a, b, c}, {a, c, b},
		{b, a, c}, {b, c, a},
		{c, a, b}, {c, b, a},
	}
}
