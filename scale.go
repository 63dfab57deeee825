/*
 * scale.go, part of dumm.
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

// ScaleFactors holds the per-distance vdW/Coulomb scale factors for
// 1-2 through 1-5 neighbors. The global vdW/Coulomb multipliers live in
// GlobalScaleFactors. Defaults mirror
// the reference implementation's constructor: 1-2 and 1-3 pairs are
// fully excluded (scale 0), 1-4 and 1-5 pairs are fully included
// (scale 1).
type ScaleFactors struct {
	Vdw12, Vdw13, Vdw14, Vdw15         float64
	Coulomb12, Coulomb13, Coulomb14, Coulomb15 float64
}

func DefaultScaleFactors() ScaleFactors {
	return ScaleFactors{
		Vdw12: 0, Vdw13: 0, Vdw14: 1, Vdw15: 1,
		Coulomb12: 0, Coulomb13: 0, Coulomb14: 1, Coulomb15: 1,
	}
}

// GlobalScaleFactors holds the per-energy-component global multipliers,
// applied on top of the per-distance scale factors and defaulting to 1,
// except Gbsa, which defaults to 0 so the GB/ACE term is switched off.
type GlobalScaleFactors struct {
	Bond, Angle, Torsion, Improper, Vdw, Coulomb, Gbsa float64
}

func DefaultGlobalScaleFactors() GlobalScaleFactors {
	return GlobalScaleFactors{Bond: 1, Angle: 1, Torsion: 1, Improper: 1, Vdw: 1, Coulomb: 1, Gbsa: 0}
}

// scaleBondedAtoms sets focal's per-partner vdwScale/coulombScale
// entries from its cross-body shortest-path lists, per package doc
// §4.4: the shortest-path (not all-paths) lists are authoritative for
// scaling, so that a pair reachable by several topological routes is
// not double-scaled.
func (s *Subsystem) scaleBondedAtoms(focal *Atom) {
	focal.vdwScale = make(map[int]float64)
	focal.coulombScale = make(map[int]float64)
	for _, n := range focal.XBond12 {
		focal.vdwScale[n] = s.Scales.Vdw12
		focal.coulombScale[n] = s.Scales.Coulomb12
	}
	for _, t := range focal.XShortPath13 {
		n := t[1]
		focal.vdwScale[n] = s.Scales.Vdw13
		focal.coulombScale[n] = s.Scales.Coulomb13
	}
	for _, t := range focal.XShortPath14 {
		if s.Scales.Vdw14 != 1 || s.Scales.Coulomb14 != 1 {
			n := t[2]
			focal.vdwScale[n] = s.Scales.Vdw14
			focal.coulombScale[n] = s.Scales.Coulomb14
		}
	}
	for _, t := range focal.XShortPath15 {
		if s.Scales.Vdw15 != 1 || s.Scales.Coulomb15 != 1 {
			n := t[3]
			focal.vdwScale[n] = s.Scales.Vdw15
			focal.coulombScale[n] = s.Scales.Coulomb15
		}
	}
}

// unscaleBondedAtoms resets focal's scaling scratch to the identity
// between focal atoms, per the concurrency/resource-model requirement
// that every set be matched by a reset.
func (s *Subsystem) unscaleBondedAtoms(focal *Atom) {
	focal.vdwScale = nil
	focal.coulombScale = nil
}

// scaleFor returns the vdW/Coulomb scale factors focal applies to
// partner, defaulting to 1 (full interaction) for any pair not present
// in the scratch maps.
func scaleFor(focal *Atom, partner int) (vdw, coulomb float64) {
	vdw, coulomb = 1, 1
	if focal.vdwScale != nil {
		if v, ok := focal.vdwScale[partner]; ok {
			vdw = v
		}
	}
	if focal.coulombScale != nil {
		if v, ok := focal.coulombScale[partner]; ok {
			coulomb = v
		}
	}
	return
}
