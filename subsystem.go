/*
 * subsystem.go, part of dumm.
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
	"dumm/gbsa"
	v3 "dumm/v3"
)

// Subsystem is the top-level force-field subsystem: every parameter
// registry, every topology store, and the realized caches derived from
// them. One Subsystem corresponds to one DuMM-style force field
// instance; nothing here is package-level shared state.
type Subsystem struct {
	Elements     *ElementTable
	AtomClasses  *AtomClassRegistry
	ChargedTypes *ChargedAtomTypeRegistry
	Atoms        *AtomStore
	Bonds        *BondStore
	Clusters     *ClusterTree
	Bodies       *BodyStore

	Stretches *BondStretchTable
	Bends     *BondBendTable
	Torsions  *BondTorsionTable

	CombiningRule CombiningRule
	Scales        ScaleFactors
	Globals       GlobalScaleFactors
	Gbsa          GbsaParameters
	Evaluator     gbsa.Evaluator

	mixedVdw *MixedVdwTable

	stage        Stage
	forceValid   bool
	cachedEnergy float64
	cachedForces map[int]v3.Spatial
}

// GbsaParameters holds the implicit-solvent knobs exposed by the GB/ACE
// bridge: the solute/solvent dielectric pair and whether the ACE
// surface-area correction is folded into the GB energy. The reference
// implementation hardcodes these; this rewrite exposes them while
// keeping the same defaults (see the Open Question decisions in
// DESIGN.md).
type GbsaParameters struct {
	DielectricSolute  float64
	DielectricSolvent float64
	IncludeAce        bool
}

func DefaultGbsaParameters() GbsaParameters {
	return GbsaParameters{DielectricSolute: 1.0, DielectricSolvent: 80.0, IncludeAce: false}
}

// NewSubsystem returns a Subsystem in the Empty stage, with every
// registry initialized and defaults matching the reference
// implementation's constructor: Waldman-Hagler combining, 1-2/1-3
// pairs fully excluded, 1-4/1-5 pairs fully included, every global
// scale factor at 1 except GBSA, which is switched off (0).
func NewSubsystem() *Subsystem {
	classes := NewAtomClassRegistry()
	types := NewChargedAtomTypeRegistry(classes)
	atoms := NewAtomStore(types)
	bodies := NewBodyStore()

	return &Subsystem{
		Elements:      NewElementTable(),
		AtomClasses:   classes,
		ChargedTypes:  types,
		Atoms:         atoms,
		Bonds:         NewBondStore(atoms),
		Clusters:      NewClusterTree(atoms, bodies),
		Bodies:        bodies,
		Stretches:     NewBondStretchTable(),
		Bends:         NewBondBendTable(),
		Torsions:      NewBondTorsionTable(),
		CombiningRule: WaldmanHagler,
		Scales:        DefaultScaleFactors(),
		Globals:       DefaultGlobalScaleFactors(),
		Gbsa:          DefaultGbsaParameters(),
		Evaluator:     gbsa.NewStillEvaluator(),
		stage:         StageEmpty,
	}
}

// ClassOf resolves an atom's atom-class index through its charged atom
// type. It is the public form of classOf, usable by callers outside
// the package that only hold a *Subsystem.
func (s *Subsystem) ClassOf(atomIdx int) (int, error) {
	return s.classOf(atomIdx)
}

// MixedVdw returns the realized (dmin, emin) pair for a class pair, or
// false if Realize has not yet been called or the pair is incomplete.
func (s *Subsystem) MixedVdw(ci, cj int) (MixedVdwEntry, bool) {
	if s.mixedVdw == nil {
		return MixedVdwEntry{}, false
	}
	return s.mixedVdw.Get(ci, cj)
}

// MassOf returns the mass in daltons of the element behind an atom's
// charged atom type / atom class chain, or 0 if any link is missing.
func (s *Subsystem) MassOf(atomIdx int) float64 {
	a := s.Atoms.Get(atomIdx)
	if a == nil {
		return 0
	}
	ct := s.ChargedTypes.Get(a.ChargedAtomType)
	if ct == nil {
		return 0
	}
	ac := s.AtomClasses.Get(ct.AtomClass)
	if ac == nil {
		return 0
	}
	el, ok := s.Elements.Get(ac.Element)
	if !ok {
		return 0
	}
	return el.Mass
}

// ChargeOf returns the partial charge in elementary charges of an
// atom's charged atom type, or 0 if the atom or its type is unknown.
func (s *Subsystem) ChargeOf(atomIdx int) float64 {
	a := s.Atoms.Get(atomIdx)
	if a == nil {
		return 0
	}
	ct := s.ChargedTypes.Get(a.ChargedAtomType)
	if ct == nil {
		return 0
	}
	return ct.PartialCharge
}
