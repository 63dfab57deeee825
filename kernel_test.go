/*
 * kernel_test.go, part of dumm.
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
	"bytes"
	"math"
	"testing"

	v3 "dumm/v3"
)

// placeOnOwnBody defines a one-atom cluster and attaches it to its own
// host body at world-space origin p, so the atom sits on a body distinct
// from every other atom placed the same way.
func placeOnOwnBody(t *testing.T, s *Subsystem, atomIdx, clusterIdx, bodyIdx int) {
	t.Helper()
	if err := s.DefineCluster(clusterIdx, "c"); err != nil {
		t.Fatal(err)
	}
	if err := s.PlaceAtomInCluster(clusterIdx, atomIdx, v3.Zero()); err != nil {
		t.Fatal(err)
	}
	if err := s.AttachClusterToBody(clusterIdx, bodyIdx, v3.Identity()); err != nil {
		t.Fatal(err)
	}
}

func identityAt(p v3.Vec3) v3.Transform {
	return v3.TransformFromRotationAndOffset(v3.IdentityRotation(), p)
}

func TestKernelDiatomicStretch(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "H", 1, 1, 0.12, 0.1, true))
	mustf(s.DefineChargedAtomType(0, "H", 0, 0))
	mustf(s.AddAtom(0, 0))
	mustf(s.AddAtom(1, 0))
	mustf(s.AddBond(0, 1))
	mustf(s.DefineBondStretch(0, 0, 1000, 0.1))

	placeOnOwnBody(t, s, 0, 0, 0)
	placeOnOwnBody(t, s, 1, 1, 1)

	mustf(s.RealizeTopology())

	transforms := map[int]v3.Transform{
		0: identityAt(v3.Zero()),
		1: identityAt(v3.New(0.15, 0, 0)),
	}
	energy, forces, err := s.RealizeDynamics(transforms)
	mustf(err)

	wantEnergy := 1000 * 0.05 * 0.05
	if math.Abs(energy-wantEnergy) > 1e-9 {
		t.Errorf("energy = %v, want %v", energy, wantEnergy)
	}
	f0 := forces[0].Force
	f1 := forces[1].Force
	if math.Abs(f0.X()-100) > 1e-6 || math.Abs(f0.Y()) > 1e-9 || math.Abs(f0.Z()) > 1e-9 {
		t.Errorf("force on body 0 = %v, want (100,0,0)", f0)
	}
	if math.Abs(f1.X()+100) > 1e-6 || math.Abs(f1.Y()) > 1e-9 || math.Abs(f1.Z()) > 1e-9 {
		t.Errorf("force on body 1 = %v, want (-100,0,0)", f1)
	}
	if forces[0].Torque.Norm() > 1e-9 || forces[1].Torque.Norm() > 1e-9 {
		t.Errorf("expected zero torque about each body origin")
	}
}

func TestKernelCollinearBendIsForceBalanced(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "X", 6, 2, 0.17, 0.3, true))
	mustf(s.DefineChargedAtomType(0, "X", 0, 0))
	mustf(s.AddAtom(0, 0)) // r
	mustf(s.AddAtom(1, 0)) // vertex
	mustf(s.AddAtom(2, 0)) // s
	mustf(s.AddBond(0, 1))
	mustf(s.AddBond(1, 2))
	mustf(s.DefineBondStretch(0, 0, 1000, 1.0)) // d0 equals the bond length below: no stretch energy
	mustf(s.DefineBondBend(0, 0, 0, 50, 2.0))

	placeOnOwnBody(t, s, 0, 0, 0)
	placeOnOwnBody(t, s, 1, 1, 1)
	placeOnOwnBody(t, s, 2, 2, 2)

	mustf(s.RealizeTopology())

	transforms := map[int]v3.Transform{
		0: identityAt(v3.New(-1, 0, 0)),
		1: identityAt(v3.Zero()),
		2: identityAt(v3.New(1, 0, 0)),
	}
	energy, forces, err := s.RealizeDynamics(transforms)
	mustf(err)

	theta := math.Pi
	bend := theta - 2.0
	wantEnergy := 50 * bend * bend
	if math.Abs(energy-wantEnergy) > 1e-9 {
		t.Errorf("energy = %v, want %v", energy, wantEnergy)
	}

	// The collinear geometry drives the bend term's cross-product normal
	// to zero, forcing AnyPerpendicular's fallback; whatever direction it
	// picks, cf=-(rf+sf) guarantees the net force across the three bodies
	// is exactly zero.
	net := forces[0].Force.Add(forces[1].Force).Add(forces[2].Force)
	if net.Norm() > 1e-9 {
		t.Errorf("net force across the three bodies = %v, want zero", net)
	}
}

func TestKernelVdwMinimumHasZeroForce(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "Ne", 10, 0, 0.15, 0.3, true))
	mustf(s.DefineChargedAtomType(0, "Ne", 0, 0))
	mustf(s.AddAtom(0, 0))
	mustf(s.AddAtom(1, 0))

	placeOnOwnBody(t, s, 0, 0, 0)
	placeOnOwnBody(t, s, 1, 1, 1)

	mustf(s.RealizeTopology())

	dmin := 2 * 0.15
	transforms := map[int]v3.Transform{
		0: identityAt(v3.Zero()),
		1: identityAt(v3.New(dmin, 0, 0)),
	}
	energy, forces, err := s.RealizeDynamics(transforms)
	mustf(err)

	if math.Abs(energy-(-0.3)) > 1e-9 {
		t.Errorf("energy at the LJ minimum = %v, want -0.3", energy)
	}
	if forces[0].Force.Norm() > 1e-9 || forces[1].Force.Norm() > 1e-9 {
		t.Errorf("force at the LJ minimum should vanish, got %v / %v", forces[0].Force, forces[1].Force)
	}
}

func TestKernelImproperTorsionSixFoldMatch(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "C", 6, 3, 0.17, 0.3, true))
	mustf(s.DefineAtomClass(1, "H", 1, 1, 0.12, 0.1, true))
	mustf(s.DefineChargedAtomType(0, "C", 0, 0))
	mustf(s.DefineChargedAtomType(1, "H", 1, 0))
	mustf(s.AddAtom(0, 0)) // central carbon
	mustf(s.AddAtom(1, 1))
	mustf(s.AddAtom(2, 1))
	mustf(s.AddAtom(3, 1))
	mustf(s.AddBond(0, 1))
	mustf(s.AddBond(0, 2))
	mustf(s.AddBond(0, 3))
	mustf(s.DefineBondStretch(0, 1, 1000, 0.11))
	mustf(s.DefineBondBend(1, 0, 1, 50, 1.9))
	mustf(s.DefineImproperTorsion(1, 1, 0, 1, []TorsionTerm{{Periodicity: 2, Amplitude: 5, Phase: 0}}))

	placeOnOwnBody(t, s, 0, 0, 0)
	placeOnOwnBody(t, s, 1, 1, 1)
	placeOnOwnBody(t, s, 2, 2, 2)
	placeOnOwnBody(t, s, 3, 3, 3)

	mustf(s.RealizeTopology())

	central := s.Atoms.Get(0)
	if len(central.ImproperMatches) != 6 {
		t.Fatalf("got %d improper matches, want 6 (all permutations of three identical-class neighbors)", len(central.ImproperMatches))
	}
}

func TestScaleBondedAtomsAppliesShortestPathOnly(t *testing.T) {
	s := NewSubsystem()
	if err := s.SetScaleFactors(ScaleFactors{
		Vdw12: 0, Vdw13: 0, Vdw14: 0.5, Vdw15: 0.8,
		Coulomb12: 0, Coulomb13: 0, Coulomb14: 0.5, Coulomb15: 0.8,
	}); err != nil {
		t.Fatal(err)
	}
	focal := &Atom{
		Index:        0,
		XBond12:      []int{1},
		XShortPath13: [][2]int{{1, 2}},
		XShortPath14: [][3]int{{1, 2, 3}},
		XShortPath15: [][4]int{{1, 2, 3, 4}},
	}
	s.scaleBondedAtoms(focal)

	cases := []struct {
		partner  int
		wantVdw  float64
		wantCoul float64
	}{
		{1, 0, 0},
		{2, 0, 0},
		{3, 0.5, 0.5},
		{4, 0.8, 0.8},
		{5, 1, 1}, // untouched partner defaults to full interaction
	}
	for _, c := range cases {
		vdw, coul := scaleFor(focal, c.partner)
		if vdw != c.wantVdw || coul != c.wantCoul {
			t.Errorf("partner %d: got (%v,%v), want (%v,%v)", c.partner, vdw, coul, c.wantVdw, c.wantCoul)
		}
	}

	s.unscaleBondedAtoms(focal)
	vdw, coul := scaleFor(focal, 3)
	if vdw != 1 || coul != 1 {
		t.Errorf("after unscale, partner 3 should default to (1,1), got (%v,%v)", vdw, coul)
	}
}

func TestSnapshotImportRoundTrip(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "H", 1, 1, 0.12, 0.1, true))
	mustf(s.DefineChargedAtomType(0, "H", 0, -0.4))
	mustf(s.AddAtom(0, 0))
	mustf(s.AddAtom(1, 0))
	mustf(s.AddBond(0, 1))
	mustf(s.DefineBondStretch(0, 0, 1000, 0.1))
	mustf(s.DefineBondBend(0, 0, 0, 50, 2.0))
	mustf(s.DefineBondTorsion(0, 0, 0, 0, []TorsionTerm{{Periodicity: 2, Amplitude: 5, Phase: 0}}))
	mustf(s.SetCombiningRule(JorgensenOPLS))

	snap := s.Snapshot()

	fresh := NewSubsystem()
	if err := fresh.Import(snap); err != nil {
		t.Fatal(err)
	}

	if fresh.CombiningRule != JorgensenOPLS {
		t.Errorf("combining rule did not round-trip: got %v", fresh.CombiningRule)
	}
	if fresh.AtomClasses.Get(0) == nil {
		t.Fatal("atom class 0 missing after import")
	}
	if fresh.Atoms.Get(1) == nil {
		t.Fatal("atom 1 missing after import")
	}
	if bs, ok := fresh.Stretches.Lookup(0, 0); !ok || bs.K != 1000 || bs.D0 != 0.1 {
		t.Errorf("stretch parameter did not round-trip: %+v, ok=%v", bs, ok)
	}
	if bt, ok := fresh.Torsions.LookupNormal(0, 0, 0, 0); !ok || len(bt.Terms) != 1 {
		t.Errorf("torsion parameter did not round-trip: %+v, ok=%v", bt, ok)
	}
	a := fresh.Atoms.Get(0)
	if len(a.Bond12) != 1 || a.Bond12[0] != 1 {
		t.Errorf("bond did not round-trip for atom 0: %+v", a.Bond12)
	}
}

// TestSnapshotEmissionIsByteIdentical exercises the round-trip
// invariant literally: two self-emissions of an unmodified subsystem
// must be byte-for-byte identical, not merely value-equal. Several
// stretch/bend/torsion entries are defined across distinct class
// triples so that, without a sort step, Go's per-range randomized map
// iteration order would make this flaky.
func TestSnapshotEmissionIsByteIdentical(t *testing.T) {
	s := NewSubsystem()
	mustf := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	mustf(s.DefineAtomClass(0, "H", 1, 1, 0.12, 0.1, true))
	mustf(s.DefineAtomClass(1, "C", 6, 4, 0.17, 0.3, true))
	mustf(s.DefineAtomClass(2, "N", 7, 3, 0.16, 0.2, true))
	mustf(s.DefineChargedAtomType(0, "H", 0, 0.1))
	mustf(s.DefineChargedAtomType(1, "C", 1, -0.2))
	mustf(s.AddAtom(0, 0))
	mustf(s.AddAtom(1, 1))
	mustf(s.AddBond(0, 1))

	mustf(s.DefineBondStretch(0, 1, 1000, 0.1))
	mustf(s.DefineBondStretch(1, 2, 800, 0.14))
	mustf(s.DefineBondStretch(0, 2, 500, 0.12))

	mustf(s.DefineBondBend(0, 1, 2, 50, 2.0))
	mustf(s.DefineBondBend(1, 2, 0, 60, 1.9))
	mustf(s.DefineBondBend(0, 0, 1, 40, 2.1))

	mustf(s.DefineBondTorsion(0, 1, 2, 0, []TorsionTerm{{Periodicity: 2, Amplitude: 5, Phase: 0}}))
	mustf(s.DefineBondTorsion(1, 0, 2, 1, []TorsionTerm{{Periodicity: 3, Amplitude: 2, Phase: 0}}))
	mustf(s.DefineImproperTorsion(1, 0, 1, 2, []TorsionTerm{{Periodicity: 2, Amplitude: 4, Phase: 0}}))

	var first, second bytes.Buffer
	mustf(s.WriteJSON(&first))
	mustf(s.WriteJSON(&second))

	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("two self-emissions of an unmodified subsystem differ:\nfirst:  %s\nsecond: %s", first.Bytes(), second.Bytes())
	}
}
