/*
 * persist.go, part of dumm.
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
	"encoding/json"
	"io"
)

// Snapshot is the JSON-serializable image of everything the Parameter
// API can define: every registry entry, every bond, and the scaling/
// combining-rule configuration, emitted in an order Import can replay
// to reproduce an equivalent, not-yet-realized subsystem. Clusters and
// body attachment are intentionally excluded: they describe placement
// the host multibody engine drives, and reattaching them blind from a
// snapshot would race whatever the host has already done with its own
// bodies.
type Snapshot struct {
	AtomClasses      []atomClassSnapshot      `json:"atomClasses"`
	ChargedAtomTypes []chargedAtomTypeSnapshot `json:"chargedAtomTypes"`
	Atoms            []atomSnapshot           `json:"atoms"`
	Bonds            [][2]int                 `json:"bonds"`
	Stretches        []stretchSnapshot        `json:"stretches"`
	Bends            []bendSnapshot           `json:"bends"`
	Torsions         []torsionSnapshot        `json:"torsions"`
	CombiningRule    CombiningRule            `json:"combiningRule"`
	Scales           ScaleFactors             `json:"scales"`
	Globals          GlobalScaleFactors       `json:"globals"`
	Gbsa             GbsaParameters           `json:"gbsa"`
}

type atomClassSnapshot struct {
	Index        int     `json:"index"`
	Name         string  `json:"name"`
	Element      int     `json:"element"`
	Valence      int     `json:"valence"`
	VdwRadius    float64 `json:"vdwRadius"`
	VdwWellDepth float64 `json:"vdwWellDepth"`
	HaveVdw      bool    `json:"haveVdw"`
}

type chargedAtomTypeSnapshot struct {
	Index         int     `json:"index"`
	Name          string  `json:"name"`
	AtomClass     int     `json:"atomClass"`
	PartialCharge float64 `json:"partialCharge"`
}

type atomSnapshot struct {
	Index           int `json:"index"`
	ChargedAtomType int `json:"chargedAtomType"`
}

type stretchSnapshot struct {
	Classes [2]int  `json:"classes"`
	K       float64 `json:"k"`
	D0      float64 `json:"d0"`
}

type bendSnapshot struct {
	Classes [3]int  `json:"classes"`
	K       float64 `json:"k"`
	Theta0  float64 `json:"theta0"`
}

type torsionSnapshot struct {
	Classes  [4]int        `json:"classes"`
	Terms    []TorsionTerm `json:"terms"`
	Improper bool          `json:"improper"`
}

// Snapshot captures the subsystem's current parameter and topology
// registries. It may be called at any stage; Import, however, expects
// a subsystem still in Empty/Topology (the same requirement every
// other Parameter API writer has).
func (s *Subsystem) Snapshot() Snapshot {
	snap := Snapshot{
		CombiningRule: s.CombiningRule,
		Scales:        s.Scales,
		Globals:       s.Globals,
		Gbsa:          s.Gbsa,
	}
	for _, idx := range s.AtomClasses.Indices() {
		c := s.AtomClasses.Get(idx)
		snap.AtomClasses = append(snap.AtomClasses, atomClassSnapshot{
			Index: c.Index, Name: c.Name, Element: c.Element, Valence: c.Valence,
			VdwRadius: c.VdwRadius, VdwWellDepth: c.VdwWellDepth, HaveVdw: c.complete(),
		})
	}
	for _, idx := range s.ChargedTypes.Indices() {
		ct := s.ChargedTypes.Get(idx)
		snap.ChargedAtomTypes = append(snap.ChargedAtomTypes, chargedAtomTypeSnapshot{
			Index: ct.Index, Name: ct.Name, AtomClass: ct.AtomClass, PartialCharge: ct.PartialCharge,
		})
	}
	for _, idx := range s.Atoms.Indices() {
		a := s.Atoms.Get(idx)
		snap.Atoms = append(snap.Atoms, atomSnapshot{Index: a.Index, ChargedAtomType: a.ChargedAtomType})
		for _, n := range a.Bond12 {
			if n > a.Index {
				snap.Bonds = append(snap.Bonds, [2]int{a.Index, n})
			}
		}
	}
	snap.Stretches = s.snapshotStretches()
	snap.Bends = s.snapshotBends()
	snap.Torsions = s.snapshotTorsions()
	return snap
}

func (s *Subsystem) snapshotStretches() []stretchSnapshot {
	var out []stretchSnapshot
	for _, bs := range s.Stretches.All() {
		out = append(out, stretchSnapshot{Classes: bs.Classes, K: bs.K, D0: bs.D0})
	}
	return out
}

func (s *Subsystem) snapshotBends() []bendSnapshot {
	var out []bendSnapshot
	for _, bb := range s.Bends.All() {
		out = append(out, bendSnapshot{Classes: bb.Classes, K: bb.K, Theta0: bb.Theta0})
	}
	return out
}

func (s *Subsystem) snapshotTorsions() []torsionSnapshot {
	var out []torsionSnapshot
	for _, bt := range s.Torsions.AllNormal() {
		out = append(out, torsionSnapshot{Classes: bt.Classes, Terms: bt.Terms, Improper: false})
	}
	for _, bt := range s.Torsions.AllImproper() {
		out = append(out, torsionSnapshot{Classes: bt.Classes, Terms: bt.Terms, Improper: true})
	}
	return out
}

// WriteJSON encodes the subsystem's current Snapshot to out.
func (s *Subsystem) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	return enc.Encode(s.Snapshot())
}

// ReadJSON decodes a Snapshot from in.
func ReadJSON(in io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(in)
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Import replays a Snapshot's definitions into s through the gated
// Parameter API, in the dependency order the registries require:
// atom classes before charged atom types, charged atom types before
// atoms, atoms before bonds, and every bonded-parameter table after
// the atom classes it references.
func (s *Subsystem) Import(snap Snapshot) error {
	for _, c := range snap.AtomClasses {
		if err := s.DefineAtomClass(c.Index, c.Name, c.Element, c.Valence, c.VdwRadius, c.VdwWellDepth, c.HaveVdw); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, ct := range snap.ChargedAtomTypes {
		if err := s.DefineChargedAtomType(ct.Index, ct.Name, ct.AtomClass, ct.PartialCharge); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, a := range snap.Atoms {
		if err := s.AddAtom(a.Index, a.ChargedAtomType); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, b := range snap.Bonds {
		if err := s.AddBond(b[0], b[1]); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, st := range snap.Stretches {
		if err := s.DefineBondStretch(st.Classes[0], st.Classes[1], st.K, st.D0); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, bd := range snap.Bends {
		if err := s.DefineBondBend(bd.Classes[0], bd.Classes[1], bd.Classes[2], bd.K, bd.Theta0); err != nil {
			return errDecorate(err, "Import")
		}
	}
	for _, t := range snap.Torsions {
		var err error
		if t.Improper {
			err = s.DefineImproperTorsion(t.Classes[0], t.Classes[1], t.Classes[2], t.Classes[3], t.Terms)
		} else {
			err = s.DefineBondTorsion(t.Classes[0], t.Classes[1], t.Classes[2], t.Classes[3], t.Terms)
		}
		if err != nil {
			return errDecorate(err, "Import")
		}
	}
	if err := s.SetCombiningRule(snap.CombiningRule); err != nil {
		return errDecorate(err, "Import")
	}
	if err := s.SetScaleFactors(snap.Scales); err != nil {
		return errDecorate(err, "Import")
	}
	if err := s.SetGlobalScaleFactors(snap.Globals); err != nil {
		return errDecorate(err, "Import")
	}
	if err := s.SetGbsaParameters(snap.Gbsa); err != nil {
		return errDecorate(err, "Import")
	}
	return nil
}
