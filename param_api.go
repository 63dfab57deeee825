/*
 * param_api.go, part of dumm.
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

import v3 "dumm/v3"

// This file is the Parameter API surface package doc §6 describes: one
// gated wrapper per mutating operation on the subsystem's registries,
// each refusing to run once the subsystem has left the Topology stage
// (see stage.go's requireBelowTopology). Readers go straight through
// to the registries; only writers need gating.

func (s *Subsystem) DefineAtomClass(idx int, name string, element, valence int, vdwRadius, vdwWellDepth float64, haveVdw bool) error {
	if err := s.requireBelowTopology("DefineAtomClass"); err != nil {
		return err
	}
	return s.AtomClasses.Define(idx, name, element, valence, vdwRadius, vdwWellDepth, haveVdw)
}

func (s *Subsystem) CompleteAtomClassVdw(idx int, vdwRadius, vdwWellDepth float64) error {
	if err := s.requireBelowTopology("CompleteAtomClassVdw"); err != nil {
		return err
	}
	return s.AtomClasses.CompleteVdw(idx, vdwRadius, vdwWellDepth)
}

func (s *Subsystem) DefineChargedAtomType(idx int, name string, atomClass int, charge float64) error {
	if err := s.requireBelowTopology("DefineChargedAtomType"); err != nil {
		return err
	}
	return s.ChargedTypes.Define(idx, name, atomClass, charge)
}

func (s *Subsystem) AddAtom(idx, chargedAtomType int) error {
	if err := s.requireBelowTopology("AddAtom"); err != nil {
		return err
	}
	return s.Atoms.Add(idx, chargedAtomType)
}

func (s *Subsystem) AddBond(i, j int) error {
	if err := s.requireBelowTopology("AddBond"); err != nil {
		return err
	}
	return s.Bonds.Add(i, j)
}

func (s *Subsystem) DefineCluster(idx int, name string) error {
	if err := s.requireBelowTopology("DefineCluster"); err != nil {
		return err
	}
	return s.Clusters.Define(idx, name)
}

func (s *Subsystem) PlaceAtomInCluster(clusterIdx, atomIdx int, station v3.Vec3) error {
	if err := s.requireBelowTopology("PlaceAtomInCluster"); err != nil {
		return err
	}
	return s.Clusters.PlaceAtom(clusterIdx, atomIdx, station)
}

func (s *Subsystem) PlaceClusterInCluster(parentIdx, childIdx int, X v3.Transform) error {
	if err := s.requireBelowTopology("PlaceClusterInCluster"); err != nil {
		return err
	}
	return s.Clusters.PlaceCluster(parentIdx, childIdx, X)
}

func (s *Subsystem) AttachClusterToBody(clusterIdx, bodyIdx int, X_BC v3.Transform) error {
	if err := s.requireBelowTopology("AttachClusterToBody"); err != nil {
		return err
	}
	return s.Clusters.AttachToBody(clusterIdx, bodyIdx, X_BC)
}

func (s *Subsystem) DefineBondStretch(ci, cj int, k, d0 float64) error {
	if err := s.requireBelowTopology("DefineBondStretch"); err != nil {
		return err
	}
	return s.Stretches.Define(ci, cj, k, d0)
}

func (s *Subsystem) DefineBondBend(ci, cj, ck int, k, theta0 float64) error {
	if err := s.requireBelowTopology("DefineBondBend"); err != nil {
		return err
	}
	return s.Bends.Define(ci, cj, ck, k, theta0)
}

func (s *Subsystem) DefineBondTorsion(ci, cj, ck, cl int, terms []TorsionTerm) error {
	if err := s.requireBelowTopology("DefineBondTorsion"); err != nil {
		return err
	}
	return s.Torsions.Define(ci, cj, ck, cl, terms, false)
}

func (s *Subsystem) DefineImproperTorsion(ci, cj, ck, cl int, terms []TorsionTerm) error {
	if err := s.requireBelowTopology("DefineImproperTorsion"); err != nil {
		return err
	}
	return s.Torsions.Define(ci, cj, ck, cl, terms, true)
}

func (s *Subsystem) SetCombiningRule(rule CombiningRule) error {
	if err := s.requireBelowTopology("SetCombiningRule"); err != nil {
		return err
	}
	s.CombiningRule = rule
	return nil
}

func (s *Subsystem) SetScaleFactors(sf ScaleFactors) error {
	if err := s.requireBelowTopology("SetScaleFactors"); err != nil {
		return err
	}
	s.Scales = sf
	return nil
}

func (s *Subsystem) SetGlobalScaleFactors(gf GlobalScaleFactors) error {
	if err := s.requireBelowTopology("SetGlobalScaleFactors"); err != nil {
		return err
	}
	s.Globals = gf
	return nil
}

func (s *Subsystem) SetGbsaParameters(g GbsaParameters) error {
	if err := s.requireBelowTopology("SetGbsaParameters"); err != nil {
		return err
	}
	s.Gbsa = g
	return nil
}
