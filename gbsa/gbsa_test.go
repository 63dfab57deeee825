/*
 * gbsa_test.go, part of dumm.
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

package gbsa

import (
	"math"
	"testing"
)

func TestRadiiUsesPolarHydrogenOverride(t *testing.T) {
	e := NewStillEvaluator()
	// atom 0: H bonded to atom 1, a nitrogen.
	z := []int{1, 7}
	numPartners := []int{1, 1}
	firstPartner := []int{1, 0}
	radii := e.Radii(z, numPartners, firstPartner)
	if radii[0] != 1.30 {
		t.Errorf("H bonded to N should get the polar-hydrogen radius 1.30, got %v", radii[0])
	}
	if radii[1] != defaultRadii[7] {
		t.Errorf("N radius = %v, want default %v", radii[1], defaultRadii[7])
	}
}

func TestRadiiUnknownElementFallsBack(t *testing.T) {
	e := NewStillEvaluator()
	radii := e.Radii([]int{118}, []int{0}, []int{-1})
	if radii[0] != 1.5 {
		t.Errorf("unknown element radius = %v, want 1.5 fallback", radii[0])
	}
}

func TestObcScaleFactorsFallsBackForUnknownElement(t *testing.T) {
	e := NewStillEvaluator()
	scales := e.ObcScaleFactors([]int{999})
	if scales[0] != 0.8 {
		t.Errorf("unknown element OBC scale = %v, want 0.8 fallback", scales[0])
	}
}

func TestForcesSingleAtomHasNoForceAndNegativeSelfEnergy(t *testing.T) {
	e := NewStillEvaluator()
	e.SetParameters([]float64{1.5}, []float64{0.8}, false, 1.0, 80.0)
	forces, energy := e.Forces([][3]float64{{0, 0, 0}}, []float64{1.0}, true)

	if forces[0][0] != 0 || forces[0][1] != 0 || forces[0][2] != 0 {
		t.Errorf("a lone charge has no pair to exert force against, got %v", forces[0])
	}
	if energy >= 0 {
		t.Errorf("self-solvation energy should be negative (favorable), got %v", energy)
	}
}

func TestForcesAreNewtonianBetweenTwoAtoms(t *testing.T) {
	e := NewStillEvaluator()
	e.SetParameters([]float64{1.5, 1.5}, []float64{0.8, 0.8}, false, 1.0, 80.0)
	coords := [][3]float64{{0, 0, 0}, {5, 0, 0}}
	forces, _ := e.Forces(coords, []float64{1.0, 1.0}, true)

	for k := 0; k < 3; k++ {
		if math.Abs(forces[0][k]+forces[1][k]) > 1e-9 {
			t.Errorf("component %d: forces[0]=%v forces[1]=%v are not equal and opposite", k, forces[0], forces[1])
		}
	}
}

func TestForcesAceTermIncreasesEnergy(t *testing.T) {
	e := NewStillEvaluator()
	e.SetParameters([]float64{1.5}, []float64{0.8}, false, 1.0, 80.0)
	_, withoutAce := e.Forces([][3]float64{{0, 0, 0}}, []float64{0}, true)

	e.SetParameters([]float64{1.5}, []float64{0.8}, true, 1.0, 80.0)
	_, withAce := e.Forces([][3]float64{{0, 0, 0}}, []float64{0}, true)

	if withAce <= withoutAce {
		t.Errorf("ACE surface term should add a positive energy penalty: with=%v without=%v", withAce, withoutAce)
	}
}
