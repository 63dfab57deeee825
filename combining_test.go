/*
 * combining_test.go, part of dumm.
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
	"testing"
)

func TestVdwMixSymmetric(t *testing.T) {
	rules := []CombiningRule{LorentzBerthelot, JorgensenOPLS, HalgrenHHG, WaldmanHagler, Kong}
	ri, ei := 0.18, 0.40
	rj, ej := 0.15, 0.65
	for _, rule := range rules {
		r1, e1 := vdwMix(rule, ri, ei, rj, ej)
		r2, e2 := vdwMix(rule, rj, ej, ri, ei)
		if math.Abs(r1-r2) > 1e-12 || math.Abs(e1-e2) > 1e-12 {
			t.Errorf("rule %d: vdwMix not symmetric: (%v,%v) vs (%v,%v)", rule, r1, e1, r2, e2)
		}
	}
}

func TestVdwMixIdentity(t *testing.T) {
	// Mixing a class with itself must return its own parameters,
	// regardless of rule.
	rules := []CombiningRule{LorentzBerthelot, JorgensenOPLS, HalgrenHHG, WaldmanHagler, Kong}
	r, e := 0.17, 0.5
	for _, rule := range rules {
		rm, em := vdwMix(rule, r, e, r, e)
		if math.Abs(rm-r) > 1e-9 || math.Abs(em-e) > 1e-9 {
			t.Errorf("rule %d: self-mix = (%v,%v), want (%v,%v)", rule, rm, em, r, e)
		}
	}
}

func TestVdwCombineWaldmanHaglerKnown(t *testing.T) {
	// Two different classes: check the well depth lies between the
	// two inputs (a basic sanity bound every reasonable combining
	// rule should satisfy) and that the radius does too.
	r, e := vdwCombineWaldmanHagler(0.15, 0.2, 0.20, 0.8)
	if r < 0.15 || r > 0.20 {
		t.Errorf("WH radius %v out of bounds [0.15,0.20]", r)
	}
	if e < 0.2 || e > 0.8 {
		t.Errorf("WH well depth %v out of bounds [0.2,0.8]", e)
	}
}
