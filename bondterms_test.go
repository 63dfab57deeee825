/*
 * bondterms_test.go, part of dumm.
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

import "testing"

func TestBondStretchLookupIsOrderIndependent(t *testing.T) {
	table := NewBondStretchTable()
	if err := table.Define(3, 7, 1000, 0.1); err != nil {
		t.Fatal(err)
	}
	bs, ok := table.Lookup(7, 3)
	if !ok {
		t.Fatal("lookup in reverse order failed")
	}
	if bs.K != 1000 || bs.D0 != 0.1 {
		t.Errorf("got %+v", bs)
	}
}

func TestBondBendMiddleIsFixed(t *testing.T) {
	table := NewBondBendTable()
	if err := table.Define(1, 9, 5, 200, 1.9); err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Lookup(5, 9, 1); !ok {
		t.Fatal("reversed-outer-endpoints lookup failed")
	}
	if _, ok := table.Lookup(9, 1, 5); ok {
		t.Fatal("lookup with the middle atom moved to an outer slot should not match")
	}
}

func TestTorsionQuadReversalSymmetry(t *testing.T) {
	table := NewBondTorsionTable()
	terms := []TorsionTerm{{Periodicity: 2, Amplitude: 10, Phase: 0}}
	if err := table.Define(1, 2, 3, 4, terms, false); err != nil {
		t.Fatal(err)
	}
	bt, ok := table.LookupNormal(4, 3, 2, 1)
	if !ok {
		t.Fatal("reversed-quad lookup failed")
	}
	if len(bt.Terms) != 1 || bt.Terms[0].Amplitude != 10 {
		t.Errorf("got %+v", bt)
	}
}

func TestTorsionQuadEqualOuterEndpoints(t *testing.T) {
	table := NewBondTorsionTable()
	terms := []TorsionTerm{{Periodicity: 3, Amplitude: 5, Phase: 0}}
	// outer endpoints equal (2==2), middle pair (5,1) out of order ->
	// canonicalization should reverse to (2,1,5,2).
	if err := table.Define(2, 5, 1, 2, terms, false); err != nil {
		t.Fatal(err)
	}
	if _, ok := table.LookupNormal(2, 1, 5, 2); !ok {
		t.Fatal("canonicalized quad should be reachable as (2,1,5,2)")
	}
}

func TestImproperTorsionNotCanonicalized(t *testing.T) {
	table := NewBondTorsionTable()
	terms := []TorsionTerm{{Periodicity: 2, Amplitude: 1, Phase: 0}}
	if err := table.Define(1, 2, 9, 3, terms, true); err != nil {
		t.Fatal(err)
	}
	if _, ok := table.LookupImproper(1, 2, 9, 3); !ok {
		t.Fatal("exact-order improper lookup failed")
	}
	if _, ok := table.LookupImproper(3, 2, 9, 1); ok {
		t.Fatal("improper torsions must not canonicalize by reversal")
	}
}

func TestValidateTermsRejectsDuplicatePeriodicity(t *testing.T) {
	terms := []TorsionTerm{
		{Periodicity: 2, Amplitude: 1, Phase: 0},
		{Periodicity: 2, Amplitude: 2, Phase: 0},
	}
	if err := validateTerms(terms); err == nil {
		t.Fatal("expected an error for two terms sharing a periodicity")
	}
}
