/*
 * bondgraph_test.go, part of dumm.
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

package graph

import (
	"reflect"
	"testing"
)

func TestBondGraphNeighborsAreSortedAndUndirected(t *testing.T) {
	g := New()
	g.AddBond(3, 1)
	g.AddBond(3, 5)

	if !g.HasBond(1, 3) || !g.HasBond(3, 1) {
		t.Fatal("bond should be visible from either endpoint")
	}
	want := []int{1, 5}
	if got := g.Neighbors(3); !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbors(3) = %v, want %v", got, want)
	}
}

func TestBondGraphAddBondIsIdempotent(t *testing.T) {
	g := New()
	g.AddBond(1, 2)
	g.AddBond(2, 1)
	if got := g.Neighbors(1); len(got) != 1 {
		t.Errorf("duplicate AddBond created a parallel edge: Neighbors(1) = %v", got)
	}
}

func TestBondGraphNodesIncludesIsolatedAtoms(t *testing.T) {
	g := New()
	g.EnsureNode(7)
	g.AddBond(1, 2)
	want := []int{1, 2, 7}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestBondGraphHasBondFalseForUnrelatedAtoms(t *testing.T) {
	g := New()
	g.AddBond(1, 2)
	g.AddBond(3, 4)
	if g.HasBond(1, 4) {
		t.Error("HasBond(1,4) should be false, these atoms are in different components")
	}
}
