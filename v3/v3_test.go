/*
 * v3_test.go, part of dumm.
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

package v3

import (
	"math"
	"testing"
)

func TestCrossAndDot(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := x.Cross(y)
	if z.X() != 0 || z.Y() != 0 || z.Z() != 1 {
		t.Errorf("x cross y = %v, want (0,0,1)", z)
	}
	if x.Dot(y) != 0 {
		t.Errorf("x dot y = %v, want 0", x.Dot(y))
	}
}

func TestUnitDegenerate(t *testing.T) {
	z := Zero()
	u := z.Unit()
	if math.Abs(u.Norm()-1) > 1e-9 {
		t.Errorf("Unit() of the zero vector should still have unit length, got %v", u.Norm())
	}
}

func TestAnyPerpendicular(t *testing.T) {
	for _, v := range []Vec3{New(1, 0, 0), New(0, 1, 0), New(0, 0, 1), New(1, 1, 1)} {
		p := v.AnyPerpendicular()
		if math.Abs(v.Dot(p)) > 1e-9 {
			t.Errorf("AnyPerpendicular(%v) = %v is not perpendicular", v, p)
		}
		if math.Abs(p.Norm()-1) > 1e-9 {
			t.Errorf("AnyPerpendicular(%v) = %v is not unit length", v, p)
		}
	}
}

func TestTransformComposeInverse(t *testing.T) {
	R := RotationFromRows(New(0, 1, 0), New(-1, 0, 0), New(0, 0, 1)) // 90deg about Z
	X := TransformFromRotationAndOffset(R, New(1, 2, 3))
	Xi := X.Inverse()
	v := New(5, -1, 2)
	back := Xi.Apply(X.Apply(v))
	if back.Sub(v).Norm() > 1e-9 {
		t.Errorf("X^-1(X(v)) = %v, want %v", back, v)
	}
}

func TestComposeMatchesSequentialApply(t *testing.T) {
	A := TransformFromRotationAndOffset(IdentityRotation(), New(1, 0, 0))
	B := TransformFromRotationAndOffset(IdentityRotation(), New(0, 1, 0))
	v := New(0, 0, 1)
	got := A.Compose(B).Apply(v)
	want := A.Apply(B.Apply(v))
	if got.Sub(want).Norm() > 1e-9 {
		t.Errorf("Compose mismatch: got %v want %v", got, want)
	}
}
