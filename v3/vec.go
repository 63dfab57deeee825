/*
 * vec.go, part of dumm.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// appzero is used to correct floating point errors. Everything equal to
// or below this magnitude is considered zero.
const appzero = 1e-12

// Vec3 is a three-component vector: a station, a displacement, a force or
// a torque, depending on context. It is backed by a *mat.VecDense so it
// composes with the rest of the gonum ecosystem.
type Vec3 struct {
	*mat.VecDense
}

// New builds a Vec3 from its three components.
func New(x, y, z float64) Vec3 {
	return Vec3{mat.NewVecDense(3, []float64{x, y, z})}
}

// Zero returns the zero vector.
func Zero() Vec3 {
	return New(0, 0, 0)
}

func (v Vec3) X() float64 { return v.AtVec(0) }
func (v Vec3) Y() float64 { return v.AtVec(1) }
func (v Vec3) Z() float64 { return v.AtVec(2) }

// Clone returns an independent copy.
func (v Vec3) Clone() Vec3 {
	return New(v.X(), v.Y(), v.Z())
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 {
	return New(v.X()+w.X(), v.Y()+w.Y(), v.Z()+w.Z())
}

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return New(v.X()-w.X(), v.Y()-w.Y(), v.Z()-w.Z())
}

// Scale returns s*v.
func (v Vec3) Scale(s float64) Vec3 {
	return New(s*v.X(), s*v.Y(), s*v.Z())
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return v.Scale(-1)
}

// Dot returns the scalar product v.w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X()*w.X() + v.Y()*w.Y() + v.Z()*w.Z()
}

// Cross returns v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return New(
		v.Y()*w.Z()-v.Z()*w.Y(),
		v.Z()*w.X()-v.X()*w.Z(),
		v.X()*w.Y()-v.Y()*w.X(),
	)
}

// Norm returns the euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Norm2 returns the squared euclidean length of v, cheaper than Norm.
func (v Vec3) Norm2() float64 {
	return v.Dot(v)
}

// Unit returns v normalized to unit length. If v is (numerically) zero,
// an arbitrary unit vector perpendicular to nothing in particular (the X
// axis) is returned rather than panicking: degenerate geometry must
// still produce a defined, finite result.
func (v Vec3) Unit() Vec3 {
	n := v.Norm()
	if n <= appzero {
		return New(1, 0, 0)
	}
	return v.Scale(1 / n)
}

// IsZero reports whether v is zero to within appzero.
func (v Vec3) IsZero() bool {
	return v.Norm2() <= appzero*appzero
}

// AnyPerpendicular returns an arbitrary unit vector perpendicular to v.
// Used by the bend and torsion terms to keep the geometry well defined
// when the governing cross product degenerates.
func (v Vec3) AnyPerpendicular() Vec3 {
	// Pick the world axis least aligned with v to avoid near-parallel
	// cross products.
	ax, ay, az := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())
	var axis Vec3
	if ax <= ay && ax <= az {
		axis = New(1, 0, 0)
	} else if ay <= az {
		axis = New(0, 1, 0)
	} else {
		axis = New(0, 0, 1)
	}
	p := v.Cross(axis)
	if p.IsZero() {
		return New(0, 1, 0)
	}
	return p.Unit()
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X(), v.Y(), v.Z())
}

// Sum adds any number of vectors.
func Sum(vs ...Vec3) Vec3 {
	s := Zero()
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}
