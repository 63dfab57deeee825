/*
 * transform.go, part of dumm.
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

import "gonum.org/v1/gonum/mat"

// Rotation is a 3x3 proper rotation matrix, backed by *mat.Dense so
// composition and transposition reuse gonum's BLAS-backed kernels.
type Rotation struct {
	*mat.Dense
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation {
	return Rotation{mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})}
}

// RotationFromRows builds a Rotation from three row vectors.
func RotationFromRows(r0, r1, r2 Vec3) Rotation {
	m := mat.NewDense(3, 3, nil)
	for j := 0; j < 3; j++ {
		m.Set(0, j, r0.AtVec(j))
		m.Set(1, j, r1.AtVec(j))
		m.Set(2, j, r2.AtVec(j))
	}
	return Rotation{m}
}

// Apply rotates v: R*v.
func (R Rotation) Apply(v Vec3) Vec3 {
	var out mat.VecDense
	out.MulVec(R.Dense, v.VecDense)
	return Vec3{&out}
}

// Transpose returns R^T, which for a proper rotation is also R^-1.
func (R Rotation) Transpose() Rotation {
	var t mat.Dense
	t.CloneFrom(R.Dense.T())
	return Rotation{&t}
}

// Mul composes two rotations: R*S.
func (R Rotation) Mul(S Rotation) Rotation {
	var out mat.Dense
	out.Mul(R.Dense, S.Dense)
	return Rotation{&out}
}

// Transform is a rigid transform: a rotation followed by a translation,
// X = (R, p). Applying X to a vector v (a station) yields R*v + p. This
// is the Go-side equivalent of Simbody's Transform / the cluster tree's
// "local transform", and of the multibody host's per-body X_GB.
type Transform struct {
	R Rotation
	P Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{R: IdentityRotation(), P: Zero()}
}

// TransformFromRotationAndOffset builds a Transform.
func TransformFromRotationAndOffset(R Rotation, p Vec3) Transform {
	return Transform{R: R, P: p}
}

// Apply maps a station expressed in X's source frame into X's target
// frame: X*v = R*v + p.
func (X Transform) Apply(v Vec3) Vec3 {
	return X.R.Apply(v).Add(X.P)
}

// ApplyRotationOnly rotates a free vector (a direction, a force) without
// translating it -- X_GB*force, for instance, should not pick up the
// body origin offset.
func (X Transform) ApplyRotationOnly(v Vec3) Vec3 {
	return X.R.Apply(v)
}

// Compose returns X∘Y, the transform that first applies Y then X:
// (X∘Y)(v) = X(Y(v)).
func (X Transform) Compose(Y Transform) Transform {
	return Transform{
		R: X.R.Mul(Y.R),
		P: X.R.Apply(Y.P).Add(X.P),
	}
}

// Inverse returns X^-1 such that X.Inverse().Compose(X) is the identity.
func (X Transform) Inverse() Transform {
	Rt := X.R.Transpose()
	return Transform{R: Rt, P: Rt.Apply(X.P).Neg()}
}
