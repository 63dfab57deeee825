/*
 * doc.go, part of dumm.
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

// Package v3 implements the three-dimensional vector and rigid-transform
// arithmetic used throughout dumm: atom stations, cluster placements, and
// the per-body ground<-body transforms that drive the force kernel.
//
// Vec3 and Rotation are thin wrappers around gonum.org/v1/gonum/mat types
// (mat.VecDense and mat.Dense respectively) so that callers needing raw
// gonum functionality can always reach the embedded value.
package v3
