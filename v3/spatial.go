/*
 * spatial.go, part of dumm.
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

// Spatial is the pair (torque about body origin, force at body origin)
// in ground frame -- the canonical per-body output of a force kernel.
type Spatial struct {
	Torque Vec3
	Force  Vec3
}

func ZeroSpatial() Spatial {
	return Spatial{Torque: Zero(), Force: Zero()}
}

func (s Spatial) Add(o Spatial) Spatial {
	return Spatial{Torque: s.Torque.Add(o.Torque), Force: s.Force.Add(o.Force)}
}

// ForceAt folds a pure force f applied at ground-frame station r (for a
// body whose origin is at the ground-frame point origin) into a
// Spatial: the force itself plus the torque it exerts about the
// origin, torque = (r-origin) x f.
func ForceAt(f, r, origin Vec3) Spatial {
	return Spatial{Torque: r.Sub(origin).Cross(f), Force: f}
}
