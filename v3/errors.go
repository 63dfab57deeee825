/*
 * errors.go, part of dumm.
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

// PanicMsg is used for panics that are really programming errors (a
// caller asking for a nonsensical vector), as opposed to the dumm
// package's Error, which a failing call returns to its caller.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotAVec3 = PanicMsg("dumm/v3: not a 3-element vector")
)
