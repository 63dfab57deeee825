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

/*
Package dumm implements a molecular-mechanics force-field subsystem in
the style of Simbody's DuMM/Molmodel: a component that, given a
multibody representation of a molecule (atoms grouped rigidly onto
moving bodies), computes classical potential energy and per-body
spatial forces for a surrounding multibody dynamics host to integrate.

	**What it owns**

	Element table, atom-class and charged-atom-type registries, the four
	bond-term tables (stretch/bend/torsion/improper), the atom and bond
	stores, the cluster tree, and the per-host-body flattened atom view.

	**What it computes**

	At topology realization: the mixed van-der-Waals table (combining
	rule applied once per complete class pair), cross-body neighborhood
	lists (1-2 through 1-5, both "all simple paths" and "shortest path"
	variants), per-atom bond-term parameter pointers, and improper-torsion
	multi-match enumeration.

	At dynamics realization: the force/energy kernel -- bonded stretch,
	bend, torsion and improper terms over cross-body tuples; nonbonded
	Coulomb and Lennard-Jones 12-6 over every body pair with 1-2..1-5
	scaling; and an optional generalized-Born/ACE contribution evaluated
	through the gbsa package's Evaluator interface.

	**What it deliberately does not do**

	Parse force-field files, own mobile bodies, run neighbor lists or
	periodic boundary conditions, or evaluate long-range electrostatics.
	The multibody host and the GB/ACE routine are external collaborators
	reached through narrow interfaces (see stage.go and the gbsa package).

Units are fixed throughout: length nm, mass dalton, energy kJ/mol, angle
radians internally, charge in elementary charges.
*/
package dumm
