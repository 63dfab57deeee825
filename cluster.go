/*
 * cluster.go, part of dumm.
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

import v3 "dumm/v3"

// Cluster is a rigid frame containing directly placed atoms (each with
// a local station) and directly placed sub-clusters (each with a local
// rigid transform). It caches the full recursive closure of both,
// expressed in its own frame, so that attachment and mass-property
// queries are O(size) rather than O(size * depth). Clusters refer to
// atoms and other clusters by index, never by pointer, so the tree has
// no ownership cycles to break.
type Cluster struct {
	Index int
	Name  string

	directAtoms    map[int]v3.Vec3     // atom index -> local station
	directClusters map[int]v3.Transform // child cluster index -> local transform

	transAtoms    map[int]v3.Vec3 // transitive atoms, expressed in this cluster's frame
	transClusters map[int]bool    // transitive sub-cluster indices, for overlap/cycle checks

	parents map[int]bool // parent cluster indices; empty iff top-level

	body int // host-body index, noBody until attached
}

func newCluster(index int, name string) *Cluster {
	return &Cluster{
		Index:          index,
		Name:           name,
		directAtoms:    make(map[int]v3.Vec3),
		directClusters: make(map[int]v3.Transform),
		transAtoms:     make(map[int]v3.Vec3),
		transClusters:  make(map[int]bool),
		parents:        make(map[int]bool),
		body:           noBody,
	}
}

func (c *Cluster) topLevel() bool { return len(c.parents) == 0 }

// ClusterTree owns the subsystem's clusters and performs the placement
// and attachment protocol of package doc §4.2.
type ClusterTree struct {
	clusters map[int]*Cluster
	atoms    *AtomStore
	bodies   *BodyStore
}

func NewClusterTree(atoms *AtomStore, bodies *BodyStore) *ClusterTree {
	return &ClusterTree{clusters: make(map[int]*Cluster), atoms: atoms, bodies: bodies}
}

// Define creates a new, empty, unattached top-level cluster.
func (t *ClusterTree) Define(index int, name string) error {
	if index < 0 {
		return newError(RangeError, "cluster index %d is negative", index)
	}
	if _, ok := t.clusters[index]; ok {
		return newError(DuplicateKey, "cluster %d already defined", index)
	}
	t.clusters[index] = newCluster(index, name)
	return nil
}

func (t *ClusterTree) Get(index int) *Cluster {
	return t.clusters[index]
}

// containsAtom reports whether atom a appears anywhere in c's tree
// (directly or transitively).
func (c *Cluster) containsAtom(a int) bool {
	_, ok := c.transAtoms[a]
	return ok
}

// containsCluster reports whether cluster idx appears anywhere in c's
// tree (directly or transitively), including c itself.
func (c *Cluster) containsCluster(idx int) bool {
	if c.Index == idx {
		return true
	}
	return c.transClusters[idx]
}

// PlaceAtom places atom a at local station s within cluster c.
func (t *ClusterTree) PlaceAtom(clusterIdx, atomIdx int, s v3.Vec3) error {
	c := t.clusters[clusterIdx]
	if c == nil {
		return newError(InvalidKey, "cluster %d does not exist", clusterIdx)
	}
	a := t.atoms.Get(atomIdx)
	if a == nil {
		return newError(InvalidKey, "atom %d does not exist", atomIdx)
	}
	if a.Body != noBody {
		return newError(TopologyViolation, "atom %d is already attached to a body", atomIdx)
	}
	if !c.topLevel() {
		return newError(TopologyViolation, "cluster %d is not top-level", clusterIdx)
	}
	if c.containsAtom(atomIdx) {
		return newError(TopologyViolation, "atom %d already appears in cluster %d's tree", atomIdx, clusterIdx)
	}
	c.directAtoms[atomIdx] = s
	c.transAtoms[atomIdx] = s
	if c.body != noBody {
		t.propagateAtomToBody(c.body, v3.Identity(), atomIdx, s)
	}
	return nil
}

// PlaceCluster places child cluster d (with local transform X) inside
// parent cluster c.
func (t *ClusterTree) PlaceCluster(parentIdx, childIdx int, X v3.Transform) error {
	c := t.clusters[parentIdx]
	d := t.clusters[childIdx]
	if c == nil {
		return newError(InvalidKey, "cluster %d does not exist", parentIdx)
	}
	if d == nil {
		return newError(InvalidKey, "cluster %d does not exist", childIdx)
	}
	if d.body != noBody {
		return newError(TopologyViolation, "cluster %d is already attached to a body", childIdx)
	}
	if c.containsCluster(childIdx) {
		return newError(TopologyViolation, "cluster %d already appears in cluster %d's tree", childIdx, parentIdx)
	}
	for a := range d.transAtoms {
		if c.containsAtom(a) {
			return newError(TopologyViolation, "clusters %d and %d share atom %d", parentIdx, childIdx, a)
		}
	}
	if !c.topLevel() {
		return newError(TopologyViolation, "cluster %d is not top-level", parentIdx)
	}

	c.directClusters[childIdx] = X
	c.transClusters[childIdx] = true
	for sub := range d.transClusters {
		c.transClusters[sub] = true
	}
	for a, s := range d.transAtoms {
		c.transAtoms[a] = X.Apply(s)
	}
	d.parents[parentIdx] = true

	if c.body != noBody {
		t.propagateClusterToBody(c.body, X, childIdx)
	}
	return nil
}

// AttachToBody binds top-level cluster c to host body b with transform
// X_BC, propagating body membership and body-frame stations to every
// atom transitively contained in c.
func (t *ClusterTree) AttachToBody(clusterIdx, bodyIdx int, X_BC v3.Transform) error {
	c := t.clusters[clusterIdx]
	if c == nil {
		return newError(InvalidKey, "cluster %d does not exist", clusterIdx)
	}
	if c.body != noBody {
		return newError(TopologyViolation, "cluster %d is already attached to a body", clusterIdx)
	}
	for a := range c.transAtoms {
		if atom := t.atoms.Get(a); atom != nil && atom.Body != noBody {
			return newError(TopologyViolation, "atom %d is already attached to a body", a)
		}
	}
	c.body = bodyIdx
	for a, s := range c.directAtoms {
		t.propagateAtomToBody(bodyIdx, X_BC, a, s)
	}
	for child, X := range c.directClusters {
		t.propagateClusterToBody(bodyIdx, X_BC.Compose(X), child)
	}
	return nil
}

func (t *ClusterTree) propagateAtomToBody(bodyIdx int, X v3.Transform, atomIdx int, localStation v3.Vec3) {
	a := t.atoms.Get(atomIdx)
	a.Body = bodyIdx
	a.Station = X.Apply(localStation)
	t.bodies.noteAtom(bodyIdx, atomIdx)
}

func (t *ClusterTree) propagateClusterToBody(bodyIdx int, X v3.Transform, clusterIdx int) {
	c := t.clusters[clusterIdx]
	c.body = bodyIdx
	for a, s := range c.directAtoms {
		t.propagateAtomToBody(bodyIdx, X, a, s)
	}
	for child, Xc := range c.directClusters {
		t.propagateClusterToBody(bodyIdx, X.Compose(Xc), child)
	}
}

// MassProperties composes the masses and positions of every atom
// transitively contained in c, transformed by frame, returning the
// total mass and the center of mass in frame's target frame. Atom mass
// is resolved through the charged atom type -> atom class -> element
// chain; callers supply that lookup as massOf (e.g. Subsystem.MassOf)
// rather than the cluster tree holding an element table, keeping this
// a pure query.
func (t *ClusterTree) MassProperties(clusterIdx int, frame v3.Transform, massOf func(atomIdx int) float64) (totalMass float64, com v3.Vec3) {
	c := t.clusters[clusterIdx]
	if c == nil {
		return 0, v3.Zero()
	}
	weighted := v3.Zero()
	for a, s := range c.transAtoms {
		m := massOf(a)
		totalMass += m
		weighted = weighted.Add(frame.Apply(s).Scale(m))
	}
	if totalMass == 0 {
		return 0, v3.Zero()
	}
	return totalMass, weighted.Scale(1 / totalMass)
}
