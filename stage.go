/*
 * stage.go, part of dumm.
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

// Stage mirrors the host multibody engine's realization stages that
// this subsystem observes: Empty (under construction, anything goes),
// Topology (derived neighborhoods/parameters cached), Position (the
// force cache has been marked invalid for the current transforms), and
// Dynamics (the kernel has run and its result is memoized).
type Stage int

const (
	StageEmpty Stage = iota
	StageTopology
	StagePosition
	StageDynamics
)

func (st Stage) String() string {
	switch st {
	case StageEmpty:
		return "Empty"
	case StageTopology:
		return "Topology"
	case StagePosition:
		return "Position"
	case StageDynamics:
		return "Dynamics"
	default:
		return "UnknownStage"
	}
}

// CurrentStage reports the subsystem's current realization stage.
func (s *Subsystem) CurrentStage() Stage { return s.stage }

// requireBelowTopology fails with StageViolation unless the subsystem
// is still accepting topology edits, per package doc §5: topology
// edits are illegal outside the Topology stage without an explicit
// Invalidate.
func (s *Subsystem) requireBelowTopology(op string) error {
	if s.stage != StageEmpty && s.stage != StageTopology {
		return newError(StageViolation, "%s: subsystem is in stage %s, not Empty/Topology", op, s.stage)
	}
	return nil
}

// Invalidate drops the subsystem back to the Empty stage, discarding
// every realized cache and re-opening the parameter and topology API
// for edits. Callers are responsible for calling RealizeTopology again
// before advancing to Position/Dynamics.
func (s *Subsystem) Invalidate() {
	s.stage = StageEmpty
	s.mixedVdw = nil
	s.forceValid = false
	s.cachedEnergy = 0
	s.cachedForces = nil
}

// RealizeTopology runs the full topology build (realize.go) and, on
// success, advances the subsystem to the Topology stage.
func (s *Subsystem) RealizeTopology() error {
	if s.stage != StageEmpty && s.stage != StageTopology {
		return newError(StageViolation, "RealizeTopology: subsystem is in stage %s", s.stage)
	}
	if err := s.Realize(); err != nil {
		return errDecorate(err, "RealizeTopology")
	}
	s.stage = StageTopology
	return nil
}

// RealizePosition marks the force/energy cache invalid for a new set
// of per-body ground transforms. It must follow RealizeTopology (or a
// prior RealizePosition); the subsystem may stay in Position across
// many kernel-free queries.
func (s *Subsystem) RealizePosition() error {
	if s.stage == StageEmpty {
		return newError(StageViolation, "RealizePosition: subsystem has not realized its topology")
	}
	s.stage = StagePosition
	s.forceValid = false
	return nil
}

// RealizeDynamics evaluates the force/energy kernel against transforms
// (keyed by host body index, i.e. DuMMBody.HostBody / Atom.Body) if
// the cache is not already valid, then returns the cached scalar
// energy and per-body spatial forces, also keyed by host body index.
// transforms must cover every host body the subsystem has assigned
// atoms to.
func (s *Subsystem) RealizeDynamics(transforms map[int]v3.Transform) (float64, map[int]v3.Spatial, error) {
	if s.stage == StageEmpty {
		return 0, nil, newError(StageViolation, "RealizeDynamics: subsystem has not realized its topology")
	}
	if s.stage == StageTopology {
		if err := s.RealizePosition(); err != nil {
			return 0, nil, err
		}
	}
	if !s.forceValid {
		energy, forces, err := s.computeForces(transforms)
		if err != nil {
			return 0, nil, errDecorate(err, "RealizeDynamics")
		}
		s.cachedEnergy = energy
		s.cachedForces = forces
		s.forceValid = true
	}
	s.stage = StageDynamics
	return s.cachedEnergy, s.cachedForces, nil
}
