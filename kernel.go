/*
 * kernel.go, part of dumm.
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

import (
	"math"

	v3 "dumm/v3"
)

// coulombConstant is ke = 1/(4*pi*eps0) expressed in kJ*nm/(mol*e^2),
// the unit convention every other quantity in the kernel uses.
const coulombConstant = 138.935458

// kcalToKJ converts the GB/ACE bridge's kcal/mol energies to kJ/mol.
const kcalToKJ = 4.184

// angstromToNm converts the GB/ACE bridge's Angstrom coordinates/forces
// to the kernel's nanometer convention. kcalPerAngstromToKJPerNm folds
// both unit changes into the force conversion in one factor.
const angstromToNm = 0.1
const kcalPerAngstromToKJPerNm = kcalToKJ / angstromToNm

// reduction accumulates the kernel's two outputs: total potential
// energy, and per-host-body spatial force.
type reduction struct {
	energy  float64
	spatial map[int]v3.Spatial
}

func newReduction() *reduction {
	return &reduction{spatial: make(map[int]v3.Spatial)}
}

func (r *reduction) addForceAt(body int, f, at, origin v3.Vec3) {
	cur, ok := r.spatial[body]
	if !ok {
		cur = v3.ZeroSpatial()
	}
	r.spatial[body] = cur.Add(v3.ForceAt(f, at, origin))
}

// computeForces is the force/energy kernel: bonded stretch/bend/
// torsion/improper terms over every cross-body tuple, the nonbonded
// Coulomb+LJ double loop over body pairs, and the optional GBSA
// contribution, all reduced into one scalar energy and one spatial
// force per host body. transforms is keyed by host body index
// (Atom.Body / DuMMBody.HostBody) and must cover every body that owns
// an atom.
func (s *Subsystem) computeForces(transforms map[int]v3.Transform) (float64, map[int]v3.Spatial, error) {
	red := newReduction()

	worldPos := make(map[int]v3.Vec3, s.Atoms.Len())
	for _, idx := range s.Atoms.Indices() {
		a := s.Atoms.Get(idx)
		X, ok := transforms[a.Body]
		if !ok {
			return 0, nil, newError(InvalidKey, "no transform supplied for body %d (atom %d)", a.Body, idx)
		}
		worldPos[idx] = X.Apply(a.Station)
	}
	bodyOrigin := func(body int) v3.Vec3 { return transforms[body].P }

	if err := s.computeBonded(worldPos, bodyOrigin, red); err != nil {
		return 0, nil, err
	}
	s.computeNonbonded(worldPos, bodyOrigin, red)

	if s.Globals.Gbsa != 0 {
		s.computeGbsa(worldPos, bodyOrigin, red)
	}

	return red.energy, red.spatial, nil
}

func (s *Subsystem) computeBonded(pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) error {
	for _, idx := range s.Atoms.Indices() {
		a := s.Atoms.Get(idx)

		for i, n := range a.XBond12 {
			if n < a.Index {
				continue
			}
			s.stretchTerm(a, n, a.Stretch[i], pos, origin, red)
		}

		for i, t := range a.XBond13 {
			far := t[1]
			if far < a.Index {
				continue
			}
			s.bendTerm(a.Index, t[0], far, a.Bend[i], pos, origin, red)
		}

		for i, t := range a.XBond14 {
			far := t[2]
			if far < a.Index {
				continue
			}
			s.torsionTerm(a.Index, t[0], t[1], far, a.Torsion[i], pos, origin, red)
		}

		for _, m := range a.ImproperMatches {
			s.torsionTerm(m.neighbors[0], m.neighbors[1], a.Index, m.neighbors[2], m.param, pos, origin, red)
		}
	}
	return nil
}

func (s *Subsystem) stretchTerm(a *Atom, n int, bs *BondStretch, pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	b := s.Atoms.Get(n)
	d := pos[n].Sub(pos[a.Index])
	dist := d.Norm()
	if dist <= 0 {
		return
	}
	diff := dist - bs.D0
	scale := s.Globals.Bond
	red.energy += scale * bs.K * diff * diff

	fmag := -2 * scale * bs.K * diff / dist
	forceOnN := d.Scale(fmag)
	red.addForceAt(b.Body, forceOnN, pos[n], origin(b.Body))
	red.addForceAt(a.Body, forceOnN.Neg(), pos[a.Index], origin(a.Body))
}

// bendTerm implements BondBend::harmonic: vertex is the middle atom,
// the other two are the outer ("r" and "s") atoms of the angle.
func (s *Subsystem) bendTerm(rAtom, vertexAtom, sAtom int, bb *BondBend, pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	cG := pos[vertexAtom]
	rG := pos[rAtom]
	sG := pos[sAtom]
	r := rG.Sub(cG)
	sv := sG.Sub(cG)
	rr := r.Dot(r)
	ss := sv.Dot(sv)
	rs := r.Dot(sv)
	rxs := r.Cross(sv)
	rxslen := rxs.Norm()
	if rr == 0 || ss == 0 {
		return
	}
	theta := math.Atan2(rxslen, rs)
	bend := theta - bb.Theta0

	scale := s.Globals.Angle
	red.energy += scale * bb.K * bend * bend

	var p v3.Vec3
	if rxslen > 0 {
		p = rxs.Scale(1 / rxslen)
	} else {
		p = r.AnyPerpendicular()
	}
	ffac := -2 * scale * bb.K * bend
	rf := r.Cross(p).Scale(ffac / rr)
	sf := p.Cross(sv).Scale(ffac / ss)
	cf := rf.Add(sf).Neg()

	rAtomObj, vertexObj, sAtomObj := s.Atoms.Get(rAtom), s.Atoms.Get(vertexAtom), s.Atoms.Get(sAtom)
	red.addForceAt(rAtomObj.Body, rf, rG, origin(rAtomObj.Body))
	red.addForceAt(sAtomObj.Body, sf, sG, origin(sAtomObj.Body))
	red.addForceAt(vertexObj.Body, cf, cG, origin(vertexObj.Body))
}

// torsionTerm implements BondTorsion::periodic over the geometry
// r-x-y-s, summing bt's Fourier terms into one torque/energy pair
// before distributing forces to the four participating atoms. The
// same routine serves both normal torsions (r,x,y,s supplied in
// bonded-chain order) and improper torsions (y fixed at the central
// atom, r/x/s its three permuted neighbors).
func (s *Subsystem) torsionTerm(rAtom, xAtom, yAtom, sAtom int, bt *BondTorsion, pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	R := pos[rAtom]
	X := pos[xAtom]
	Y := pos[yAtom]
	S := pos[sAtom]

	r := X.Sub(R)
	sv := S.Sub(Y)
	xy := Y.Sub(X)

	vv := xy.Dot(xy)
	var oov float64
	var v v3.Vec3
	if vv > 0 {
		oov = 1 / math.Sqrt(vv)
		v = xy.Scale(oov)
	} else {
		cand := r.Cross(sv)
		if !cand.IsZero() {
			v = cand.Unit()
		} else {
			v = r.AnyPerpendicular()
		}
	}

	t := r.Cross(v)
	u := v.Cross(sv)
	tt := t.Dot(t)
	uu := u.Dot(u)
	if tt == 0 || uu == 0 {
		return // degenerate geometry: no well-defined torque
	}

	txu := t.Cross(u)
	ootu := 1 / math.Sqrt(tt*uu)
	cth := t.Dot(u) * ootu
	sth := v.Dot(txu) * ootu
	theta := math.Atan2(sth, cth)

	scale := s.Globals.Torsion
	if bt.Improper {
		scale = s.Globals.Improper
	}

	var pe, torque float64
	for _, term := range bt.Terms {
		n := float64(term.Periodicity)
		arg := n*theta - term.Phase
		pe += term.Amplitude * (1 + math.Cos(arg))
		torque += n * term.Amplitude * math.Sin(arg)
	}
	pe *= scale
	torque *= scale
	red.energy += pe

	ry := Y.Sub(R)
	xs := S.Sub(X)
	dedt := t.Cross(v).Scale(torque / tt)
	dedu := u.Cross(v).Scale(-torque / uu)

	rf := dedt.Cross(v)
	sf := dedu.Cross(v)

	var xf, yf v3.Vec3
	if oov == 0 {
		xf = rf.Neg()
		yf = sf.Neg()
	} else {
		xf = ry.Cross(dedt).Add(dedu.Cross(sv)).Scale(oov)
		yf = dedt.Cross(r).Add(xs.Cross(dedu)).Scale(oov)
	}

	rObj, xObj, yObj, sObj := s.Atoms.Get(rAtom), s.Atoms.Get(xAtom), s.Atoms.Get(yAtom), s.Atoms.Get(sAtom)
	red.addForceAt(rObj.Body, rf, R, origin(rObj.Body))
	red.addForceAt(xObj.Body, xf, X, origin(xObj.Body))
	red.addForceAt(yObj.Body, yf, Y, origin(yObj.Body))
	red.addForceAt(sObj.Body, sf, S, origin(sObj.Body))
}

// computeNonbonded evaluates Coulomb+LJ over every cross-body atom
// pair, applying the 1-2..1-5 scaling protocol of scale.go.
func (s *Subsystem) computeNonbonded(pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	internals := s.Bodies.InternalIndices()
	for bi := 0; bi < len(internals); bi++ {
		bodyA := s.Bodies.Get(internals[bi])
		for bj := bi + 1; bj < len(internals); bj++ {
			bodyB := s.Bodies.Get(internals[bj])
			for _, ba := range bodyA.AllAtoms {
				focal := s.Atoms.Get(ba.AtomIndex)
				s.scaleBondedAtoms(focal)
				ca, errA := s.classOf(ba.AtomIndex)
				qa := s.ChargeOf(ba.AtomIndex)
				for _, bb := range bodyB.AllAtoms {
					if errA != nil {
						continue
					}
					cb, errB := s.classOf(bb.AtomIndex)
					if errB != nil {
						continue
					}
					vdwScale, coulombScale := scaleFor(focal, bb.AtomIndex)
					s.pairTerm(ba.AtomIndex, bb.AtomIndex, ca, cb, qa, s.ChargeOf(bb.AtomIndex), vdwScale, coulombScale, pos, origin, red)
				}
				s.unscaleBondedAtoms(focal)
			}
		}
	}
}

func (s *Subsystem) pairTerm(ai, bi, ca, cb int, qa, qb, vdwScale, coulombScale float64, pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	d := pos[bi].Sub(pos[ai])
	dist := d.Norm()
	if dist <= 0 {
		return
	}
	var fmag float64

	if vdwScale != 0 {
		if mix, ok := s.MixedVdw(ca, cb); ok && mix.Emin != 0 {
			ddij := mix.Dmin / dist
			ddij2 := ddij * ddij
			ddij6 := ddij2 * ddij2 * ddij2
			ddij12 := ddij6 * ddij6
			gs := s.Globals.Vdw * vdwScale
			red.energy += gs * mix.Emin * (ddij12 - 2*ddij6)
			fmag += 12 * gs * mix.Emin * (ddij12 - ddij6) / (dist * dist)
		}
	}

	if coulombScale != 0 && qa != 0 && qb != 0 {
		gs := s.Globals.Coulomb * coulombScale
		red.energy += gs * coulombConstant * qa * qb / dist
		fmag += gs * coulombConstant * qa * qb / (dist * dist)
	}

	if fmag == 0 {
		return
	}
	dir := d.Scale(1 / dist)
	forceOnB := dir.Scale(fmag)

	aObj, bObj := s.Atoms.Get(ai), s.Atoms.Get(bi)
	red.addForceAt(bObj.Body, forceOnB, pos[bi], origin(bObj.Body))
	red.addForceAt(aObj.Body, forceOnB.Neg(), pos[ai], origin(aObj.Body))
}

// computeGbsa packs every atom into the GB/ACE bridge's parallel-array
// contract, converts its inputs/outputs between the bridge's
// kcal/mol/Angstrom convention and the kernel's kJ/mol/nm convention,
// and folds the result into the reduction.
func (s *Subsystem) computeGbsa(pos map[int]v3.Vec3, origin func(int) v3.Vec3, red *reduction) {
	indices := s.Atoms.Indices()
	n := len(indices)
	if n == 0 {
		return
	}
	coords := make([][3]float64, n)
	charges := make([]float64, n)
	atomicNumbers := make([]int, n)
	numPartners := make([]int, n)
	firstPartner := make([]int, n)
	posByOrder := make(map[int]int, n)

	for i, idx := range indices {
		posByOrder[idx] = i
		a := s.Atoms.Get(idx)
		p := pos[idx]
		coords[i] = [3]float64{p.X() * 10, p.Y() * 10, p.Z() * 10} // nm -> A
		charges[i] = s.ChargeOf(idx)
		numPartners[i] = len(a.Bond12)
		cls, err := s.classOf(idx)
		if err != nil {
			continue
		}
		ac := s.AtomClasses.Get(cls)
		if ac != nil {
			atomicNumbers[i] = ac.Element
		}
	}
	// second pass: firstPartner indices need the full posByOrder map,
	// which is only complete after every atom has been visited once.
	for i, idx := range indices {
		a := s.Atoms.Get(idx)
		firstPartner[i] = -1
		if len(a.Bond12) > 0 {
			if j, ok := posByOrder[a.Bond12[0]]; ok {
				firstPartner[i] = j
			}
		}
	}

	radii := s.Evaluator.Radii(atomicNumbers, numPartners, firstPartner)
	scales := s.Evaluator.ObcScaleFactors(atomicNumbers)
	s.Evaluator.SetParameters(radii, scales, s.Gbsa.IncludeAce, s.Gbsa.DielectricSolute, s.Gbsa.DielectricSolvent)
	forces, energyKcal := s.Evaluator.Forces(coords, charges, true)

	gs := s.Globals.Gbsa
	red.energy += gs * energyKcal * kcalToKJ

	for i, idx := range indices {
		a := s.Atoms.Get(idx)
		f := v3.New(forces[i][0], forces[i][1], forces[i][2]).Scale(gs * kcalPerAngstromToKJPerNm)
		red.addForceAt(a.Body, f, pos[idx], origin(a.Body))
	}
}
