package results

import "github.com/alexiusacademia/gostral/internal/solver"

// Factory functions read a fixed set of attributes off a populated
// solver handle and reshape them into result records. Each one is a pure
// reshape: the first error from the handle aborts the record.

// NodalDisplacementFrom reads displacement and rotation components for
// one combination. Unknown combinations read as zero on the handle.
func NodalDisplacementFrom(n solver.Node, combo string) NodalDisplacement {
	return NodalDisplacement{
		Combo:  combo,
		NodeID: n.Name(),
		Displacement: Vector3{
			X: n.Displacement(solver.FX, combo),
			Y: n.Displacement(solver.FY, combo),
			Z: n.Displacement(solver.FZ, combo),
		},
		Rotation: Vector3{
			X: n.Displacement(solver.MX, combo),
			Y: n.Displacement(solver.MY, combo),
			Z: n.Displacement(solver.MZ, combo),
		},
	}
}

// NodalReactionFrom reads reaction force and moment components for one
// combination.
func NodalReactionFrom(n solver.Node, combo string) NodalReaction {
	return NodalReaction{
		Combo:  combo,
		NodeID: n.Name(),
		Force: Vector3{
			X: n.Reaction(solver.FX, combo),
			Y: n.Reaction(solver.FY, combo),
			Z: n.Reaction(solver.FZ, combo),
		},
		Moment: Vector3{
			X: n.Reaction(solver.MX, combo),
			Y: n.Reaction(solver.MY, combo),
			Z: n.Reaction(solver.MZ, combo),
		},
	}
}

// MemberResultsFrom reads the full result family for a member under one
// combination: axial, shear, moment, torque and deflection extremes plus
// the 12-component end force vector.
func MemberResultsFrom(m solver.Member, combo string) (MemberResults, error) {
	name := m.Name()
	r := MemberResults{Combo: combo, MemberID: name}

	var err error
	read := func(f func(string) (float64, error)) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = f(combo)
		return v
	}
	readDir := func(f func(solver.Direction, string) (float64, error), dir solver.Direction) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = f(dir, combo)
		return v
	}

	r.Axial = MemberAxialForce{
		Combo: combo, MemberID: name,
		Max: read(m.MaxAxial), Min: read(m.MinAxial),
	}
	r.ShearY = MemberShearForce{
		Combo: combo, MemberID: name, Dir: string(solver.LocalFy),
		Max: readDir(m.MaxShear, solver.LocalFy), Min: readDir(m.MinShear, solver.LocalFy),
	}
	r.ShearZ = MemberShearForce{
		Combo: combo, MemberID: name, Dir: string(solver.LocalFz),
		Max: readDir(m.MaxShear, solver.LocalFz), Min: readDir(m.MinShear, solver.LocalFz),
	}
	r.MomentY = MemberMoment{
		Combo: combo, MemberID: name, Dir: string(solver.MomentY),
		Max: readDir(m.MaxMoment, solver.MomentY), Min: readDir(m.MinMoment, solver.MomentY),
	}
	r.MomentZ = MemberMoment{
		Combo: combo, MemberID: name, Dir: string(solver.MomentZ),
		Max: readDir(m.MaxMoment, solver.MomentZ), Min: readDir(m.MinMoment, solver.MomentZ),
	}
	r.Torque = MemberTorque{
		Combo: combo, MemberID: name,
		Max: read(m.MaxTorque), Min: read(m.MinTorque),
	}
	r.DeflectionX = MemberDeflection{
		Combo: combo, MemberID: name, Dir: string(solver.DeflX),
		Max: readDir(m.MaxDeflection, solver.DeflX), Min: readDir(m.MinDeflection, solver.DeflX),
	}
	r.DeflectionY = MemberDeflection{
		Combo: combo, MemberID: name, Dir: string(solver.DeflY),
		Max: readDir(m.MaxDeflection, solver.DeflY), Min: readDir(m.MinDeflection, solver.DeflY),
	}
	r.DeflectionZ = MemberDeflection{
		Combo: combo, MemberID: name, Dir: string(solver.DeflZ),
		Max: readDir(m.MaxDeflection, solver.DeflZ), Min: readDir(m.MinDeflection, solver.DeflZ),
	}
	if err != nil {
		return MemberResults{}, err
	}

	f, err := m.EndForces(combo)
	if err != nil {
		return MemberResults{}, err
	}
	r.EndForces = MemberEndForces{
		Combo: combo, MemberID: name,
		IForces:  Vector3{X: f[0], Y: f[1], Z: f[2]},
		IMoments: Vector3{X: f[3], Y: f[4], Z: f[5]},
		JForces:  Vector3{X: f[6], Y: f[7], Z: f[8]},
		JMoments: Vector3{X: f[9], Y: f[10], Z: f[11]},
	}
	return r, nil
}

// Natural coordinates of the standard evaluation points: the four
// corners i, j, m, n and the element center.
var cornerCoords = []struct {
	name    string
	xi, eta float64
}{
	{"i", -1, -1},
	{"j", 1, -1},
	{"m", 1, 1},
	{"n", -1, 1},
}

// PlateResultsFrom evaluates membrane stresses and bending moments at
// the four corners and the center of a quad.
func PlateResultsFrom(q solver.Quad, combo string) (PlateResults, error) {
	r := PlateResults{
		Combo:          combo,
		PlateID:        q.Name(),
		CornerStresses: map[string]PlateStress{},
		CornerMoments:  map[string]PlateMoment{},
	}
	for _, c := range cornerCoords {
		s, err := q.Membrane(c.xi, c.eta, combo)
		if err != nil {
			return PlateResults{}, err
		}
		r.CornerStresses[c.name] = PlateStress{X: c.xi, Y: c.eta, SX: s[0], SY: s[1], TXY: s[2]}

		m, err := q.Moment(c.xi, c.eta, combo)
		if err != nil {
			return PlateResults{}, err
		}
		r.CornerMoments[c.name] = PlateMoment{X: c.xi, Y: c.eta, MX: m[0], MY: m[1], MXY: m[2]}
	}

	s, err := q.Membrane(0, 0, combo)
	if err != nil {
		return PlateResults{}, err
	}
	r.CenterStress = PlateStress{SX: s[0], SY: s[1], TXY: s[2]}

	m, err := q.Moment(0, 0, combo)
	if err != nil {
		return PlateResults{}, err
	}
	r.CenterMoment = PlateMoment{MX: m[0], MY: m[1], MXY: m[2]}
	return r, nil
}
