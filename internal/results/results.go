// Package results defines the result schema mirroring the external
// solver's result surface, plus factory functions that reshape populated
// solver handles into immutable result records. No computation happens
// here beyond assembling components into 3-axis vectors.
package results

import "math"

// Vector3 groups three axis components of a force, moment, displacement
// or rotation.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Magnitude returns the Euclidean norm of the vector.
func (v Vector3) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// NodalDisplacement holds translational and rotational displacements of
// one node under one load combination.
type NodalDisplacement struct {
	Combo  string
	NodeID string

	Displacement Vector3 // DX, DY, DZ
	Rotation     Vector3 // RX, RY, RZ
}

// NodalReaction holds reaction forces and moments of one supported node
// under one load combination.
type NodalReaction struct {
	Combo  string
	NodeID string

	Force  Vector3 // FX, FY, FZ
	Moment Vector3 // MX, MY, MZ
}

// MemberAxialForce holds axial force extremes along a member.
type MemberAxialForce struct {
	Combo    string
	MemberID string

	Max float64
	Min float64
}

// MemberShearForce holds shear force extremes for one local direction.
type MemberShearForce struct {
	Combo    string
	MemberID string
	Dir      string // "Fy" or "Fz"

	Max float64
	Min float64
}

// MemberMoment holds bending moment extremes for one local direction.
type MemberMoment struct {
	Combo    string
	MemberID string
	Dir      string // "My" or "Mz"

	Max float64
	Min float64
}

// MemberTorque holds torsional moment extremes along a member.
type MemberTorque struct {
	Combo    string
	MemberID string

	Max float64
	Min float64
}

// MemberEndForces holds the local end force vectors of a member.
type MemberEndForces struct {
	Combo    string
	MemberID string

	IForces  Vector3 // i-end Fx, Fy, Fz
	IMoments Vector3 // i-end Mx, My, Mz
	JForces  Vector3 // j-end Fx, Fy, Fz
	JMoments Vector3 // j-end Mx, My, Mz
}

// MemberDeflection holds deflection extremes for one local direction.
type MemberDeflection struct {
	Combo    string
	MemberID string
	Dir      string // "dx", "dy" or "dz"

	Max float64
	Min float64
}

// MemberResults bundles every result family for one member under one
// load combination.
type MemberResults struct {
	Combo    string
	MemberID string

	Axial       MemberAxialForce
	ShearY      MemberShearForce
	ShearZ      MemberShearForce
	MomentY     MemberMoment
	MomentZ     MemberMoment
	Torque      MemberTorque
	EndForces   MemberEndForces
	DeflectionX MemberDeflection
	DeflectionY MemberDeflection
	DeflectionZ MemberDeflection
}

// PlateStress holds in-plane stresses at one natural-coordinate point.
type PlateStress struct {
	X   float64 // natural ξ
	Y   float64 // natural η
	SX  float64
	SY  float64
	TXY float64
}

// PlateMoment holds plate bending moments at one natural-coordinate point.
type PlateMoment struct {
	X   float64
	Y   float64
	MX  float64
	MY  float64
	MXY float64
}

// PlateResults holds corner and center evaluations for one plate under
// one load combination. Corner keys are i, j, m, n in the order the
// plate's nodes were listed.
type PlateResults struct {
	Combo   string
	PlateID string

	CornerStresses map[string]PlateStress
	CornerMoments  map[string]PlateMoment
	CenterStress   PlateStress
	CenterMoment   PlateMoment
}
