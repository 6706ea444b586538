// Package solver defines the call contract against the external
// finite-element engine. The translator only ever talks to these
// interfaces; the numerical engine behind them (stiffness assembly,
// equation solving, pier identification) is not part of this repository.
package solver

// Direction identifies a load or result direction. Uppercase values are
// global axes, mixed-case values are member-local axes.
type Direction string

const (
	// Global force and moment directions
	FX Direction = "FX"
	FY Direction = "FY"
	FZ Direction = "FZ"
	MX Direction = "MX"
	MY Direction = "MY"
	MZ Direction = "MZ"

	// Member-local force directions
	LocalFx Direction = "Fx"
	LocalFy Direction = "Fy"
	LocalFz Direction = "Fz"

	// Member-local moment directions
	MomentY Direction = "My"
	MomentZ Direction = "Mz"

	// Member-local deflection directions
	DeflX Direction = "dx"
	DeflY Direction = "dy"
	DeflZ Direction = "dz"
)

// End identifies a member end for release definitions.
type End string

const (
	EndI End = "i"
	EndJ End = "j"
)

// Restraints holds one boolean per degree of freedom, true meaning the
// DOF is restrained. Order is [Dx, Dy, Dz, Rx, Ry, Rz].
type Restraints struct {
	DX, DY, DZ bool
	RX, RY, RZ bool
}

// Releases holds one boolean per degree of freedom at a member end,
// true meaning the DOF is released.
type Releases struct {
	Dx, Dy, Dz bool
	Rx, Ry, Rz bool
}

// Any reports whether at least one DOF is released.
func (r Releases) Any() bool {
	return r.Dx || r.Dy || r.Dz || r.Rx || r.Ry || r.Rz
}

// ComboFactor is one (load group, scale factor) pair of a load
// combination. Factors are passed as a slice so the caller's definition
// order survives the registration call.
type ComboFactor struct {
	Group string
	Value float64
}

// Options is the configuration bag accepted by the analysis entry points.
type Options struct {
	Log            bool
	CheckStability bool
	CheckStatics   bool
}

// Engine creates solver-side objects. It is the capability injected into
// the translator, which keeps the translator testable without the real
// finite-element engine.
type Engine interface {
	NewModel() Model
	NewWall() Wall
}

// Model is the external engine's model handle. Registration calls build
// up the model; the accessors below Analyze* walk the populated object
// graph after an analysis has run.
type Model interface {
	AddMaterial(name string, e, g, nu, rho, fy float64) error
	AddSection(name string, a, iy, iz, j float64) error
	AddNode(name string, x, y, z float64) error
	DefSupport(node string, r Restraints) error
	AddMember(name, iNode, jNode, material, section string, rotation float64) error
	DefReleases(member string, end End, rel Releases) error
	AddQuad(name, iNode, jNode, mNode, nNode string, t float64, material string) error

	AddNodeLoad(node string, dir Direction, p float64, loadCase string) error
	AddMemberDistLoad(member string, dir Direction, w1, w2, x1, x2 float64, loadCase string) error
	AddQuadSurfacePressure(quad string, pressure float64, loadCase string) error
	AddMemberSelfWeight(dir Direction, factor float64, loadCase string) error
	AddLoadCombo(name string, factors []ComboFactor) error

	AnalyzeLinear(opts Options) error
	AnalyzePDelta(opts Options) error
	Analyze(opts Options) error

	ComboNames() []string
	NodeNames() []string
	Node(name string) (Node, bool)
	MemberNames() []string
	Member(name string) (Member, bool)
	QuadNames() []string
	Quad(name string) (Quad, bool)
}

// Node is a populated node handle.
type Node interface {
	Name() string
	// Displacement returns the displacement or rotation component for a
	// combination. Unknown combinations read as zero, mirroring the
	// engine's per-combination result maps.
	Displacement(dir Direction, combo string) float64
	Reaction(dir Direction, combo string) float64
	Supported() bool
}

// Member is a populated member handle. The extremum queries fail for
// combinations the engine has not solved.
type Member interface {
	Name() string
	MaxMoment(dir Direction, combo string) (float64, error)
	MinMoment(dir Direction, combo string) (float64, error)
	MaxShear(dir Direction, combo string) (float64, error)
	MinShear(dir Direction, combo string) (float64, error)
	MaxAxial(combo string) (float64, error)
	MinAxial(combo string) (float64, error)
	MaxTorque(combo string) (float64, error)
	MinTorque(combo string) (float64, error)
	MaxDeflection(dir Direction, combo string) (float64, error)
	MinDeflection(dir Direction, combo string) (float64, error)
	// EndForces returns the 12-component local end force vector:
	// i-end Fx,Fy,Fz,Mx,My,Mz then j-end Fx,Fy,Fz,Mx,My,Mz.
	EndForces(combo string) ([12]float64, error)
}

// Quad is a populated quadrilateral plate handle. Evaluation points are
// natural coordinates, corners at (+-1, +-1) and the center at (0, 0).
type Quad interface {
	Name() string
	// Membrane returns in-plane stresses (sx, sy, txy).
	Membrane(xi, eta float64, combo string) ([3]float64, error)
	// Moment returns out-of-plane plate moments (mx, my, mxy).
	Moment(xi, eta float64, combo string) ([3]float64, error)
}

// Wall is the engine's shear-wall sub-API: a planar wall built from
// regional materials, openings, flanges, supports and storied loads.
// Generate meshes the wall; pier and coupling-beam identification happens
// inside the engine.
type Wall interface {
	SetGeometry(length, height, meshSize, kyMod float64)
	AddMaterial(name string, e, g, nu, rho, t float64, xStart, xEnd, yStart, yEnd *float64)
	AddOpening(name string, xStart, yStart, width, height float64, tie *float64)
	AddFlange(thickness, width, x, yStart, yEnd float64, material, side string)
	AddSupport(elevation float64, xStart, xEnd *float64)
	AddStory(name string, elevation float64, xStart, xEnd *float64)
	AddShear(story string, force float64, loadCase string)
	AddAxial(story string, force float64, loadCase string)

	Generate() error
	AnalyzeLinear(opts Options) error

	ComboNames() []string
	StoryNames() []string
	Stiffness(story string) (float64, error)
	PierNames() []string
	Pier(name string) (Segment, bool)
	CouplingBeamNames() []string
	CouplingBeam(name string) (Segment, bool)
}

// Segment is a pier or coupling beam identified by the wall engine.
// Width is the horizontal extent (a coupling beam's length), Height the
// vertical extent.
type Segment interface {
	Name() string
	X() float64
	Y() float64
	Width() float64
	Height() float64
	// SumForces returns the segment's axial force P, moment M, shear V
	// and shear-span ratio (M/VL for piers, M/VH for coupling beams).
	SumForces(combo string) (p, m, v, ratio float64, err error)
}
