// Package memsolver is an in-memory implementation of the solver
// contract. It records every registration call and serves zeroed result
// surfaces, which makes it a stand-in for the real finite-element engine
// in tests and in the CLI's dry-run workflows. It performs no structural
// analysis.
package memsolver

import (
	"fmt"

	"github.com/alexiusacademia/gostral/internal/solver"
)

// Engine creates recording models and walls.
type Engine struct{}

// New returns a recording engine.
func New() *Engine { return &Engine{} }

func (*Engine) NewModel() solver.Model { return NewModel() }

func (*Engine) NewWall() solver.Wall { return NewWall() }

// MaterialDef is a recorded add-material call.
type MaterialDef struct {
	Name              string
	E, G, Nu, Rho, Fy float64
}

// SectionDef is a recorded add-section call.
type SectionDef struct {
	Name         string
	A, Iy, Iz, J float64
}

// MemberDef is a recorded add-member call.
type MemberDef struct {
	Name, INode, JNode string
	Material, Section  string
	Rotation           float64
}

// QuadDef is a recorded add-quad call.
type QuadDef struct {
	Name                       string
	INode, JNode, MNode, NNode string
	Thickness                  float64
	Material                   string
}

// NodeLoad is a recorded nodal load.
type NodeLoad struct {
	Node string
	Dir  solver.Direction
	P    float64
	Case string
}

// DistLoad is a recorded member distributed load.
type DistLoad struct {
	Member         string
	Dir            solver.Direction
	W1, W2, X1, X2 float64
	Case           string
}

// SurfacePressure is a recorded quad surface pressure.
type SurfacePressure struct {
	Quad     string
	Pressure float64
	Case     string
}

// SelfWeightLoad is a recorded self-weight contribution.
type SelfWeightLoad struct {
	Dir    solver.Direction
	Factor float64
	Case   string
}

// Model records the registration calls of the solver contract.
type Model struct {
	materials     map[string]MaterialDef
	materialOrder []string
	sections      map[string]SectionDef
	sectionOrder  []string
	nodes         map[string]*node
	nodeOrder     []string
	members       map[string]*member
	memberOrder   []string
	quads         map[string]*quad
	quadOrder     []string
	releases      map[string]map[solver.End]solver.Releases

	nodeLoads   []NodeLoad
	distLoads   []DistLoad
	pressures   []SurfacePressure
	selfWeights []SelfWeightLoad

	combos     map[string][]solver.ComboFactor
	comboOrder []string

	solved   bool
	analyses []string
}

// NewModel returns an empty recording model.
func NewModel() *Model {
	return &Model{
		materials: map[string]MaterialDef{},
		sections:  map[string]SectionDef{},
		nodes:     map[string]*node{},
		members:   map[string]*member{},
		quads:     map[string]*quad{},
		releases:  map[string]map[solver.End]solver.Releases{},
		combos:    map[string][]solver.ComboFactor{},
	}
}

func (m *Model) AddMaterial(name string, e, g, nu, rho, fy float64) error {
	if _, ok := m.materials[name]; !ok {
		m.materialOrder = append(m.materialOrder, name)
	}
	m.materials[name] = MaterialDef{Name: name, E: e, G: g, Nu: nu, Rho: rho, Fy: fy}
	return nil
}

func (m *Model) AddSection(name string, a, iy, iz, j float64) error {
	if _, ok := m.sections[name]; !ok {
		m.sectionOrder = append(m.sectionOrder, name)
	}
	m.sections[name] = SectionDef{Name: name, A: a, Iy: iy, Iz: iz, J: j}
	return nil
}

func (m *Model) AddNode(name string, x, y, z float64) error {
	if _, ok := m.nodes[name]; !ok {
		m.nodeOrder = append(m.nodeOrder, name)
	}
	m.nodes[name] = &node{model: m, name: name, x: x, y: y, z: z}
	return nil
}

func (m *Model) DefSupport(nodeName string, r solver.Restraints) error {
	n, ok := m.nodes[nodeName]
	if !ok {
		return fmt.Errorf("memsolver: support references unknown node %q", nodeName)
	}
	n.restraints = r
	n.supported = r != solver.Restraints{}
	return nil
}

func (m *Model) AddMember(name, iNode, jNode, material, section string, rotation float64) error {
	if _, ok := m.nodes[iNode]; !ok {
		return fmt.Errorf("memsolver: member %q references unknown node %q", name, iNode)
	}
	if _, ok := m.nodes[jNode]; !ok {
		return fmt.Errorf("memsolver: member %q references unknown node %q", name, jNode)
	}
	if _, ok := m.materials[material]; !ok {
		return fmt.Errorf("memsolver: member %q references unknown material %q", name, material)
	}
	if _, ok := m.sections[section]; !ok {
		return fmt.Errorf("memsolver: member %q references unknown section %q", name, section)
	}
	if _, ok := m.members[name]; !ok {
		m.memberOrder = append(m.memberOrder, name)
	}
	m.members[name] = &member{
		model: m,
		def:   MemberDef{Name: name, INode: iNode, JNode: jNode, Material: material, Section: section, Rotation: rotation},
	}
	return nil
}

func (m *Model) DefReleases(memberName string, end solver.End, rel solver.Releases) error {
	if _, ok := m.members[memberName]; !ok {
		return fmt.Errorf("memsolver: releases reference unknown member %q", memberName)
	}
	ends, ok := m.releases[memberName]
	if !ok {
		ends = map[solver.End]solver.Releases{}
		m.releases[memberName] = ends
	}
	ends[end] = rel
	return nil
}

func (m *Model) AddQuad(name, iNode, jNode, mNode, nNode string, t float64, material string) error {
	for _, nn := range []string{iNode, jNode, mNode, nNode} {
		if _, ok := m.nodes[nn]; !ok {
			return fmt.Errorf("memsolver: quad %q references unknown node %q", name, nn)
		}
	}
	if _, ok := m.materials[material]; !ok {
		return fmt.Errorf("memsolver: quad %q references unknown material %q", name, material)
	}
	if _, ok := m.quads[name]; !ok {
		m.quadOrder = append(m.quadOrder, name)
	}
	m.quads[name] = &quad{
		model: m,
		def:   QuadDef{Name: name, INode: iNode, JNode: jNode, MNode: mNode, NNode: nNode, Thickness: t, Material: material},
	}
	return nil
}

func (m *Model) AddNodeLoad(nodeName string, dir solver.Direction, p float64, loadCase string) error {
	if _, ok := m.nodes[nodeName]; !ok {
		return fmt.Errorf("memsolver: nodal load references unknown node %q", nodeName)
	}
	m.nodeLoads = append(m.nodeLoads, NodeLoad{Node: nodeName, Dir: dir, P: p, Case: loadCase})
	return nil
}

func (m *Model) AddMemberDistLoad(memberName string, dir solver.Direction, w1, w2, x1, x2 float64, loadCase string) error {
	if _, ok := m.members[memberName]; !ok {
		return fmt.Errorf("memsolver: distributed load references unknown member %q", memberName)
	}
	m.distLoads = append(m.distLoads, DistLoad{Member: memberName, Dir: dir, W1: w1, W2: w2, X1: x1, X2: x2, Case: loadCase})
	return nil
}

func (m *Model) AddQuadSurfacePressure(quadName string, pressure float64, loadCase string) error {
	if _, ok := m.quads[quadName]; !ok {
		return fmt.Errorf("memsolver: surface pressure references unknown quad %q", quadName)
	}
	m.pressures = append(m.pressures, SurfacePressure{Quad: quadName, Pressure: pressure, Case: loadCase})
	return nil
}

func (m *Model) AddMemberSelfWeight(dir solver.Direction, factor float64, loadCase string) error {
	m.selfWeights = append(m.selfWeights, SelfWeightLoad{Dir: dir, Factor: factor, Case: loadCase})
	return nil
}

func (m *Model) AddLoadCombo(name string, factors []solver.ComboFactor) error {
	if _, ok := m.combos[name]; !ok {
		m.comboOrder = append(m.comboOrder, name)
	}
	m.combos[name] = factors
	return nil
}

func (m *Model) AnalyzeLinear(opts solver.Options) error { return m.analyze("linear") }

func (m *Model) AnalyzePDelta(opts solver.Options) error { return m.analyze("pdelta") }

func (m *Model) Analyze(opts solver.Options) error { return m.analyze("nonlinear") }

func (m *Model) analyze(kind string) error {
	// The real engine materializes a default combination when none is
	// defined. Mirror that so result walks always have a combo to visit.
	if len(m.comboOrder) == 0 {
		if err := m.AddLoadCombo("Combo 1", nil); err != nil {
			return err
		}
	}
	m.solved = true
	m.analyses = append(m.analyses, kind)
	return nil
}

func (m *Model) ComboNames() []string { return append([]string(nil), m.comboOrder...) }

func (m *Model) NodeNames() []string { return append([]string(nil), m.nodeOrder...) }

func (m *Model) Node(name string) (solver.Node, bool) {
	n, ok := m.nodes[name]
	return n, ok
}

func (m *Model) MemberNames() []string { return append([]string(nil), m.memberOrder...) }

func (m *Model) Member(name string) (solver.Member, bool) {
	mm, ok := m.members[name]
	return mm, ok
}

func (m *Model) QuadNames() []string { return append([]string(nil), m.quadOrder...) }

func (m *Model) Quad(name string) (solver.Quad, bool) {
	q, ok := m.quads[name]
	return q, ok
}

// Inspection accessors used by tests and the CLI's dry-run commands.

// Material returns a recorded material definition.
func (m *Model) Material(name string) (MaterialDef, bool) {
	d, ok := m.materials[name]
	return d, ok
}

// Section returns a recorded section definition.
func (m *Model) Section(name string) (SectionDef, bool) {
	d, ok := m.sections[name]
	return d, ok
}

// MemberDef returns a recorded member definition.
func (m *Model) MemberDef(name string) (MemberDef, bool) {
	mm, ok := m.members[name]
	if !ok {
		return MemberDef{}, false
	}
	return mm.def, true
}

// QuadDef returns a recorded quad definition.
func (m *Model) QuadDef(name string) (QuadDef, bool) {
	q, ok := m.quads[name]
	if !ok {
		return QuadDef{}, false
	}
	return q.def, true
}

// Supports returns the restraints registered for a node.
func (m *Model) Supports(nodeName string) (solver.Restraints, bool) {
	n, ok := m.nodes[nodeName]
	if !ok || !n.supported {
		return solver.Restraints{}, false
	}
	return n.restraints, true
}

// Releases returns the releases registered for a member end.
func (m *Model) Releases(memberName string, end solver.End) (solver.Releases, bool) {
	ends, ok := m.releases[memberName]
	if !ok {
		return solver.Releases{}, false
	}
	rel, ok := ends[end]
	return rel, ok
}

// NodeLoads returns all recorded nodal loads in registration order.
func (m *Model) NodeLoads() []NodeLoad { return append([]NodeLoad(nil), m.nodeLoads...) }

// DistLoads returns all recorded distributed loads in registration order.
func (m *Model) DistLoads() []DistLoad { return append([]DistLoad(nil), m.distLoads...) }

// Pressures returns all recorded surface pressures in registration order.
func (m *Model) Pressures() []SurfacePressure { return append([]SurfacePressure(nil), m.pressures...) }

// SelfWeights returns all recorded self-weight calls in registration order.
func (m *Model) SelfWeights() []SelfWeightLoad {
	return append([]SelfWeightLoad(nil), m.selfWeights...)
}

// ComboFactors returns the factors registered for a combination.
func (m *Model) ComboFactors(name string) ([]solver.ComboFactor, bool) {
	f, ok := m.combos[name]
	return f, ok
}

// Analyses returns the analysis kinds run so far, in order.
func (m *Model) Analyses() []string { return append([]string(nil), m.analyses...) }

// Solved reports whether an analysis entry point has been called.
func (m *Model) Solved() bool { return m.solved }

func (m *Model) checkCombo(combo string) error {
	if !m.solved {
		return fmt.Errorf("memsolver: model has not been solved")
	}
	if _, ok := m.combos[combo]; !ok {
		return fmt.Errorf("memsolver: unknown load combination %q", combo)
	}
	return nil
}
