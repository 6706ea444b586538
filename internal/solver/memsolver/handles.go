package memsolver

import "github.com/alexiusacademia/gostral/internal/solver"

// node implements solver.Node. Result components read as zero for every
// combination, the same default the engine's per-combination maps give
// for unsolved entries.
type node struct {
	model      *Model
	name       string
	x, y, z    float64
	restraints solver.Restraints
	supported  bool
}

func (n *node) Name() string { return n.name }

func (n *node) Displacement(dir solver.Direction, combo string) float64 { return 0 }

func (n *node) Reaction(dir solver.Direction, combo string) float64 { return 0 }

func (n *node) Supported() bool { return n.supported }

// Coordinates returns the node position as recorded.
func (n *node) Coordinates() (x, y, z float64) { return n.x, n.y, n.z }

// member implements solver.Member. Extremum queries succeed with zero
// values once the model is solved and the combination exists; otherwise
// they fail like the real engine does.
type member struct {
	model *Model
	def   MemberDef
}

func (m *member) Name() string { return m.def.Name }

func (m *member) query(combo string) (float64, error) {
	if err := m.model.checkCombo(combo); err != nil {
		return 0, err
	}
	return 0, nil
}

func (m *member) MaxMoment(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) MinMoment(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) MaxShear(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) MinShear(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) MaxAxial(combo string) (float64, error) { return m.query(combo) }

func (m *member) MinAxial(combo string) (float64, error) { return m.query(combo) }

func (m *member) MaxTorque(combo string) (float64, error) { return m.query(combo) }

func (m *member) MinTorque(combo string) (float64, error) { return m.query(combo) }

func (m *member) MaxDeflection(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) MinDeflection(dir solver.Direction, combo string) (float64, error) {
	return m.query(combo)
}

func (m *member) EndForces(combo string) ([12]float64, error) {
	if err := m.model.checkCombo(combo); err != nil {
		return [12]float64{}, err
	}
	return [12]float64{}, nil
}

// quad implements solver.Quad with zeroed stress and moment surfaces.
type quad struct {
	model *Model
	def   QuadDef
}

func (q *quad) Name() string { return q.def.Name }

func (q *quad) Membrane(xi, eta float64, combo string) ([3]float64, error) {
	if err := q.model.checkCombo(combo); err != nil {
		return [3]float64{}, err
	}
	return [3]float64{}, nil
}

func (q *quad) Moment(xi, eta float64, combo string) ([3]float64, error) {
	if err := q.model.checkCombo(combo); err != nil {
		return [3]float64{}, err
	}
	return [3]float64{}, nil
}
