// Package model defines the structural model schema: nodes, members,
// plates, materials, sections, supports, loads, load combinations and
// shear walls, keyed by caller-assigned identifiers. All entities are
// value records validated on construction and read-only afterwards.
package model

import "slices"

// Model is the aggregate root. Entities reference each other by key;
// those cross-references are resolved during translation, not here.
type Model struct {
	Settings Settings

	Nodes     map[string]Node
	Materials map[string]Material
	Sections  map[string]Section
	Members   map[string]Member
	Supports  map[string]Support

	Plates map[string]Plate
	// PlateOrder records plate definition order. Pressure loads address
	// plates by 1-based ordinal, which a Go map cannot preserve on its own.
	PlateOrder []string

	PointLoads       map[string]PointLoad
	DistributedLoads map[string]DistributedLoad
	AreaLoads        map[string]Pressure
	SelfWeight       map[string]SelfWeight
	LoadCombinations map[string]LoadCombination

	ShearWalls map[string]ShearWall
}

// New returns an empty model with default settings.
func New() *Model {
	return &Model{
		Settings:         DefaultSettings(),
		Nodes:            map[string]Node{},
		Materials:        map[string]Material{},
		Sections:         map[string]Section{},
		Members:          map[string]Member{},
		Supports:         map[string]Support{},
		Plates:           map[string]Plate{},
		PointLoads:       map[string]PointLoad{},
		DistributedLoads: map[string]DistributedLoad{},
		AreaLoads:        map[string]Pressure{},
		SelfWeight:       map[string]SelfWeight{},
		LoadCombinations: map[string]LoadCombination{},
		ShearWalls:       map[string]ShearWall{},
	}
}

// AddPlate stores a plate and records its definition order.
func (m *Model) AddPlate(id string, p Plate) {
	if _, ok := m.Plates[id]; !ok {
		m.PlateOrder = append(m.PlateOrder, id)
	}
	m.Plates[id] = p
}

// OrderedPlates returns plate keys in definition order. When PlateOrder
// was not maintained (models built by map literal), keys are sorted so
// ordinal references stay deterministic.
func (m *Model) OrderedPlates() []string {
	if len(m.PlateOrder) == len(m.Plates) {
		return m.PlateOrder
	}
	keys := make([]string, 0, len(m.Plates))
	for k := range m.Plates {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Validate validates every entity in the model. It checks fields only;
// it does not verify that cross-references resolve.
func (m *Model) Validate() error {
	for id, mat := range m.Materials {
		if err := mat.Validate(); err != nil {
			return validationErrorf("material %q: %v", id, err)
		}
	}
	for id, s := range m.Sections {
		if err := s.Validate(); err != nil {
			return validationErrorf("section %q: %v", id, err)
		}
	}
	for id, mem := range m.Members {
		if err := mem.Validate(); err != nil {
			return validationErrorf("member %q: %v", id, err)
		}
	}
	for id, p := range m.Plates {
		if err := p.Validate(); err != nil {
			return validationErrorf("plate %q: %v", id, err)
		}
	}
	for id, s := range m.Supports {
		if err := s.Validate(); err != nil {
			return validationErrorf("support %q: %v", id, err)
		}
	}
	for id, l := range m.PointLoads {
		if err := l.Validate(); err != nil {
			return validationErrorf("point load %q: %v", id, err)
		}
	}
	for id, l := range m.DistributedLoads {
		if err := l.Validate(); err != nil {
			return validationErrorf("distributed load %q: %v", id, err)
		}
	}
	for id, l := range m.AreaLoads {
		if err := l.Validate(); err != nil {
			return validationErrorf("area load %q: %v", id, err)
		}
	}
	for id, l := range m.SelfWeight {
		if err := l.Validate(); err != nil {
			return validationErrorf("self weight %q: %v", id, err)
		}
	}
	for id, c := range m.LoadCombinations {
		if err := c.Validate(); err != nil {
			return validationErrorf("load combination %q: %v", id, err)
		}
	}
	for id, w := range m.ShearWalls {
		if err := w.Validate(); err != nil {
			return validationErrorf("shear wall %q: %v", id, err)
		}
	}
	return nil
}
