package model

// Axes selects the frame a load's directions refer to.
type Axes string

const (
	AxesGlobal Axes = "global"
	AxesLocal  Axes = "local"
)

func (a Axes) valid() bool { return a == AxesGlobal || a == AxesLocal }

// LoadKind distinguishes concentrated forces from concentrated moments.
type LoadKind string

const (
	LoadForce  LoadKind = "force"
	LoadMoment LoadKind = "moment"
)

// PointLoad is a concentrated force or moment applied at a node or along
// a member. Node and Member references are mutually exclusive.
type PointLoad struct {
	LoadID int
	Group  string

	Kind   LoadKind
	Node   string
	Member string

	X, Y, Z float64 // magnitudes per global axis (kN or kN·m)
}

// Validate checks the point load definition.
func (p PointLoad) Validate() error {
	if p.Kind != LoadForce && p.Kind != LoadMoment {
		return validationErrorf("point load kind must be %q or %q, got %q", LoadForce, LoadMoment, p.Kind)
	}
	if p.Node != "" && p.Member != "" {
		return validationErrorf("point load cannot reference both a node and a member")
	}
	if p.Group == "" {
		return validationErrorf("point load must belong to a load group")
	}
	return nil
}

// DistributedLoad is a linearly varying line load on a member. Positions
// are percentages of the member length measured from end A.
type DistributedLoad struct {
	LoadID int
	Group  string
	Member string
	Axes   Axes

	XA, YA, ZA float64 // start magnitudes (kN/m)
	XB, YB, ZB float64 // end magnitudes (kN/m)

	PositionA float64 // % of member length, start
	PositionB float64 // % of member length, end
}

// Validate checks the distributed load definition.
func (d DistributedLoad) Validate() error {
	if d.Member == "" {
		return validationErrorf("distributed load must reference a member")
	}
	if !d.Axes.valid() {
		return validationErrorf("distributed load axes must be %q or %q, got %q", AxesGlobal, AxesLocal, d.Axes)
	}
	if d.PositionA < 0 || d.PositionA > 100 || d.PositionB < 0 || d.PositionB > 100 {
		return validationErrorf("distributed load positions must be within 0..100, got %g..%g", d.PositionA, d.PositionB)
	}
	if d.PositionB < d.PositionA {
		return validationErrorf("distributed load end position %g precedes start position %g", d.PositionB, d.PositionA)
	}
	if d.Group == "" {
		return validationErrorf("distributed load must belong to a load group")
	}
	return nil
}

// Pressure is a uniform surface load on a plate. PlateID is a 1-based
// ordinal into the plate definition order, not a key: reordering the
// plates changes its meaning. Kept for compatibility with upstream data.
// Only the Z magnitude is applied during translation.
type Pressure struct {
	LoadID  int
	Group   string
	PlateID int
	Axes    Axes

	X, Y, Z float64 // kPa
}

// Validate checks the pressure load definition.
func (p Pressure) Validate() error {
	if p.PlateID < 1 {
		return validationErrorf("pressure plate ordinal must be 1-based, got %d", p.PlateID)
	}
	if !p.Axes.valid() {
		return validationErrorf("pressure axes must be %q or %q, got %q", AxesGlobal, AxesLocal, p.Axes)
	}
	if p.Group == "" {
		return validationErrorf("pressure must belong to a load group")
	}
	return nil
}

// SelfWeight applies gravity along the given unit multipliers for every
// member carrying mass.
type SelfWeight struct {
	X, Y, Z float64 // gravity direction multipliers
	Group   string
}

// Validate checks the self-weight definition.
func (s SelfWeight) Validate() error {
	if s.Group == "" {
		return validationErrorf("self weight must belong to a load group")
	}
	return nil
}

// Factor is one (load group, scale factor) entry of a load combination.
type Factor struct {
	Group string
	Value float64
}

// LoadCombination scales load groups into one named combination. The
// factor list is open-ended: the set of load groups is determined by
// whatever the caller defined elsewhere, so anything beyond Name and
// Criteria lives in Factors, in insertion order.
type LoadCombination struct {
	Name     string
	Criteria string
	Factors  []Factor
}

// Validate checks the load combination definition.
func (c LoadCombination) Validate() error {
	if c.Name == "" {
		return validationErrorf("load combination must have a name")
	}
	for _, f := range c.Factors {
		if f.Group == "" {
			return validationErrorf("load combination %q has a factor without a load group", c.Name)
		}
	}
	return nil
}
