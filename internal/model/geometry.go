package model

import "math"

// Node is a point in 3D space. Its identity is the caller-assigned key
// in the model's node map.
type Node struct {
	X float64 // m
	Y float64 // m
	Z float64 // m
}

// DistanceTo returns the Euclidean distance to another node.
func (n Node) DistanceTo(o Node) float64 {
	dx, dy, dz := o.X-n.X, o.Y-n.Y, o.Z-n.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Member is a frame element between two nodes. Fixity codes are 6-character
// strings, one character per degree of freedom in [Dx,Dy,Dz,Rx,Ry,Rz]
// order, with 'R' meaning released and any other character fixed. Codes
// shorter than 6 characters produce no releases. Note this is a separate
// encoding from Support.RestraintCode.
type Member struct {
	Type string // "beam" or "column" (informational)

	NodeA     string
	NodeB     string
	SectionID string
	Rotation  float64 // degrees about the member axis

	FixityA string
	FixityB string

	// End offsets, kept as strings as delivered by upstream data.
	OffsetAX, OffsetAY, OffsetAZ string
	OffsetBX, OffsetBY, OffsetBZ string

	// Rotational end stiffness multipliers
	StiffnessARy, StiffnessARz float64
	StiffnessBRy, StiffnessBRz float64
}

// Validate checks the member definition.
func (m Member) Validate() error {
	if m.NodeA == "" || m.NodeB == "" {
		return validationErrorf("member must reference two nodes")
	}
	if m.SectionID == "" {
		return validationErrorf("member must reference a section")
	}
	return nil
}

// Plate is a shell element defined by an ordered list of corner nodes.
// Only 4-node quadrilaterals translate; other counts are skipped with a
// warning during translation, not rejected here.
type Plate struct {
	Nodes      []string
	MaterialID string

	Thickness         float64 // m
	MembraneThickness *float64
	BendingThickness  *float64
}

// Validate checks the plate definition.
func (p Plate) Validate() error {
	if len(p.Nodes) == 0 {
		return validationErrorf("plate must reference at least one node")
	}
	if p.MaterialID == "" {
		return validationErrorf("plate must reference a material")
	}
	if p.Thickness <= 0 {
		return validationErrorf("plate thickness must be positive, got %g", p.Thickness)
	}
	return nil
}

// Support restrains a node. The restraint code is a 6-character string in
// [Dx,Dy,Dz,Rx,Ry,Rz] order where 'T' (case-insensitive) restrains the
// DOF and any other character leaves it free. The six displacement values
// are prescribed settlements.
type Support struct {
	Node          string
	RestraintCode string

	TX, TY, TZ float64 // prescribed translations (m)
	RX, RY, RZ float64 // prescribed rotations (rad)
}

// Validate checks the support definition.
func (s Support) Validate() error {
	if s.Node == "" {
		return validationErrorf("support must reference a node")
	}
	if s.RestraintCode == "" {
		return validationErrorf("support must have a restraint code")
	}
	return nil
}
