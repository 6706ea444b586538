package model

// FlangeSide tags which face of a wall a flange returns from.
type FlangeSide string

const (
	NearSide FlangeSide = "NS"
	FarSide  FlangeSide = "FS"
)

// WallLoadKind distinguishes in-plane shear from axial story loads.
type WallLoadKind string

const (
	WallShear WallLoadKind = "shear"
	WallAxial WallLoadKind = "axial"
)

// WallMaterial is a material applied to a rectangular region of a wall.
// Nil bounds mean the region extends to the wall edge.
type WallMaterial struct {
	Name string

	ElasticModulus float64 // E (MPa)
	ShearModulus   float64 // G (MPa)
	PoissonsRatio  float64
	Density        float64 // kg/m³
	Thickness      float64 // m

	XStart, XEnd *float64
	YStart, YEnd *float64
}

// Validate checks the wall material definition.
func (m WallMaterial) Validate() error {
	if m.Name == "" {
		return validationErrorf("wall material must have a name")
	}
	if m.ElasticModulus <= 0 {
		return validationErrorf("wall material elastic modulus must be positive, got %g", m.ElasticModulus)
	}
	if m.Thickness <= 0 {
		return validationErrorf("wall material thickness must be positive, got %g", m.Thickness)
	}
	return nil
}

// WallOpening is a rectangular opening (door, window) in a wall. Tie is
// an optional AE stiffness for a tie above the opening.
type WallOpening struct {
	Name string

	XStart float64 // m
	YStart float64 // m
	Width  float64 // m
	Height float64 // m

	Tie *float64
}

// Validate checks the opening definition.
func (o WallOpening) Validate() error {
	if o.Name == "" {
		return validationErrorf("wall opening must have a name")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return validationErrorf("wall opening must have positive width and height, got %gx%g", o.Width, o.Height)
	}
	return nil
}

// WallFlange is a return-wall segment stiffening a wall edge.
type WallFlange struct {
	Thickness float64 // m
	Width     float64 // m
	X         float64 // m, position along the wall
	YStart    float64 // m
	YEnd      float64 // m

	MaterialName string
	Side         FlangeSide
}

// Validate checks the flange definition.
func (f WallFlange) Validate() error {
	if f.Side != NearSide && f.Side != FarSide {
		return validationErrorf("wall flange side must be %q or %q, got %q", NearSide, FarSide, f.Side)
	}
	if f.MaterialName == "" {
		return validationErrorf("wall flange must reference a material")
	}
	return nil
}

// WallSupport restrains a wall along a horizontal line at an elevation.
// Nil bounds support the full wall length.
type WallSupport struct {
	Elevation    float64 // m
	XStart, XEnd *float64
}

// WallStory names a floor level of a wall at an elevation.
type WallStory struct {
	Name         string
	Elevation    float64 // m
	XStart, XEnd *float64
}

// Validate checks the story definition.
func (s WallStory) Validate() error {
	if s.Name == "" {
		return validationErrorf("wall story must have a name")
	}
	return nil
}

// WallLoad is a shear or axial force applied at a story.
type WallLoad struct {
	LoadID int
	Group  string

	Story string
	Force float64 // kN
	Kind  WallLoadKind
}

// Validate checks the wall load definition.
func (l WallLoad) Validate() error {
	if l.Kind != WallShear && l.Kind != WallAxial {
		return validationErrorf("wall load kind must be %q or %q, got %q", WallShear, WallAxial, l.Kind)
	}
	if l.Story == "" {
		return validationErrorf("wall load must reference a story")
	}
	if l.Group == "" {
		return validationErrorf("wall load must belong to a load group")
	}
	return nil
}

// ShearWall is a planar lateral-resisting wall described by overall
// geometry plus regional materials, openings, flanges, supports, stories
// and per-story loads.
type ShearWall struct {
	Name   string
	Length float64 // m, overall
	Height float64 // m, overall

	MeshSize float64 // m, desired element size
	KyMod    float64 // stiffness reduction factor for cracking

	Materials []WallMaterial
	Openings  []WallOpening
	Flanges   []WallFlange
	Supports  []WallSupport
	Stories   []WallStory
	Loads     []WallLoad

	IncludePierAnalysis         bool
	IncludeCouplingBeamAnalysis bool
}

// DefaultMeshSize and DefaultKyMod fill the customary analysis defaults.
const (
	DefaultMeshSize = 1.0
	DefaultKyMod    = 0.35
)

// Validate checks the wall and all of its sub-entities.
func (w ShearWall) Validate() error {
	if w.Name == "" {
		return validationErrorf("shear wall must have a name")
	}
	if w.Length <= 0 || w.Height <= 0 {
		return validationErrorf("shear wall %q must have positive length and height, got %gx%g", w.Name, w.Length, w.Height)
	}
	for i, m := range w.Materials {
		if err := m.Validate(); err != nil {
			return validationErrorf("shear wall %q material %d: %v", w.Name, i+1, err)
		}
	}
	for i, o := range w.Openings {
		if err := o.Validate(); err != nil {
			return validationErrorf("shear wall %q opening %d: %v", w.Name, i+1, err)
		}
	}
	for i, f := range w.Flanges {
		if err := f.Validate(); err != nil {
			return validationErrorf("shear wall %q flange %d: %v", w.Name, i+1, err)
		}
	}
	for i, s := range w.Stories {
		if err := s.Validate(); err != nil {
			return validationErrorf("shear wall %q story %d: %v", w.Name, i+1, err)
		}
	}
	for i, l := range w.Loads {
		if err := l.Validate(); err != nil {
			return validationErrorf("shear wall %q load %d: %v", w.Name, i+1, err)
		}
	}
	return nil
}
