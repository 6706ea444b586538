package model

// Material holds the mechanical properties of a structural material.
// Referenced by Section and Plate via its key in the model's material map.
type Material struct {
	Name string

	ElasticModulus float64  // E (MPa)
	ShearModulus   *float64 // G (MPa), derived from E and ν when absent
	Density        float64  // ρ (kg/m³)
	PoissonsRatio  float64  // ν

	YieldStrength      *float64 // fy (MPa)
	UltimateStrength   *float64 // fu (MPa)
	ThermalCoefficient *float64 // α (1/°C)
}

// ShearOrDerived returns the shear modulus, deriving G = E / (2(1+ν))
// when no explicit value was supplied.
func (m Material) ShearOrDerived() float64 {
	if m.ShearModulus != nil {
		return *m.ShearModulus
	}
	return m.ElasticModulus / (2 * (1 + m.PoissonsRatio))
}

// Yield returns the yield strength, or zero when none was supplied.
func (m Material) Yield() float64 {
	if m.YieldStrength != nil {
		return *m.YieldStrength
	}
	return 0
}

// Validate checks the material definition.
func (m Material) Validate() error {
	if m.ElasticModulus <= 0 {
		return validationErrorf("elastic modulus must be positive, got %g", m.ElasticModulus)
	}
	if m.PoissonsRatio < 0 {
		return validationErrorf("poissons ratio must be non-negative, got %g", m.PoissonsRatio)
	}
	if m.Density < 0 {
		return validationErrorf("density must be non-negative, got %g", m.Density)
	}
	return nil
}

// Section holds the geometric properties of a member cross-section.
type Section struct {
	Name string

	Area       float64  // A (m²)
	Iz         float64  // second moment about the strong axis (m⁴)
	Iy         float64  // second moment about the weak axis (m⁴)
	J          *float64 // torsion constant (m⁴), 0 when absent
	MaterialID string
}

// Torsion returns the torsion constant, defaulting to 0 when unset.
func (s Section) Torsion() float64 {
	if s.J != nil {
		return *s.J
	}
	return 0
}

// Validate checks the section definition.
func (s Section) Validate() error {
	if s.Area <= 0 {
		return validationErrorf("section area must be positive, got %g", s.Area)
	}
	if s.MaterialID == "" {
		return validationErrorf("section must reference a material")
	}
	return nil
}

// Float returns a pointer to v, for filling optional fields in literals.
func Float(v float64) *float64 { return &v }
