package model

// Units holds the unit labels the model's numeric values are expressed
// in. The translator forwards values verbatim; units are metadata.
type Units struct {
	Length           string
	SectionLength    string
	MaterialStrength string
	Density          string
	Force            string
	Moment           string
	Pressure         string
	Mass             string
	Translation      string
	Stress           string
}

// Settings holds model-wide options.
type Settings struct {
	Units           Units
	Precision       string
	PrecisionValues int
	VerticalAxis    string
	MemberOffsets   string // axis frame for member offsets
	SolverTimeout   int    // seconds

	SmoothPlateNodalResults bool
	AutoStabilizeModel      bool
	OnlyUserCombinations    bool
}

// DefaultSettings returns the customary metric defaults.
func DefaultSettings() Settings {
	return Settings{
		Units: Units{
			Length:           "m",
			SectionLength:    "mm",
			MaterialStrength: "mpa",
			Density:          "kg/m3",
			Force:            "kn",
			Moment:           "kn-m",
			Pressure:         "kpa",
			Mass:             "kg",
			Translation:      "mm",
			Stress:           "mpa",
		},
		Precision:               "fixed",
		PrecisionValues:         3,
		VerticalAxis:            "Z",
		MemberOffsets:           "local",
		SolverTimeout:           600,
		SmoothPlateNodalResults: true,
	}
}
