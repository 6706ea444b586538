package results

import "github.com/alexiusacademia/gostral/internal/solver"

// The wall engine's stiffness query is driven with a nominal unit test
// force; the derived displacement is that force over the stiffness.
const wallTestForce = 100.0

// PierResult holds the summed forces of one vertical wall segment.
type PierResult struct {
	ID string

	X      float64
	Y      float64
	Width  float64
	Height float64

	Axial          float64 // P
	Moment         float64 // M
	Shear          float64 // V
	ShearSpanRatio float64 // M/VL
}

// CouplingBeamResult holds the summed forces of one horizontal wall
// segment spanning above or between openings.
type CouplingBeamResult struct {
	ID string

	X      float64
	Y      float64
	Length float64
	Height float64

	Axial          float64 // P
	Moment         float64 // M
	Shear          float64 // V
	ShearSpanRatio float64 // M/VH
}

// StoryStiffness holds the lateral stiffness of a wall at one story.
// Extraction failures are recorded as zero stiffness with a zero derived
// displacement.
type StoryStiffness struct {
	Story           string
	Stiffness       float64
	TestForce       float64
	MaxDisplacement float64
}

// ShearWallResults aggregates pier, coupling-beam and story-stiffness
// results of one wall under one load combination.
type ShearWallResults struct {
	WallID string
	Combo  string

	Length float64
	Height float64

	Piers         map[string]PierResult
	CouplingBeams map[string]CouplingBeamResult
	Stories       map[string]StoryStiffness
}

// ShearWallResultsFrom walks a solved wall handle and reshapes its pier,
// coupling-beam and story collections. Segment force extraction errors
// propagate; story stiffness errors degrade to a zero placeholder.
func ShearWallResultsFrom(w solver.Wall, wallID, combo string) (*ShearWallResults, error) {
	r := &ShearWallResults{
		WallID:        wallID,
		Combo:         combo,
		Piers:         map[string]PierResult{},
		CouplingBeams: map[string]CouplingBeamResult{},
		Stories:       map[string]StoryStiffness{},
	}

	for _, name := range w.PierNames() {
		pier, ok := w.Pier(name)
		if !ok {
			continue
		}
		p, m, v, ratio, err := pier.SumForces(combo)
		if err != nil {
			return nil, err
		}
		r.Piers[name] = PierResult{
			ID: name,
			X:  pier.X(), Y: pier.Y(),
			Width: pier.Width(), Height: pier.Height(),
			Axial: p, Moment: m, Shear: v, ShearSpanRatio: ratio,
		}
	}

	for _, name := range w.CouplingBeamNames() {
		beam, ok := w.CouplingBeam(name)
		if !ok {
			continue
		}
		p, m, v, ratio, err := beam.SumForces(combo)
		if err != nil {
			return nil, err
		}
		r.CouplingBeams[name] = CouplingBeamResult{
			ID: name,
			X:  beam.X(), Y: beam.Y(),
			Length: beam.Width(), Height: beam.Height(),
			Axial: p, Moment: m, Shear: v, ShearSpanRatio: ratio,
		}
	}

	for _, story := range w.StoryNames() {
		k, err := w.Stiffness(story)
		if err != nil {
			r.Stories[story] = StoryStiffness{Story: story, TestForce: wallTestForce}
			continue
		}
		s := StoryStiffness{Story: story, Stiffness: k, TestForce: wallTestForce}
		if k > 0 {
			s.MaxDisplacement = wallTestForce / k
		}
		r.Stories[story] = s
	}

	return r, nil
}
