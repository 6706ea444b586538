package memsolver

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gostral/internal/solver"
)

// WallMaterial is a recorded wall material region.
type WallMaterial struct {
	Name                       string
	E, G, Nu, Rho, T           float64
	XStart, XEnd, YStart, YEnd *float64
}

// WallOpening is a recorded wall opening.
type WallOpening struct {
	Name                          string
	XStart, YStart, Width, Height float64
	Tie                           *float64
}

// WallFlange is a recorded wall flange.
type WallFlange struct {
	Thickness, Width, X, YStart, YEnd float64
	Material, Side                    string
}

// WallSupport is a recorded wall support line.
type WallSupport struct {
	Elevation    float64
	XStart, XEnd *float64
}

// WallStory is a recorded wall story.
type WallStory struct {
	Name         string
	Elevation    float64
	XStart, XEnd *float64
}

// WallLoad is a recorded story shear or axial load.
type WallLoad struct {
	Story string
	Force float64
	Case  string
}

// Wall implements solver.Wall. Generate builds stand-in piers and
// coupling beams from the recorded geometry: full-height strips between
// openings become piers and the band above each opening becomes a
// coupling beam. Forces and stiffness read as zero.
type Wall struct {
	length, height    float64
	meshSize, kyMod   float64
	materials         []WallMaterial
	openings          []WallOpening
	flanges           []WallFlange
	supports          []WallSupport
	stories           []WallStory
	shears            []WallLoad
	axials            []WallLoad
	comboOrder        []string
	combos            map[string]bool
	generated, solved bool

	piers     map[string]*segment
	pierOrder []string
	beams     map[string]*segment
	beamOrder []string
}

// NewWall returns an empty recording wall.
func NewWall() *Wall {
	return &Wall{
		combos: map[string]bool{},
		piers:  map[string]*segment{},
		beams:  map[string]*segment{},
	}
}

func (w *Wall) SetGeometry(length, height, meshSize, kyMod float64) {
	w.length, w.height = length, height
	w.meshSize, w.kyMod = meshSize, kyMod
}

func (w *Wall) AddMaterial(name string, e, g, nu, rho, t float64, xStart, xEnd, yStart, yEnd *float64) {
	w.materials = append(w.materials, WallMaterial{
		Name: name, E: e, G: g, Nu: nu, Rho: rho, T: t,
		XStart: xStart, XEnd: xEnd, YStart: yStart, YEnd: yEnd,
	})
}

func (w *Wall) AddOpening(name string, xStart, yStart, width, height float64, tie *float64) {
	w.openings = append(w.openings, WallOpening{
		Name: name, XStart: xStart, YStart: yStart, Width: width, Height: height, Tie: tie,
	})
}

func (w *Wall) AddFlange(thickness, width, x, yStart, yEnd float64, material, side string) {
	w.flanges = append(w.flanges, WallFlange{
		Thickness: thickness, Width: width, X: x, YStart: yStart, YEnd: yEnd,
		Material: material, Side: side,
	})
}

func (w *Wall) AddSupport(elevation float64, xStart, xEnd *float64) {
	w.supports = append(w.supports, WallSupport{Elevation: elevation, XStart: xStart, XEnd: xEnd})
}

func (w *Wall) AddStory(name string, elevation float64, xStart, xEnd *float64) {
	w.stories = append(w.stories, WallStory{Name: name, Elevation: elevation, XStart: xStart, XEnd: xEnd})
}

func (w *Wall) AddShear(story string, force float64, loadCase string) {
	w.shears = append(w.shears, WallLoad{Story: story, Force: force, Case: loadCase})
	w.recordCombo(loadCase)
}

func (w *Wall) AddAxial(story string, force float64, loadCase string) {
	w.axials = append(w.axials, WallLoad{Story: story, Force: force, Case: loadCase})
	w.recordCombo(loadCase)
}

// The wall engine exposes one combination per load case on its internal
// model, so load cases double as combination names here.
func (w *Wall) recordCombo(loadCase string) {
	if !w.combos[loadCase] {
		w.combos[loadCase] = true
		w.comboOrder = append(w.comboOrder, loadCase)
	}
}

func (w *Wall) Generate() error {
	if w.length <= 0 || w.height <= 0 {
		return fmt.Errorf("memsolver: wall geometry not set")
	}
	w.piers = map[string]*segment{}
	w.pierOrder = nil
	w.beams = map[string]*segment{}
	w.beamOrder = nil

	openings := append([]WallOpening(nil), w.openings...)
	sort.Slice(openings, func(i, j int) bool { return openings[i].XStart < openings[j].XStart })

	cursor := 0.0
	pierNo := 0
	addPier := func(x, width float64) {
		if width <= 0 {
			return
		}
		pierNo++
		name := fmt.Sprintf("P%d", pierNo)
		w.piers[name] = &segment{wall: w, name: name, x: x, y: 0, width: width, height: w.height}
		w.pierOrder = append(w.pierOrder, name)
	}
	for i, o := range openings {
		addPier(cursor, o.XStart-cursor)
		cursor = o.XStart + o.Width
		if band := w.height - (o.YStart + o.Height); band > 0 {
			name := fmt.Sprintf("B%d", i+1)
			w.beams[name] = &segment{
				wall: w, name: name,
				x: o.XStart, y: o.YStart + o.Height,
				width: o.Width, height: band,
			}
			w.beamOrder = append(w.beamOrder, name)
		}
	}
	addPier(cursor, w.length-cursor)

	w.generated = true
	return nil
}

func (w *Wall) AnalyzeLinear(opts solver.Options) error {
	if !w.generated {
		return fmt.Errorf("memsolver: wall has not been generated")
	}
	if len(w.comboOrder) == 0 {
		w.recordCombo("Combo 1")
	}
	w.solved = true
	return nil
}

func (w *Wall) ComboNames() []string { return append([]string(nil), w.comboOrder...) }

func (w *Wall) StoryNames() []string {
	names := make([]string, len(w.stories))
	for i, s := range w.stories {
		names[i] = s.Name
	}
	return names
}

func (w *Wall) Stiffness(story string) (float64, error) {
	if !w.solved {
		return 0, fmt.Errorf("memsolver: wall has not been solved")
	}
	for _, s := range w.stories {
		if s.Name == story {
			return 0, nil
		}
	}
	return 0, fmt.Errorf("memsolver: unknown story %q", story)
}

func (w *Wall) PierNames() []string { return append([]string(nil), w.pierOrder...) }

func (w *Wall) Pier(name string) (solver.Segment, bool) {
	s, ok := w.piers[name]
	return s, ok
}

func (w *Wall) CouplingBeamNames() []string { return append([]string(nil), w.beamOrder...) }

func (w *Wall) CouplingBeam(name string) (solver.Segment, bool) {
	s, ok := w.beams[name]
	return s, ok
}

// Materials returns the recorded material regions.
func (w *Wall) Materials() []WallMaterial { return append([]WallMaterial(nil), w.materials...) }

// Openings returns the recorded openings.
func (w *Wall) Openings() []WallOpening { return append([]WallOpening(nil), w.openings...) }

// Flanges returns the recorded flanges.
func (w *Wall) Flanges() []WallFlange { return append([]WallFlange(nil), w.flanges...) }

// SupportLines returns the recorded support lines.
func (w *Wall) SupportLines() []WallSupport { return append([]WallSupport(nil), w.supports...) }

// Stories returns the recorded stories.
func (w *Wall) Stories() []WallStory { return append([]WallStory(nil), w.stories...) }

// Shears returns the recorded story shear loads.
func (w *Wall) Shears() []WallLoad { return append([]WallLoad(nil), w.shears...) }

// Axials returns the recorded story axial loads.
func (w *Wall) Axials() []WallLoad { return append([]WallLoad(nil), w.axials...) }

// Geometry returns length, height, mesh size and the ky modification
// factor as recorded.
func (w *Wall) Geometry() (length, height, meshSize, kyMod float64) {
	return w.length, w.height, w.meshSize, w.kyMod
}

type segment struct {
	wall          *Wall
	name          string
	x, y          float64
	width, height float64
}

func (s *segment) Name() string    { return s.name }
func (s *segment) X() float64      { return s.x }
func (s *segment) Y() float64      { return s.y }
func (s *segment) Width() float64  { return s.width }
func (s *segment) Height() float64 { return s.height }

func (s *segment) SumForces(combo string) (p, m, v, ratio float64, err error) {
	if !s.wall.solved {
		return 0, 0, 0, 0, fmt.Errorf("memsolver: wall has not been solved")
	}
	if !s.wall.combos[combo] {
		return 0, 0, 0, 0, fmt.Errorf("memsolver: unknown load combination %q", combo)
	}
	return 0, 0, 0, 0, nil
}
