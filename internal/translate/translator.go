// Package translate maps a structural model onto the external solver's
// input schema, entity by entity, and reshapes the solver's populated
// object graph back into result records. Translation is best-effort:
// unresolvable load references and malformed plates are reported as
// warnings and skipped rather than aborting the run.
package translate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/alexiusacademia/gostral/internal/model"
	"github.com/alexiusacademia/gostral/internal/results"
	"github.com/alexiusacademia/gostral/internal/solver"
)

// AnalysisKind selects one of the solver's analysis entry points.
type AnalysisKind string

const (
	Linear    AnalysisKind = "linear"
	PDelta    AnalysisKind = "pdelta"
	Nonlinear AnalysisKind = "nonlinear"
)

// ErrNotTranslated is returned by analysis and result methods called
// before Translate.
var ErrNotTranslated = errors.New("no model has been translated yet")

// Report is the outcome of a translation: the populated solver model and
// the non-fatal diagnostics collected along the way.
type Report struct {
	Model    solver.Model
	Warnings []string
}

// Translator populates one external solver model from one source model.
// It is single-use and not safe for concurrent use: it exclusively owns
// the solver handles it creates.
type Translator struct {
	engine solver.Engine

	source *model.Model
	target solver.Model

	walls     map[string]solver.Wall
	wallOrder []string
}

// New returns a translator backed by the given solver engine.
func New(engine solver.Engine) *Translator {
	return &Translator{
		engine: engine,
		walls:  map[string]solver.Wall{},
	}
}

// Translate maps the source model onto a fresh solver model in
// dependency order: materials, sections, nodes, supports, members,
// plates, loads, load combinations, shear walls. Broken cross-references
// in the source model (a member naming a missing section, for example)
// are fatal; per-load resolution failures are warnings on the report.
func (t *Translator) Translate(m *model.Model) (*Report, error) {
	t.source = m
	t.target = t.engine.NewModel()
	rep := &Report{Model: t.target}

	steps := []func(*Report) error{
		t.translateMaterials,
		t.translateSections,
		t.translateNodes,
		t.translateSupports,
		t.translateMembers,
		t.translatePlates,
		t.translateLoads,
		t.translateLoadCombinations,
		t.translateShearWalls,
	}
	for _, step := range steps {
		if err := step(rep); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (t *Translator) translateMaterials(*Report) error {
	for _, id := range sortedKeys(t.source.Materials) {
		mat := t.source.Materials[id]
		err := t.target.AddMaterial(id,
			mat.ElasticModulus,
			mat.ShearOrDerived(),
			mat.PoissonsRatio,
			mat.Density,
			mat.Yield(),
		)
		if err != nil {
			return fmt.Errorf("material %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateSections(*Report) error {
	for _, id := range sortedKeys(t.source.Sections) {
		sec := t.source.Sections[id]
		if err := t.target.AddSection(id, sec.Area, sec.Iy, sec.Iz, sec.Torsion()); err != nil {
			return fmt.Errorf("section %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateNodes(*Report) error {
	for _, id := range sortedKeys(t.source.Nodes) {
		n := t.source.Nodes[id]
		if err := t.target.AddNode(id, n.X, n.Y, n.Z); err != nil {
			return fmt.Errorf("node %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateSupports(*Report) error {
	for _, id := range sortedKeys(t.source.Supports) {
		sup := t.source.Supports[id]
		if err := t.target.DefSupport(sup.Node, ParseRestraints(sup.RestraintCode)); err != nil {
			return fmt.Errorf("support %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateMembers(*Report) error {
	for _, id := range sortedKeys(t.source.Members) {
		mem := t.source.Members[id]
		sec, ok := t.source.Sections[mem.SectionID]
		if !ok {
			return fmt.Errorf("member %q references unknown section %q", id, mem.SectionID)
		}
		err := t.target.AddMember(id, mem.NodeA, mem.NodeB, sec.MaterialID, mem.SectionID, mem.Rotation)
		if err != nil {
			return fmt.Errorf("member %q: %w", id, err)
		}

		if rel, ok := ParseReleases(mem.FixityA); ok && rel.Any() {
			if err := t.target.DefReleases(id, solver.EndI, rel); err != nil {
				return fmt.Errorf("member %q releases: %w", id, err)
			}
		}
		if rel, ok := ParseReleases(mem.FixityB); ok && rel.Any() {
			if err := t.target.DefReleases(id, solver.EndJ, rel); err != nil {
				return fmt.Errorf("member %q releases: %w", id, err)
			}
		}
	}
	return nil
}

func (t *Translator) translatePlates(rep *Report) error {
	for _, id := range t.source.OrderedPlates() {
		p := t.source.Plates[id]
		if len(p.Nodes) != 4 {
			rep.warnf("plate %q has %d nodes; only 4-node plates are supported, skipping", id, len(p.Nodes))
			continue
		}
		err := t.target.AddQuad(id, p.Nodes[0], p.Nodes[1], p.Nodes[2], p.Nodes[3], p.Thickness, p.MaterialID)
		if err != nil {
			return fmt.Errorf("plate %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateLoads(rep *Report) error {
	if err := t.translatePointLoads(rep); err != nil {
		return err
	}
	if err := t.translateDistributedLoads(rep); err != nil {
		return err
	}
	if err := t.translatePressures(rep); err != nil {
		return err
	}
	return t.translateSelfWeight(rep)
}

func (t *Translator) translatePointLoads(*Report) error {
	for _, id := range sortedKeys(t.source.PointLoads) {
		load := t.source.PointLoads[id]
		if load.Node == "" {
			// Member-attached point loads are not placed; only nodal
			// application is supported.
			continue
		}
		dirs := [3]solver.Direction{solver.FX, solver.FY, solver.FZ}
		if load.Kind == model.LoadMoment {
			dirs = [3]solver.Direction{solver.MX, solver.MY, solver.MZ}
		}
		for i, mag := range [3]float64{load.X, load.Y, load.Z} {
			if mag == 0 {
				continue
			}
			if err := t.target.AddNodeLoad(load.Node, dirs[i], mag, load.Group); err != nil {
				return fmt.Errorf("point load %q: %w", id, err)
			}
		}
	}
	return nil
}

func (t *Translator) translateDistributedLoads(rep *Report) error {
	for _, id := range sortedKeys(t.source.DistributedLoads) {
		load := t.source.DistributedLoads[id]
		mem, ok := t.source.Members[load.Member]
		if !ok {
			rep.warnf("could not find member %q for distributed load %q, skipping", load.Member, id)
			continue
		}
		nodeA, ok := t.source.Nodes[mem.NodeA]
		if !ok {
			return fmt.Errorf("distributed load %q: member %q references unknown node %q", id, load.Member, mem.NodeA)
		}
		nodeB, ok := t.source.Nodes[mem.NodeB]
		if !ok {
			return fmt.Errorf("distributed load %q: member %q references unknown node %q", id, load.Member, mem.NodeB)
		}

		length := nodeA.DistanceTo(nodeB)
		x1 := length * load.PositionA / 100
		x2 := length * load.PositionB / 100

		axes := [3]struct {
			w1, w2        float64
			local, global solver.Direction
		}{
			{load.XA, load.XB, solver.LocalFx, solver.FX},
			{load.YA, load.YB, solver.LocalFy, solver.FY},
			{load.ZA, load.ZB, solver.LocalFz, solver.FZ},
		}
		for _, a := range axes {
			if a.w1 == 0 && a.w2 == 0 {
				continue
			}
			dir := a.global
			if load.Axes == model.AxesLocal {
				dir = a.local
			}
			if err := t.target.AddMemberDistLoad(load.Member, dir, a.w1, a.w2, x1, x2, load.Group); err != nil {
				return fmt.Errorf("distributed load %q: %w", id, err)
			}
		}
	}
	return nil
}

func (t *Translator) translatePressures(rep *Report) error {
	plateOrder := t.source.OrderedPlates()
	for _, id := range sortedKeys(t.source.AreaLoads) {
		load := t.source.AreaLoads[id]
		if load.PlateID < 1 || load.PlateID > len(plateOrder) {
			rep.warnf("could not find plate for pressure load %q with plate ordinal %d, skipping", id, load.PlateID)
			continue
		}
		plateName := plateOrder[load.PlateID-1]

		// Only the Z magnitude is applied as a surface pressure; in-plane
		// pressure components are a known limitation of the mapping.
		if load.Z == 0 {
			continue
		}
		if err := t.target.AddQuadSurfacePressure(plateName, load.Z, load.Group); err != nil {
			// The ordinal can point at a plate that was itself skipped
			// for a bad node count; treat that like any unresolved ref.
			rep.warnf("pressure load %q targets untranslated plate %q, skipping: %v", id, plateName, err)
		}
	}
	return nil
}

func (t *Translator) translateSelfWeight(*Report) error {
	for _, id := range sortedKeys(t.source.SelfWeight) {
		sw := t.source.SelfWeight[id]
		dirs := [3]struct {
			dir    solver.Direction
			factor float64
		}{
			{solver.FX, sw.X},
			{solver.FY, sw.Y},
			{solver.FZ, sw.Z},
		}
		for _, d := range dirs {
			if d.factor == 0 {
				continue
			}
			if err := t.target.AddMemberSelfWeight(d.dir, d.factor, sw.Group); err != nil {
				return fmt.Errorf("self weight %q: %w", id, err)
			}
		}
	}
	return nil
}

func (t *Translator) translateLoadCombinations(*Report) error {
	for _, id := range sortedKeys(t.source.LoadCombinations) {
		combo := t.source.LoadCombinations[id]
		factors := make([]solver.ComboFactor, len(combo.Factors))
		for i, f := range combo.Factors {
			factors[i] = solver.ComboFactor{Group: f.Group, Value: f.Value}
		}
		if err := t.target.AddLoadCombo(id, factors); err != nil {
			return fmt.Errorf("load combination %q: %w", id, err)
		}
	}
	return nil
}

func (t *Translator) translateShearWalls(*Report) error {
	for _, id := range sortedKeys(t.source.ShearWalls) {
		src := t.source.ShearWalls[id]
		wall := t.engine.NewWall()

		meshSize := src.MeshSize
		if meshSize == 0 {
			meshSize = model.DefaultMeshSize
		}
		kyMod := src.KyMod
		if kyMod == 0 {
			kyMod = model.DefaultKyMod
		}
		wall.SetGeometry(src.Length, src.Height, meshSize, kyMod)

		for _, m := range src.Materials {
			wall.AddMaterial(m.Name, m.ElasticModulus, m.ShearModulus, m.PoissonsRatio,
				m.Density, m.Thickness, m.XStart, m.XEnd, m.YStart, m.YEnd)
		}
		for _, o := range src.Openings {
			wall.AddOpening(o.Name, o.XStart, o.YStart, o.Width, o.Height, o.Tie)
		}
		for _, f := range src.Flanges {
			wall.AddFlange(f.Thickness, f.Width, f.X, f.YStart, f.YEnd, f.MaterialName, string(f.Side))
		}
		for _, s := range src.Supports {
			wall.AddSupport(s.Elevation, s.XStart, s.XEnd)
		}
		for _, s := range src.Stories {
			wall.AddStory(s.Name, s.Elevation, s.XStart, s.XEnd)
		}
		for _, l := range src.Loads {
			switch l.Kind {
			case model.WallShear:
				wall.AddShear(l.Story, l.Force, l.Group)
			case model.WallAxial:
				wall.AddAxial(l.Story, l.Force, l.Group)
			}
		}

		if _, ok := t.walls[id]; !ok {
			t.wallOrder = append(t.wallOrder, id)
		}
		t.walls[id] = wall
	}
	return nil
}

// RunAnalysis dispatches to one of the solver's analysis entry points.
// It fails when the model has not been translated or the kind is
// unknown.
func (t *Translator) RunAnalysis(kind AnalysisKind, opts solver.Options) error {
	if t.target == nil {
		return ErrNotTranslated
	}
	switch kind {
	case Linear:
		return t.target.AnalyzeLinear(opts)
	case PDelta:
		return t.target.AnalyzePDelta(opts)
	case Nonlinear:
		return t.target.Analyze(opts)
	default:
		return fmt.Errorf("unknown analysis type: %q", kind)
	}
}

// ResultsSummary walks the solver's node and member collections for
// every load combination and condenses them into a summary. A member
// whose extraction fails for a combination is recorded as an all-zero
// placeholder and noted in the summary's warnings.
func (t *Translator) ResultsSummary() (*results.Summary, error) {
	if t.target == nil {
		return nil, ErrNotTranslated
	}
	combos := t.target.ComboNames()
	if len(combos) == 0 {
		combos = []string{"Combo 1"}
	}
	sum := results.NewSummary(combos)

	for _, name := range t.target.NodeNames() {
		node, ok := t.target.Node(name)
		if !ok {
			continue
		}
		disp := map[string]results.NodalDisplacement{}
		for _, combo := range combos {
			disp[combo] = results.NodalDisplacementFrom(node, combo)
		}
		sum.Displacements[name] = disp

		if node.Supported() {
			rxn := map[string]results.NodalReaction{}
			for _, combo := range combos {
				rxn[combo] = results.NodalReactionFrom(node, combo)
			}
			sum.Reactions[name] = rxn
		}
	}

	for _, name := range t.target.MemberNames() {
		mem, ok := t.target.Member(name)
		if !ok {
			continue
		}
		byCombo := map[string]results.MemberSummary{}
		for _, combo := range combos {
			ms, err := t.memberSummary(mem, combo)
			if err != nil {
				sum.Warnings = append(sum.Warnings,
					fmt.Sprintf("member %q results unavailable for %q, reporting zeros: %v", name, combo, err))
				ms = results.MemberSummary{}
			}
			byCombo[combo] = ms
		}
		sum.Members[name] = byCombo
	}

	return sum, nil
}

func (t *Translator) memberSummary(mem solver.Member, combo string) (results.MemberSummary, error) {
	var ms results.MemberSummary
	var err error
	read := func(f func() (float64, error)) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = f()
		return v
	}
	ms.MaxMoment = read(func() (float64, error) { return mem.MaxMoment(solver.MomentZ, combo) })
	ms.MinMoment = read(func() (float64, error) { return mem.MinMoment(solver.MomentZ, combo) })
	ms.MaxShear = read(func() (float64, error) { return mem.MaxShear(solver.LocalFy, combo) })
	ms.MinShear = read(func() (float64, error) { return mem.MinShear(solver.LocalFy, combo) })
	ms.MaxAxial = read(func() (float64, error) { return mem.MaxAxial(combo) })
	ms.MinAxial = read(func() (float64, error) { return mem.MinAxial(combo) })
	if err != nil {
		return results.MemberSummary{}, err
	}
	return ms, nil
}

// AnalyzeShearWalls meshes and analyzes every translated wall.
func (t *Translator) AnalyzeShearWalls(opts solver.Options) error {
	if t.target == nil {
		return ErrNotTranslated
	}
	for _, id := range t.wallOrder {
		wall := t.walls[id]
		if err := wall.Generate(); err != nil {
			return fmt.Errorf("shear wall %q: %w", id, err)
		}
		if err := wall.AnalyzeLinear(opts); err != nil {
			return fmt.Errorf("shear wall %q: %w", id, err)
		}
	}
	return nil
}

// WallIDs returns the translated wall identifiers in definition order.
func (t *Translator) WallIDs() []string {
	return append([]string(nil), t.wallOrder...)
}

// Wall returns the solver handle of a translated wall.
func (t *Translator) Wall(id string) (solver.Wall, bool) {
	w, ok := t.walls[id]
	return w, ok
}

// ShearWallResults reads back pier, coupling-beam and story-stiffness
// results for one wall under one combination.
func (t *Translator) ShearWallResults(wallID, combo string) (*results.ShearWallResults, error) {
	wall, ok := t.walls[wallID]
	if !ok {
		return nil, fmt.Errorf("shear wall %q not found", wallID)
	}
	r, err := results.ShearWallResultsFrom(wall, wallID, combo)
	if err != nil {
		return nil, err
	}
	if src, ok := t.source.ShearWalls[wallID]; ok {
		r.Length = src.Length
		r.Height = src.Height
	}
	return r, nil
}

func (r *Report) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
