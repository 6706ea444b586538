package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gostral/internal/model"
	"github.com/alexiusacademia/gostral/internal/sample"
	"github.com/alexiusacademia/gostral/internal/solver"
	"github.com/alexiusacademia/gostral/internal/solver/memsolver"
)

// minimalModel returns a model with one material, one section and two
// nodes 5 m apart, ready for members and loads to be attached.
func minimalModel() *model.Model {
	m := model.New()
	m.Materials["steel"] = model.Material{
		Name:           "Steel",
		ElasticModulus: 200000,
		ShearModulus:   model.Float(77000),
		PoissonsRatio:  0.3,
		Density:        7850,
	}
	m.Sections["ipe"] = model.Section{
		Name: "IPE200", Area: 0.00285, Iz: 1943e-8, Iy: 142e-8,
		J: model.Float(7e-8), MaterialID: "steel",
	}
	m.Nodes["A"] = model.Node{X: 0, Y: 0, Z: 0}
	m.Nodes["B"] = model.Node{X: 3, Y: 4, Z: 0}
	return m
}

func addMember(m *model.Model, id string) {
	m.Members[id] = model.Member{
		Type: "beam", NodeA: "A", NodeB: "B", SectionID: "ipe",
		FixityA: "FFFFFF", FixityB: "FFFFFF",
	}
}

func translateSample(t *testing.T) (*Translator, *Report, *memsolver.Model) {
	t.Helper()
	tr := New(memsolver.New())
	rep, err := tr.Translate(sample.TwoStorey())
	require.NoError(t, err)
	target, ok := rep.Model.(*memsolver.Model)
	require.True(t, ok)
	return tr, rep, target
}

func TestTranslateSampleCounts(t *testing.T) {
	_, rep, target := translateSample(t)

	assert.Len(t, target.NodeNames(), 12)
	assert.Len(t, target.MemberNames(), 16)
	assert.Len(t, target.QuadNames(), 2)
	assert.Equal(t, []string{"SLS", "ULS_1", "ULS_2"}, target.ComboNames())
	assert.Empty(t, rep.Warnings)
}

func TestTranslateSampleSupports(t *testing.T) {
	_, _, target := translateSample(t)

	fixed := solver.Restraints{DX: true, DY: true, DZ: true, RX: true, RY: true, RZ: true}
	for _, n := range []string{"1", "2", "3", "4"} {
		r, ok := target.Supports(n)
		assert.True(t, ok, "node %s should be supported", n)
		assert.Equal(t, fixed, r)
	}
	_, ok := target.Supports("5")
	assert.False(t, ok, "floor nodes carry no supports")
}

func TestTranslateSampleLoads(t *testing.T) {
	_, _, target := translateSample(t)

	assert.Len(t, target.NodeLoads(), 12)
	assert.Len(t, target.DistLoads(), 8)
	assert.Len(t, target.Pressures(), 4)
	assert.Len(t, target.SelfWeights(), 1)

	sw := target.SelfWeights()[0]
	assert.Equal(t, solver.FZ, sw.Dir)
	assert.Equal(t, -1.0, sw.Factor)
	assert.Equal(t, "Dead", sw.Case)
}

func TestTranslateComboFactorsVerbatim(t *testing.T) {
	_, _, target := translateSample(t)

	factors, ok := target.ComboFactors("ULS_2")
	require.True(t, ok)
	assert.Equal(t, []solver.ComboFactor{
		{Group: "Dead", Value: 1.35},
		{Group: "Live", Value: 1.5},
		{Group: "Wind", Value: 0.9},
	}, factors, "factors keep their definition order and values")
}

func TestTranslateDerivesShearModulus(t *testing.T) {
	m := minimalModel()
	m.Materials["steel"] = model.Material{
		Name:           "Steel",
		ElasticModulus: 200000,
		PoissonsRatio:  0.25,
		Density:        7850,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	mat, ok := target.Material("steel")
	require.True(t, ok)
	assert.InDelta(t, 80000.0, mat.G, 1e-9, "G = E / (2(1+nu))")
}

func TestTranslateDistributedLoadPositions(t *testing.T) {
	m := minimalModel()
	addMember(m, "M1")
	// A to B is a 3-4-5 triangle, so the member is 5 m long
	m.DistributedLoads["W1"] = model.DistributedLoad{
		LoadID: 1, Group: "Dead", Member: "M1", Axes: model.AxesGlobal,
		ZA: -5, ZB: -2, PositionA: 20, PositionB: 60,
	}

	tr := New(memsolver.New())
	rep, err := tr.Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	loads := target.DistLoads()
	require.Len(t, loads, 1)
	assert.Equal(t, solver.FZ, loads[0].Dir)
	assert.InDelta(t, 1.0, loads[0].X1, 1e-9, "20%% of 5 m")
	assert.InDelta(t, 3.0, loads[0].X2, 1e-9, "60%% of 5 m")
	assert.Equal(t, -5.0, loads[0].W1)
	assert.Equal(t, -2.0, loads[0].W2)
}

func TestTranslateDistributedLoadLocalAxes(t *testing.T) {
	m := minimalModel()
	addMember(m, "M1")
	m.DistributedLoads["W1"] = model.DistributedLoad{
		LoadID: 1, Group: "Dead", Member: "M1", Axes: model.AxesLocal,
		YA: -3, YB: -3, PositionA: 0, PositionB: 100,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	loads := target.DistLoads()
	require.Len(t, loads, 1)
	assert.Equal(t, solver.LocalFy, loads[0].Dir)
}

func TestTranslateDistributedLoadUnknownMemberWarns(t *testing.T) {
	m := minimalModel()
	m.DistributedLoads["W1"] = model.DistributedLoad{
		LoadID: 1, Group: "Dead", Member: "GHOST", Axes: model.AxesGlobal,
		ZA: -5, ZB: -5, PositionA: 0, PositionB: 100,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	assert.Empty(t, target.DistLoads())
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "GHOST")
}

func TestTranslatePointLoadPlacement(t *testing.T) {
	m := minimalModel()
	m.PointLoads["P1"] = model.PointLoad{
		LoadID: 1, Group: "Live", Kind: model.LoadForce, Node: "A", X: 2, Z: -10,
	}
	m.PointLoads["P2"] = model.PointLoad{
		LoadID: 2, Group: "Live", Kind: model.LoadForce, Node: "B",
	}
	m.PointLoads["P3"] = model.PointLoad{
		LoadID: 3, Group: "Live", Kind: model.LoadForce, Member: "M1", Z: -10,
	}
	m.PointLoads["P4"] = model.PointLoad{
		LoadID: 4, Group: "Live", Kind: model.LoadMoment, Node: "A", Y: 5,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	loads := target.NodeLoads()
	// P1 splits into two components, P2 is all-zero, P3 is member-attached,
	// P4 places one moment component.
	require.Len(t, loads, 3)
	assert.Equal(t, solver.FX, loads[0].Dir)
	assert.Equal(t, 2.0, loads[0].P)
	assert.Equal(t, solver.FZ, loads[1].Dir)
	assert.Equal(t, -10.0, loads[1].P)
	assert.Equal(t, solver.MY, loads[2].Dir)
	assert.Equal(t, 5.0, loads[2].P)
}

func TestTranslateMemberReleases(t *testing.T) {
	m := minimalModel()
	m.Members["M1"] = model.Member{
		Type: "beam", NodeA: "A", NodeB: "B", SectionID: "ipe",
		FixityA: "FFFFRR", FixityB: "FFF",
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	rel, ok := target.Releases("M1", solver.EndI)
	require.True(t, ok)
	assert.Equal(t, solver.Releases{Ry: true, Rz: true}, rel)

	_, ok = target.Releases("M1", solver.EndJ)
	assert.False(t, ok, "short fixity codes define no releases")
}

func TestTranslateFullyFixedEndsDefineNoReleases(t *testing.T) {
	m := minimalModel()
	addMember(m, "M1")

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	_, ok := target.Releases("M1", solver.EndI)
	assert.False(t, ok)
	_, ok = target.Releases("M1", solver.EndJ)
	assert.False(t, ok)
}

func TestTranslateSkipsNonQuadPlate(t *testing.T) {
	m := minimalModel()
	m.Nodes["C"] = model.Node{X: 3, Y: 0, Z: 0}
	m.AddPlate("TRI", model.Plate{
		Nodes: []string{"A", "B", "C"}, MaterialID: "steel", Thickness: 0.2,
	})
	m.AreaLoads["Q1"] = model.Pressure{
		LoadID: 1, Group: "Dead", PlateID: 1, Axes: model.AxesGlobal, Z: -5,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err, "a malformed plate must not abort the translation")
	target := rep.Model.(*memsolver.Model)

	assert.Empty(t, target.QuadNames())
	assert.Empty(t, target.Pressures())
	require.Len(t, rep.Warnings, 2)
	assert.Contains(t, rep.Warnings[0], "4-node")
	assert.Contains(t, rep.Warnings[1], "untranslated plate")
}

func TestTranslatePressureOrdinalOutOfRange(t *testing.T) {
	m := minimalModel()
	m.Nodes["C"] = model.Node{X: 3, Y: 4, Z: 3}
	m.Nodes["D"] = model.Node{X: 0, Y: 0, Z: 3}
	m.AddPlate("SLAB", model.Plate{
		Nodes: []string{"A", "B", "C", "D"}, MaterialID: "steel", Thickness: 0.2,
	})
	m.AreaLoads["Q1"] = model.Pressure{
		LoadID: 1, Group: "Dead", PlateID: 7, Axes: model.AxesGlobal, Z: -5,
	}

	rep, err := New(memsolver.New()).Translate(m)
	require.NoError(t, err)
	target := rep.Model.(*memsolver.Model)

	assert.Empty(t, target.Pressures())
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "plate ordinal 7")
}

func TestTranslateMemberUnknownSectionFatal(t *testing.T) {
	m := minimalModel()
	m.Members["M1"] = model.Member{
		Type: "beam", NodeA: "A", NodeB: "B", SectionID: "missing",
	}

	_, err := New(memsolver.New()).Translate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section")
}

func TestRunAnalysisBeforeTranslate(t *testing.T) {
	tr := New(memsolver.New())
	assert.ErrorIs(t, tr.RunAnalysis(Linear, solver.Options{}), ErrNotTranslated)

	_, err := tr.ResultsSummary()
	assert.ErrorIs(t, err, ErrNotTranslated)
}

func TestRunAnalysisUnknownKind(t *testing.T) {
	tr, _, _ := translateSample(t)
	err := tr.RunAnalysis(AnalysisKind("modal"), solver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown analysis type")
}

func TestRunAnalysisDispatch(t *testing.T) {
	tr, _, target := translateSample(t)

	require.NoError(t, tr.RunAnalysis(PDelta, solver.Options{}))
	assert.Equal(t, []string{"pdelta"}, target.Analyses())
	assert.True(t, target.Solved())
}

func TestResultsSummary(t *testing.T) {
	tr, _, _ := translateSample(t)
	require.NoError(t, tr.RunAnalysis(Linear, solver.Options{CheckStability: true}))

	sum, err := tr.ResultsSummary()
	require.NoError(t, err)

	assert.Equal(t, []string{"SLS", "ULS_1", "ULS_2"}, sum.Combinations())
	assert.Len(t, sum.Displacements, 12)
	assert.Len(t, sum.Reactions, 4, "reactions only exist for supported nodes")
	assert.Len(t, sum.Members, 16)
	assert.Empty(t, sum.Warnings)

	ms, ok := sum.MemberResult("B1_F1", "ULS_1")
	require.True(t, ok)
	assert.Zero(t, ms.MaxMoment)
	assert.Zero(t, ms.MinShear)
}

func TestResultsSummaryPlaceholdersWhenUnsolved(t *testing.T) {
	m := minimalModel()
	addMember(m, "M1")

	tr := New(memsolver.New())
	_, err := tr.Translate(m)
	require.NoError(t, err)

	// Skipping the analysis makes every member query fail; the summary
	// must degrade to zero placeholders and note them.
	sum, err := tr.ResultsSummary()
	require.NoError(t, err)

	assert.Equal(t, []string{"Combo 1"}, sum.Combinations(), "default combination when none are defined")
	ms, ok := sum.MemberResult("M1", "Combo 1")
	require.True(t, ok)
	assert.Zero(t, ms.MaxMoment)
	require.Len(t, sum.Warnings, 1)
	assert.Contains(t, sum.Warnings[0], "reporting zeros")
}

func TestTranslateShearWalls(t *testing.T) {
	tr, _, _ := translateSample(t)

	assert.Equal(t, []string{"SW_X1", "SW_Y1"}, tr.WallIDs())

	wall, ok := tr.Wall("SW_X1")
	require.True(t, ok)
	mw, ok := wall.(*memsolver.Wall)
	require.True(t, ok)

	length, height, meshSize, kyMod := mw.Geometry()
	assert.Equal(t, 6.0, length)
	assert.Equal(t, 6.0, height)
	assert.Equal(t, 0.5, meshSize)
	assert.Equal(t, 0.35, kyMod)
	assert.Len(t, mw.Shears(), 2)
	assert.Empty(t, mw.Axials())
}

func TestTranslateShearWallDefaults(t *testing.T) {
	m := minimalModel()
	m.ShearWalls["W"] = model.ShearWall{
		Name: "W", Length: 4, Height: 3,
		Materials: []model.WallMaterial{{
			Name: "C25", ElasticModulus: 31000, ShearModulus: 12900,
			PoissonsRatio: 0.2, Density: 2500, Thickness: 0.2,
		}},
		Supports: []model.WallSupport{{Elevation: 0}},
		Stories:  []model.WallStory{{Name: "Story 1", Elevation: 3}},
	}

	tr := New(memsolver.New())
	_, err := tr.Translate(m)
	require.NoError(t, err)

	wall, ok := tr.Wall("W")
	require.True(t, ok)
	_, _, meshSize, kyMod := wall.(*memsolver.Wall).Geometry()
	assert.Equal(t, model.DefaultMeshSize, meshSize)
	assert.Equal(t, model.DefaultKyMod, kyMod)
}

func TestAnalyzeShearWallsAndResults(t *testing.T) {
	tr, _, _ := translateSample(t)
	require.NoError(t, tr.AnalyzeShearWalls(solver.Options{CheckStability: true}))

	res, err := tr.ShearWallResults("SW_X1", "Wind")
	require.NoError(t, err)

	assert.Equal(t, "SW_X1", res.WallID)
	assert.Equal(t, 6.0, res.Length)
	assert.Equal(t, 6.0, res.Height)

	// One door at x 2.5..3.5 splits the wall into two piers with one
	// coupling beam band above the opening.
	require.Len(t, res.Piers, 2)
	p1 := res.Piers["P1"]
	assert.Equal(t, 0.0, p1.X)
	assert.InDelta(t, 2.5, p1.Width, 1e-9)
	p2 := res.Piers["P2"]
	assert.InDelta(t, 3.5, p2.X, 1e-9)
	assert.InDelta(t, 2.5, p2.Width, 1e-9)

	require.Len(t, res.CouplingBeams, 1)
	b1 := res.CouplingBeams["B1"]
	assert.InDelta(t, 2.5, b1.X, 1e-9)
	assert.InDelta(t, 2.1, b1.Y, 1e-9)
	assert.InDelta(t, 1.0, b1.Length, 1e-9)
	assert.InDelta(t, 3.9, b1.Height, 1e-9)

	require.Len(t, res.Stories, 2)
	s1 := res.Stories["Story 1"]
	assert.Zero(t, s1.Stiffness)
	assert.Equal(t, 100.0, s1.TestForce)
	assert.Zero(t, s1.MaxDisplacement)
}

func TestShearWallResultsUnknownCombo(t *testing.T) {
	tr, _, _ := translateSample(t)
	require.NoError(t, tr.AnalyzeShearWalls(solver.Options{}))

	_, err := tr.ShearWallResults("SW_X1", "Nope")
	require.Error(t, err)

	_, err = tr.ShearWallResults("GHOST", "Wind")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
