package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialShearOrDerived(t *testing.T) {
	explicit := Material{ElasticModulus: 210000, ShearModulus: Float(81000), PoissonsRatio: 0.3}
	assert.Equal(t, 81000.0, explicit.ShearOrDerived())

	derived := Material{ElasticModulus: 200000, PoissonsRatio: 0.25}
	assert.InDelta(t, 80000.0, derived.ShearOrDerived(), 1e-9)
}

func TestMaterialYield(t *testing.T) {
	assert.Equal(t, 355.0, Material{YieldStrength: Float(355)}.Yield())
	assert.Zero(t, Material{}.Yield())
}

func TestMaterialValidate(t *testing.T) {
	ok := Material{ElasticModulus: 210000, PoissonsRatio: 0.3, Density: 7850}
	assert.NoError(t, ok.Validate())

	var verr *ValidationError
	err := Material{ElasticModulus: 0}.Validate()
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)

	assert.Error(t, Material{ElasticModulus: 210000, PoissonsRatio: -0.1}.Validate())
	assert.Error(t, Material{ElasticModulus: 210000, Density: -1}.Validate())
}

func TestSectionValidate(t *testing.T) {
	ok := Section{Area: 0.01, MaterialID: "1"}
	assert.NoError(t, ok.Validate())
	assert.Error(t, Section{Area: 0, MaterialID: "1"}.Validate())
	assert.Error(t, Section{Area: 0.01}.Validate())
}

func TestSectionTorsionDefault(t *testing.T) {
	assert.Equal(t, 2e-7, Section{J: Float(2e-7)}.Torsion())
	assert.Zero(t, Section{}.Torsion())
}

func TestNodeDistanceTo(t *testing.T) {
	a := Node{X: 0, Y: 0, Z: 0}
	b := Node{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.InDelta(t, 5.0, b.DistanceTo(a), 1e-9)

	c := Node{X: 1, Y: 2, Z: 2}
	assert.InDelta(t, 3.0, a.DistanceTo(c), 1e-9)
}

func TestMemberValidate(t *testing.T) {
	ok := Member{NodeA: "1", NodeB: "2", SectionID: "s"}
	assert.NoError(t, ok.Validate())
	assert.Error(t, Member{NodeB: "2", SectionID: "s"}.Validate())
	assert.Error(t, Member{NodeA: "1", NodeB: "2"}.Validate())
}

func TestPlateValidate(t *testing.T) {
	ok := Plate{Nodes: []string{"1", "2", "3", "4"}, MaterialID: "m", Thickness: 0.2}
	assert.NoError(t, ok.Validate())

	// Node counts other than 4 are a translation concern, not a schema one
	tri := Plate{Nodes: []string{"1", "2", "3"}, MaterialID: "m", Thickness: 0.2}
	assert.NoError(t, tri.Validate())

	assert.Error(t, Plate{MaterialID: "m", Thickness: 0.2}.Validate())
	assert.Error(t, Plate{Nodes: []string{"1"}, Thickness: 0.2}.Validate())
	assert.Error(t, Plate{Nodes: []string{"1"}, MaterialID: "m"}.Validate())
}

func TestSupportValidate(t *testing.T) {
	assert.NoError(t, Support{Node: "1", RestraintCode: "TTTTTT"}.Validate())
	assert.Error(t, Support{RestraintCode: "TTTTTT"}.Validate())
	assert.Error(t, Support{Node: "1"}.Validate())
}

func TestPointLoadValidate(t *testing.T) {
	ok := PointLoad{Kind: LoadForce, Group: "Live", Node: "1", Z: -10}
	assert.NoError(t, ok.Validate())

	assert.Error(t, PointLoad{Kind: "torque", Group: "Live", Node: "1"}.Validate())
	assert.Error(t, PointLoad{Kind: LoadForce, Group: "Live", Node: "1", Member: "M1"}.Validate())
	assert.Error(t, PointLoad{Kind: LoadForce, Node: "1"}.Validate())
}

func TestDistributedLoadValidate(t *testing.T) {
	ok := DistributedLoad{Member: "M1", Group: "Dead", Axes: AxesGlobal, PositionA: 0, PositionB: 100}
	assert.NoError(t, ok.Validate())

	assert.Error(t, DistributedLoad{Group: "Dead", Axes: AxesGlobal}.Validate())
	assert.Error(t, DistributedLoad{Member: "M1", Group: "Dead", Axes: "screen"}.Validate())
	assert.Error(t, DistributedLoad{Member: "M1", Group: "Dead", Axes: AxesGlobal, PositionB: 120}.Validate())
	assert.Error(t, DistributedLoad{Member: "M1", Group: "Dead", Axes: AxesGlobal, PositionA: 60, PositionB: 40}.Validate())
}

func TestPressureValidate(t *testing.T) {
	ok := Pressure{PlateID: 1, Group: "Dead", Axes: AxesGlobal, Z: -5}
	assert.NoError(t, ok.Validate())

	assert.Error(t, Pressure{PlateID: 0, Group: "Dead", Axes: AxesGlobal}.Validate())
	assert.Error(t, Pressure{PlateID: 1, Axes: AxesGlobal}.Validate())
	assert.Error(t, Pressure{PlateID: 1, Group: "Dead", Axes: "local-ish"}.Validate())
}

func TestLoadCombinationValidate(t *testing.T) {
	ok := LoadCombination{Name: "ULS", Factors: []Factor{{Group: "Dead", Value: 1.35}}}
	assert.NoError(t, ok.Validate())

	assert.Error(t, LoadCombination{}.Validate())
	assert.Error(t, LoadCombination{Name: "ULS", Factors: []Factor{{Value: 1.35}}}.Validate())
}

func TestShearWallValidate(t *testing.T) {
	wall := ShearWall{
		Name: "W1", Length: 6, Height: 3,
		Materials: []WallMaterial{{Name: "C30", ElasticModulus: 33000, Thickness: 0.25}},
		Stories:   []WallStory{{Name: "Story 1", Elevation: 3}},
		Loads:     []WallLoad{{Group: "Wind", Story: "Story 1", Force: 10, Kind: WallShear}},
	}
	assert.NoError(t, wall.Validate())

	assert.Error(t, ShearWall{Length: 6, Height: 3}.Validate())
	assert.Error(t, ShearWall{Name: "W1", Length: 0, Height: 3}.Validate())

	bad := wall
	bad.Flanges = []WallFlange{{MaterialName: "C30", Side: "left"}}
	assert.Error(t, bad.Validate())

	bad = wall
	bad.Loads = []WallLoad{{Group: "Wind", Story: "Story 1", Kind: "bending"}}
	assert.Error(t, bad.Validate())
}

func TestOrderedPlatesKeepsDefinitionOrder(t *testing.T) {
	m := New()
	m.AddPlate("Z_LAST", Plate{Nodes: []string{"1"}, MaterialID: "m", Thickness: 0.1})
	m.AddPlate("A_FIRST", Plate{Nodes: []string{"1"}, MaterialID: "m", Thickness: 0.1})

	assert.Equal(t, []string{"Z_LAST", "A_FIRST"}, m.OrderedPlates())

	// Re-adding an existing key must not duplicate the ordinal slot
	m.AddPlate("Z_LAST", Plate{Nodes: []string{"2"}, MaterialID: "m", Thickness: 0.1})
	assert.Equal(t, []string{"Z_LAST", "A_FIRST"}, m.OrderedPlates())
}

func TestOrderedPlatesFallsBackToSortedKeys(t *testing.T) {
	m := New()
	m.Plates["B"] = Plate{Nodes: []string{"1"}, MaterialID: "m", Thickness: 0.1}
	m.Plates["A"] = Plate{Nodes: []string{"1"}, MaterialID: "m", Thickness: 0.1}

	assert.Equal(t, []string{"A", "B"}, m.OrderedPlates())
}

func TestModelValidateNamesEntity(t *testing.T) {
	m := New()
	m.Materials["M1"] = Material{ElasticModulus: -1}

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `material "M1"`)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.NotEmpty(t, s.Units.Length)
	assert.Greater(t, s.SolverTimeout, 0)
}
