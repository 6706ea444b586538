package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gostral/internal/model"
)

func TestTwoStoreyCounts(t *testing.T) {
	m := TwoStorey()

	assert.Len(t, m.Nodes, 12)
	assert.Len(t, m.Members, 16)
	assert.Len(t, m.Plates, 2)
	assert.Len(t, m.Supports, 4)
	assert.Len(t, m.PointLoads, 12)
	assert.Len(t, m.DistributedLoads, 8)
	assert.Len(t, m.AreaLoads, 4)
	assert.Len(t, m.SelfWeight, 1)
	assert.Len(t, m.LoadCombinations, 3)
	assert.Len(t, m.ShearWalls, 2)
}

func TestTwoStoreyValidates(t *testing.T) {
	require.NoError(t, TwoStorey().Validate())
}

func TestTwoStoreyPlateOrder(t *testing.T) {
	m := TwoStorey()
	assert.Equal(t, []string{"SLAB_1F", "SLAB_2F"}, m.OrderedPlates(),
		"pressure ordinals depend on slab definition order")

	for _, l := range m.AreaLoads {
		assert.GreaterOrEqual(t, l.PlateID, 1)
		assert.LessOrEqual(t, l.PlateID, 2)
	}
}

func TestTwoStoreyGeometry(t *testing.T) {
	m := TwoStorey()

	base, ok := m.Nodes["1"]
	require.True(t, ok)
	assert.Zero(t, base.Z)

	roof, ok := m.Nodes["9"]
	require.True(t, ok)
	assert.Equal(t, 6.0, roof.Z)

	col, ok := m.Members["C1_GF"]
	require.True(t, ok)
	assert.Equal(t, "column", col.Type)
	assert.InDelta(t, 3.0, m.Nodes[col.NodeA].DistanceTo(m.Nodes[col.NodeB]), 1e-9)

	beam, ok := m.Members["B1_F1"]
	require.True(t, ok)
	assert.Equal(t, "beam", beam.Type)
	assert.InDelta(t, 6.0, m.Nodes[beam.NodeA].DistanceTo(m.Nodes[beam.NodeB]), 1e-9)
}

func TestTwoStoreySupportsAreFixed(t *testing.T) {
	m := TwoStorey()
	for id, s := range m.Supports {
		assert.Equal(t, "TTTTTT", s.RestraintCode, "support %s", id)
	}
}

func TestTwoStoreyCombinations(t *testing.T) {
	m := TwoStorey()

	uls, ok := m.LoadCombinations["ULS_2"]
	require.True(t, ok)
	assert.Equal(t, []model.Factor{
		{Group: "Dead", Value: 1.35},
		{Group: "Live", Value: 1.5},
		{Group: "Wind", Value: 0.9},
	}, uls.Factors)

	sls, ok := m.LoadCombinations["SLS"]
	require.True(t, ok)
	assert.Equal(t, "SLS", sls.Criteria)
}

func TestTwoStoreyWalls(t *testing.T) {
	m := TwoStorey()

	x1, ok := m.ShearWalls["SW_X1"]
	require.True(t, ok)
	assert.Equal(t, 6.0, x1.Length)
	assert.Len(t, x1.Openings, 1)
	assert.Equal(t, "Door", x1.Openings[0].Name)
	assert.Len(t, x1.Stories, 2)
	assert.Len(t, x1.Loads, 2)
	for _, l := range x1.Loads {
		assert.Equal(t, model.WallShear, l.Kind)
		assert.Equal(t, "Wind", l.Group)
	}

	y1, ok := m.ShearWalls["SW_Y1"]
	require.True(t, ok)
	assert.Equal(t, 4.0, y1.Length)
	assert.Equal(t, "Window", y1.Openings[0].Name)
}
