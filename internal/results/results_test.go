package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Magnitude(t *testing.T) {
	assert.Zero(t, Vector3{}.Magnitude())
	assert.InDelta(t, 5.0, Vector3{X: 3, Y: 4}.Magnitude(), 1e-9)
	assert.InDelta(t, 3.0, Vector3{X: 1, Y: 2, Z: 2}.Magnitude(), 1e-9)
}

func TestSummaryAccessors(t *testing.T) {
	s := NewSummary([]string{"ULS", "SLS"})
	assert.Equal(t, []string{"ULS", "SLS"}, s.Combinations())

	_, ok := s.NodalDisplacement("1", "ULS")
	assert.False(t, ok)
	_, ok = s.MemberResult("M1", "ULS")
	assert.False(t, ok)

	s.Displacements["1"] = map[string]NodalDisplacement{
		"ULS": {Combo: "ULS", NodeID: "1", Displacement: Vector3{Z: -0.012}},
	}
	s.Members["M1"] = map[string]MemberSummary{
		"ULS": {MaxMoment: 42.5, MinMoment: -18.0},
	}

	d, ok := s.NodalDisplacement("1", "ULS")
	assert.True(t, ok)
	assert.Equal(t, -0.012, d.Displacement.Z)

	_, ok = s.NodalDisplacement("1", "SLS")
	assert.False(t, ok)

	m, ok := s.MemberResult("M1", "ULS")
	assert.True(t, ok)
	assert.Equal(t, 42.5, m.MaxMoment)
}

func TestMaxDisplacementByCombo(t *testing.T) {
	s := NewSummary([]string{"ULS"})
	s.Displacements["1"] = map[string]NodalDisplacement{
		"ULS": {Displacement: Vector3{Z: -0.004}},
	}
	s.Displacements["2"] = map[string]NodalDisplacement{
		"ULS": {Displacement: Vector3{X: 0.003, Z: -0.009}},
	}

	node, mag := s.MaxDisplacementByCombo("ULS")
	assert.Equal(t, "2", node)
	assert.InDelta(t, Vector3{X: 0.003, Z: -0.009}.Magnitude(), mag, 1e-12)

	node, mag = s.MaxDisplacementByCombo("SLS")
	assert.Empty(t, node)
	assert.Zero(t, mag)
}

func TestMaxMemberMomentByCombo(t *testing.T) {
	s := NewSummary([]string{"ULS"})
	s.Members["M1"] = map[string]MemberSummary{
		"ULS": {MaxMoment: 30, MinMoment: -12},
	}
	s.Members["M2"] = map[string]MemberSummary{
		"ULS": {MaxMoment: 10, MinMoment: -45},
	}

	member, moment := s.MaxMemberMomentByCombo("ULS")
	assert.Equal(t, "M2", member, "hogging extremes count by absolute value")
	assert.Equal(t, 45.0, moment)
}
