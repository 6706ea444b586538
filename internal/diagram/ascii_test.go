package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gostral/internal/model"
)

func testWall() model.ShearWall {
	return model.ShearWall{
		Name: "SW_X1", Length: 6, Height: 6,
		Openings: []model.WallOpening{
			{Name: "Door", XStart: 2.5, YStart: 0, Width: 1.0, Height: 2.1},
		},
		Stories: []model.WallStory{
			{Name: "Story 1", Elevation: 3},
			{Name: "Story 2", Elevation: 6},
		},
	}
}

func TestDrawWallElevation(t *testing.T) {
	out := DrawWallElevation(testWall())

	assert.Contains(t, out, "SW_X1")
	assert.Contains(t, out, "Door")
	assert.Contains(t, out, "Story 1")
	assert.Contains(t, out, "support line")
}

func TestDrawWallElevationDegenerate(t *testing.T) {
	assert.Empty(t, DrawWallElevation(model.ShearWall{Name: "W"}))
}

func TestDrawLoadProfile(t *testing.T) {
	load := model.DistributedLoad{
		Member: "B1_F1", Group: "Dead", Axes: model.AxesGlobal,
		ZA: -10, ZB: -10, PositionA: 0, PositionB: 100,
	}

	out := DrawLoadProfile(load, 6.0)
	assert.Contains(t, out, "B1_F1")
	assert.Contains(t, out, "wz")
}

func TestDrawLoadProfileDegenerate(t *testing.T) {
	assert.Empty(t, DrawLoadProfile(model.DistributedLoad{Member: "M"}, 0))
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("ANALYSIS COMPLETE", []string{"Combos: 3", "Warnings: 0"})

	assert.Contains(t, out, "ANALYSIS COMPLETE")
	assert.Contains(t, out, "Combos: 3")
	assert.Equal(t, 6, strings.Count(out, "\n"), "borders, title, separator and two content lines")
}
