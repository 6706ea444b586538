// Package sample builds demonstration structures used by the CLI and
// the test suite.
package sample

import (
	"strconv"

	"github.com/alexiusacademia/gostral/internal/model"
)

// TwoStorey returns the documented sample structure: a two-storey steel
// frame on a 6m x 4m plan, 3m storey height, with floor slabs, fixed
// column bases, live/wind point loads, dead distributed loads, slab
// pressures, self weight, three load combinations and two shear walls.
//
// Totals: 12 nodes, 16 members, 2 plates, 4 supports, 12 point loads,
// 8 distributed loads, 4 pressure loads, 1 self-weight entry, 3 load
// combinations, 2 shear walls.
func TwoStorey() *model.Model {
	m := model.New()

	m.Materials["1"] = model.Material{
		Name:               "Steel S355",
		ElasticModulus:     210000.0, // MPa
		ShearModulus:       model.Float(81000.0),
		Density:            7850.0, // kg/m³
		PoissonsRatio:      0.3,
		YieldStrength:      model.Float(355.0),
		UltimateStrength:   model.Float(510.0),
		ThermalCoefficient: model.Float(12e-6),
	}

	m.Sections["1"] = model.Section{
		Name:       "HEB200_Column",
		Area:       0.0078,  // m²
		Iz:         5696e-8, // m⁴ strong axis
		Iy:         2003e-8, // m⁴ weak axis
		J:          model.Float(190e-8),
		MaterialID: "1",
	}
	m.Sections["2"] = model.Section{
		Name:       "IPE300_Beam",
		Area:       0.0053,
		Iz:         8356e-8,
		Iy:         604e-8,
		J:          model.Float(20.1e-8),
		MaterialID: "1",
	}

	// Column grid corners at ground (z=0), first floor (z=3) and second
	// floor (z=6).
	plan := [4][2]float64{{0, 0}, {6, 0}, {6, 4}, {0, 4}}
	levels := [3]float64{0, 3, 6}
	id := 1
	for _, z := range levels {
		for _, xy := range plan {
			m.Nodes[itoa(id)] = model.Node{X: xy[0], Y: xy[1], Z: z}
			id++
		}
	}

	column := func(a, b string) model.Member { return frameMember("column", a, b, "1") }
	beam := func(a, b string) model.Member { return frameMember("beam", a, b, "2") }

	// Columns per storey
	m.Members["C1_GF"] = column("1", "5")
	m.Members["C2_GF"] = column("2", "6")
	m.Members["C3_GF"] = column("3", "7")
	m.Members["C4_GF"] = column("4", "8")
	m.Members["C1_FS"] = column("5", "9")
	m.Members["C2_FS"] = column("6", "10")
	m.Members["C3_FS"] = column("7", "11")
	m.Members["C4_FS"] = column("8", "12")

	// Perimeter beams per floor
	m.Members["B1_F1"] = beam("5", "6")
	m.Members["B2_F1"] = beam("6", "7")
	m.Members["B3_F1"] = beam("7", "8")
	m.Members["B4_F1"] = beam("8", "5")
	m.Members["B1_F2"] = beam("9", "10")
	m.Members["B2_F2"] = beam("10", "11")
	m.Members["B3_F2"] = beam("11", "12")
	m.Members["B4_F2"] = beam("12", "9")

	m.AddPlate("SLAB_1F", model.Plate{
		Nodes:             []string{"5", "6", "7", "8"},
		MaterialID:        "1",
		Thickness:         0.2,
		MembraneThickness: model.Float(0.2),
		BendingThickness:  model.Float(0.2),
	})
	m.AddPlate("SLAB_2F", model.Plate{
		Nodes:             []string{"9", "10", "11", "12"},
		MaterialID:        "1",
		Thickness:         0.2,
		MembraneThickness: model.Float(0.2),
		BendingThickness:  model.Float(0.2),
	})

	for i := 1; i <= 4; i++ {
		m.Supports[itoa(i)] = model.Support{Node: itoa(i), RestraintCode: "TTTTTT"}
	}

	// Live loads on floor nodes, wind on the roof nodes
	loadID := 0
	pointLoad := func(key, group, node string, x, y, z float64) {
		loadID++
		m.PointLoads[key] = model.PointLoad{
			LoadID: loadID, Group: group, Kind: model.LoadForce,
			Node: node, X: x, Y: y, Z: z,
		}
	}
	for i := 5; i <= 8; i++ {
		pointLoad("LL_F1_N"+itoa(i), "Live", itoa(i), 0, 0, -15.0)
	}
	for i := 9; i <= 12; i++ {
		pointLoad("LL_F2_N"+itoa(i), "Live", itoa(i), 0, 0, -12.0)
	}
	for i := 9; i <= 12; i++ {
		pointLoad("Wind_N"+itoa(i), "Wind", itoa(i), 5.0, 0, 0)
	}

	// Dead distributed loads on the floor beams
	distID := 0
	distLoad := func(member string, w float64) {
		distID++
		m.DistributedLoads["DL_"+member] = model.DistributedLoad{
			LoadID: distID, Group: "Dead", Member: member, Axes: model.AxesGlobal,
			ZA: w, ZB: w, PositionA: 0, PositionB: 100,
		}
	}
	for _, b := range []string{"B1_F1", "B2_F1", "B3_F1", "B4_F1"} {
		distLoad(b, -10.0)
	}
	for _, b := range []string{"B1_F2", "B2_F2", "B3_F2", "B4_F2"} {
		distLoad(b, -8.0)
	}

	m.AreaLoads["PL_SLAB_1F_DEAD"] = model.Pressure{
		LoadID: 1, Group: "Dead", PlateID: 1, Axes: model.AxesGlobal, Z: -5.0,
	}
	m.AreaLoads["PL_SLAB_1F_LIVE"] = model.Pressure{
		LoadID: 2, Group: "Live", PlateID: 1, Axes: model.AxesGlobal, Z: -3.0,
	}
	m.AreaLoads["PL_SLAB_2F_DEAD"] = model.Pressure{
		LoadID: 3, Group: "Dead", PlateID: 2, Axes: model.AxesGlobal, Z: -4.0,
	}
	m.AreaLoads["PL_SLAB_2F_LIVE"] = model.Pressure{
		LoadID: 4, Group: "Live", PlateID: 2, Axes: model.AxesGlobal, Z: -2.5,
	}

	m.SelfWeight["SW"] = model.SelfWeight{Z: -1.0, Group: "Dead"}

	m.LoadCombinations["ULS_1"] = model.LoadCombination{
		Name: "1.35G + 1.5Q", Criteria: "ULS",
		Factors: []model.Factor{{Group: "Dead", Value: 1.35}, {Group: "Live", Value: 1.5}},
	}
	m.LoadCombinations["ULS_2"] = model.LoadCombination{
		Name: "1.35G + 1.5Q + 0.9W", Criteria: "ULS",
		Factors: []model.Factor{{Group: "Dead", Value: 1.35}, {Group: "Live", Value: 1.5}, {Group: "Wind", Value: 0.9}},
	}
	m.LoadCombinations["SLS"] = model.LoadCombination{
		Name: "1.0G + 1.0Q", Criteria: "SLS",
		Factors: []model.Factor{{Group: "Dead", Value: 1.0}, {Group: "Live", Value: 1.0}},
	}

	m.ShearWalls["SW_X1"] = shearWallX1()
	m.ShearWalls["SW_Y1"] = shearWallY1()

	return m
}

func frameMember(kind, nodeA, nodeB, section string) model.Member {
	return model.Member{
		Type:      kind,
		NodeA:     nodeA,
		NodeB:     nodeB,
		SectionID: section,
		FixityA:   "FFFFFF",
		FixityB:   "FFFFFF",
		OffsetAX: "0", OffsetAY: "0", OffsetAZ: "0",
		OffsetBX: "0", OffsetBY: "0", OffsetBZ: "0",
		StiffnessARy: 1.0, StiffnessARz: 1.0,
		StiffnessBRy: 1.0, StiffnessBRz: 1.0,
	}
}

// shearWallX1 is the 6m x 6m wall along the X axis with a door opening
// at ground level.
func shearWallX1() model.ShearWall {
	return model.ShearWall{
		Name:     "SW_X1",
		Length:   6.0,
		Height:   6.0,
		MeshSize: 0.5,
		KyMod:    0.35,
		Materials: []model.WallMaterial{{
			Name:           "C30 Concrete",
			ElasticModulus: 33000.0,
			ShearModulus:   13750.0,
			PoissonsRatio:  0.2,
			Density:        2500.0,
			Thickness:      0.25,
		}},
		Openings: []model.WallOpening{{
			Name:   "Door",
			XStart: 2.5, YStart: 0.0,
			Width: 1.0, Height: 2.1,
		}},
		Supports: []model.WallSupport{{Elevation: 0.0}},
		Stories: []model.WallStory{
			{Name: "Story 1", Elevation: 3.0},
			{Name: "Story 2", Elevation: 6.0},
		},
		Loads: []model.WallLoad{
			{LoadID: 1, Group: "Wind", Story: "Story 1", Force: 10.0, Kind: model.WallShear},
			{LoadID: 2, Group: "Wind", Story: "Story 2", Force: 20.0, Kind: model.WallShear},
		},
		IncludePierAnalysis:         true,
		IncludeCouplingBeamAnalysis: true,
	}
}

// shearWallY1 is the 4m x 6m wall along the Y axis with a window opening
// at the first storey.
func shearWallY1() model.ShearWall {
	return model.ShearWall{
		Name:     "SW_Y1",
		Length:   4.0,
		Height:   6.0,
		MeshSize: 0.5,
		KyMod:    0.35,
		Materials: []model.WallMaterial{{
			Name:           "C30 Concrete",
			ElasticModulus: 33000.0,
			ShearModulus:   13750.0,
			PoissonsRatio:  0.2,
			Density:        2500.0,
			Thickness:      0.25,
		}},
		Openings: []model.WallOpening{{
			Name:   "Window",
			XStart: 1.4, YStart: 1.2,
			Width: 1.2, Height: 1.5,
		}},
		Supports: []model.WallSupport{{Elevation: 0.0}},
		Stories: []model.WallStory{
			{Name: "Story 1", Elevation: 3.0},
			{Name: "Story 2", Elevation: 6.0},
		},
		Loads: []model.WallLoad{
			{LoadID: 1, Group: "Wind", Story: "Story 1", Force: 8.0, Kind: model.WallShear},
			{LoadID: 2, Group: "Wind", Story: "Story 2", Force: 15.0, Kind: model.WallShear},
		},
		IncludePierAnalysis:         true,
		IncludeCouplingBeamAnalysis: true,
	}
}

func itoa(i int) string { return strconv.Itoa(i) }
