package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gostral/internal/model"
)

// ExportFrameElevation exports an elevation view of the structural model
// to an image file. The plane is "XZ" or "YZ"; nodes are projected onto
// it, members drawn as lines and supports marked at their nodes.
func ExportFrameElevation(m *model.Model, plane, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Frame Elevation (%s)", strings.ToUpper(plane))
	p.Y.Label.Text = "Z (m)"

	project := func(n model.Node) (float64, float64) { return n.X, n.Z }
	switch strings.ToUpper(plane) {
	case "XZ", "":
		p.X.Label.Text = "X (m)"
	case "YZ":
		p.X.Label.Text = "Y (m)"
		project = func(n model.Node) (float64, float64) { return n.Y, n.Z }
	default:
		return fmt.Errorf("unknown elevation plane %q", plane)
	}

	columnColor := color.RGBA{R: 70, G: 70, B: 70, A: 255}
	beamColor := color.RGBA{R: 0, G: 90, B: 180, A: 255}

	for id, mem := range m.Members {
		a, okA := m.Nodes[mem.NodeA]
		b, okB := m.Nodes[mem.NodeB]
		if !okA || !okB {
			return fmt.Errorf("member %s references an unknown node", id)
		}
		ax, ay := project(a)
		bx, by := project(b)
		line, err := plotter.NewLine(plotter.XYs{{X: ax, Y: ay}, {X: bx, Y: by}})
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = beamColor
		if strings.EqualFold(mem.Type, "column") {
			line.LineStyle.Color = columnColor
		}
		p.Add(line)
	}

	var supportPts plotter.XYs
	for _, s := range m.Supports {
		n, ok := m.Nodes[s.Node]
		if !ok {
			continue
		}
		x, y := project(n)
		supportPts = append(supportPts, plotter.XY{X: x, Y: y})
	}
	if len(supportPts) > 0 {
		supports, err := plotter.NewScatter(supportPts)
		if err != nil {
			return err
		}
		supports.GlyphStyle.Color = color.RGBA{R: 200, G: 0, B: 0, A: 255}
		supports.GlyphStyle.Radius = vg.Points(5)
		supports.GlyphStyle.Shape = draw.PyramidGlyph{}
		p.Add(supports)
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(width, height, filename)
}

// ExportWallElevation exports a shear wall elevation, outlining the wall
// panel and its openings, with story levels drawn as dashed lines.
func ExportWallElevation(w model.ShearWall, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Shear Wall %s", w.Name)
	p.X.Label.Text = "Length (m)"
	p.Y.Label.Text = "Height (m)"

	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: w.Length, Y: 0},
		{X: w.Length, Y: w.Height},
		{X: 0, Y: w.Height},
		{X: 0, Y: 0},
	}
	wallLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	wallLine.LineStyle.Width = vg.Points(2)
	wallLine.LineStyle.Color = color.Black
	p.Add(wallLine)

	for _, o := range w.Openings {
		pts := plotter.XYs{
			{X: o.XStart, Y: o.YStart},
			{X: o.XStart + o.Width, Y: o.YStart},
			{X: o.XStart + o.Width, Y: o.YStart + o.Height},
			{X: o.XStart, Y: o.YStart + o.Height},
		}
		opening, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		opening.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		opening.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
		opening.LineStyle.Width = vg.Points(1.5)
		p.Add(opening)
	}

	for _, s := range w.Stories {
		storyLine, err := plotter.NewLine(plotter.XYs{
			{X: 0, Y: s.Elevation},
			{X: w.Length, Y: s.Elevation},
		})
		if err != nil {
			return err
		}
		storyLine.LineStyle.Color = color.Gray{Y: 128}
		storyLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(storyLine)

		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: w.Length + w.Length*0.02, Y: s.Elevation}},
			Labels: []string{s.Name},
		})
		if err != nil {
			return err
		}
		p.Add(label)
	}

	width := 7 * vg.Inch
	height := 7 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(width, height, filename)
}
