package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gostral/internal/model"
)

// DrawWallElevation creates an ASCII elevation of a shear wall with its
// openings carved out and story levels marked on the right edge.
func DrawWallElevation(w model.ShearWall) string {
	var sb strings.Builder

	if w.Length <= 0 || w.Height <= 0 {
		return ""
	}

	// Scale factors for ASCII drawing
	widthChars := 48
	heightChars := 16
	xScale := float64(widthChars) / w.Length
	yScale := float64(heightChars) / w.Height

	// Row 0 sits at the wall top
	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = make([]rune, widthChars)
		for j := range grid[i] {
			grid[i][j] = '░'
		}
	}
	for _, o := range w.Openings {
		c0 := int(o.XStart * xScale)
		c1 := int((o.XStart + o.Width) * xScale)
		r0 := heightChars - int((o.YStart+o.Height)*yScale)
		r1 := heightChars - int(o.YStart*yScale)
		for row := r0; row < r1; row++ {
			if row < 0 || row >= heightChars {
				continue
			}
			for col := c0; col < c1 && col < widthChars; col++ {
				grid[row][col] = ' '
			}
		}
	}

	storyAt := func(row int) (model.WallStory, bool) {
		for _, s := range w.Stories {
			if heightChars-int(s.Elevation*yScale) == row {
				return s, true
			}
		}
		return model.WallStory{}, false
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  WALL %s  (%.1f m x %.1f m)\n", w.Name, w.Length, w.Height))
	sb.WriteString("  " + strings.Repeat("─", widthChars+2) + "\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for row := 0; row < heightChars; row++ {
		sb.WriteString(fmt.Sprintf("  │%s│", string(grid[row])))
		if s, ok := storyAt(row); ok {
			sb.WriteString(fmt.Sprintf(" ◄─ %s (+%.1f m)", s.Name, s.Elevation))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	sb.WriteString("  " + strings.Repeat("▀", widthChars+2) + " support line\n")

	if len(w.Openings) > 0 {
		sb.WriteString("\n  Openings:\n")
		for _, o := range w.Openings {
			sb.WriteString(fmt.Sprintf("    %-12s %.2f m x %.2f m at (%.2f, %.2f)\n",
				o.Name, o.Width, o.Height, o.XStart, o.YStart))
		}
	}

	return sb.String()
}

// DrawLoadProfile graphs the intensity of a distributed load along the
// member it acts on. The percentage positions are resolved against the
// member length, matching how the load is applied to the solver.
func DrawLoadProfile(load model.DistributedLoad, memberLength float64) string {
	const samples = 48

	if memberLength <= 0 {
		return ""
	}

	x1 := memberLength * load.PositionA / 100
	x2 := memberLength * load.PositionB / 100

	// Dominant axis only; the profile is a reading aid, not a result
	wA, wB := load.XA, load.XB
	axis := "x"
	if load.YA != 0 || load.YB != 0 {
		wA, wB, axis = load.YA, load.YB, "y"
	}
	if load.ZA != 0 || load.ZB != 0 {
		wA, wB, axis = load.ZA, load.ZB, "z"
	}

	series := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		x := memberLength * float64(i) / samples
		if x < x1 || x > x2 || x2 <= x1 {
			continue
		}
		frac := (x - x1) / (x2 - x1)
		series[i] = wA + (wB-wA)*frac
	}

	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Caption(fmt.Sprintf("w%s on %s: %.2f m to %.2f m of %.2f m",
			axis, load.Member, x1, x2, memberLength)),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
