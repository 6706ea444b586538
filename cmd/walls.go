package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/alexiusacademia/gostral/internal/diagram"
	"github.com/alexiusacademia/gostral/internal/sample"
	"github.com/alexiusacademia/gostral/internal/solver"
	"github.com/alexiusacademia/gostral/internal/solver/memsolver"
	"github.com/alexiusacademia/gostral/internal/translate"
	"github.com/spf13/cobra"
)

var (
	wallsCombo     string
	wallsElevation bool
)

var wallsCmd = &cobra.Command{
	Use:   "walls",
	Short: "Analyze the sample shear walls",
	Long: `Mesh and analyze the shear walls of the two-storey sample
structure, then report pier forces, coupling beam forces and story
stiffness for each wall.

Examples:
  # Analyze all walls under the default combination
  gostral walls

  # Pick a combination and draw wall elevations
  gostral walls --combo Wind --elevation`,
	Run: runWalls,
}

func init() {
	rootCmd.AddCommand(wallsCmd)

	wallsCmd.Flags().StringVarP(&wallsCombo, "combo", "c", "", "Load combination to report (defaults to the wall's first)")
	wallsCmd.Flags().BoolVarP(&wallsElevation, "elevation", "e", false, "Draw ASCII wall elevations")
}

func runWalls(cmd *cobra.Command, args []string) {
	m := sample.TwoStorey()
	if err := m.Validate(); err != nil {
		fmt.Printf("Error: invalid model: %v\n", err)
		return
	}

	tr := translate.New(memsolver.New())
	if _, err := tr.Translate(m); err != nil {
		fmt.Printf("Error: translation failed: %v\n", err)
		return
	}
	if err := tr.AnalyzeShearWalls(solver.Options{CheckStability: true}); err != nil {
		fmt.Printf("Error: wall analysis failed: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SHEAR WALL ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	for _, wallID := range tr.WallIDs() {
		combo := wallsCombo
		if combo == "" {
			if wall, ok := tr.Wall(wallID); ok && len(wall.ComboNames()) > 0 {
				combo = wall.ComboNames()[0]
			}
		}
		res, err := tr.ShearWallResults(wallID, combo)
		if err != nil {
			fmt.Printf("\nError: wall %s: %v\n", wallID, err)
			continue
		}

		fmt.Println()
		fmt.Printf("WALL %s  (%.1f m x %.1f m, combo %s):\n", res.WallID, res.Length, res.Height, res.Combo)
		fmt.Println("───────────────────────────────────────────────────────────────")

		if wallsElevation {
			if src, ok := m.ShearWalls[wallID]; ok {
				fmt.Print(diagram.DrawWallElevation(src))
			}
		}

		if len(res.Piers) > 0 {
			fmt.Println("\n  Piers:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  \tID\tP (kN)\tM (kN-m)\tV (kN)\tM/VL\n")
			for _, id := range sortedIDs(res.Piers) {
				p := res.Piers[id]
				fmt.Fprintf(w, "  \t%s\t%.2f\t%.2f\t%.2f\t%.3f\n", p.ID, p.Axial, p.Moment, p.Shear, p.ShearSpanRatio)
			}
			w.Flush()
		}

		if len(res.CouplingBeams) > 0 {
			fmt.Println("\n  Coupling beams:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  \tID\tP (kN)\tM (kN-m)\tV (kN)\tM/VH\n")
			for _, id := range sortedIDs(res.CouplingBeams) {
				b := res.CouplingBeams[id]
				fmt.Fprintf(w, "  \t%s\t%.2f\t%.2f\t%.2f\t%.3f\n", b.ID, b.Axial, b.Moment, b.Shear, b.ShearSpanRatio)
			}
			w.Flush()
		}

		if len(res.Stories) > 0 {
			fmt.Println("\n  Story stiffness:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  \tStory\tK (kN/m)\tTest force (kN)\tMax disp (mm)\n")
			for _, id := range sortedIDs(res.Stories) {
				s := res.Stories[id]
				fmt.Fprintf(w, "  \t%s\t%.1f\t%.1f\t%.4f\n", s.Story, s.Stiffness, s.TestForce, s.MaxDisplacement*1000)
			}
			w.Flush()
		}
	}
	fmt.Println()
}

func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
