package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostral/internal/diagram"
	"github.com/alexiusacademia/gostral/internal/sample"
	"github.com/spf13/cobra"
)

var (
	diagramPlane  string
	diagramOutput string
	diagramWall   string
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw elevations of the sample structure",
	Long: `Draw elevation diagrams of the two-storey sample structure:
ASCII wall elevations in the terminal, plus frame and wall elevation
images when an output file is given.

Examples:
  # ASCII elevations of every wall
  gostral diagram

  # Export the XZ frame elevation to an image
  gostral diagram --output frame.png

  # Export one wall's elevation
  gostral diagram --wall SW_X1 --output sw_x1.png`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramPlane, "plane", "p", "XZ", "Frame elevation plane: XZ or YZ")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Output image file (png, svg or pdf)")
	diagramCmd.Flags().StringVarP(&diagramWall, "wall", "w", "", "Export this wall instead of the frame")
}

func runDiagram(cmd *cobra.Command, args []string) {
	m := sample.TwoStorey()

	if diagramOutput == "" {
		for _, id := range sortedIDs(m.ShearWalls) {
			fmt.Print(diagram.DrawWallElevation(m.ShearWalls[id]))
			fmt.Println()
		}

		// Load profiles for the first-floor beam lines
		for _, id := range []string{"DL_B1_F1", "DL_B1_F2"} {
			load, ok := m.DistributedLoads[id]
			if !ok {
				continue
			}
			mem := m.Members[load.Member]
			length := m.Nodes[mem.NodeA].DistanceTo(m.Nodes[mem.NodeB])
			fmt.Print(diagram.DrawLoadProfile(load, length))
		}
		return
	}

	if diagramWall != "" {
		wall, ok := m.ShearWalls[diagramWall]
		if !ok {
			fmt.Printf("Error: unknown wall %q\n", diagramWall)
			return
		}
		if err := diagram.ExportWallElevation(wall, diagramOutput); err != nil {
			fmt.Printf("Error: could not export wall elevation: %v\n", err)
			return
		}
		fmt.Printf("Wall elevation saved to %s\n", diagramOutput)
		return
	}

	if err := diagram.ExportFrameElevation(m, diagramPlane, diagramOutput); err != nil {
		fmt.Printf("Error: could not export frame elevation: %v\n", err)
		return
	}
	fmt.Printf("Frame elevation saved to %s\n", diagramOutput)
}
