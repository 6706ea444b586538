package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gostral/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gostral",
	Short: "Structural Model Translation and Analysis Tool",
	Long: `gostral - Go Structural Analysis Frontend

A CLI tool for describing structural models and running them through
a finite element solver.

This tool helps structural engineers perform:
  - 3D frame analysis (linear, P-Delta, nonlinear)
  - Plate and slab modelling with surface pressures
  - Load combination processing
  - Shear wall analysis with piers and coupling beams
  - Results extraction and elevation diagrams`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gostral v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Structural Analysis Frontend                         ║")
		fmt.Printf("  ║   Alexius S. Academia ©  %-33s║\n", version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for describing structural models and running them")
		fmt.Println("  through a finite element solver.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • 3D frame analysis with members, plates and supports")
		fmt.Println("    • Point, distributed, pressure and self-weight loads")
		fmt.Println("    • Load combinations with per-group factors")
		fmt.Println("    • Shear wall pier and coupling beam analysis")
		fmt.Println("    • Elevation diagrams in the terminal and as images")
		fmt.Println()
		fmt.Println("  Use 'gostral --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
