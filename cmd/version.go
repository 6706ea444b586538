package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gostral/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gostral",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gostral v%s\n", version.Version)
		fmt.Println("Structural Model Translation and Analysis Tool")
		fmt.Printf("Build: %s (%s)\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
