package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gohydro/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gohydro",
	Short: "Hull Hydrostatics and Stability Tool",
	Long: `gohydro - Go Hull Hydrostatics and Stability Calculator

A CLI tool for computing hydrostatic and stability properties of
symmetric watercraft hulls from a discretized geometric description.

This tool helps naval-architecture practitioners and hobbyist
designers perform:
  - Displaced volume and mass calculation
  - Center of buoyancy calculation
  - Per-station submerged section analysis
  - Righting-arm (GZ) curve generation
  - Stability metrics and criteria assessment

Hulls are defined in JSON files as ordered transverse profiles.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohydro v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Hull Hydrostatics and Stability Calculator           ║")
		fmt.Printf("  ║   %s ©  %s                                ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for hull hydrostatics and stability analysis.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Displaced volume and mass at any waterline, heel and trim")
		fmt.Println("    • Center of buoyancy with plausibility validation")
		fmt.Println("    • Righting-arm curves with metrics extraction")
		fmt.Println("    • Stability criteria assessment with recommendations")
		fmt.Println()
		fmt.Println("  Use 'gohydro --help' to see available commands.")
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
