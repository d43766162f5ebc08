package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
	"github.com/spf13/cobra"
)

var (
	gzFile      string
	gzWaterline float64
	gzHeel      float64
	gzLCG       float64
	gzTCG       float64
	gzVCG       float64
	gzMethod    string
	gzDensity   float64
	gzFresh     bool
	gzStations  int
)

var stabilityGZCmd = &cobra.Command{
	Use:   "gz",
	Short: "Calculate the righting arm at one heel angle",
	Long: `Calculate the righting arm GZ at a single heel angle for a fixed
center of gravity.

The center of buoyancy is computed against the heeled waterline, then both
CB and CG are projected into the heeled frame: GZ is their transverse
separation. Positive GZ is a righting moment.

Examples:
  gohydro stability gz --file hull.json --vcg 0.3 --heel 20
  gohydro stability gz -f hull.json --vcg 0.3 --tcg 0.05 --heel 30`,
	Run: runStabilityGZ,
}

func init() {
	stabilityCmd.AddCommand(stabilityGZCmd)

	stabilityGZCmd.Flags().StringVarP(&gzFile, "file", "f", "", "Path to hull JSON file [required]")
	stabilityGZCmd.MarkFlagRequired("file")

	stabilityGZCmd.Flags().Float64Var(&gzHeel, "heel", 0, "Heel angle (deg) [required]")
	stabilityGZCmd.MarkFlagRequired("heel")

	stabilityGZCmd.Flags().Float64VarP(&gzWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	stabilityGZCmd.Flags().Float64Var(&gzLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	stabilityGZCmd.Flags().Float64Var(&gzTCG, "tcg", 0, "Transverse center of gravity (m)")
	stabilityGZCmd.Flags().Float64Var(&gzVCG, "vcg", 0, "Vertical center of gravity (m) [required]")
	stabilityGZCmd.MarkFlagRequired("vcg")
	stabilityGZCmd.Flags().StringVarP(&gzMethod, "method", "m", string(hydro.Simpson), "Integration method (simpson or trapezoid)")
	stabilityGZCmd.Flags().Float64VarP(&gzDensity, "density", "d", hydro.SeawaterDensity, "Water density (kg/m³)")
	stabilityGZCmd.Flags().BoolVar(&gzFresh, "fresh", false, "Use freshwater density (1000 kg/m³)")
	stabilityGZCmd.Flags().IntVar(&gzStations, "stations", 0, "Resample the hull to this many stations before integrating")
}

func runStabilityGZ(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(gzFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	cfg, err := buildConfig(gzMethod, gzDensity, gzFresh, gzStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cg := &stability.CenterOfGravity{LCG: gzLCG, TCG: gzTCG, VCG: gzVCG}

	arm, err := stability.GZ(hull, cg, gzWaterline, gzHeel, cfg)
	if err != nil {
		fmt.Printf("Error calculating righting arm: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          RIGHTING ARM CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)

	fmt.Println("PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Waterline:\t%.3f m\n", gzWaterline)
	fmt.Fprintf(w, "  Heel:\t%.1f°\n", gzHeel)
	fmt.Fprintf(w, "  CG (lcg, tcg, vcg):\t%.3f, %.3f, %.3f m\n", cg.LCG, cg.TCG, cg.VCG)
	w.Flush()
	fmt.Println()

	if !arm.Valid {
		fmt.Println("RESULT:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println("  Righting arm is undefined: displaced volume is zero at this attitude.")
		fmt.Println()
		return
	}

	fmt.Println("CENTER OF BUOYANCY (hull frame):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Volume:\t%.4f m³\n", arm.CB.Volume)
	fmt.Fprintf(w, "  LCB:\t%.4f m\n", arm.CB.LCB)
	fmt.Fprintf(w, "  TCB:\t%.4f m\n", arm.CB.TCB)
	fmt.Fprintf(w, "  VCB:\t%.4f m\n", arm.CB.VCB)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  RIGHTING ARM GZ = %.4f m             \n", arm.GZ)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()

	printWarnings(hydro.ValidateBuoyancy(arm.CB))
}
