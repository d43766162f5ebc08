package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/spf13/cobra"
)

var (
	buoyancyFile      string
	buoyancyWaterline float64
	buoyancyHeel      float64
	buoyancyTrim      float64
	buoyancyMethod    string
	buoyancyDensity   float64
	buoyancyFresh     bool
	buoyancyStations  int
)

var hullBuoyancyCmd = &cobra.Command{
	Use:   "buoyancy",
	Short: "Calculate the center of buoyancy",
	Long: `Calculate the 3D center of buoyancy of a hull under a waterline.

Two integration passes run over the same stations: the first accumulates
the displaced volume, the second the first moments of submerged section
area. Plausibility checks (VCB above the surface, TCB off the centerline
at zero heel) are reported as warnings alongside the result.

Examples:
  gohydro hull buoyancy --file hull.json --waterline 0.0
  gohydro hull buoyancy -f hull.json -w 0.2 --heel 20`,
	Run: runHullBuoyancy,
}

func init() {
	hullCmd.AddCommand(hullBuoyancyCmd)

	hullBuoyancyCmd.Flags().StringVarP(&buoyancyFile, "file", "f", "", "Path to hull JSON file [required]")
	hullBuoyancyCmd.MarkFlagRequired("file")

	hullBuoyancyCmd.Flags().Float64VarP(&buoyancyWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	hullBuoyancyCmd.Flags().Float64Var(&buoyancyHeel, "heel", 0, "Heel angle (deg)")
	hullBuoyancyCmd.Flags().Float64Var(&buoyancyTrim, "trim", 0, "Trim angle (deg)")
	hullBuoyancyCmd.Flags().StringVarP(&buoyancyMethod, "method", "m", string(hydro.Simpson), "Integration method (simpson or trapezoid)")
	hullBuoyancyCmd.Flags().Float64VarP(&buoyancyDensity, "density", "d", hydro.SeawaterDensity, "Water density (kg/m³)")
	hullBuoyancyCmd.Flags().BoolVar(&buoyancyFresh, "fresh", false, "Use freshwater density (1000 kg/m³)")
	hullBuoyancyCmd.Flags().IntVar(&buoyancyStations, "stations", 0, "Resample the hull to this many stations before integrating")
}

func runHullBuoyancy(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(buoyancyFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	cfg, err := buildConfig(buoyancyMethod, buoyancyDensity, buoyancyFresh, buoyancyStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wl := geometry.NewWaterline(buoyancyWaterline, buoyancyHeel, buoyancyTrim)

	cb, err := hydro.Buoyancy(hull, wl, cfg)
	if err != nil {
		fmt.Printf("Error calculating center of buoyancy: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CENTER OF BUOYANCY CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)

	fmt.Println("PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Waterline:\t%.3f m\n", buoyancyWaterline)
	fmt.Fprintf(w, "  Heel:\t%.1f°\n", buoyancyHeel)
	fmt.Fprintf(w, "  Trim:\t%.1f°\n", buoyancyTrim)
	fmt.Fprintf(w, "  Integration method:\t%s\n", cb.Method)
	fmt.Fprintf(w, "  Stations:\t%d\n", cb.StationCount)
	w.Flush()
	fmt.Println()

	if !cb.IsValid() {
		fmt.Println("RESULT:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Println("  Center of buoyancy is undefined: displaced volume is zero.")
		fmt.Println()
		return
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Displaced volume:\t%.4f m³\n", cb.Volume)
	fmt.Fprintf(w, "  LCB (longitudinal):\t%.4f m\n", cb.LCB)
	fmt.Fprintf(w, "  TCB (transverse):\t%.4f m\n", cb.TCB)
	fmt.Fprintf(w, "  VCB (vertical):\t%.4f m\n", cb.VCB)
	w.Flush()
	fmt.Println()

	printWarnings(hydro.ValidateBuoyancy(cb))
}
