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
	volumeFile      string
	volumeWaterline float64
	volumeHeel      float64
	volumeTrim      float64
	volumeMethod    string
	volumeDensity   float64
	volumeFresh     bool
	volumeStations  int
)

var hullVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Calculate displaced volume and mass under a waterline",
	Long: `Calculate the displaced volume and mass of a hull under a waterline.

Submerged section areas are computed at every station and integrated
along the hull length with the selected quadrature rule.

Examples:
  gohydro hull volume --file hull.json --waterline 0.0
  gohydro hull volume -f hull.json -w 0.2 --heel 15 --method trapezoid
  gohydro hull volume -f hull.json --fresh --stations 21`,
	Run: runHullVolume,
}

func init() {
	hullCmd.AddCommand(hullVolumeCmd)

	hullVolumeCmd.Flags().StringVarP(&volumeFile, "file", "f", "", "Path to hull JSON file [required]")
	hullVolumeCmd.MarkFlagRequired("file")

	hullVolumeCmd.Flags().Float64VarP(&volumeWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	hullVolumeCmd.Flags().Float64Var(&volumeHeel, "heel", 0, "Heel angle (deg, + immerses the port side)")
	hullVolumeCmd.Flags().Float64Var(&volumeTrim, "trim", 0, "Trim angle (deg, + immerses the bow)")
	hullVolumeCmd.Flags().StringVarP(&volumeMethod, "method", "m", string(hydro.Simpson), "Integration method (simpson or trapezoid)")
	hullVolumeCmd.Flags().Float64VarP(&volumeDensity, "density", "d", hydro.SeawaterDensity, "Water density (kg/m³)")
	hullVolumeCmd.Flags().BoolVar(&volumeFresh, "fresh", false, "Use freshwater density (1000 kg/m³)")
	hullVolumeCmd.Flags().IntVar(&volumeStations, "stations", 0, "Resample the hull to this many stations before integrating")
}

func runHullVolume(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(volumeFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	cfg, err := buildConfig(volumeMethod, volumeDensity, volumeFresh, volumeStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	wl := geometry.NewWaterline(volumeWaterline, volumeHeel, volumeTrim)

	result, err := hydro.Displacement(hull, wl, cfg)
	if err != nil {
		fmt.Printf("Error calculating displacement: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          HULL DISPLACEMENT CALCULATION")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)

	fmt.Println("PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Waterline:\t%.3f m\n", volumeWaterline)
	fmt.Fprintf(w, "  Heel:\t%.1f°\n", volumeHeel)
	fmt.Fprintf(w, "  Trim:\t%.1f°\n", volumeTrim)
	fmt.Fprintf(w, "  Water density:\t%.0f kg/m³\n", cfg.Density)
	fmt.Fprintf(w, "  Integration method:\t%s\n", cfg.Method)
	fmt.Fprintf(w, "  Stations:\t%d\n", result.StationCount)
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Println()
	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  DISPLACED VOLUME = %.4f m³           \n", result.Volume)
	fmt.Printf("  ║  DISPLACED MASS   = %.1f kg           \n", result.Mass)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()

	printWarnings(result.Warnings)
}

// buildConfig assembles a calculation config from the common flags.
func buildConfig(method string, density float64, fresh bool, stations int) (hydro.Config, error) {
	m, err := hydro.ParseMethod(method)
	if err != nil {
		return hydro.Config{}, err
	}
	if fresh {
		density = hydro.FreshwaterDensity
	}
	cfg := hydro.Config{
		Density:  density,
		Method:   m,
		Stations: stations,
	}
	return cfg, cfg.Validate()
}

func printHullInfo(hull *geometry.Hull) {
	if hull.Name != "" {
		fmt.Printf("  Hull: %s\n", hull.Name)
	}
	if hull.Description != "" {
		fmt.Printf("  Description: %s\n", hull.Description)
	}
	fmt.Printf("  Length %.2f m, beam %.2f m, %d profiles\n", hull.Length(), hull.Beam(), len(hull.Profiles))
	fmt.Println()
}

func printWarnings(warnings []hydro.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("WARNINGS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, warn := range warnings {
		fmt.Printf("  ⚠ %s\n", warn.Message)
	}
	fmt.Println()
}
