package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/diagram"
	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
	"github.com/spf13/cobra"
)

var (
	curveFile      string
	curveWaterline float64
	curveLCG       float64
	curveTCG       float64
	curveVCG       float64
	curveFrom      float64
	curveTo        float64
	curveStep      float64
	curveMethod    string
	curveDensity   float64
	curveFresh     bool
	curveStations  int
	curveShowGraph bool
	curveShowTable bool
	curveExport    string
)

var stabilityCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Generate a righting-arm curve with stability metrics",
	Long: `Generate a GZ curve over a heel-angle range and extract stability
metrics: maximum righting arm, range of positive stability, angle of
vanishing stability, initial GM estimate and dynamic stability.

Each curve point is an independent calculation against the heeled
waterline; the center of gravity stays fixed.

Examples:
  gohydro stability curve --file hull.json --vcg 0.3
  gohydro stability curve -f hull.json --vcg 0.3 --from 0 --to 60 --step 2.5
  gohydro stability curve -f hull.json --vcg 0.3 --graph -o gz-curve.png`,
	Run: runStabilityCurve,
}

func init() {
	stabilityCmd.AddCommand(stabilityCurveCmd)

	stabilityCurveCmd.Flags().StringVarP(&curveFile, "file", "f", "", "Path to hull JSON file [required]")
	stabilityCurveCmd.MarkFlagRequired("file")

	stabilityCurveCmd.Flags().Float64VarP(&curveWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	stabilityCurveCmd.Flags().Float64Var(&curveLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	stabilityCurveCmd.Flags().Float64Var(&curveTCG, "tcg", 0, "Transverse center of gravity (m)")
	stabilityCurveCmd.Flags().Float64Var(&curveVCG, "vcg", 0, "Vertical center of gravity (m) [required]")
	stabilityCurveCmd.MarkFlagRequired("vcg")

	stabilityCurveCmd.Flags().Float64Var(&curveFrom, "from", 0, "Starting heel angle (deg)")
	stabilityCurveCmd.Flags().Float64Var(&curveTo, "to", 90, "Ending heel angle (deg)")
	stabilityCurveCmd.Flags().Float64Var(&curveStep, "step", 5, "Heel angle step (deg)")

	stabilityCurveCmd.Flags().StringVarP(&curveMethod, "method", "m", string(hydro.Simpson), "Integration method (simpson or trapezoid)")
	stabilityCurveCmd.Flags().Float64VarP(&curveDensity, "density", "d", hydro.SeawaterDensity, "Water density (kg/m³)")
	stabilityCurveCmd.Flags().BoolVar(&curveFresh, "fresh", false, "Use freshwater density (1000 kg/m³)")
	stabilityCurveCmd.Flags().IntVar(&curveStations, "stations", 0, "Resample the hull to this many stations before integrating")

	stabilityCurveCmd.Flags().BoolVar(&curveShowGraph, "graph", false, "Show ASCII GZ curve")
	stabilityCurveCmd.Flags().BoolVar(&curveShowTable, "table", false, "Show per-angle GZ table")
	stabilityCurveCmd.Flags().StringVarP(&curveExport, "output", "o", "", "Export curve diagram to file (png, svg, pdf)")
}

func runStabilityCurve(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(curveFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	cfg, err := buildConfig(curveMethod, curveDensity, curveFresh, curveStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	angles, err := stability.AngleRange(curveFrom, curveTo, curveStep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cg := &stability.CenterOfGravity{LCG: curveLCG, TCG: curveTCG, VCG: curveVCG}

	curve, err := stability.GenerateCurve(hull, cg, curveWaterline, angles, cfg)
	if err != nil {
		fmt.Printf("Error generating curve: %v\n", err)
		return
	}

	metrics, err := stability.ComputeMetrics(curve)
	if err != nil {
		fmt.Printf("Error computing metrics: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          RIGHTING ARM CURVE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)

	fmt.Println("PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Waterline:\t%.3f m\n", curveWaterline)
	fmt.Fprintf(w, "  CG (lcg, tcg, vcg):\t%.3f, %.3f, %.3f m\n", cg.LCG, cg.TCG, cg.VCG)
	fmt.Fprintf(w, "  Heel range:\t%.1f° to %.1f° step %.1f°\n", curveFrom, curveTo, curveStep)
	w.Flush()
	fmt.Println()

	if curveShowTable {
		fmt.Println("CURVE POINTS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Heel (°)\tGZ (m)\tVolume (m³)\n")
		fmt.Fprintf(w, "  ────────\t──────\t───────────\n")
		for i := range curve.Angles {
			volume := math.NaN()
			if curve.CBs[i] != nil {
				volume = curve.CBs[i].Volume
			}
			fmt.Fprintf(w, "  %.1f\t%.4f\t%.4f\n", curve.Angles[i], curve.GZ[i], volume)
		}
		w.Flush()
		fmt.Println()
	}

	if curveShowGraph {
		fmt.Println(diagram.DrawGZCurve(curve.Angles, curve.GZ))
	}

	printMetrics(metrics)

	if curveExport != "" {
		if err := diagram.ExportCurveDiagram(curve, metrics, curveExport); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", curveExport)
		}
	}
}

func printMetrics(m *stability.Metrics) {
	fmt.Println("STABILITY METRICS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max GZ:\t%s\n", formatMetric(m.MaxGZ, "m"))
	fmt.Fprintf(w, "  Angle of max GZ:\t%s\n", formatMetric(m.AngleOfMaxGZ, "°"))
	fmt.Fprintf(w, "  Positive range:\t%s to %s\n", formatMetric(m.PositiveRangeMin, "°"), formatMetric(m.PositiveRangeMax, "°"))
	fmt.Fprintf(w, "  Vanishing angle:\t%s\n", formatMetric(m.AngleOfVanishingStability, "°"))
	fmt.Fprintf(w, "  GM estimate:\t%s\n", formatMetric(m.GMEstimate, "m"))
	fmt.Fprintf(w, "  Dynamic stability:\t%s\n", formatMetric(m.DynamicStability, "m·rad"))
	w.Flush()
	fmt.Println()
}

func formatMetric(v float64, unit string) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f %s", v, unit)
}
