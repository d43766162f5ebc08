package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/alexiusacademia/gohydro/internal/stability"
	"github.com/spf13/cobra"
)

var (
	assessFile      string
	assessWaterline float64
	assessLCG       float64
	assessTCG       float64
	assessVCG       float64
	assessFrom      float64
	assessTo        float64
	assessStep      float64
	assessMethod    string
	assessDensity   float64
	assessFresh     bool
	assessStations  int
	assessStrict    bool

	assessMinGM        float64
	assessMinMaxGZ     float64
	assessMinAngleMax  float64
	assessMinRange     float64
	assessMinVanishing float64
	assessMinDynamic   float64
)

var stabilityAssessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate stability criteria against thresholds",
	Long: `Generate a GZ curve, extract stability metrics and evaluate each
named criterion against its configurable minimum.

A value below its minimum yields WARNING, or FAIL with --strict.
Physically impossible values (negative GM, negative max GZ) always FAIL.
Metrics the sampled curve cannot support are reported NOT_APPLICABLE.

Examples:
  gohydro stability assess --file hull.json --vcg 0.3
  gohydro stability assess -f hull.json --vcg 0.3 --strict
  gohydro stability assess -f hull.json --vcg 0.3 --min-gm 0.35 --min-range 90`,
	Run: runStabilityAssess,
}

func init() {
	stabilityCmd.AddCommand(stabilityAssessCmd)

	stabilityAssessCmd.Flags().StringVarP(&assessFile, "file", "f", "", "Path to hull JSON file [required]")
	stabilityAssessCmd.MarkFlagRequired("file")

	stabilityAssessCmd.Flags().Float64VarP(&assessWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	stabilityAssessCmd.Flags().Float64Var(&assessLCG, "lcg", 0, "Longitudinal center of gravity (m)")
	stabilityAssessCmd.Flags().Float64Var(&assessTCG, "tcg", 0, "Transverse center of gravity (m)")
	stabilityAssessCmd.Flags().Float64Var(&assessVCG, "vcg", 0, "Vertical center of gravity (m) [required]")
	stabilityAssessCmd.MarkFlagRequired("vcg")

	stabilityAssessCmd.Flags().Float64Var(&assessFrom, "from", 0, "Starting heel angle (deg)")
	stabilityAssessCmd.Flags().Float64Var(&assessTo, "to", 90, "Ending heel angle (deg)")
	stabilityAssessCmd.Flags().Float64Var(&assessStep, "step", 5, "Heel angle step (deg)")

	stabilityAssessCmd.Flags().StringVarP(&assessMethod, "method", "m", string(hydro.Simpson), "Integration method (simpson or trapezoid)")
	stabilityAssessCmd.Flags().Float64VarP(&assessDensity, "density", "d", hydro.SeawaterDensity, "Water density (kg/m³)")
	stabilityAssessCmd.Flags().BoolVar(&assessFresh, "fresh", false, "Use freshwater density (1000 kg/m³)")
	stabilityAssessCmd.Flags().IntVar(&assessStations, "stations", 0, "Resample the hull to this many stations before integrating")

	stabilityAssessCmd.Flags().BoolVar(&assessStrict, "strict", false, "Treat below-minimum values as FAIL instead of WARNING")

	defaults := stability.DefaultThresholds()
	stabilityAssessCmd.Flags().Float64Var(&assessMinGM, "min-gm", defaults.MinGM, "Minimum metacentric height (m)")
	stabilityAssessCmd.Flags().Float64Var(&assessMinMaxGZ, "min-max-gz", defaults.MinMaxGZ, "Minimum maximum righting arm (m)")
	stabilityAssessCmd.Flags().Float64Var(&assessMinAngleMax, "min-angle-max-gz", defaults.MinAngleOfMaxGZ, "Minimum angle of maximum GZ (deg)")
	stabilityAssessCmd.Flags().Float64Var(&assessMinRange, "min-range", defaults.MinPositiveRange, "Minimum range of positive stability (deg)")
	stabilityAssessCmd.Flags().Float64Var(&assessMinVanishing, "min-vanishing", defaults.MinVanishingAngle, "Minimum angle of vanishing stability (deg)")
	stabilityAssessCmd.Flags().Float64Var(&assessMinDynamic, "min-dynamic", defaults.MinDynamicStability, "Minimum dynamic stability (m·rad)")
}

func runStabilityAssess(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(assessFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	cfg, err := buildConfig(assessMethod, assessDensity, assessFresh, assessStations)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	angles, err := stability.AngleRange(assessFrom, assessTo, assessStep)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	cg := &stability.CenterOfGravity{LCG: assessLCG, TCG: assessTCG, VCG: assessVCG}

	curve, err := stability.GenerateCurve(hull, cg, assessWaterline, angles, cfg)
	if err != nil {
		fmt.Printf("Error generating curve: %v\n", err)
		return
	}

	metrics, err := stability.ComputeMetrics(curve)
	if err != nil {
		fmt.Printf("Error computing metrics: %v\n", err)
		return
	}

	thresholds := stability.Thresholds{
		MinGM:               assessMinGM,
		MinMaxGZ:            assessMinMaxGZ,
		MinAngleOfMaxGZ:     assessMinAngleMax,
		MinPositiveRange:    assessMinRange,
		MinVanishingAngle:   assessMinVanishing,
		MinDynamicStability: assessMinDynamic,
		StrictMode:          assessStrict,
	}

	assessment, err := stability.Assess(metrics, thresholds)
	if err != nil {
		fmt.Printf("Error assessing stability: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          STABILITY CRITERIA ASSESSMENT")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)
	printMetrics(metrics)

	fmt.Println("CRITERIA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Criterion\tMeasured\tRequired\tResult\n")
	fmt.Fprintf(w, "  ─────────\t────────\t────────\t──────\n")
	for _, c := range assessment.Checks {
		measured := "n/a"
		if !math.IsNaN(c.Measured) {
			measured = fmt.Sprintf("%.4f", c.Measured)
		}
		fmt.Fprintf(w, "  %s\t%s\t%.4f\t%s\n", c.Name, measured, c.Required, c.Result)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  OVERALL RESULT: %-8s                 ║\n", assessment.Overall)
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()

	if len(assessment.Recommendations) > 0 {
		fmt.Println("RECOMMENDATIONS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, rec := range assessment.Recommendations {
			fmt.Printf("  • %s\n", rec)
		}
		fmt.Println()
	}
}
