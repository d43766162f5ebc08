package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gohydro/internal/diagram"
	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
	"github.com/spf13/cobra"
)

var (
	sectionsFile        string
	sectionsWaterline   float64
	sectionsHeel        float64
	sectionsTrim        float64
	sectionsShowDiagram bool
	sectionsStation     float64
	sectionsExportFile  string
)

var hullSectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Per-station submerged section properties",
	Long: `List the submerged area and centroid of every hull station under
a waterline, optionally with a section diagram.

Examples:
  gohydro hull sections --file hull.json --waterline 0.0
  gohydro hull sections -f hull.json --heel 15 --diagram --station 2.0
  gohydro hull sections -f hull.json --station 2.0 -o section.png`,
	Run: runHullSections,
}

func init() {
	hullCmd.AddCommand(hullSectionsCmd)

	hullSectionsCmd.Flags().StringVarP(&sectionsFile, "file", "f", "", "Path to hull JSON file [required]")
	hullSectionsCmd.MarkFlagRequired("file")

	hullSectionsCmd.Flags().Float64VarP(&sectionsWaterline, "waterline", "w", 0, "Waterline reference height (m)")
	hullSectionsCmd.Flags().Float64Var(&sectionsHeel, "heel", 0, "Heel angle (deg)")
	hullSectionsCmd.Flags().Float64Var(&sectionsTrim, "trim", 0, "Trim angle (deg)")

	hullSectionsCmd.Flags().BoolVar(&sectionsShowDiagram, "diagram", false, "Show ASCII section diagram")
	hullSectionsCmd.Flags().Float64Var(&sectionsStation, "station", 0, "Station to draw (defaults to midships)")
	hullSectionsCmd.Flags().StringVarP(&sectionsExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runHullSections(cmd *cobra.Command, args []string) {
	hull, err := geometry.LoadFromFile(sectionsFile)
	if err != nil {
		fmt.Printf("Error loading hull: %v\n", err)
		return
	}

	wl := geometry.NewWaterline(sectionsWaterline, sectionsHeel, sectionsTrim)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SUBMERGED SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printHullInfo(hull)

	fmt.Println("SECTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Station (m)\tArea (m²)\tCentroid Y (m)\tCentroid Z (m)\tStatus\n")
	fmt.Fprintf(w, "  ───────────\t─────────\t──────────────\t──────────────\t──────\n")
	for i := range hull.Profiles {
		props := hydro.SectionProperties(&hull.Profiles[i], wl)
		status := "submerged"
		if !props.IsValid() {
			status = "dry"
		}
		fmt.Fprintf(w, "  %.3f\t%.4f\t%.4f\t%.4f\t%s\n",
			props.Station, props.Area, props.CentroidY, props.CentroidZ, status)
	}
	w.Flush()
	fmt.Println()

	if !sectionsShowDiagram && sectionsExportFile == "" {
		return
	}

	profile := nearestProfile(hull, sectionsStation, cmd.Flags().Changed("station"))
	props := hydro.SectionProperties(profile, wl)

	if sectionsShowDiagram {
		fmt.Println(diagram.DrawASCIIProfileDiagram(diagram.ProfileDiagramData{
			Profile:   profile,
			Waterline: wl,
			Props:     props,
		}))
	}

	if sectionsExportFile != "" {
		if err := diagram.ExportProfileDiagram(profile, wl, sectionsExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionsExportFile)
		}
	}
}

// nearestProfile picks the profile closest to the requested station, or
// the midships profile when no station was given.
func nearestProfile(hull *geometry.Hull, station float64, explicit bool) *geometry.Profile {
	if !explicit {
		return &hull.Profiles[len(hull.Profiles)/2]
	}
	best := 0
	for i := range hull.Profiles {
		if abs(hull.Profiles[i].Station-station) < abs(hull.Profiles[best].Station-station) {
			best = i
		}
	}
	return &hull.Profiles[best]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
