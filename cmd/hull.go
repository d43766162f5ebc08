package cmd

import (
	"github.com/spf13/cobra"
)

var hullCmd = &cobra.Command{
	Use:   "hull",
	Short: "Hull hydrostatics: volume, buoyancy and section properties",
	Long: `Compute hydrostatic properties of a hull defined in a JSON file.

The hull is defined as an ordered series of transverse profiles, each a
closed boundary of points at one longitudinal station. Points must trace
the boundary in a consistent direction (e.g. port sheer, down around the
keel, up to the starboard sheer); stations must be strictly increasing.
Coordinates are in meters: x longitudinal, y transverse, z vertical.

Subcommands:
  volume    - Displaced volume and mass under a waterline
  buoyancy  - Center of buoyancy with plausibility checks
  sections  - Per-station submerged area and centroid breakdown

Example JSON file structure:
{
  "name": "Box Barge",
  "profiles": [
    {
      "station": 0,
      "points": [
        {"x": 0, "y": 0.5, "z": 0.5},
        {"x": 0, "y": 0.5, "z": -0.5},
        {"x": 0, "y": -0.5, "z": -0.5},
        {"x": 0, "y": -0.5, "z": 0.5}
      ]
    },
    {
      "station": 2,
      "points": [
        {"x": 2, "y": 0.5, "z": 0.5},
        {"x": 2, "y": 0.5, "z": -0.5},
        {"x": 2, "y": -0.5, "z": -0.5},
        {"x": 2, "y": -0.5, "z": 0.5}
      ]
    }
  ],
  "bow": [{"x": 2.4, "y": 0, "z": 0}]
}`,
}

func init() {
	rootCmd.AddCommand(hullCmd)
}
