package cmd

import (
	"github.com/spf13/cobra"
)

var stabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Righting-arm curves, stability metrics and criteria",
	Long: `Compute righting arms and assess stability for a hull and a fixed
center of gravity.

The center of gravity is held fixed while the heel angle varies. Positive
GZ is a righting (stable) moment. Results above roughly 60° of heel use
small-angle assumptions in some auxiliary metrics and degrade in accuracy.

Subcommands:
  gz      - Righting arm at a single heel angle
  curve   - GZ curve over a heel-angle range with metrics
  assess  - Evaluate stability criteria against thresholds`,
}

func init() {
	rootCmd.AddCommand(stabilityCmd)
}
