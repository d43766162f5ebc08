package hydro

import (
	"fmt"
	"math"
)

// Warning is an advisory plausibility finding. Warnings never abort a
// calculation; they travel alongside the computed result so the caller
// decides severity.
type Warning struct {
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Tolerances for the plausibility checks.
const (
	// tcbCenterlineTolerance is how far the transverse CB may drift off
	// the centerline at zero heel before a symmetric hull looks suspect (m).
	tcbCenterlineTolerance = 1e-3

	// extremeHeelAngle is where the small-angle assumptions in the
	// auxiliary metrics start degrading (deg).
	extremeHeelAngle = 60.0
)

// ValidateBuoyancy runs plausibility checks on a computed center of
// buoyancy. The calculator itself never enforces these: computation and
// validation are separated so batch curve generation is not aborted by one
// implausible sample.
func ValidateBuoyancy(cb *CenterOfBuoyancy) []Warning {
	var warnings []Warning

	if !cb.Valid {
		warnings = append(warnings, Warning{
			Message: "center of buoyancy is undefined: displaced volume is zero",
		})
		return warnings
	}

	// The buoyancy centroid must lie in the water.
	if surface := waterSurfaceZAtCB(cb); !math.IsNaN(surface) && cb.VCB > surface {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("VCB %.4f m lies above the water surface %.4f m", cb.VCB, surface),
		})
	}

	if cb.HeelAngle == 0 && math.Abs(cb.TCB) > tcbCenterlineTolerance {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("TCB %.4f m is off the centerline at zero heel; hull geometry may be asymmetric or mis-wound", cb.TCB),
		})
	}

	if math.Abs(cb.HeelAngle) > extremeHeelAngle {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("heel angle %.1f° exceeds %.0f°; small-angle assumptions in derived metrics degrade", cb.HeelAngle, extremeHeelAngle),
		})
	}

	return warnings
}

// waterSurfaceZAtCB approximates the water surface height above the CB
// position for the VCB check, using the plane equation at the centroid's
// longitudinal and transverse location.
func waterSurfaceZAtCB(cb *CenterOfBuoyancy) float64 {
	// Rebuild the plane the CB was computed against.
	heelRad := cb.HeelAngle * math.Pi / 180
	c := math.Cos(heelRad)
	if math.Abs(c) < 1e-12 {
		return math.NaN()
	}
	b := -math.Sin(heelRad)
	return (c*cb.WaterlineZ - b*cb.TCB) / c
}
