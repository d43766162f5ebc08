package stability

import (
	"fmt"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

// Curve holds a righting-arm curve: parallel slices of heel angles and GZ
// values, plus the buoyancy centroid behind each point. Immutable once
// generated; every point is an independent calculation, so callers may
// parallelize generation themselves if they need to.
type Curve struct {
	Angles []float64 `json:"angles"` // deg
	GZ     []float64 `json:"gz"`     // m

	CBs []*hydro.CenterOfBuoyancy `json:"cbs,omitempty"`

	WaterlineZ float64          `json:"waterline_z"`
	CG         *CenterOfGravity `json:"cg"`
}

// DefaultHeelAngles returns the default sweep, 0° to 90° in 5° steps.
func DefaultHeelAngles() []float64 {
	angles := make([]float64, 0, 19)
	for a := 0.0; a <= 90.0; a += 5.0 {
		angles = append(angles, a)
	}
	return angles
}

// AngleRange builds an inclusive angle sweep with the given step.
func AngleRange(from, to, step float64) ([]float64, error) {
	if step <= 0 {
		return nil, fmt.Errorf("heel angle step must be positive, got %v", step)
	}
	if to < from {
		return nil, fmt.Errorf("heel angle range is reversed: from %v to %v", from, to)
	}
	var angles []float64
	for a := from; a <= to+1e-9; a += step {
		angles = append(angles, a)
	}
	return angles, nil
}

// GenerateCurve maps GZ over the supplied heel angles. A nil or empty
// angle slice uses the default 0°–90° sweep. Points where the hull leaves
// the water entirely (invalid CB) contribute GZ = 0 and keep their invalid
// marker on the stored CB, so one degenerate sample does not abort the
// batch.
func GenerateCurve(hull *geometry.Hull, cg *CenterOfGravity, waterlineZ float64, angles []float64, cfg hydro.Config) (*Curve, error) {
	if len(angles) == 0 {
		angles = DefaultHeelAngles()
	}

	curve := &Curve{
		Angles:     make([]float64, len(angles)),
		GZ:         make([]float64, len(angles)),
		CBs:        make([]*hydro.CenterOfBuoyancy, len(angles)),
		WaterlineZ: waterlineZ,
		CG:         cg,
	}

	for i, angle := range angles {
		arm, err := GZ(hull, cg, waterlineZ, angle, cfg)
		if err != nil {
			return nil, err
		}
		curve.Angles[i] = angle
		curve.GZ[i] = arm.GZ
		curve.CBs[i] = arm.CB
	}

	return curve, nil
}

// Len returns the number of points in the curve.
func (c *Curve) Len() int {
	return len(c.Angles)
}
