package stability

import (
	"math"

	"github.com/alexiusacademia/gohydro/internal/geometry"
	"github.com/alexiusacademia/gohydro/internal/hydro"
)

// RightingArm holds the righting arm GZ at one heel angle, together with
// the buoyancy centroid and center of gravity it was computed from.
// Positive GZ is a righting (stable) moment.
type RightingArm struct {
	GZ        float64 `json:"gz"`         // m
	HeelAngle float64 `json:"heel_angle"` // deg

	CB *hydro.CenterOfBuoyancy `json:"cb"`
	CG *CenterOfGravity        `json:"cg"`

	WaterlineZ float64 `json:"waterline_z"`

	// Valid is false when the buoyancy centroid was undefined (zero
	// displaced volume) at this heel angle.
	Valid bool `json:"valid"`
}

// GZ computes the righting arm at one heel angle. The hull is never
// rotated: the waterline plane carries the inclination, the buoyancy
// centroid comes out in the hull frame, and both CB and the fixed CG are
// then projected into the heeled frame with the same rotation, so
//
//	GZ = (tcb·cosφ + vcb·sinφ) − (tcg·cosφ + vcg·sinφ)
//
// The vertical heeled-frame components are computed by the same projection
// but do not enter the final formula.
func GZ(hull *geometry.Hull, cg *CenterOfGravity, waterlineZ, heelDeg float64, cfg hydro.Config) (*RightingArm, error) {
	wl := geometry.NewWaterline(waterlineZ, heelDeg, 0)

	cb, err := hydro.Buoyancy(hull, wl, cfg)
	if err != nil {
		return nil, err
	}

	arm := &RightingArm{
		HeelAngle:  heelDeg,
		CB:         cb,
		CG:         cg,
		WaterlineZ: waterlineZ,
	}
	if !cb.Valid {
		return arm, nil
	}

	rad := heelDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	tcbHeeled := cb.TCB*cos + cb.VCB*sin
	tcgHeeled := cg.TCG*cos + cg.VCG*sin

	arm.GZ = tcbHeeled - tcgHeeled
	arm.Valid = true
	return arm, nil
}
