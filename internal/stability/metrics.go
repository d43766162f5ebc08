package stability

import (
	"fmt"
	"math"
)

// Metrics holds the scalar stability measures extracted from a righting-arm
// curve. GMEstimate and DynamicStability are optional: they stay NaN when
// the curve does not support them (no small sampled angle, no positive
// range) and the criteria evaluator reports them as not applicable.
type Metrics struct {
	MaxGZ        float64 `json:"max_gz"`          // m
	AngleOfMaxGZ float64 `json:"angle_of_max_gz"` // deg

	// Range of positive stability (deg)
	PositiveRangeMin float64 `json:"positive_range_min"`
	PositiveRangeMax float64 `json:"positive_range_max"`

	// AngleOfVanishingStability is where GZ crosses from positive to
	// negative, linearly interpolated between samples (deg). NaN when the
	// curve never loses positive stability within the sampled range.
	AngleOfVanishingStability float64 `json:"angle_of_vanishing_stability"`

	// GMEstimate is the initial-stability slope gz(φ)/sin(φ) at the
	// smallest positive sampled angle (m). Only computed when that angle
	// is at most 10°; the small-angle approximation degrades quickly
	// above that and badly above 60° heel.
	GMEstimate float64 `json:"gm_estimate"`

	// DynamicStability is the area under the GZ curve from 0 to the
	// vanishing angle, with heel in radians (m·rad): the energy absorbed
	// resisting capsize.
	DynamicStability float64 `json:"dynamic_stability"`
}

// gmMaxSecantAngle bounds the secant GM estimate (deg).
const gmMaxSecantAngle = 10.0

// ComputeMetrics extracts stability metrics from a curve.
func ComputeMetrics(curve *Curve) (*Metrics, error) {
	if curve == nil || curve.Len() == 0 {
		return nil, fmt.Errorf("stability curve is empty")
	}
	if len(curve.GZ) != len(curve.Angles) {
		return nil, fmt.Errorf("malformed curve: %d angles, %d gz values", len(curve.Angles), len(curve.GZ))
	}

	m := &Metrics{
		GMEstimate:                math.NaN(),
		DynamicStability:          math.NaN(),
		AngleOfVanishingStability: math.NaN(),
		PositiveRangeMin:          math.NaN(),
		PositiveRangeMax:          math.NaN(),
	}

	// Max GZ by argmax over the sampled points.
	m.MaxGZ = curve.GZ[0]
	m.AngleOfMaxGZ = curve.Angles[0]
	for i := 1; i < curve.Len(); i++ {
		if curve.GZ[i] > m.MaxGZ {
			m.MaxGZ = curve.GZ[i]
			m.AngleOfMaxGZ = curve.Angles[i]
		}
	}

	m.findPositiveRange(curve)
	m.estimateGM(curve)
	m.integrateDynamicStability(curve)

	return m, nil
}

// findPositiveRange scans for sign changes around the positive-GZ region
// and interpolates the exact crossings instead of snapping to the nearest
// sampled angle.
func (m *Metrics) findPositiveRange(curve *Curve) {
	n := curve.Len()

	// Locate the first positive sample.
	first := -1
	for i := 0; i < n; i++ {
		if curve.GZ[i] > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return // GZ never positive, no stability range at all
	}

	if first == 0 {
		m.PositiveRangeMin = curve.Angles[0]
	} else {
		m.PositiveRangeMin = interpolateZero(
			curve.Angles[first-1], curve.GZ[first-1],
			curve.Angles[first], curve.GZ[first])
	}

	// Scan forward from the first positive sample for the downward
	// crossing: the angle of vanishing stability.
	for i := first; i+1 < n; i++ {
		if curve.GZ[i] > 0 && curve.GZ[i+1] <= 0 {
			m.AngleOfVanishingStability = interpolateZero(
				curve.Angles[i], curve.GZ[i],
				curve.Angles[i+1], curve.GZ[i+1])
			m.PositiveRangeMax = m.AngleOfVanishingStability
			return
		}
	}

	// GZ stayed positive through the sampled range.
	m.PositiveRangeMax = curve.Angles[n-1]
}

// interpolateZero returns the angle where GZ crosses zero between two
// samples, at t = gz1/(gz1-gz2).
func interpolateZero(a1, gz1, a2, gz2 float64) float64 {
	if gz1 == gz2 {
		return a1
	}
	return a1 + (a2-a1)*gz1/(gz1-gz2)
}

// estimateGM takes the secant slope gz/sin(φ) at the smallest positive
// sampled angle. Valid only when that angle is small; otherwise the field
// stays NaN.
func (m *Metrics) estimateGM(curve *Curve) {
	for i := 0; i < curve.Len(); i++ {
		a := curve.Angles[i]
		if a <= 0 {
			continue
		}
		if a > gmMaxSecantAngle {
			return
		}
		m.GMEstimate = curve.GZ[i] / math.Sin(a*math.Pi/180)
		return
	}
}

// integrateDynamicStability integrates GZ over heel (radians) from zero to
// the vanishing angle with the trapezoidal rule, appending the interpolated
// crossing point so the area stops exactly at GZ = 0.
func (m *Metrics) integrateDynamicStability(curve *Curve) {
	end := m.AngleOfVanishingStability
	if math.IsNaN(end) {
		if math.IsNaN(m.PositiveRangeMax) {
			return
		}
		end = m.PositiveRangeMax
	}

	var area, prevAngle, prevGZ float64
	started := false
	for i := 0; i < curve.Len(); i++ {
		a := curve.Angles[i]
		if a < 0 {
			continue
		}
		if a > end {
			// Close the panel at the interpolated zero crossing.
			area += prevGZ / 2 * (end - prevAngle) * math.Pi / 180
			m.DynamicStability = area
			return
		}
		if started {
			area += (prevGZ + curve.GZ[i]) / 2 * (a - prevAngle) * math.Pi / 180
		}
		prevAngle, prevGZ = a, curve.GZ[i]
		started = true
	}
	m.DynamicStability = area
}
