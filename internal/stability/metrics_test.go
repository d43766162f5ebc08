package stability

import (
	"math"
	"testing"
)

// syntheticCurve builds a curve directly from parallel angle/GZ slices.
func syntheticCurve(angles, gz []float64) *Curve {
	return &Curve{Angles: angles, GZ: gz}
}

func TestComputeMetrics(t *testing.T) {
	// A typical small-craft curve: rises to 0.234 m at 35°, crosses zero
	// between the 75° (+0.01) and 80° (-0.09) samples.
	angles := []float64{0, 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80}
	gz := []float64{0, 0.055, 0.110, 0.160, 0.195, 0.220, 0.231, 0.234, 0.230, 0.218, 0.198, 0.170, 0.135, 0.095, 0.052, 0.010, -0.090}

	m, err := ComputeMetrics(syntheticCurve(angles, gz))
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	if m.MaxGZ != 0.234 {
		t.Errorf("MaxGZ = %v, want 0.234", m.MaxGZ)
	}
	if m.AngleOfMaxGZ != 35 {
		t.Errorf("AngleOfMaxGZ = %v, want 35", m.AngleOfMaxGZ)
	}

	// Zero crossing interpolated between 75° and 80°: 75 + 5·0.01/0.10.
	if math.Abs(m.AngleOfVanishingStability-75.5) > 1e-9 {
		t.Errorf("AngleOfVanishingStability = %v, want 75.5", m.AngleOfVanishingStability)
	}
	if math.Abs(m.PositiveRangeMax-75.5) > 1e-9 {
		t.Errorf("PositiveRangeMax = %v, want 75.5", m.PositiveRangeMax)
	}
	// The sample at 0° is not positive; the range opens at the interpolated
	// crossing, which is 0° itself here.
	if math.Abs(m.PositiveRangeMin) > 1e-9 {
		t.Errorf("PositiveRangeMin = %v, want 0", m.PositiveRangeMin)
	}

	// Secant GM at the smallest positive sampled angle, 5°.
	wantGM := 0.055 / math.Sin(5*math.Pi/180)
	if math.Abs(m.GMEstimate-wantGM) > 1e-9 {
		t.Errorf("GMEstimate = %v, want %v", m.GMEstimate, wantGM)
	}

	// Dynamic stability must be positive and bounded above by a rectangle
	// of MaxGZ over the positive range.
	if math.IsNaN(m.DynamicStability) || m.DynamicStability <= 0 {
		t.Fatalf("DynamicStability = %v, want > 0", m.DynamicStability)
	}
	upper := m.MaxGZ * 75.5 * math.Pi / 180
	if m.DynamicStability >= upper {
		t.Errorf("DynamicStability = %v, want below the rectangle bound %v", m.DynamicStability, upper)
	}
}

func TestComputeMetricsPositiveThroughout(t *testing.T) {
	angles := []float64{0, 15, 30, 45, 60}
	gz := []float64{0, 0.1, 0.18, 0.2, 0.15}

	m, err := ComputeMetrics(syntheticCurve(angles, gz))
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	if !math.IsNaN(m.AngleOfVanishingStability) {
		t.Errorf("AngleOfVanishingStability = %v, want NaN when GZ never crosses", m.AngleOfVanishingStability)
	}
	if m.PositiveRangeMax != 60 {
		t.Errorf("PositiveRangeMax = %v, want the last sampled angle 60", m.PositiveRangeMax)
	}
	// The smallest positive angle is 15°, past the secant limit.
	if !math.IsNaN(m.GMEstimate) {
		t.Errorf("GMEstimate = %v, want NaN when no sample lies at or below 10°", m.GMEstimate)
	}
	// Dynamic stability integrates to the end of the sampled range.
	if math.IsNaN(m.DynamicStability) || m.DynamicStability <= 0 {
		t.Errorf("DynamicStability = %v, want > 0", m.DynamicStability)
	}
}

func TestComputeMetricsNeverPositive(t *testing.T) {
	angles := []float64{0, 10, 20}
	gz := []float64{0, -0.05, -0.12}

	m, err := ComputeMetrics(syntheticCurve(angles, gz))
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	if m.MaxGZ != 0 {
		t.Errorf("MaxGZ = %v, want 0", m.MaxGZ)
	}
	if !math.IsNaN(m.PositiveRangeMin) || !math.IsNaN(m.PositiveRangeMax) {
		t.Errorf("positive range = [%v, %v], want NaN for an always-heeling hull", m.PositiveRangeMin, m.PositiveRangeMax)
	}
	if !math.IsNaN(m.AngleOfVanishingStability) {
		t.Errorf("AngleOfVanishingStability = %v, want NaN", m.AngleOfVanishingStability)
	}
	if !math.IsNaN(m.DynamicStability) {
		t.Errorf("DynamicStability = %v, want NaN without a positive range", m.DynamicStability)
	}
}

func TestComputeMetricsDelayedPositiveRange(t *testing.T) {
	// A lolling hull: negative near upright, positive past 20°.
	angles := []float64{0, 10, 20, 30, 40, 50}
	gz := []float64{0, -0.04, -0.01, 0.03, 0.05, 0.02}

	m, err := ComputeMetrics(syntheticCurve(angles, gz))
	if err != nil {
		t.Fatalf("ComputeMetrics: %v", err)
	}

	// Crossing between 20° (-0.01) and 30° (+0.03): 20 + 10·0.01/0.04.
	if math.Abs(m.PositiveRangeMin-22.5) > 1e-9 {
		t.Errorf("PositiveRangeMin = %v, want 22.5", m.PositiveRangeMin)
	}
	if m.PositiveRangeMax != 50 {
		t.Errorf("PositiveRangeMax = %v, want 50", m.PositiveRangeMax)
	}
}

func TestComputeMetricsErrors(t *testing.T) {
	if _, err := ComputeMetrics(nil); err == nil {
		t.Error("expected an error for a nil curve")
	}
	if _, err := ComputeMetrics(&Curve{}); err == nil {
		t.Error("expected an error for an empty curve")
	}
	if _, err := ComputeMetrics(&Curve{Angles: []float64{0, 5}, GZ: []float64{0}}); err == nil {
		t.Error("expected an error for mismatched slices")
	}
}
