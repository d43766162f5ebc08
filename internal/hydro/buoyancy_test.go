package hydro

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gohydro/internal/geometry"
)

func TestBuoyancyBoxHull(t *testing.T) {
	h := boxHull(t, []float64{0, 1, 2}, 0.5, -0.5, 0.5)
	wl := geometry.NewWaterline(0, 0, 0)

	cb, err := Buoyancy(h, wl, DefaultConfig())
	if err != nil {
		t.Fatalf("Buoyancy: %v", err)
	}
	if !cb.IsValid() {
		t.Fatal("expected a valid center of buoyancy")
	}

	if math.Abs(cb.Volume-1.0) > tol {
		t.Errorf("Volume = %v, want 1.0", cb.Volume)
	}
	if math.Abs(cb.LCB-1.0) > tol {
		t.Errorf("LCB = %v, want 1.0 (midships)", cb.LCB)
	}
	if math.Abs(cb.TCB) > tol {
		t.Errorf("TCB = %v, want 0 (centerline)", cb.TCB)
	}
	if math.Abs(cb.VCB+0.25) > tol {
		t.Errorf("VCB = %v, want -0.25 (centroid of the submerged half)", cb.VCB)
	}
}

func TestBuoyancyTaperedHull(t *testing.T) {
	// Half beam tapers linearly from 0.5 aft to 0.1 forward; fully
	// submerged, the section area is 1 - 0.4x and the analytic LCB is
	// (2 - 3.2/3) / 1.2 = 7/9.
	profiles := []geometry.Profile{
		*boxProfile(0, 0.5, -0.5, 0.5),
		*boxProfile(1, 0.3, -0.5, 0.5),
		*boxProfile(2, 0.1, -0.5, 0.5),
	}
	h, err := geometry.NewHull("taper", profiles)
	if err != nil {
		t.Fatalf("NewHull: %v", err)
	}

	cb, err := Buoyancy(h, geometry.NewWaterline(1, 0, 0), DefaultConfig())
	if err != nil {
		t.Fatalf("Buoyancy: %v", err)
	}
	if !cb.IsValid() {
		t.Fatal("expected a valid center of buoyancy")
	}

	if math.Abs(cb.Volume-1.2) > tol {
		t.Errorf("Volume = %v, want 1.2", cb.Volume)
	}
	// The area is linear and x·A quadratic, so Simpson is exact here.
	if math.Abs(cb.LCB-7.0/9.0) > tol {
		t.Errorf("LCB = %v, want %v", cb.LCB, 7.0/9.0)
	}
}

func TestBuoyancyHeeledShiftsToPort(t *testing.T) {
	h := boxHull(t, []float64{0, 1, 2}, 0.5, -0.5, 0.5)

	cb, err := Buoyancy(h, geometry.NewWaterline(0, 10, 0), DefaultConfig())
	if err != nil {
		t.Fatalf("Buoyancy: %v", err)
	}
	if !cb.IsValid() {
		t.Fatal("expected a valid center of buoyancy")
	}

	// Positive heel immerses the port side; the displaced volume and its
	// centroid shift to +Y.
	if cb.TCB <= 0 {
		t.Errorf("TCB = %v, want > 0 at positive heel", cb.TCB)
	}
	if math.Abs(cb.LCB-1.0) > tol {
		t.Errorf("LCB = %v, want 1.0 (heel must not move the LCB)", cb.LCB)
	}
}

func TestBuoyancyDryHull(t *testing.T) {
	h := boxHull(t, []float64{0, 1, 2}, 0.5, -0.5, 0.5)

	cb, err := Buoyancy(h, geometry.NewWaterline(-2, 0, 0), DefaultConfig())
	if err != nil {
		t.Fatalf("Buoyancy: %v", err)
	}
	if cb.IsValid() {
		t.Error("expected an undefined center of buoyancy for a dry hull")
	}
	if cb.LCB != 0 || cb.TCB != 0 || cb.VCB != 0 {
		t.Errorf("undefined CB must report zeros, got %+v", cb)
	}
}

func TestValidateBuoyancy(t *testing.T) {
	tests := []struct {
		name         string
		cb           CenterOfBuoyancy
		wantWarnings int
	}{
		{"plausible upright result", CenterOfBuoyancy{
			VCB: -0.25, Volume: 1, WaterlineZ: 0, Valid: true,
		}, 0},
		{"undefined centroid", CenterOfBuoyancy{Valid: false}, 1},
		{"vcb above the surface", CenterOfBuoyancy{
			VCB: 0.5, Volume: 1, WaterlineZ: 0, Valid: true,
		}, 1},
		{"tcb off centerline at zero heel", CenterOfBuoyancy{
			TCB: 0.01, VCB: -0.25, Volume: 1, Valid: true,
		}, 1},
		{"extreme heel", CenterOfBuoyancy{
			HeelAngle: 75, TCB: 0.3, VCB: -0.2, Volume: 1, Valid: true,
		}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := ValidateBuoyancy(&tt.cb)
			if len(warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings (%v), want %d", len(warnings), warnings, tt.wantWarnings)
			}
		})
	}
}
