package geometry

import (
	"math"
	"testing"
)

func TestFlatWaterlineSignedDistance(t *testing.T) {
	wl := NewWaterline(0.5, 0, 0)

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"above", Point{Z: 1.0}, 0.5},
		{"on the surface", Point{Z: 0.5}, 0},
		{"below", Point{Z: -0.5}, -1.0},
		{"x and y do not matter when flat", Point{X: 10, Y: -3, Z: 0.5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wl.SignedDistance(tt.p); math.Abs(got-tt.want) > tol {
				t.Errorf("SignedDistance(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestHeeledWaterlineSurface(t *testing.T) {
	wl := NewWaterline(0, 30, 0)

	// Positive heel puts the water deeper on the +y (port) side: the
	// surface height must increase with y.
	zPort := wl.ZAt(0, 1)
	zStarboard := wl.ZAt(0, -1)
	if zPort <= zStarboard {
		t.Errorf("heeled surface should rise to port: z(+1)=%v, z(-1)=%v", zPort, zStarboard)
	}

	// The surface passes through the reference height on the centerline.
	if got := wl.ZAt(0, 0); math.Abs(got) > tol {
		t.Errorf("ZAt(0,0) = %v, want 0", got)
	}

	// The surface slope matches tan(heel).
	wantSlope := math.Tan(30 * math.Pi / 180)
	gotSlope := (zPort - zStarboard) / 2
	if math.Abs(gotSlope-wantSlope) > 1e-9 {
		t.Errorf("surface slope = %v, want %v", gotSlope, wantSlope)
	}
}

func TestVerticalWaterlineZAt(t *testing.T) {
	wl := NewWaterline(0, 90, 0)
	if got := wl.ZAt(0, 1); !math.IsNaN(got) {
		t.Errorf("ZAt at 90° heel = %v, want NaN", got)
	}
}

func TestTrimmedWaterline(t *testing.T) {
	wl := NewWaterline(0, 0, 5)

	// Positive trim immerses the bow: the water surface in the hull
	// frame rises going forward and drops at the stern.
	zBow := wl.ZAt(1, 0)
	zStern := wl.ZAt(-1, 0)
	if zBow <= zStern {
		t.Errorf("trimmed surface should rise toward the bow: z(+1)=%v, z(-1)=%v", zBow, zStern)
	}
}

func TestIntersect(t *testing.T) {
	wl := NewWaterline(0, 0, 0)

	t.Run("segment crossing the surface", func(t *testing.T) {
		p, ok := wl.Intersect(Point{Y: 1, Z: 1}, Point{Y: 1, Z: -3})
		if !ok {
			t.Fatal("expected an intersection")
		}
		want := Point{Y: 1, Z: 0}
		if !pointsClose(p, want, tol) {
			t.Errorf("Intersect = %+v, want %+v", p, want)
		}
	})

	t.Run("interpolation is proportional", func(t *testing.T) {
		p, ok := wl.Intersect(Point{Y: 0, Z: 1}, Point{Y: 4, Z: -1})
		if !ok {
			t.Fatal("expected an intersection")
		}
		if math.Abs(p.Y-2) > tol || math.Abs(p.Z) > tol {
			t.Errorf("Intersect = %+v, want (y=2, z=0)", p)
		}
	})

	t.Run("both endpoints above", func(t *testing.T) {
		if _, ok := wl.Intersect(Point{Z: 1}, Point{Z: 2}); ok {
			t.Error("expected no intersection for a segment above the surface")
		}
	})

	t.Run("both endpoints below", func(t *testing.T) {
		if _, ok := wl.Intersect(Point{Z: -1}, Point{Z: -2}); ok {
			t.Error("expected no intersection for a submerged segment")
		}
	})

	t.Run("coincident segment is degenerate", func(t *testing.T) {
		if _, ok := wl.Intersect(Point{Y: 0, Z: 0}, Point{Y: 1, Z: 0}); ok {
			t.Error("a segment lying in the plane must report no intersection")
		}
	})
}

func TestIsSubmerged(t *testing.T) {
	wl := NewWaterline(0, 45, 0)

	// At 45° heel the surface through the origin rises to port; a point
	// high on the port side can still be under water.
	if !wl.IsSubmerged(Point{Y: 2, Z: 1}) {
		t.Error("expected the high port-side point to be submerged at 45° heel")
	}
	if wl.IsSubmerged(Point{Y: -2, Z: 1}) {
		t.Error("expected the high starboard-side point to be dry at 45° heel")
	}
}
