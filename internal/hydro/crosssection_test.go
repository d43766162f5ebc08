package hydro

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gohydro/internal/geometry"
)

const tol = 1e-9

// boxProfile builds a rectangular section traced clockwise from the top
// port corner.
func boxProfile(station, halfBeam, bottom, top float64) *geometry.Profile {
	return &geometry.Profile{
		Station: station,
		Points: []geometry.Point{
			{X: station, Y: halfBeam, Z: top},
			{X: station, Y: halfBeam, Z: bottom},
			{X: station, Y: -halfBeam, Z: bottom},
			{X: station, Y: -halfBeam, Z: top},
		},
	}
}

// circleProfile approximates a circular section of the given radius with n
// boundary points, centered at (0, zc). The vertex angles are offset by half
// a step so none lie exactly on the horizontal axis.
func circleProfile(station, radius, zc float64, n int) *geometry.Profile {
	pts := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		theta := (float64(i) + 0.5) * 2 * math.Pi / float64(n)
		pts[i] = geometry.Point{
			X: station,
			Y: radius * math.Cos(theta),
			Z: zc + radius*math.Sin(theta),
		}
	}
	return &geometry.Profile{Station: station, Points: pts}
}

func TestSectionPropertiesBox(t *testing.T) {
	p := boxProfile(0, 0.5, -0.5, 0.5)

	t.Run("half submerged", func(t *testing.T) {
		props := SectionProperties(p, geometry.NewWaterline(0, 0, 0))
		if !props.IsValid() {
			t.Fatal("expected a valid section")
		}
		if math.Abs(props.Area-0.5) > tol {
			t.Errorf("Area = %v, want 0.5", props.Area)
		}
		if math.Abs(props.CentroidY) > tol {
			t.Errorf("CentroidY = %v, want 0", props.CentroidY)
		}
		if math.Abs(props.CentroidZ+0.25) > tol {
			t.Errorf("CentroidZ = %v, want -0.25", props.CentroidZ)
		}
	})

	t.Run("fully submerged", func(t *testing.T) {
		props := SectionProperties(p, geometry.NewWaterline(1, 0, 0))
		if !props.IsValid() {
			t.Fatal("expected a valid section")
		}
		if math.Abs(props.Area-1.0) > tol {
			t.Errorf("Area = %v, want 1.0", props.Area)
		}
		if math.Abs(props.CentroidY) > tol || math.Abs(props.CentroidZ) > tol {
			t.Errorf("centroid = (%v, %v), want (0, 0)", props.CentroidY, props.CentroidZ)
		}
	})

	t.Run("fully above water", func(t *testing.T) {
		props := SectionProperties(p, geometry.NewWaterline(-1, 0, 0))
		if props.IsValid() {
			t.Error("expected an invalid section")
		}
		if props.Area != 0 || props.CentroidY != 0 || props.CentroidZ != 0 {
			t.Errorf("invalid section must report zeros, got %+v", props)
		}
	})

	t.Run("waterline exactly at the sheer", func(t *testing.T) {
		props := SectionProperties(p, geometry.NewWaterline(0.5, 0, 0))
		if !props.IsValid() {
			t.Fatal("expected a valid section")
		}
		if math.Abs(props.Area-1.0) > tol {
			t.Errorf("Area = %v, want 1.0", props.Area)
		}
	})
}

// A circular section is not monotonic in the transverse coordinate, so any
// clipping that re-sorts the boundary points corrupts it. The preserved-order
// clip must reproduce the half-disc area.
func TestSectionPropertiesCircle(t *testing.T) {
	const radius = 1.0
	p := circleProfile(0, radius, 0, 64)

	props := SectionProperties(p, geometry.NewWaterline(0, 0, 0))
	if !props.IsValid() {
		t.Fatal("expected a valid section")
	}

	want := math.Pi * radius * radius / 2
	if relErr := math.Abs(props.Area-want) / want; relErr > 0.01 {
		t.Errorf("half-disc area = %v, want %v within 1%%", props.Area, want)
	}
	if math.Abs(props.CentroidY) > 1e-6 {
		t.Errorf("CentroidY = %v, want 0 by symmetry", props.CentroidY)
	}
	// The half-disc centroid sits at -4r/3π below the surface.
	wantZ := -4 * radius / (3 * math.Pi)
	if math.Abs(props.CentroidZ-wantZ) > 0.01 {
		t.Errorf("CentroidZ = %v, want about %v", props.CentroidZ, wantZ)
	}
}

func TestSectionPropertiesHeeled(t *testing.T) {
	p := boxProfile(0, 0.5, -0.5, 0.5)
	props := SectionProperties(p, geometry.NewWaterline(0, 10, 0))
	if !props.IsValid() {
		t.Fatal("expected a valid section")
	}

	// Positive heel immerses the port (+Y) side, pulling the submerged
	// centroid to port.
	if props.CentroidY <= 0 {
		t.Errorf("CentroidY = %v, want > 0 at positive heel", props.CentroidY)
	}

	// The heeled clip of a through-hull waterline keeps the area at half
	// the section: the wedge gained to port equals the wedge lost to
	// starboard.
	if math.Abs(props.Area-0.5) > tol {
		t.Errorf("Area = %v, want 0.5", props.Area)
	}
}

func TestSubmergedPolygonWindingPreserved(t *testing.T) {
	p := boxProfile(0, 0.5, -0.5, 0.5)
	poly := SubmergedPolygon(p, geometry.NewWaterline(0, 0, 0))
	if len(poly) != 4 {
		t.Fatalf("submerged polygon has %d points, want 4", len(poly))
	}

	// The clip walks the original boundary, so the kept corners appear in
	// the source order with crossings interleaved, never re-sorted.
	wantY := []float64{0.5, 0.5, -0.5, -0.5}
	for i, pt := range poly {
		if math.Abs(pt.Y-wantY[i]) > tol {
			t.Errorf("polygon point %d has Y = %v, want %v", i, pt.Y, wantY[i])
		}
	}
	for _, pt := range poly {
		if pt.Z > tol {
			t.Errorf("polygon point %+v lies above the waterline", pt)
		}
	}
}
