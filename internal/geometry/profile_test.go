package geometry

import (
	"math"
	"testing"
)

// boxPoints traces a rectangular section clockwise from the top port
// corner: port sheer, down to the keel, across, and up to starboard.
func boxPoints(station, halfBeam, bottom, top float64) []Point {
	return []Point{
		{X: station, Y: halfBeam, Z: top},
		{X: station, Y: halfBeam, Z: bottom},
		{X: station, Y: -halfBeam, Z: bottom},
		{X: station, Y: -halfBeam, Z: top},
	}
}

func TestNewProfileValidation(t *testing.T) {
	tests := []struct {
		name    string
		station float64
		points  []Point
		wantErr bool
	}{
		{"valid box", 0, boxPoints(0, 0.5, -0.5, 0.5), false},
		{"too few points", 0, []Point{{Y: 1}, {Y: -1}}, true},
		{"point off the station plane", 0, []Point{
			{X: 0.5, Y: 0.5, Z: 0.5},
			{X: 0, Y: 0.5, Z: -0.5},
			{X: 0, Y: -0.5, Z: -0.5},
		}, true},
		{"collinear points enclose no area", 0, []Point{
			{Y: 0, Z: 0}, {Y: 1, Z: 0}, {Y: 2, Z: 0},
		}, true},
		{"non-finite point", 0, []Point{
			{Y: math.NaN(), Z: 0.5}, {Y: 0.5, Z: -0.5}, {Y: -0.5, Z: -0.5},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfile(tt.station, tt.points)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfileArea(t *testing.T) {
	p, err := NewProfile(0, boxPoints(0, 0.5, -0.5, 0.5))
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	if got := p.Area(); math.Abs(got-1.0) > tol {
		t.Errorf("Area() = %v, want 1.0", got)
	}

	// Reversing the winding flips the signed area but not the magnitude.
	reversed := make([]Point, len(p.Points))
	for i := range p.Points {
		reversed[i] = p.Points[len(p.Points)-1-i]
	}
	q, err := NewProfile(0, reversed)
	if err != nil {
		t.Fatalf("NewProfile reversed: %v", err)
	}
	if got := q.SignedArea(); math.Abs(got+p.SignedArea()) > tol {
		t.Errorf("reversed SignedArea() = %v, want %v", got, -p.SignedArea())
	}
	if got := q.Area(); math.Abs(got-1.0) > tol {
		t.Errorf("reversed Area() = %v, want 1.0", got)
	}
}

func TestProfileBounds(t *testing.T) {
	p, err := NewProfile(2, boxPoints(2, 0.75, -0.4, 0.6))
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}

	minY, maxY, minZ, maxZ := p.Bounds()
	if minY != -0.75 || maxY != 0.75 || minZ != -0.4 || maxZ != 0.6 {
		t.Errorf("Bounds() = (%v, %v, %v, %v)", minY, maxY, minZ, maxZ)
	}
	if got := p.Beam(); math.Abs(got-1.5) > tol {
		t.Errorf("Beam() = %v, want 1.5", got)
	}
	if got := p.Depth(); math.Abs(got-1.0) > tol {
		t.Errorf("Depth() = %v, want 1.0", got)
	}
}

func TestProfileRotateDoesNotMutate(t *testing.T) {
	p, err := NewProfile(0, boxPoints(0, 0.5, -0.5, 0.5))
	if err != nil {
		t.Fatalf("NewProfile: %v", err)
	}
	original := p.Points[0]

	rotated := p.Rotate(30, 0, HeelThenTrim, Origin)
	if p.Points[0] != original {
		t.Error("Rotate modified the source profile")
	}
	if rotated.Points[0] == original {
		t.Error("Rotate returned an unrotated copy")
	}
	// Heel preserves the enclosed area.
	if math.Abs(rotated.Area()-p.Area()) > tol {
		t.Errorf("rotated Area() = %v, want %v", rotated.Area(), p.Area())
	}
}
