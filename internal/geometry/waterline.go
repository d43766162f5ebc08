package geometry

import "math"

// Waterline represents the water plane, possibly inclined by heel and trim.
// Internally it is the plane a·x + b·y + c·z + d = 0 whose unit normal is
// the upright +Z normal rotated by the heel and trim angles, so a point's
// signed distance is positive above water and negative when submerged.
// In the hull frame, positive heel immerses the port (+Y) side and
// positive trim immerses the bow (+X) end, leaving the stern up.
type Waterline struct {
	Z    float64 // m, reference height of the plane on the centerline at x=0
	Heel float64 // deg, + immerses the port side
	Trim float64 // deg, + immerses the bow (stern up)

	a, b, c, d float64
}

// NewWaterline builds a water plane from a reference height and heel/trim
// angles in degrees, composing the inclination heel-first (the engine
// default; see Point.Rotate for the alternative order).
func NewWaterline(z, heelDeg, trimDeg float64) *Waterline {
	wl := &Waterline{Z: z, Heel: heelDeg, Trim: trimDeg}

	// Rotate the upright normal (0,0,1) by heel about X, then trim about Y.
	normal := Point{X: 0, Y: 0, Z: 1}.Rotate(heelDeg, trimDeg, HeelThenTrim, Origin)

	wl.a = normal.X
	wl.b = normal.Y
	wl.c = normal.Z
	// The plane passes through (0, 0, z).
	wl.d = -normal.Z * z
	return wl
}

// SignedDistance returns the perpendicular distance from the point to the
// plane: positive above water, negative submerged, zero on the surface.
func (w *Waterline) SignedDistance(p Point) float64 {
	return w.a*p.X + w.b*p.Y + w.c*p.Z + w.d
}

// IsSubmerged reports whether the point lies on or below the water plane.
func (w *Waterline) IsSubmerged(p Point) bool {
	return w.SignedDistance(p) <= 0
}

// ZAt returns the height of the water surface above the (x, y) position.
// At 90° heel the plane is vertical and no single height exists; NaN is
// returned in that case.
func (w *Waterline) ZAt(x, y float64) float64 {
	if math.Abs(w.c) < 1e-12 {
		return math.NaN()
	}
	return -(w.a*x + w.b*y + w.d) / w.c
}

// Intersect returns the point where the segment p1–p2 crosses the water
// plane, interpolated at t = -d1/(d2-d1). The second return value is false
// when the segment does not cross: both endpoints on the same side, or both
// lying in the plane (a coincident segment is degenerate and treated as no
// intersection).
func (w *Waterline) Intersect(p1, p2 Point) (Point, bool) {
	d1 := w.SignedDistance(p1)
	d2 := w.SignedDistance(p2)

	if d1 == 0 && d2 == 0 {
		return Point{}, false
	}
	if (d1 > 0 && d2 > 0) || (d1 < 0 && d2 < 0) {
		return Point{}, false
	}

	t := -d1 / (d2 - d1)
	return Point{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
		Z: p1.Z + t*(p2.Z-p1.Z),
	}, true
}
