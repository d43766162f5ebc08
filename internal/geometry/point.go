package geometry

import "math"

// Point represents a 3D coordinate on the hull
// The coordinate system follows naval architecture convention:
// - X-axis points forward (longitudinal, m)
// - Y-axis points to port (transverse, m)
// - Z-axis points upward (vertical, m)
type Point struct {
	X float64 `json:"x"` // m, longitudinal
	Y float64 `json:"y"` // m, transverse
	Z float64 `json:"z"` // m, vertical
}

// Origin is the default reference point for rotations.
var Origin = Point{}

// RotationOrder selects how a combined heel+trim rotation is composed.
// Heel-then-trim and trim-then-heel do not commute, so the order must be
// chosen explicitly when both angles are nonzero.
type RotationOrder int

const (
	// HeelThenTrim applies the heel rotation first (default).
	HeelThenTrim RotationOrder = iota
	// TrimThenHeel applies the trim rotation first.
	TrimThenHeel
)

// RotateHeel rotates the point about the longitudinal (X) axis through ref
// by the given heel angle in degrees. Positive angles rotate +Y toward +Z.
func (p Point) RotateHeel(angleDeg float64, ref Point) Point {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	y := p.Y - ref.Y
	z := p.Z - ref.Z

	return Point{
		X: p.X,
		Y: y*cos - z*sin + ref.Y,
		Z: y*sin + z*cos + ref.Z,
	}
}

// RotateTrim rotates the point about the transverse (Y) axis through ref
// by the given trim angle in degrees. Positive angles rotate +X toward +Z.
func (p Point) RotateTrim(angleDeg float64, ref Point) Point {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	x := p.X - ref.X
	z := p.Z - ref.Z

	return Point{
		X: x*cos - z*sin + ref.X,
		Y: p.Y,
		Z: x*sin + z*cos + ref.Z,
	}
}

// Rotate applies heel and trim rotations about ref in the given order.
func (p Point) Rotate(heelDeg, trimDeg float64, order RotationOrder, ref Point) Point {
	if order == TrimThenHeel {
		return p.RotateTrim(trimDeg, ref).RotateHeel(heelDeg, ref)
	}
	return p.RotateHeel(heelDeg, ref).RotateTrim(trimDeg, ref)
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	dz := p.Z - q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
