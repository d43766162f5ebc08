package geometry

import (
	"fmt"
	"math"
)

// Profile represents a transverse cross-section of the hull at one
// longitudinal station. Points trace the section boundary in a single
// consistent direction (e.g. port sheer, down around the keel, up to the
// starboard sheer) and are never reordered: the shoelace area and centroid
// formulas depend on the traversal order, and sorting the points by a
// coordinate silently corrupts results for sections that are not monotonic
// in that coordinate (circular or flared shapes).
type Profile struct {
	Station float64 `json:"station"` // m, longitudinal position; all points share this X
	Points  []Point `json:"points"`
}

// stationTolerance is the maximum deviation of a point's X from the
// profile station before the profile is rejected as skewed.
const stationTolerance = 1e-6

// NewProfile builds a profile at the given station and validates it.
func NewProfile(station float64, points []Point) (*Profile, error) {
	p := &Profile{Station: station, Points: points}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the profile definition. Ordering problems are reported,
// never repaired.
func (p *Profile) Validate() error {
	if len(p.Points) < 3 {
		return &ValidationError{fmt.Sprintf("profile at station %.3f must have at least 3 points, got %d", p.Station, len(p.Points))}
	}
	for i, pt := range p.Points {
		if !isFinite(pt.X) || !isFinite(pt.Y) || !isFinite(pt.Z) {
			return &ValidationError{fmt.Sprintf("profile at station %.3f has non-finite point %d", p.Station, i)}
		}
		if math.Abs(pt.X-p.Station) > stationTolerance {
			return &ValidationError{fmt.Sprintf("profile at station %.3f has point %d at x=%.6f, all points must lie on the station plane", p.Station, i, pt.X)}
		}
	}
	if math.Abs(p.SignedArea()) < 1e-12 {
		return &ValidationError{fmt.Sprintf("profile at station %.3f has zero enclosed area, points may be collinear or wound inconsistently", p.Station)}
	}
	return nil
}

// SignedArea returns the shoelace signed area of the boundary in the
// transverse (Y, Z) plane. The sign reflects the winding direction.
func (p *Profile) SignedArea() float64 {
	var sum float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p.Points[i].Y*p.Points[j].Z - p.Points[j].Y*p.Points[i].Z
	}
	return sum / 2
}

// Area returns the enclosed area of the full section (m²).
func (p *Profile) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Bounds returns the transverse and vertical extents of the profile.
func (p *Profile) Bounds() (minY, maxY, minZ, maxZ float64) {
	minY, maxY = p.Points[0].Y, p.Points[0].Y
	minZ, maxZ = p.Points[0].Z, p.Points[0].Z
	for _, pt := range p.Points {
		minY = math.Min(minY, pt.Y)
		maxY = math.Max(maxY, pt.Y)
		minZ = math.Min(minZ, pt.Z)
		maxZ = math.Max(maxZ, pt.Z)
	}
	return minY, maxY, minZ, maxZ
}

// Beam returns the maximum transverse width of the section (m).
func (p *Profile) Beam() float64 {
	minY, maxY, _, _ := p.Bounds()
	return maxY - minY
}

// Depth returns the vertical extent of the section (m).
func (p *Profile) Depth() float64 {
	_, _, minZ, maxZ := p.Bounds()
	return maxZ - minZ
}

// Rotate returns a new profile with every point rotated by heel and trim
// about ref. The original profile is not modified. Note that a trimmed
// profile no longer lies on a single station plane; rotated profiles are
// intended for drawing, not for re-validation.
func (p *Profile) Rotate(heelDeg, trimDeg float64, order RotationOrder, ref Point) *Profile {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Rotate(heelDeg, trimDeg, order, ref)
	}
	station := p.Station
	if len(pts) > 0 {
		station = pts[0].X
	}
	return &Profile{Station: station, Points: pts}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidationError represents a geometry validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
