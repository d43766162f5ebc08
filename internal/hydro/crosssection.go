package hydro

import (
	"math"

	"github.com/alexiusacademia/gohydro/internal/geometry"
)

// CrossSectionProperties holds the submerged area and centroid of one
// transverse section under a given waterline. All fields are in the hull
// (unrotated) frame.
type CrossSectionProperties struct {
	Area      float64 `json:"area"`       // m², submerged area
	CentroidY float64 `json:"centroid_y"` // m
	CentroidZ float64 `json:"centroid_z"` // m
	Station   float64 `json:"station"`    // m

	WaterlineZ float64 `json:"waterline_z"`
	HeelAngle  float64 `json:"heel_angle"` // deg

	// Valid is false when the section is entirely above water or the
	// clipped polygon degenerates to zero area; the centroid is then
	// meaningless and reported as (0, 0).
	Valid bool `json:"valid"`
}

// IsValid reports whether the section has a usable submerged area and centroid.
func (c CrossSectionProperties) IsValid() bool {
	return c.Valid
}

// SectionProperties computes the submerged area and centroid of a profile
// under the waterline. The profile boundary is clipped against the water
// plane with the traversal order preserved: each boundary point below the
// plane is kept and an interpolated crossing point is inserted at every
// sign change. The shoelace formula is then applied to the clipped polygon
// in the transverse (Y, Z) plane.
func SectionProperties(profile *geometry.Profile, wl *geometry.Waterline) CrossSectionProperties {
	props := CrossSectionProperties{
		Station:    profile.Station,
		WaterlineZ: wl.Z,
		HeelAngle:  wl.Heel,
	}

	submerged := clipBelow(profile.Points, wl)
	if len(submerged) < 3 {
		return props
	}

	area, cy, cz := areaAndCentroid(submerged)
	if area <= 0 {
		return props
	}

	props.Area = area
	props.CentroidY = cy
	props.CentroidZ = cz
	props.Valid = true
	return props
}

// SubmergedPolygon returns the clipped boundary of the profile below the
// waterline, for drawing. The winding of the input profile is preserved.
func SubmergedPolygon(profile *geometry.Profile, wl *geometry.Waterline) []geometry.Point {
	return clipBelow(profile.Points, wl)
}

// clipBelow clips a closed boundary against the water plane, keeping the
// submerged side. Points exactly on the plane are kept; a crossing point is
// inserted only on a strict sign change, so an edge lying in the plane
// contributes no duplicate vertices.
func clipBelow(points []geometry.Point, wl *geometry.Waterline) []geometry.Point {
	n := len(points)
	if n < 3 {
		return nil
	}

	out := make([]geometry.Point, 0, n+2)
	for i := 0; i < n; i++ {
		curr := points[i]
		next := points[(i+1)%n]

		dc := wl.SignedDistance(curr)
		dn := wl.SignedDistance(next)

		if dc <= 0 {
			out = append(out, curr)
		}
		if (dc < 0 && dn > 0) || (dc > 0 && dn < 0) {
			if crossing, ok := wl.Intersect(curr, next); ok {
				out = append(out, crossing)
			}
		}
	}
	return out
}

// areaAndCentroid applies the shoelace formula and the polygon first-moment
// formulas to a closed boundary in the (Y, Z) plane. The boundary must keep
// its traversal order; the signed area carries the winding and cancels in
// the centroid division.
func areaAndCentroid(points []geometry.Point) (area, cy, cz float64) {
	n := len(points)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea, sumY, sumZ float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := points[i].Y*points[j].Z - points[j].Y*points[i].Z
		signedArea += cross
		sumY += (points[i].Y + points[j].Y) * cross
		sumZ += (points[i].Z + points[j].Z) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cy = sumY / (6 * signedArea)
		cz = sumZ / (6 * signedArea)
	}

	return area, cy, cz
}
