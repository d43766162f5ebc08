package geometry

import (
	"fmt"
	"math"
)

// Hull represents a full hull as an ordered series of transverse profiles.
// Stations must be strictly increasing from stern to bow; the longitudinal
// integrators rely on this ordering and reject hulls that violate it.
// Optional bow and stern closing points taper the extreme ends: a single
// point is treated as an apex (zero section area), three or more points as
// a full closing section.
type Hull struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Profiles    []Profile `json:"profiles"`

	// Closing geometry at the ends (optional)
	Bow   []Point `json:"bow,omitempty"`
	Stern []Point `json:"stern,omitempty"`
}

// NewHull builds a hull from profiles and validates it.
func NewHull(name string, profiles []Profile) (*Hull, error) {
	h := &Hull{Name: name, Profiles: profiles}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate checks the hull definition: profile count, per-profile validity
// and strict station ordering. Swapped stations would silently negate every
// integrated volume downstream, so ordering is an error here, not a warning.
func (h *Hull) Validate() error {
	if len(h.Profiles) < 2 {
		return &ValidationError{fmt.Sprintf("hull must have at least 2 profiles, got %d", len(h.Profiles))}
	}
	for i := range h.Profiles {
		if err := h.Profiles[i].Validate(); err != nil {
			return err
		}
	}
	for i := 1; i < len(h.Profiles); i++ {
		if h.Profiles[i].Station <= h.Profiles[i-1].Station {
			return &ValidationError{fmt.Sprintf("hull stations must be strictly increasing: station %.3f follows %.3f", h.Profiles[i].Station, h.Profiles[i-1].Station)}
		}
	}
	if len(h.Bow) > 0 {
		bowX := closingStation(h.Bow)
		if bowX <= h.Profiles[len(h.Profiles)-1].Station {
			return &ValidationError{fmt.Sprintf("bow closing point at x=%.3f must lie forward of the last station %.3f", bowX, h.Profiles[len(h.Profiles)-1].Station)}
		}
	}
	if len(h.Stern) > 0 {
		sternX := closingStation(h.Stern)
		if sternX >= h.Profiles[0].Station {
			return &ValidationError{fmt.Sprintf("stern closing point at x=%.3f must lie aft of the first station %.3f", sternX, h.Profiles[0].Station)}
		}
	}
	return nil
}

// Stations returns the longitudinal positions of all profiles in order.
func (h *Hull) Stations() []float64 {
	xs := make([]float64, len(h.Profiles))
	for i := range h.Profiles {
		xs[i] = h.Profiles[i].Station
	}
	return xs
}

// Length returns the overall length including closing points (m).
func (h *Hull) Length() float64 {
	min := h.Profiles[0].Station
	max := h.Profiles[len(h.Profiles)-1].Station
	if len(h.Stern) > 0 {
		min = math.Min(min, closingStation(h.Stern))
	}
	if len(h.Bow) > 0 {
		max = math.Max(max, closingStation(h.Bow))
	}
	return max - min
}

// Beam returns the maximum beam over all profiles (m).
func (h *Hull) Beam() float64 {
	var beam float64
	for i := range h.Profiles {
		beam = math.Max(beam, h.Profiles[i].Beam())
	}
	return beam
}

// ClosingSection describes one end-closing point set reduced to a station
// sample. Apex closings (fewer than 3 points) carry no profile.
type ClosingSection struct {
	Station float64
	Profile *Profile // nil for an apex closing
}

// ClosingSections returns the stern and bow closings, in station order,
// as integration samples. Closings with at least 3 points are promoted to
// full profiles so they get clipped like any other section.
func (h *Hull) ClosingSections() []ClosingSection {
	var sections []ClosingSection
	for _, pts := range [][]Point{h.Stern, h.Bow} {
		if len(pts) == 0 {
			continue
		}
		cs := ClosingSection{Station: closingStation(pts)}
		if len(pts) >= 3 {
			prof := &Profile{Station: cs.Station, Points: pts}
			if prof.Validate() == nil {
				cs.Profile = prof
			}
		}
		sections = append(sections, cs)
	}
	return sections
}

// closingStation is the mean longitudinal position of a closing point set.
func closingStation(pts []Point) float64 {
	var sum float64
	for _, pt := range pts {
		sum += pt.X
	}
	return sum / float64(len(pts))
}

// Resample returns a new hull with count stations evenly spaced over the
// profile range, each section linearly interpolated between its bracketing
// profiles. All profiles must carry the same number of boundary points in
// the same traversal order for the point-wise interpolation to be valid.
func (h *Hull) Resample(count int) (*Hull, error) {
	if count < 2 {
		return nil, &ValidationError{fmt.Sprintf("resample count must be at least 2, got %d", count)}
	}
	nPts := len(h.Profiles[0].Points)
	for i := range h.Profiles {
		if len(h.Profiles[i].Points) != nPts {
			return nil, &ValidationError{fmt.Sprintf("resampling requires equal point counts per profile: station %.3f has %d points, expected %d", h.Profiles[i].Station, len(h.Profiles[i].Points), nPts)}
		}
	}

	minX := h.Profiles[0].Station
	maxX := h.Profiles[len(h.Profiles)-1].Station
	step := (maxX - minX) / float64(count-1)

	profiles := make([]Profile, count)
	for i := 0; i < count; i++ {
		x := minX + float64(i)*step
		if i == count-1 {
			x = maxX // avoid accumulating step error past the last station
		}
		profiles[i] = h.interpolateAt(x, nPts)
	}

	return &Hull{
		Name:        h.Name,
		Description: h.Description,
		Profiles:    profiles,
		Bow:         h.Bow,
		Stern:       h.Stern,
	}, nil
}

// interpolateAt builds the section at longitudinal position x by linear
// interpolation between the bracketing profiles.
func (h *Hull) interpolateAt(x float64, nPts int) Profile {
	// Find the bracketing pair. Stations are strictly increasing.
	lo := 0
	for lo < len(h.Profiles)-2 && h.Profiles[lo+1].Station < x {
		lo++
	}
	a, b := &h.Profiles[lo], &h.Profiles[lo+1]

	t := (x - a.Station) / (b.Station - a.Station)
	t = math.Max(0, math.Min(1, t))

	pts := make([]Point, nPts)
	for i := 0; i < nPts; i++ {
		pts[i] = Point{
			X: x,
			Y: a.Points[i].Y + t*(b.Points[i].Y-a.Points[i].Y),
			Z: a.Points[i].Z + t*(b.Points[i].Z-a.Points[i].Z),
		}
	}
	return Profile{Station: x, Points: pts}
}
