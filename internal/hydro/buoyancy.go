package hydro

import (
	"github.com/alexiusacademia/gohydro/internal/geometry"
)

// CenterOfBuoyancy holds the 3D centroid of the displaced volume in the
// hull frame.
type CenterOfBuoyancy struct {
	LCB float64 `json:"lcb"` // m, longitudinal
	TCB float64 `json:"tcb"` // m, transverse
	VCB float64 `json:"vcb"` // m, vertical

	Volume float64 `json:"volume"` // m³

	WaterlineZ   float64 `json:"waterline_z"`
	HeelAngle    float64 `json:"heel_angle"` // deg
	StationCount int     `json:"station_count"`
	Method       Method  `json:"method"`

	// Valid is false when the displaced volume is effectively zero and
	// the centroid is undefined; the coordinates are then reported as
	// zero rather than dividing by zero.
	Valid bool `json:"valid"`
}

// IsValid reports whether the buoyancy centroid is defined.
func (cb CenterOfBuoyancy) IsValid() bool {
	return cb.Valid
}

// volumeEpsilon is the displaced volume below which the centroid is
// treated as undefined.
const volumeEpsilon = 1e-9

// Buoyancy computes the center of buoyancy by integrating the first
// moments of submerged section area over the hull length: a volume pass
// followed by moment passes M_x = ∫x·A dx, M_y = ∫yc·A dx, M_z = ∫zc·A dx
// over the same stations, with lcb = M_x/V and so on.
func Buoyancy(hull *geometry.Hull, wl *geometry.Waterline, cfg Config) (*CenterOfBuoyancy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := hull.Validate(); err != nil {
		return nil, err
	}

	working := hull
	if cfg.Stations > 0 {
		resampled, err := hull.Resample(cfg.Stations)
		if err != nil {
			return nil, err
		}
		working = resampled
	}

	sections, err := sectionSamples(working, wl)
	if err != nil {
		return nil, err
	}

	n := len(sections)
	xs := make([]float64, n)
	areas := make([]float64, n)
	mx := make([]float64, n)
	my := make([]float64, n)
	mz := make([]float64, n)
	for i, s := range sections {
		xs[i] = s.Station
		areas[i] = s.Area
		mx[i] = s.Station * s.Area
		my[i] = s.CentroidY * s.Area
		mz[i] = s.CentroidZ * s.Area
	}

	volume, err := integrate(xs, areas, cfg.Method)
	if err != nil {
		return nil, err
	}

	cb := &CenterOfBuoyancy{
		Volume:       volume,
		WaterlineZ:   wl.Z,
		HeelAngle:    wl.Heel,
		StationCount: n,
		Method:       cfg.Method,
	}

	if volume < volumeEpsilon {
		return cb, nil
	}

	momentX, err := integrate(xs, mx, cfg.Method)
	if err != nil {
		return nil, err
	}
	momentY, err := integrate(xs, my, cfg.Method)
	if err != nil {
		return nil, err
	}
	momentZ, err := integrate(xs, mz, cfg.Method)
	if err != nil {
		return nil, err
	}

	cb.LCB = momentX / volume
	cb.TCB = momentY / volume
	cb.VCB = momentZ / volume
	cb.Valid = true
	return cb, nil
}
