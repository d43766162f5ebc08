package hydro

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexiusacademia/gohydro/internal/geometry"
)

// DisplacementProperties holds the integrated displaced volume and mass.
type DisplacementProperties struct {
	Volume float64 `json:"volume"` // m³
	Mass   float64 `json:"mass"`   // kg

	WaterlineZ   float64 `json:"waterline_z"`
	HeelAngle    float64 `json:"heel_angle"` // deg
	WaterDensity float64 `json:"water_density"`

	Method       Method `json:"method"`
	StationCount int    `json:"station_count"`

	// Sections is the per-station breakdown used by the integration,
	// in station order including end closings.
	Sections []CrossSectionProperties `json:"sections,omitempty"`

	// Warnings carries non-fatal plausibility findings (non-finite or
	// negative volume). The numbers are reported as computed, never
	// clamped.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Displacement integrates the submerged section areas along the hull length
// and converts the volume to mass at the configured water density.
func Displacement(hull *geometry.Hull, wl *geometry.Waterline, cfg Config) (*DisplacementProperties, error) {
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

	xs := make([]float64, len(sections))
	areas := make([]float64, len(sections))
	for i, s := range sections {
		xs[i] = s.Station
		areas[i] = s.Area
	}

	volume, err := integrate(xs, areas, cfg.Method)
	if err != nil {
		return nil, err
	}

	props := &DisplacementProperties{
		Volume:       volume,
		Mass:         volume * cfg.Density,
		WaterlineZ:   wl.Z,
		HeelAngle:    wl.Heel,
		WaterDensity: cfg.Density,
		Method:       cfg.Method,
		StationCount: len(sections),
		Sections:     sections,
	}

	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		props.Warnings = append(props.Warnings, Warning{
			Message: fmt.Sprintf("displaced volume is non-finite (%v)", volume),
		})
	} else if volume < 0 {
		props.Warnings = append(props.Warnings, Warning{
			Message: fmt.Sprintf("displaced volume is negative (%.6f m³), check station ordering and profile winding", volume),
		})
	}

	return props, nil
}

// sectionSamples computes the submerged section properties at every hull
// station plus any bow/stern closing sections, ordered by station.
func sectionSamples(hull *geometry.Hull, wl *geometry.Waterline) ([]CrossSectionProperties, error) {
	samples := make([]CrossSectionProperties, 0, len(hull.Profiles)+2)
	for i := range hull.Profiles {
		samples = append(samples, SectionProperties(&hull.Profiles[i], wl))
	}

	for _, closing := range hull.ClosingSections() {
		if closing.Profile != nil {
			samples = append(samples, SectionProperties(closing.Profile, wl))
			continue
		}
		// Apex closing: the hull tapers to a point, zero section area.
		samples = append(samples, CrossSectionProperties{
			Station:    closing.Station,
			WaterlineZ: wl.Z,
			HeelAngle:  wl.Heel,
		})
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Station < samples[j].Station })

	// Hull.Validate already guarantees strictly increasing profile
	// stations; recheck after merging closings so a closing point placed
	// on top of a station is rejected rather than integrated twice.
	for i := 1; i < len(samples); i++ {
		if samples[i].Station <= samples[i-1].Station {
			return nil, fmt.Errorf("integration stations must be strictly increasing, found %.6f after %.6f", samples[i].Station, samples[i-1].Station)
		}
	}
	return samples, nil
}

// integrate applies the selected quadrature rule to area samples over the
// longitudinal coordinate.
func integrate(xs, fs []float64, method Method) (float64, error) {
	if len(xs) != len(fs) {
		return 0, fmt.Errorf("mismatched integration samples: %d stations, %d values", len(xs), len(fs))
	}
	if xs[0] >= xs[len(xs)-1] {
		return 0, fmt.Errorf("integration range is empty or reversed: min station %.6f, max station %.6f", xs[0], xs[len(xs)-1])
	}

	switch method {
	case Simpson:
		if len(xs) < 3 {
			return 0, fmt.Errorf("simpson integration requires at least 3 stations, got %d", len(xs))
		}
		return simpson(xs, fs), nil
	case Trapezoid:
		if len(xs) < 2 {
			return 0, fmt.Errorf("trapezoidal integration requires at least 2 stations, got %d", len(xs))
		}
		return trapezoid(xs, fs), nil
	default:
		return 0, fmt.Errorf("unrecognized integration method %q", method)
	}
}

// simpson is the composite Simpson rule over interval pairs, using the
// non-uniform two-interval formula so unevenly spaced stations integrate
// exactly for quadratic area functions. An odd interval count leaves one
// trailing interval, integrated with a trapezoid panel.
func simpson(xs, fs []float64) float64 {
	var sum float64
	i := 0
	for ; i+2 < len(xs); i += 2 {
		h0 := xs[i+1] - xs[i]
		h1 := xs[i+2] - xs[i+1]
		sum += (h0 + h1) / 6 * ((2-h1/h0)*fs[i] +
			(h0+h1)*(h0+h1)/(h0*h1)*fs[i+1] +
			(2-h0/h1)*fs[i+2])
	}
	if i+1 < len(xs) {
		sum += (fs[i] + fs[i+1]) / 2 * (xs[i+1] - xs[i])
	}
	return sum
}

// trapezoid is the composite trapezoidal rule with arbitrary spacing.
func trapezoid(xs, fs []float64) float64 {
	var sum float64
	for i := 0; i+1 < len(xs); i++ {
		sum += (fs[i] + fs[i+1]) / 2 * (xs[i+1] - xs[i])
	}
	return sum
}
