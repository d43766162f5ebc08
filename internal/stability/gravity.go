package stability

import "fmt"

// MassComponent is one contributing mass item (hull shell, ballast, crew,
// rig) with its mass and centroid position in the hull frame.
type MassComponent struct {
	Name string  `json:"name"`
	Mass float64 `json:"mass"` // kg
	X    float64 `json:"x"`    // m
	Y    float64 `json:"y"`    // m
	Z    float64 `json:"z"`    // m
}

// CenterOfGravity holds the aggregate center of gravity. It is supplied by
// the caller (or aggregated from components) and held fixed while the heel
// angle varies.
type CenterOfGravity struct {
	LCG float64 `json:"lcg"` // m, longitudinal
	TCG float64 `json:"tcg"` // m, transverse
	VCG float64 `json:"vcg"` // m, vertical

	TotalMass float64 `json:"total_mass"` // kg

	Components []MassComponent `json:"components,omitempty"`
}

// AggregateMass combines mass components into a center of gravity using
// mass-weighted moment sums.
func AggregateMass(components []MassComponent) (*CenterOfGravity, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("at least one mass component is required")
	}

	var total, mx, my, mz float64
	for i, c := range components {
		if c.Mass <= 0 || !finite(c.Mass) {
			return nil, fmt.Errorf("mass component %d (%s) must have positive finite mass, got %v", i+1, c.Name, c.Mass)
		}
		total += c.Mass
		mx += c.Mass * c.X
		my += c.Mass * c.Y
		mz += c.Mass * c.Z
	}

	return &CenterOfGravity{
		LCG:        mx / total,
		TCG:        my / total,
		VCG:        mz / total,
		TotalMass:  total,
		Components: components,
	}, nil
}
