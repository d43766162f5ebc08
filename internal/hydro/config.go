package hydro

import "fmt"

// Water densities (kg/m³)
const (
	SeawaterDensity   = 1025.0
	FreshwaterDensity = 1000.0
)

// Method selects the longitudinal quadrature rule.
type Method string

const (
	// Simpson is the composite Simpson rule; requires at least 3 stations.
	Simpson Method = "simpson"
	// Trapezoid is the trapezoidal rule; works with any spacing and at
	// least 2 stations.
	Trapezoid Method = "trapezoid"
)

// ParseMethod validates an integration method name.
func ParseMethod(name string) (Method, error) {
	switch Method(name) {
	case Simpson:
		return Simpson, nil
	case Trapezoid:
		return Trapezoid, nil
	default:
		return "", fmt.Errorf("unrecognized integration method %q (use %q or %q)", name, Simpson, Trapezoid)
	}
}

// Config carries the calculation parameters shared by the hydrostatic entry
// points. It is passed explicitly so the engine holds no global state.
type Config struct {
	// Density of the water (kg/m³)
	Density float64

	// Method is the longitudinal quadrature rule
	Method Method

	// Stations, when positive, resamples the hull to this many evenly
	// spaced sections before integrating. Zero keeps the hull's own
	// stations.
	Stations int
}

// DefaultConfig returns seawater density and Simpson integration.
func DefaultConfig() Config {
	return Config{
		Density: SeawaterDensity,
		Method:  Simpson,
	}
}

// Validate checks the configuration before a calculation runs.
func (c Config) Validate() error {
	if c.Density <= 0 || !finite(c.Density) {
		return fmt.Errorf("water density must be positive and finite, got %v", c.Density)
	}
	if _, err := ParseMethod(string(c.Method)); err != nil {
		return err
	}
	if c.Stations != 0 && c.Stations < 2 {
		return fmt.Errorf("station resampling count must be at least 2, got %d", c.Stations)
	}
	return nil
}
