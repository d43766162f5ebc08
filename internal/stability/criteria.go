package stability

import (
	"fmt"
	"math"
)

// CheckResult is the outcome of one criterion check.
type CheckResult string

const (
	Pass          CheckResult = "PASS"
	Warning       CheckResult = "WARNING"
	Fail          CheckResult = "FAIL"
	NotApplicable CheckResult = "NOT_APPLICABLE"
)

// Criterion names.
const (
	CriterionGM             = "GM"
	CriterionMaxGZ          = "Max GZ"
	CriterionAngleOfMaxGZ   = "Angle of Max GZ"
	CriterionPositiveRange  = "Positive Stability Range"
	CriterionVanishingAngle = "Vanishing Angle"
	CriterionDynamicStability = "Dynamic Stability"
)

// Thresholds holds the configurable minimum for each criterion. When
// StrictMode is false a value below its minimum yields WARNING instead of
// FAIL; physically impossible values (negative GM, negative max GZ) always
// FAIL regardless of mode.
type Thresholds struct {
	MinGM               float64 `json:"min_gm"`                // m
	MinMaxGZ            float64 `json:"min_max_gz"`            // m
	MinAngleOfMaxGZ     float64 `json:"min_angle_of_max_gz"`   // deg
	MinPositiveRange    float64 `json:"min_positive_range"`    // deg
	MinVanishingAngle   float64 `json:"min_vanishing_angle"`   // deg
	MinDynamicStability float64 `json:"min_dynamic_stability"` // m·rad

	StrictMode bool `json:"strict_mode"`
}

// DefaultThresholds are typical small-craft offshore minima, in the spirit
// of the IMO A.749 intact-stability recommendations.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinGM:               0.15,
		MinMaxGZ:            0.20,
		MinAngleOfMaxGZ:     25.0,
		MinPositiveRange:    60.0,
		MinVanishingAngle:   60.0,
		MinDynamicStability: 0.055,
	}
}

// CriterionCheck is one named check with its measured value, required
// threshold and outcome.
type CriterionCheck struct {
	Name     string      `json:"name"`
	Measured float64     `json:"measured"`
	Required float64     `json:"required"`
	Result   CheckResult `json:"result"`
	Detail   string      `json:"detail"`
}

// Assessment holds the ordered criterion checks, the overall result and
// deterministic recommendations keyed to the checks that failed or warned.
type Assessment struct {
	Checks          []CriterionCheck `json:"checks"`
	Overall         CheckResult      `json:"overall"`
	Recommendations []string         `json:"recommendations,omitempty"`
}

// recommendations maps failed/warned criteria to remedial advice. The
// table is fixed so assessments are reproducible.
var recommendations = map[string]string{
	CriterionGM:             "Increase initial stability: lower the center of gravity or increase waterline beam.",
	CriterionMaxGZ:          "Increase the maximum righting arm: lower the center of gravity or add ballast.",
	CriterionAngleOfMaxGZ:   "Shift the peak of the righting curve to a larger heel angle: raise freeboard or add reserve buoyancy topside.",
	CriterionPositiveRange:  "Extend the range of positive stability: raise deck-edge immersion angle or reduce superstructure weight.",
	CriterionVanishingAngle: "Raise the angle of vanishing stability: lower the center of gravity or increase freeboard.",
	CriterionDynamicStability: "Increase dynamic stability: enlarge the area under the GZ curve with ballast or added beam.",
}

// Assess evaluates the metrics against the thresholds. Each check is PASS
// when the value meets its minimum, WARNING below minimum in non-strict
// mode, FAIL below minimum in strict mode or when the value is physically
// impossible, and NOT_APPLICABLE when the underlying optional metric is
// absent. The overall result is the worst individual outcome.
func Assess(m *Metrics, t Thresholds) (*Assessment, error) {
	if m == nil {
		return nil, fmt.Errorf("metrics are required")
	}

	rangeSpan := math.NaN()
	if !math.IsNaN(m.PositiveRangeMin) && !math.IsNaN(m.PositiveRangeMax) {
		rangeSpan = m.PositiveRangeMax - m.PositiveRangeMin
	}

	a := &Assessment{}
	a.Checks = []CriterionCheck{
		check(CriterionGM, m.GMEstimate, t.MinGM, t.StrictMode, true),
		check(CriterionMaxGZ, m.MaxGZ, t.MinMaxGZ, t.StrictMode, true),
		check(CriterionAngleOfMaxGZ, m.AngleOfMaxGZ, t.MinAngleOfMaxGZ, t.StrictMode, false),
		check(CriterionPositiveRange, rangeSpan, t.MinPositiveRange, t.StrictMode, false),
		check(CriterionVanishingAngle, m.AngleOfVanishingStability, t.MinVanishingAngle, t.StrictMode, false),
		check(CriterionDynamicStability, m.DynamicStability, t.MinDynamicStability, t.StrictMode, false),
	}

	a.Overall = Pass
	for _, c := range a.Checks {
		switch c.Result {
		case Fail:
			a.Overall = Fail
		case Warning:
			if a.Overall != Fail {
				a.Overall = Warning
			}
		}
		if c.Result == Fail || c.Result == Warning {
			if rec, ok := recommendations[c.Name]; ok {
				a.Recommendations = append(a.Recommendations, rec)
			}
		}
	}

	return a, nil
}

// check evaluates a single named criterion. signMatters marks values for
// which a negative measurement is physically impossible and fails outright.
func check(name string, measured, required float64, strict, signMatters bool) CriterionCheck {
	c := CriterionCheck{
		Name:     name,
		Measured: measured,
		Required: required,
	}

	if math.IsNaN(measured) {
		c.Result = NotApplicable
		c.Detail = fmt.Sprintf("%s is not available from the sampled curve", name)
		return c
	}

	if signMatters && measured < 0 {
		c.Result = Fail
		c.Detail = fmt.Sprintf("%s is negative (%.4f): the vessel is unstable regardless of thresholds", name, measured)
		return c
	}

	if measured >= required {
		c.Result = Pass
		c.Detail = fmt.Sprintf("%s %.4f meets the required minimum %.4f", name, measured, required)
		return c
	}

	if strict {
		c.Result = Fail
	} else {
		c.Result = Warning
	}
	c.Detail = fmt.Sprintf("%s %.4f is below the required minimum %.4f", name, measured, required)
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
