package triangle

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/sphere-triangle/latlon"
)

// Result holds the measures of a spherical triangle. Degenerate input gives
// NaN or infinite fields rather than an error.
type Result struct {
	Sides     [3]float64 `json:"sides_m" yaml:"sides_m"`
	Perimeter float64    `json:"perimeter_m" yaml:"perimeter_m"`
	Angles    [3]float64 `json:"angles_deg" yaml:"angles_deg"`
	Area      float64    `json:"area_m2" yaml:"area_m2"`
	ExcessRad float64    `json:"excess_rad" yaml:"excess_rad"`
	Fallback  bool       `json:"fallback" yaml:"fallback"`
}

func (r Result) PerimeterKm() float64 {
	return r.Perimeter / 1e3
}

func (r Result) AreaKm2() float64 {
	return r.Area / 1e6
}

// Finite reports whether every measure is a finite number.
func (r Result) Finite() bool {
	values := []float64{r.Perimeter, r.Area, r.ExcessRad}
	values = append(values, r.Sides[:]...)
	values = append(values, r.Angles[:]...)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Solver measures triangles with a given arc strategy. The zero value uses
// the unclamped dot product arc cosine and does not log.
type Solver struct {
	Arc latlon.ArcMeasurer
	Log log.FieldLogger
}

func (s Solver) arc() latlon.ArcMeasurer {
	if s.Arc == nil {
		return latlon.Cosine{}
	}
	return s.Arc
}

// Solve measures the triangle v1 v2 v3. Side a is opposite v1 (the arc
// v2 v3), b opposite v2 and c opposite v3.
func (s Solver) Solve(v1, v2, v3 latlon.LatLon) Result {
	m := s.arc()

	a := m.Arc(v2, v3)
	b := m.Arc(v1, v3)
	c := m.Arc(v1, v2)

	sideA := a * latlon.R
	sideB := b * latlon.R
	sideC := c * latlon.R

	A, B, C := Angles(a, b, c)

	e, fallback := SphericalExcess(a, b, c)

	if s.Log != nil {
		s.Log.WithFields(log.Fields{
			"a":        a,
			"b":        b,
			"c":        c,
			"excess":   e,
			"fallback": fallback,
		}).Debug("Spherical excess")
	}

	return Result{
		Sides:     [3]float64{sideA, sideB, sideC},
		Perimeter: sideA + sideB + sideC,
		Angles:    [3]float64{latlon.ToDegrees(A), latlon.ToDegrees(B), latlon.ToDegrees(C)},
		Area:      latlon.R * latlon.R * e,
		ExcessRad: e,
		Fallback:  fallback,
	}
}

// Solve measures the triangle with the default Solver.
func Solve(v1, v2, v3 latlon.LatLon) Result {
	return Solver{}.Solve(v1, v2, v3)
}
