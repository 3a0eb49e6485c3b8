package triangle

import (
	"math"

	"github.com/a-bouts/sphere-triangle/latlon"
)

// SphericalExcess computes the excess of the triangle with sides a, b and c
// (radians) using L'Huilier's theorem.
//
// When any of the four half tangents is not strictly positive, the excess is
// taken from the sum of the interior angles instead and fallback is true.
// Only the individual signs are checked: a product that is still negative
// is not guarded and gives NaN.
func SphericalExcess(a, b, c float64) (excess float64, fallback bool) {
	s := 0.5 * (a + b + c)
	t1 := math.Tan(s / 2.0)
	t2 := math.Tan((s - a) / 2.0)
	t3 := math.Tan((s - b) / 2.0)
	t4 := math.Tan((s - c) / 2.0)

	if t1 <= 0 || t2 <= 0 || t3 <= 0 || t4 <= 0 {
		return AngleSumExcess(a, b, c), true
	}

	tanE4 := math.Sqrt(t1 * t2 * t3 * t4)
	return 4.0 * math.Atan(tanE4), false
}

// AngleSumExcess is the excess as the sum of the interior angles minus π.
func AngleSumExcess(a, b, c float64) float64 {
	A, B, C := Angles(a, b, c)
	return (A + B + C) - math.Pi
}

// Area returns the surface in square meters of the triangle with sides
// a, b and c on the sphere of radius latlon.R.
func Area(a, b, c float64) float64 {
	e, _ := SphericalExcess(a, b, c)
	return latlon.R * latlon.R * e
}
