package triangle

import "math"

// InteriorAngle solves the angle opposite side a from the spherical law of
// cosines, b and c being the two adjacent sides. All values are radians.
// A zero sin(b) or sin(c) yields NaN.
func InteriorAngle(a, b, c float64) float64 {
	value := (math.Cos(a) - math.Cos(b)*math.Cos(c)) / (math.Sin(b) * math.Sin(c))
	return math.Acos(value)
}

// Angles returns the three interior angles opposite sides a, b and c.
func Angles(a, b, c float64) (float64, float64, float64) {
	return InteriorAngle(a, b, c), InteriorAngle(b, a, c), InteriorAngle(c, a, b)
}
