package latlon

import "math"

// Point is a position on the unit sphere.
type Point struct {
	X, Y, Z float64
}

// Project maps a geodetic position onto the unit sphere.
func Project(p LatLon) Point {
	φ := ToRadians(p.Lat)
	λ := ToRadians(p.Lon)

	return Point{
		X: math.Cos(φ) * math.Cos(λ),
		Y: math.Cos(φ) * math.Sin(λ),
		Z: math.Sin(φ),
	}
}

func Dot(p1, p2 Point) float64 {
	return p1.X*p2.X + p1.Y*p2.Y + p1.Z*p2.Z
}

// ArcBetween returns the central angle between p1 and p2 in radians.
// Rounding can push the dot product just outside [-1, 1], in which case
// the result is NaN.
func ArcBetween(p1, p2 Point) float64 {
	return math.Acos(Dot(p1, p2))
}

// ClampedArcBetween is ArcBetween with the dot product clamped to [-1, 1]
// so nearly identical or antipodal points give 0 or π instead of NaN.
func ClampedArcBetween(p1, p2 Point) float64 {
	dp := math.Max(math.Min(Dot(p1, p2), 1.0), -1.0)
	return math.Acos(dp)
}
