package latlon

import "math"

// ArcMeasurer computes the central angle, in radians, between two
// geodetic positions.
type ArcMeasurer interface {
	Arc(from, to LatLon) float64
}

// Cosine projects both positions on the unit sphere and takes the arc
// cosine of their dot product.
type Cosine struct {
	Clamp bool
}

func (c Cosine) Arc(from, to LatLon) float64 {
	p1 := Project(from)
	p2 := Project(to)

	if c.Clamp {
		return ClampedArcBetween(p1, p2)
	}
	return ArcBetween(p1, p2)
}

// Haversine uses the haversine formula, which stays accurate for very
// short arcs.
type Haversine struct{}

func (Haversine) Arc(from, to LatLon) float64 {
	φ1 := ToRadians(from.Lat)
	φ2 := ToRadians(to.Lat)
	Δφ := φ2 - φ1

	Δλ := ToRadians(to.Lon - from.Lon)

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	δ := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return δ
}

// DistanceTo returns the great-circle distance in meters on the sphere
// of radius R.
func DistanceTo(m ArcMeasurer, from, to LatLon) float64 {
	return m.Arc(from, to) * R
}

// Measurer returns the ArcMeasurer registered under name.
func Measurer(name string) (ArcMeasurer, bool) {
	switch name {
	case "", "cosine":
		return Cosine{}, true
	case "clamped":
		return Cosine{Clamp: true}, true
	case "haversine":
		return Haversine{}, true
	}
	return nil, false
}
