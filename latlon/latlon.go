package latlon

import "math"

const π = math.Pi

// R is the sphere radius in meters (WGS84 equatorial value), used for both
// lengths and areas.
const R = 6378137.0

// LatLon is a geodetic position in degrees. No range check or
// normalization is applied.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

func ToRadians(a float64) float64 {
	return a * π / 180.0
}

func ToDegrees(a float64) float64 {
	return a * 180.0 / π
}
