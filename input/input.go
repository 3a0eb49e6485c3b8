// Package input turns the six coordinate fields typed by a user into
// vertices, rejecting anything that is not a number.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/a-bouts/sphere-triangle/latlon"
)

var (
	ErrInvalidInput = errors.New("please enter numeric values")
	ErrOutOfRange   = errors.New("coordinate out of range")
)

// Names of the six fields, in order.
var Names = [6]string{"lat1", "lon1", "lat2", "lon2", "lat3", "lon3"}

// Defaults are the sample vertices used when nothing is given.
var Defaults = [6]string{
	"35.717875", "51.4180047",
	"35.739008", "51.447467",
	"35.700306", "51.499086",
}

type vertex struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=360"`
}

var validate = validator.New()

// Parse reads the six fields as lat1, lon1, lat2, lon2, lat3, lon3 in
// degrees. With strict set, latitudes must lie in [-90, 90] and longitudes
// in [-180, 360]; otherwise any float, NaN included, is accepted.
func Parse(fields [6]string, strict bool) ([3]latlon.LatLon, error) {
	var vs [3]latlon.LatLon

	var values [6]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return vs, fmt.Errorf("%s %q: %w", Names[i], f, ErrInvalidInput)
		}
		values[i] = v
	}

	for i := range vs {
		vs[i] = latlon.LatLon{Lat: values[2*i], Lon: values[2*i+1]}
	}

	if !strict {
		return vs, nil
	}

	for i, v := range vs {
		if err := validate.Struct(vertex{Lat: v.Lat, Lon: v.Lon}); err != nil {
			return vs, fmt.Errorf("vertex %d (%g, %g): %w: %v", i+1, v.Lat, v.Lon, ErrOutOfRange, err)
		}
	}

	return vs, nil
}
