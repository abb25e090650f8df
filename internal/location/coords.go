package location

import (
	"math"
	"strconv"

	"github.com/randytsao24/citydistance/internal/validation"
)

// Latitude is a north/south angle in degrees
type Latitude float64

// Longitude is an east/west angle in degrees
type Longitude float64

// Radians converts the latitude to radians
func (l Latitude) Radians() float64 {
	return float64(l) * math.Pi / 180
}

// Radians converts the longitude to radians
func (l Longitude) Radians() float64 {
	return float64(l) * math.Pi / 180
}

// Location is a validated latitude/longitude pair
type Location struct {
	lat Latitude
	lng Longitude
}

// Field order matters: the first failing field is the one reported.
type coordinatesInput struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// NewLocation range-checks both coordinates. When both are out of range
// only the latitude error is returned.
func NewLocation(lat Latitude, lng Longitude) (Location, error) {
	in := coordinatesInput{Latitude: float64(lat), Longitude: float64(lng)}
	if err := validation.Validate(in); err != nil {
		return Location{}, toValidationError(err, "coordinates")
	}
	return Location{lat: lat, lng: lng}, nil
}

// MustLocation is NewLocation for static data; it panics when out of range
func MustLocation(lat Latitude, lng Longitude) Location {
	loc, err := NewLocation(lat, lng)
	if err != nil {
		panic(err)
	}
	return loc
}

// Latitude returns the north-south coordinate
func (l Location) Latitude() Latitude {
	return l.lat
}

// Longitude returns the east-west coordinate
func (l Location) Longitude() Longitude {
	return l.lng
}

func (l Location) String() string {
	return "(" + strconv.FormatFloat(float64(l.lat), 'f', -1, 64) +
		", " + strconv.FormatFloat(float64(l.lng), 'f', -1, 64) + ")"
}
