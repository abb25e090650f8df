package location

import (
	"math"

	"github.com/randytsao24/citydistance/internal/option"
)

// Mean Earth radius (IUGG)
const earthRadiusMeters Meters = 6371008.8

const metersPerFoot = 0.3048

// Meters is a length in meters
type Meters float64

// Feet is a length in international feet
type Feet float64

// Miles converts for display
func (f Feet) Miles() float64 {
	return float64(f) / 5280
}

func hav(theta float64) float64 {
	return (1 - math.Cos(theta)) / 2
}

// GreatCircleDistance computes the haversine distance between two locations
func GreatCircleDistance(a, b Location) Meters {
	latA := a.lat.Radians()
	latB := b.lat.Radians()
	deltaLat := latB - latA
	deltaLng := b.lng.Radians() - a.lng.Radians()

	h := hav(deltaLat) + hav(deltaLng)*math.Cos(latA)*math.Cos(latB)
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusMeters * Meters(math.Asin(math.Sqrt(h)))
}

// TryDistance returns the distance when both places are mapped. A missing
// location yields None, not an error.
func TryDistance(a, b Place) option.Option[Meters] {
	return option.Bind2(a.location, b.location, GreatCircleDistance)
}

// MetersToFeet converts meters to feet at full precision
func MetersToFeet(m Meters) Feet {
	return Feet(float64(m) / metersPerFoot)
}
