package location

import "github.com/randytsao24/citydistance/internal/option"

// Place is a city with a location, if one is known
type Place struct {
	city     City
	location option.Option[Location]
}

// NewPlace pairs a city with an optional location
func NewPlace(city City, loc option.Option[Location]) Place {
	return Place{city: city, location: loc}
}

// MappedPlace builds a Place with known coordinates
func MappedPlace(city City, loc Location) Place {
	return NewPlace(city, option.Some(loc))
}

// UnmappedPlace builds a Place with no coordinates
func UnmappedPlace(city City) Place {
	return NewPlace(city, option.None[Location]())
}

// City returns the place's city
func (p Place) City() City {
	return p.city
}

// Location returns the coordinates, or None for an unmapped place
func (p Place) Location() option.Option[Location] {
	return p.location
}

func (p Place) String() string {
	if loc, ok := p.location.Get(); ok {
		return p.city.Name() + " " + loc.String()
	}
	return p.city.Name()
}
