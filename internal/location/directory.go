package location

import (
	"sort"
)

// Directory is a fixed, ordered table of places. It is never mutated after
// construction, so concurrent readers need no locking.
type Directory struct {
	places []Place
}

// PlaceDistance is a Place with its distance from a reference place
type PlaceDistance struct {
	Place
	Distance Meters
}

// NewDirectory creates a directory over a copy of places
func NewDirectory(places ...Place) *Directory {
	return &Directory{places: append([]Place(nil), places...)}
}

// Lookup returns the first place whose city equals city
func (d *Directory) Lookup(city City) (Place, error) {
	for _, p := range d.places {
		if p.city == city {
			return p, nil
		}
	}
	return Place{}, &NotFoundError{City: city}
}

// LookupPair looks up both cities. Both lookups run; a's failure is
// reported ahead of b's.
func (d *Directory) LookupPair(a, b City) (Place, Place, error) {
	placeA, errA := d.Lookup(a)
	placeB, errB := d.Lookup(b)
	if errA != nil {
		return Place{}, Place{}, errA
	}
	if errB != nil {
		return Place{}, Place{}, errB
	}
	return placeA, placeB, nil
}

// Places returns every entry in directory order
func (d *Directory) Places() []Place {
	return append([]Place(nil), d.places...)
}

// Mapped returns only the places with a known location
func (d *Directory) Mapped() []Place {
	var result []Place
	for _, p := range d.places {
		if p.location.IsSome() {
			result = append(result, p)
		}
	}
	return result
}

// Len returns the number of entries
func (d *Directory) Len() int {
	return len(d.places)
}

// Nearest returns up to limit mapped places closest to origin, excluding
// entries for origin's own city. An unmapped origin yields nothing.
func (d *Directory) Nearest(origin Place, limit int) []PlaceDistance {
	from, ok := origin.location.Get()
	if !ok {
		return nil
	}

	var results []PlaceDistance
	for _, p := range d.places {
		if p.city == origin.city {
			continue
		}
		to, ok := p.location.Get()
		if !ok {
			continue
		}
		results = append(results, PlaceDistance{
			Place:    p,
			Distance: GreatCircleDistance(from, to),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}
