package pipeline

import (
	"github.com/randytsao24/citydistance/internal/location"
	"github.com/randytsao24/citydistance/internal/option"
)

// Compose runs LookupPair, then TryDistance, then MetersToFeet over the
// optional distance. Only a failed lookup returns an error.
func Compose(dir *location.Directory, a, b location.City) (Result, error) {
	start, dest, err := dir.LookupPair(a, b)
	if err != nil {
		return Result{}, err
	}

	meters := location.TryDistance(start, dest)

	return Result{
		Start:    start,
		Dest:     dest,
		Distance: option.Map(meters, location.MetersToFeet),
	}, nil
}
