// Package location holds cities, coordinates, the place directory and
// great-circle distance calculations
package location

import "github.com/randytsao24/citydistance/internal/validation"

// City is a validated, non-empty place name
type City struct {
	name string
}

type cityInput struct {
	Name string `validate:"required"`
}

// NewCity validates name and wraps it. The name is kept verbatim, no trimming.
func NewCity(name string) (City, error) {
	if err := validation.Validate(cityInput{Name: name}); err != nil {
		return City{}, toValidationError(err, "name")
	}
	return City{name: name}, nil
}

// MustCity is NewCity for static data; it panics on an empty name
func MustCity(name string) City {
	c, err := NewCity(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the display name
func (c City) Name() string {
	return c.name
}

func (c City) String() string {
	return c.name
}

// toValidationError maps a validator error onto ValidationError.
// fallback names the field when the error carries none.
func toValidationError(err error, fallback string) error {
	fe, ok := validation.FirstFieldError(err)
	if !ok {
		return &ValidationError{Field: fallback, Rule: err.Error()}
	}

	rule := fe.Rule
	if fe.Param != "" {
		rule += "=" + fe.Param
	}
	return &ValidationError{
		Field: fieldName(fe.Field),
		Value: fe.Value,
		Rule:  rule,
	}
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Latitude":
		return "latitude"
	case "Longitude":
		return "longitude"
	}
	return structField
}
