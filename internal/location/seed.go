package location

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/randytsao24/citydistance/internal/option"
)

//go:embed places.yaml
var defaultPlaces []byte

type seedFile struct {
	Places []seedPlace `yaml:"places"`
}

// Coordinates are pointers so a missing key is distinguishable from 0.
type seedPlace struct {
	Name      string   `yaml:"name"`
	Latitude  *float64 `yaml:"latitude"`
	Longitude *float64 `yaml:"longitude"`
}

// DefaultDirectory returns the built-in directory of US cities plus the
// unmapped "Atlantis" and "Camelot".
func DefaultDirectory() *Directory {
	dir, err := ParseDirectory(bytes.NewReader(defaultPlaces))
	if err != nil {
		panic(fmt.Sprintf("embedded places.yaml: %v", err))
	}
	return dir
}

// LoadDirectory reads a directory from a YAML file
func LoadDirectory(path string) (*Directory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening directory file: %w", err)
	}
	defer file.Close()

	dir, err := ParseDirectory(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dir, nil
}

// ParseDirectory decodes YAML of the form
//
//	places:
//	  - name: "Houston, TX"
//	    latitude: 29.760427
//	    longitude: -95.369803
//	  - name: "Atlantis"
//
// An entry must give both coordinates or neither.
func ParseDirectory(r io.Reader) (*Directory, error) {
	var raw seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing directory YAML: %w", err)
	}

	places := make([]Place, 0, len(raw.Places))
	for i, entry := range raw.Places {
		p, err := entry.toPlace()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		places = append(places, p)
	}

	return NewDirectory(places...), nil
}

func (s seedPlace) toPlace() (Place, error) {
	city, err := NewCity(s.Name)
	if err != nil {
		return Place{}, err
	}

	switch {
	case s.Latitude == nil && s.Longitude == nil:
		return NewPlace(city, option.None[Location]()), nil
	case s.Latitude == nil:
		return Place{}, &ValidationError{Field: "latitude", Value: nil, Rule: "required_with=longitude"}
	case s.Longitude == nil:
		return Place{}, &ValidationError{Field: "longitude", Value: nil, Rule: "required_with=latitude"}
	}

	loc, err := NewLocation(Latitude(*s.Latitude), Longitude(*s.Longitude))
	if err != nil {
		return Place{}, fmt.Errorf("%s: %w", city.Name(), err)
	}
	return MappedPlace(city, loc), nil
}
