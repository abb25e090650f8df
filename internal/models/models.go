// Package models defines the rendered output records
package models

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decimal is a float64 that always encodes as plain decimal text, never
// in exponent form, in JSON, YAML and String.
type Decimal float64

func (d Decimal) String() string {
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		return nil, fmt.Errorf("unsupported decimal value %v", float64(d))
	}
	return []byte(d.String()), nil
}

// MarshalYAML leaves the tag empty so integral values such as -2 are not
// annotated with an explicit !!float.
func (d Decimal) MarshalYAML() (any, error) {
	if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		return nil, fmt.Errorf("unsupported decimal value %v", float64(d))
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: d.String()}, nil
}

// DecimalPtr returns a pointer to v as a Decimal
func DecimalPtr(v float64) *Decimal {
	d := Decimal(v)
	return &d
}

// PlaceView is a Place as it appears in rendered output
type PlaceView struct {
	Name      string   `json:"name" yaml:"name"`
	Latitude  *Decimal `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude *Decimal `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Report is the result of one distance request. DistanceFeet is nil, and
// omitted from output, when either place has no known location.
type Report struct {
	Start        PlaceView `json:"start" yaml:"start"`
	Dest         PlaceView `json:"dest" yaml:"dest"`
	DistanceFeet *Decimal  `json:"distance_feet,omitempty" yaml:"distance_feet,omitempty"`
}

// NearbyPlace is one row of a nearest-places listing
type NearbyPlace struct {
	PlaceView      `yaml:",inline"`
	DistanceMeters Decimal `json:"distance_meters" yaml:"distance_meters"`
	DistanceMiles  Decimal `json:"distance_miles" yaml:"distance_miles"`
}
