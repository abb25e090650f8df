package pipeline

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randytsao24/citydistance/internal/models"
)

// Format selects an output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a format name. An empty name means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// Renderer turns output records into text
type Renderer interface {
	Report(r models.Report) (string, error)
	Nearby(origin models.PlaceView, rows []models.NearbyPlace) (string, error)
}

// NewRenderer returns the renderer for f
func NewRenderer(f Format) (Renderer, error) {
	switch f {
	case FormatText, "":
		return textRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", f)
}

// textRenderer writes one "key: value" line per field, in record order.
// Absent fields are left out.
type textRenderer struct{}

func (textRenderer) Report(r models.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "start: %s\n", formatPlace(r.Start))
	fmt.Fprintf(&b, "dest: %s\n", formatPlace(r.Dest))
	if r.DistanceFeet != nil {
		fmt.Fprintf(&b, "distance_feet: %s\n", r.DistanceFeet.String())
	}
	return b.String(), nil
}

func (textRenderer) Nearby(origin models.PlaceView, rows []models.NearbyPlace) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "origin: %s\n", formatPlace(origin))
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s: %s m (%s mi)\n",
			i+1, formatPlace(row.PlaceView),
			strconv.FormatFloat(float64(row.DistanceMeters), 'f', 1, 64),
			strconv.FormatFloat(float64(row.DistanceMiles), 'f', 1, 64))
	}
	return b.String(), nil
}

func formatPlace(p models.PlaceView) string {
	if p.Latitude == nil || p.Longitude == nil {
		return p.Name
	}
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Latitude, p.Longitude)
}

type jsonRenderer struct{}

func (jsonRenderer) Report(r models.Report) (string, error) {
	return marshalJSON(r)
}

func (jsonRenderer) Nearby(origin models.PlaceView, rows []models.NearbyPlace) (string, error) {
	return marshalJSON(nearbyDocument{Origin: origin, Places: rows})
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding JSON: %w", err)
	}
	return string(data) + "\n", nil
}

type yamlRenderer struct{}

func (yamlRenderer) Report(r models.Report) (string, error) {
	return marshalYAML(r)
}

func (yamlRenderer) Nearby(origin models.PlaceView, rows []models.NearbyPlace) (string, error) {
	return marshalYAML(nearbyDocument{Origin: origin, Places: rows})
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	return string(data), nil
}

type nearbyDocument struct {
	Origin models.PlaceView     `json:"origin" yaml:"origin"`
	Places []models.NearbyPlace `json:"places" yaml:"places"`
}
