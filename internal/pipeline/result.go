// Package pipeline turns a pair of cities into a rendered distance report,
// either by direct composition or by stepping an explicit stage machine.
package pipeline

import (
	"github.com/randytsao24/citydistance/internal/location"
	"github.com/randytsao24/citydistance/internal/models"
	"github.com/randytsao24/citydistance/internal/option"
)

// Result is the outcome of one request, before rendering
type Result struct {
	Start    location.Place
	Dest     location.Place
	Distance option.Option[location.Feet]
}

// Report converts the result into its output record
func (r Result) Report() models.Report {
	report := models.Report{
		Start: placeView(r.Start),
		Dest:  placeView(r.Dest),
	}
	if feet, ok := r.Distance.Get(); ok {
		report.DistanceFeet = models.DecimalPtr(float64(feet))
	}
	return report
}

func placeView(p location.Place) models.PlaceView {
	view := models.PlaceView{Name: p.City().Name()}
	if loc, ok := p.Location().Get(); ok {
		view.Latitude = models.DecimalPtr(float64(loc.Latitude()))
		view.Longitude = models.DecimalPtr(float64(loc.Longitude()))
	}
	return view
}
