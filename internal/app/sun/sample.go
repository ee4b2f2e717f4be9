// Package sun observes the sun along a sampled flight path: per-sample
// position and condition, sunrise/sunset crossings and time spent per condition.
package sun

import (
	"encoding/json"

	"github.com/francois-poidevin/flightsun/internal/app/geo"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/solar"
)

// Sample is the sun as seen from one waypoint. Samples share index with the
// waypoints they were observed from.
type Sample struct {
	path.Waypoint
	Azimuth   geo.Bearing
	Elevation float64
	Condition Condition
}

func (s Sample) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat       float64     `json:"lat"`
		Lon       float64     `json:"lon"`
		Time      string      `json:"time"`
		Progress  float64     `json:"progress"`
		Azimuth   geo.Bearing `json:"azimuth"`
		Elevation float64     `json:"elevation"`
		Condition Condition   `json:"condition"`
	}{s.Lat, s.Lon, s.Time.UTC().Format(path.TimeLayout), s.Progress, s.Azimuth, s.Elevation, s.Condition})
}

// Observe computes one sample per waypoint.
func Observe(engine solar.Engine, classifier Classifier, points []path.Waypoint) []Sample {
	samples := make([]Sample, len(points))
	for i, p := range points {
		pos := engine.Position(p.Time, p.Coordinate)
		samples[i] = Sample{
			Waypoint:  p,
			Azimuth:   pos.Azimuth,
			Elevation: pos.Elevation,
		}
		samples[i].Condition = classifier.Classify(samples[i])
	}
	return samples
}
