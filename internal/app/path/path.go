// Package path samples a flight route into timestamped waypoints.
//
// Two strategies coexist. BuildPath follows the geometry: one waypoint every
// SpacingKm along the great circle, timed with an assumed ground speed.
// BuildTimeline follows the clock: one waypoint every Cadence between departure
// and departure+duration, placed at the matching fraction of the route.
package path

import (
	"encoding/json"
	"math"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/airports"
	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/geo"
)

// TimeLayout is the wire format of every timestamp (UTC, millisecond precision).
const TimeLayout = "2006-01-02T15:04:05.000Z"

const (
	DefaultSpacingKm      = 50.0
	DefaultMinWaypoints   = 5
	DefaultGroundSpeedKmh = 800.0
	DefaultCadence        = 15 * time.Minute
)

// Waypoint is a position on the route at an instant.
// Progress is the fraction of the route covered, in [0,1].
type Waypoint struct {
	geo.Coordinate
	Time     time.Time
	Progress float64
}

func (w Waypoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
		Time     string  `json:"time"`
		Progress float64 `json:"progress"`
	}{w.Lat, w.Lon, w.Time.UTC().Format(TimeLayout), w.Progress})
}

// Route is a resolved airport pair.
type Route struct {
	From airports.Airport
	To   airports.Airport
}

// DistanceKm is the great-circle length of the route.
func (r Route) DistanceKm() float64 {
	return geo.DistanceKm(r.From.Coordinate, r.To.Coordinate)
}

// Sampler holds the sampling parameters. The zero value is not usable, use NewSampler.
type Sampler struct {
	SpacingKm      float64
	MinWaypoints   int
	GroundSpeedKmh float64
	Cadence        time.Duration
}

// NewSampler returns a Sampler with the reference parameters.
func NewSampler() Sampler {
	return Sampler{
		SpacingKm:      DefaultSpacingKm,
		MinWaypoints:   DefaultMinWaypoints,
		GroundSpeedKmh: DefaultGroundSpeedKmh,
		Cadence:        DefaultCadence,
	}
}

// ResolveRoute looks both codes up. Identical codes are rejected here, before
// any geometry runs, even though the great-circle math alone would not fail.
func ResolveRoute(fromCode, toCode string) (Route, error) {
	fromCode, toCode = airports.Normalize(fromCode), airports.Normalize(toCode)
	if fromCode == "" || toCode == "" {
		return Route{}, apperr.InvalidInput("both departure and arrival airport codes are required")
	}
	if fromCode == toCode {
		return Route{}, apperr.InvalidInput("departure and arrival airports must differ, got %s twice", fromCode)
	}

	from, okFrom := airports.Lookup(fromCode)
	to, okTo := airports.Lookup(toCode)

	var missing []string
	if !okFrom {
		missing = append(missing, fromCode)
	}
	if !okTo {
		missing = append(missing, toCode)
	}
	if len(missing) > 0 {
		return Route{}, apperr.AirportNotFound(fromCode, toCode, missing...)
	}

	return Route{From: from, To: to}, nil
}

// Count returns the number of waypoints BuildPath emits for a distance, never
// fewer than the two endpoints.
func (s Sampler) Count(distanceKm float64) int {
	n := int(math.Floor(distanceKm / s.SpacingKm))
	if n < s.MinWaypoints {
		n = s.MinWaypoints
	}
	if n < 2 {
		return 2
	}
	return n
}

// FlightTime is the duration implied by the assumed ground speed.
func (s Sampler) FlightTime(distanceKm float64) time.Duration {
	hours := distanceKm / s.GroundSpeedKmh
	return time.Duration(hours * float64(time.Hour))
}

// BuildPath resolves the codes and samples the route by distance.
func (s Sampler) BuildPath(fromCode, toCode string, departure time.Time) ([]Waypoint, error) {
	route, err := ResolveRoute(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return s.SampleByDistance(route, departure), nil
}

// SampleByDistance emits Count(distance) waypoints, first at departure over the
// origin, last over the destination at departure+FlightTime.
func (s Sampler) SampleByDistance(route Route, departure time.Time) []Waypoint {
	departure = departure.UTC()
	distance := route.DistanceKm()
	count := s.Count(distance)
	flight := s.FlightTime(distance)

	points := make([]Waypoint, 0, count)
	for i := 0; i < count; i++ {
		fraction := float64(i) / float64(count-1)
		points = append(points, Waypoint{
			Coordinate: geo.Interpolate(route.From.Coordinate, route.To.Coordinate, fraction),
			Time:       departure.Add(time.Duration(fraction * float64(flight))),
			Progress:   fraction,
		})
	}
	return points
}

// BuildTimeline resolves the codes and samples the route by clock.
func (s Sampler) BuildTimeline(fromCode, toCode string, departure time.Time, duration time.Duration) ([]Waypoint, error) {
	route, err := ResolveRoute(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	return s.SampleByCadence(route, departure, duration)
}

// SampleByCadence emits one waypoint every Cadence from departure, then a
// last one over the destination at departure+duration when the duration does
// not fall on the cadence.
func (s Sampler) SampleByCadence(route Route, departure time.Time, duration time.Duration) ([]Waypoint, error) {
	if duration <= 0 {
		return nil, apperr.InvalidInput("flight duration must be positive, got %s", duration)
	}
	departure = departure.UTC()

	at := func(elapsed time.Duration) Waypoint {
		fraction := float64(elapsed) / float64(duration)
		return Waypoint{
			Coordinate: geo.Interpolate(route.From.Coordinate, route.To.Coordinate, fraction),
			Time:       departure.Add(elapsed),
			Progress:   fraction,
		}
	}

	points := make([]Waypoint, 0, int(duration/s.Cadence)+2)
	for elapsed := time.Duration(0); elapsed < duration; elapsed += s.Cadence {
		points = append(points, at(elapsed))
	}
	return append(points, at(duration)), nil
}

// Coordinates strips the timing from a waypoint sequence.
func Coordinates(points []Waypoint) []geo.Coordinate {
	out := make([]geo.Coordinate, len(points))
	for i, p := range points {
		out[i] = p.Coordinate
	}
	return out
}
