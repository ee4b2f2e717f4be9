// Package solar computes where the sun stands in the sky of an observer.
package solar

import (
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/geo"
	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	msolar "github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Position is the sun as seen from the ground.
// Azimuth is North-referenced (see geo.Bearing), Elevation is degrees above
// the horizon, negative below. Refraction is ignored.
type Position struct {
	Azimuth   geo.Bearing `json:"azimuth"`
	Elevation float64     `json:"elevation"`
}

// Engine computes the solar position at an instant and place.
// Implementations must be pure functions of their input.
type Engine interface {
	Position(t time.Time, at geo.Coordinate) Position
}

// Meeus is the Engine backed by the low-precision solar theory of
// "Astronomical Algorithms" (chapter 25) and apparent sidereal time.
type Meeus struct{}

// Position implements Engine.
func (Meeus) Position(t time.Time, at geo.Coordinate) Position {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun
	ra, dec := msolar.ApparentEquatorial(jd)
	st := sidereal.Apparent(jd)

	// meeus longitudes are positive westward
	lat := unit.AngleFromDeg(at.Lat)
	lon := unit.AngleFromDeg(-at.Lon)

	az, alt := coord.EqToHz(ra, dec, lat, lon, st)

	return Position{
		Azimuth:   geo.FromAstronomical(az.Deg()),
		Elevation: alt.Deg(),
	}
}
