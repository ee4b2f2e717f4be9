// Package seat decides which window of the aircraft faces the sun.
//
// All angles are geo.Bearing values. The sun's position relative to the nose
// is normalize(sunBearing - flightBearing); [0,180] recommends the left seat
// and (180,360) the right seat. Both branches must change together.
package seat

import (
	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/geo"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
)

// Side is a window side recommendation.
type Side string

const (
	Left   Side = "left"
	Right  Side = "right"
	Either Side = "either"
	None   Side = "none"
)

// NoOptimalSeat is the message attached to None.
const NoOptimalSeat = "No optimal window seat: the sun is not visible during this flight"

// Visible elevation window, exclusive on both ends. Above the upper bound the
// sun is overhead and the side no longer matters.
const (
	minVisibleElevation = 0.0
	maxVisibleElevation = 80.0
)

// EitherTolerance is how close to the nose or tail an event bearing must be
// for both sides to see it equally.
const EitherTolerance = 5.0

// Recommendation is the outcome of RecommendSeat.
type Recommendation struct {
	Side    Side   `json:"side"`
	Message string `json:"message,omitempty"`
	// Relative is the sun bearing relative to the nose used for the decision.
	Relative geo.Bearing `json:"relativeSunPosition"`
}

// String renders the recommendation as the primary wire value.
func (r Recommendation) String() string {
	if r.Side == None {
		return r.Message
	}
	return string(r.Side)
}

// FlightBearing is the initial great-circle course from -> to.
func FlightBearing(from, to geo.Coordinate) geo.Bearing {
	return geo.InitialBearing(from, to)
}

// SideFor applies the relative-bearing partition.
func SideFor(sunBearing, heading geo.Bearing) (Side, geo.Bearing) {
	relative := sunBearing.RelativeTo(heading)
	if relative <= 180 {
		return Left, relative
	}
	return Right, relative
}

// RecommendSeat averages the azimuth of the samples where the sun is visible
// and compares it to the course between the first and last path point.
//
// The mean is arithmetic, not circular: a visible window straddling North
// averages towards South.
func RecommendSeat(points []geo.Coordinate, samples []sun.Sample) (Recommendation, error) {
	if len(points) < 2 {
		return Recommendation{}, apperr.InsufficientPath(len(points))
	}

	var sum float64
	var visible int
	for _, s := range samples {
		if s.Elevation > minVisibleElevation && s.Elevation < maxVisibleElevation {
			sum += s.Azimuth.Degrees()
			visible++
		}
	}
	if visible == 0 {
		return Recommendation{Side: None, Message: NoOptimalSeat}, nil
	}

	mean := geo.NewBearing(sum / float64(visible))
	heading := FlightBearing(points[0], points[len(points)-1])

	side, relative := SideFor(mean, heading)
	return Recommendation{Side: side, Relative: relative}, nil
}

// EventBearing is the fixed bearing used for a confirmed event.
func EventBearing(isSunrise bool) geo.Bearing {
	if isSunrise {
		return geo.East
	}
	return geo.West
}

// RecommendForEvent uses the fixed sunrise (East) or sunset (West) bearing
// instead of a measured azimuth.
func RecommendForEvent(from, to geo.Coordinate, isSunrise bool) Side {
	heading := FlightBearing(from, to)
	side, relative := SideFor(EventBearing(isSunrise), heading)

	if nearAxis(relative) {
		return Either
	}
	return side
}

// nearAxis reports a bearing within EitherTolerance of the nose or the tail.
func nearAxis(relative geo.Bearing) bool {
	return nearNose(relative) || nearNose(relative.Reverse())
}

func nearNose(relative geo.Bearing) bool {
	r := relative.Degrees()
	return r <= EitherTolerance || r >= 360-EitherTolerance
}

// Visibility tells what one side of the cabin gets to see.
type Visibility struct {
	Sunrise bool `json:"sunrise"`
	Sunset  bool `json:"sunset"`
	Night   bool `json:"night"`
}

// Sides groups the visibility of both windows.
type Sides struct {
	Left  Visibility `json:"left"`
	Right Visibility `json:"right"`
}

// SideVisibility re-derives per side whether the confirmed events face it.
// Night is visible from both sides and is implied by a sunrise plus a sunset.
func SideVisibility(from, to geo.Coordinate, side Side, sawSunrise, sawSunset, sawNight bool) Visibility {
	faces := func(isSunrise bool) bool {
		s := RecommendForEvent(from, to, isSunrise)
		return s == Either || s == side
	}

	return Visibility{
		Sunrise: sawSunrise && faces(true),
		Sunset:  sawSunset && faces(false),
		Night:   sawNight || (sawSunrise && sawSunset),
	}
}

// BothSides evaluates SideVisibility for left and right.
func BothSides(from, to geo.Coordinate, sawSunrise, sawSunset, sawNight bool) Sides {
	return Sides{
		Left:  SideVisibility(from, to, Left, sawSunrise, sawSunset, sawNight),
		Right: SideVisibility(from, to, Right, sawSunrise, sawSunset, sawNight),
	}
}
