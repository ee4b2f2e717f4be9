package sun

import (
	"encoding/json"

	"github.com/francois-poidevin/flightsun/internal/app/path"
)

// EventKind is either a sunrise or a sunset.
type EventKind string

const (
	SunriseEvent EventKind = "sunrise"
	SunsetEvent  EventKind = "sunset"
)

// Event is a horizon crossing, located at the first sample past the crossing.
type Event struct {
	Kind  EventKind
	Index int
	At    path.Waypoint
}

func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     EventKind `json:"kind"`
		Time     string    `json:"time"`
		Lat      float64   `json:"lat"`
		Lon      float64   `json:"lon"`
		Progress float64   `json:"progress"`
	}{e.Kind, e.At.Time.UTC().Format(path.TimeLayout), e.At.Lat, e.At.Lon, e.At.Progress})
}

// Events is the outcome of DetectEvents.
//
// Only the first sunrise and the first sunset of a flight are kept; a flight
// crossing the terminator several times reports the earliest of each.
type Events struct {
	Sunrise *Event
	Sunset  *Event

	// Minutes spent per condition. A sample stands for the time until the
	// next one, so the totals add up to the timeline span.
	Minutes map[Condition]float64
	// Minutes with the sun at or below the horizon, same approximation.
	BelowHorizonMinutes float64
}

// NightMinutes sums the night-like conditions.
func (e Events) NightMinutes() float64 {
	var m float64
	for c, v := range e.Minutes {
		if c.NightLike() {
			m += v
		}
	}
	return m
}

// GoldenHourMinutes sums the golden hour variants.
func (e Events) GoldenHourMinutes() float64 {
	var m float64
	for c, v := range e.Minutes {
		if c.Golden() {
			m += v
		}
	}
	return m
}

// DayMinutes sums every remaining condition.
func (e Events) DayMinutes() float64 {
	var m float64
	for c, v := range e.Minutes {
		if !c.NightLike() && !c.Golden() {
			m += v
		}
	}
	return m
}

// DetectEvents scans samples in order for horizon crossings and tallies
// condition durations.
func DetectEvents(samples []Sample) Events {
	ev := Events{Minutes: make(map[Condition]float64)}

	for i, s := range samples {
		if i+1 < len(samples) {
			step := samples[i+1].Time.Sub(s.Time).Minutes()
			ev.Minutes[s.Condition] += step
			if s.Elevation <= 0 {
				ev.BelowHorizonMinutes += step
			}
		}
		if i == 0 {
			continue
		}

		prev := samples[i-1].Elevation
		switch {
		case ev.Sunrise == nil && prev <= 0 && s.Elevation > 0:
			ev.Sunrise = &Event{Kind: SunriseEvent, Index: i, At: s.Waypoint}
		case ev.Sunset == nil && prev > 0 && s.Elevation <= 0:
			ev.Sunset = &Event{Kind: SunsetEvent, Index: i, At: s.Waypoint}
		}
	}
	return ev
}

// First returns the earliest detected event, nil when none.
func (e Events) First() *Event {
	switch {
	case e.Sunrise == nil:
		return e.Sunset
	case e.Sunset == nil:
		return e.Sunrise
	case e.Sunset.Index < e.Sunrise.Index:
		return e.Sunset
	default:
		return e.Sunrise
	}
}
