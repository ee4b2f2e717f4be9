// Package report aggregates the sun observation of a flight into the
// FlightSunReport handed to the presentation layer.
package report

import (
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/geo"
	"github.com/francois-poidevin/flightsun/internal/app/seat"
	"github.com/francois-poidevin/flightsun/internal/app/sun"
)

// fallbackNightShare is the share of the flight assumed dark when a sunset
// and a sunrise are both detected but nothing else measures the night.
const fallbackNightShare = 0.25

// NightSource tells how NightMinutes was obtained.
type NightSource string

const (
	NightFromConditions   NightSource = "conditions"
	NightFromBelowHorizon NightSource = "below_horizon"
	NightFromEvents       NightSource = "events"
	NightFromFlightShare  NightSource = "flight_share"
)

// Report is the FlightSunReport. It is built once and never mutated.
type Report struct {
	WillSeeSunrise    bool `json:"willSeeSunrise"`
	WillSeeSunset     bool `json:"willSeeSunset"`
	WillSeeNight      bool `json:"willSeeNight"`
	WillSeeGoldenHour bool `json:"willSeeGoldenHour"`

	Sunrise *sun.Event `json:"sunrise,omitempty"`
	Sunset  *sun.Event `json:"sunset,omitempty"`

	FlightMinutes     float64     `json:"flightMinutes"`
	NightMinutes      float64     `json:"nightMinutes"`
	DayMinutes        float64     `json:"dayMinutes"`
	GoldenHourMinutes float64     `json:"goldenHourMinutes"`
	NightSource       NightSource `json:"nightSource,omitempty"`

	SeatSuggestion seat.Side  `json:"seatSuggestion"`
	SeatReason     string     `json:"seatReason,omitempty"`
	Sides          seat.Sides `json:"sides"`

	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`

	Classifier string       `json:"classifier,omitempty"`
	Timeline   []sun.Sample `json:"timeline"`
	Fallback   bool         `json:"fallback"`
}

// Input is everything the builder aggregates.
type Input struct {
	From, To   geo.Coordinate
	Duration   time.Duration
	Samples    []sun.Sample
	Events     sun.Events
	Classifier string
}

// Build aggregates classifier and resolver outputs into a Report.
func Build(in Input) (*Report, error) {
	if len(in.Samples) == 0 {
		return nil, apperr.InsufficientPath(0)
	}
	ev := in.Events

	r := &Report{
		WillSeeSunrise:    ev.Sunrise != nil,
		WillSeeSunset:     ev.Sunset != nil,
		Sunrise:           ev.Sunrise,
		Sunset:            ev.Sunset,
		FlightMinutes:     in.Duration.Minutes(),
		NightMinutes:      ev.NightMinutes(),
		DayMinutes:        ev.DayMinutes(),
		GoldenHourMinutes: ev.GoldenHourMinutes(),
		Classifier:        in.Classifier,
		Timeline:          in.Samples,
	}

	r.WillSeeGoldenHour = r.GoldenHourMinutes > 0
	r.WillSeeNight = r.NightMinutes > 0
	if r.WillSeeNight {
		r.NightSource = NightFromConditions
	}

	// A sunset followed or preceded by a sunrise implies a night in between.
	if r.WillSeeSunrise && r.WillSeeSunset {
		r.WillSeeNight = true
		if r.NightMinutes == 0 {
			r.NightMinutes, r.NightSource = estimateNight(ev, in.Duration)
		}
	}

	if err := r.suggestSeat(in); err != nil {
		return nil, err
	}
	r.Sides = seat.BothSides(in.From, in.To, r.WillSeeSunrise, r.WillSeeSunset, r.WillSeeNight)

	r.Summary, r.Highlights = summarize(r)
	return r, nil
}

// estimateNight prefers measured darkness over the event gap, and the event
// gap over a fixed share of the flight.
func estimateNight(ev sun.Events, duration time.Duration) (float64, NightSource) {
	if ev.BelowHorizonMinutes > 0 {
		return ev.BelowHorizonMinutes, NightFromBelowHorizon
	}
	if ev.Sunrise != nil && ev.Sunset != nil && ev.Sunrise.At.Time.After(ev.Sunset.At.Time) {
		return ev.Sunrise.At.Time.Sub(ev.Sunset.At.Time).Minutes(), NightFromEvents
	}
	return duration.Minutes() * fallbackNightShare, NightFromFlightShare
}

func (r *Report) suggestSeat(in Input) error {
	if first := in.Events.First(); first != nil {
		isSunrise := first.Kind == sun.SunriseEvent
		r.SeatSuggestion = seat.RecommendForEvent(in.From, in.To, isSunrise)
		r.SeatReason = string(first.Kind)
		return nil
	}

	// the timeline may hold a single sample, the course comes from the route
	rec, err := seat.RecommendSeat([]geo.Coordinate{in.From, in.To}, in.Samples)
	if err != nil {
		return err
	}
	r.SeatSuggestion = rec.Side
	if rec.Side != seat.None {
		r.SeatReason = "sun"
	}
	return nil
}

// Fallback is the payload returned when no flight duration is known:
// every flag is false and the timeline is empty.
func Fallback() *Report {
	return &Report{
		SeatSuggestion: seat.None,
		Summary:        "Flight duration not provided: sunrise and sunset analysis unavailable.",
		Highlights:     []string{},
		Timeline:       []sun.Sample{},
		Fallback:       true,
	}
}
