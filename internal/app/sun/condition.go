package sun

import (
	"time"
)

// Condition is the discrete lighting condition outside the window.
type Condition string

const (
	Night                   Condition = "night"
	Twilight                Condition = "twilight"
	GoldenHour              Condition = "golden_hour"
	Daylight                Condition = "daylight"
	GoldenHourBeforeSunrise Condition = "golden_hour_before_sunrise"
	Sunrise                 Condition = "sunrise"
	GoldenHourBeforeSunset  Condition = "golden_hour_before_sunset"
	Sunset                  Condition = "sunset"
)

// NightLike reports whether the condition counts as night for viewing
// purposes. Twilight does, even though it is displayed on its own.
func (c Condition) NightLike() bool {
	return c == Night || c == Twilight
}

// Golden reports whether the condition is one of the golden hour variants.
func (c Condition) Golden() bool {
	return c == GoldenHour || c == GoldenHourBeforeSunrise || c == GoldenHourBeforeSunset
}

// Classifier maps a sample to a condition. Two strategies exist, see
// ElevationClassifier and ClockClassifier.
type Classifier interface {
	Classify(s Sample) Condition
	Name() string
}

// Elevation thresholds in degrees.
const (
	twilightFloor   = 0.0
	goldenHourFloor = 6.0
	daylightFloor   = 10.0
)

// ClassifyElevation buckets a solar elevation.
func ClassifyElevation(elevation float64) Condition {
	switch {
	case elevation < twilightFloor:
		return Night
	case elevation < goldenHourFloor:
		return Twilight
	case elevation < daylightFloor:
		return GoldenHour
	default:
		return Daylight
	}
}

// ElevationClassifier classifies by the measured solar elevation.
type ElevationClassifier struct{}

func (ElevationClassifier) Classify(s Sample) Condition {
	return ClassifyElevation(s.Elevation)
}

func (ElevationClassifier) Name() string {
	return "elevation"
}

// clockRange is an inclusive minute-of-day window; End < Start wraps midnight.
type clockRange struct {
	Start, End int
	Condition  Condition
}

func (r clockRange) contains(minute int) bool {
	if r.End < r.Start {
		return minute >= r.Start || minute <= r.End
	}
	return minute >= r.Start && minute <= r.End
}

func hm(h, m int) int {
	return h*60 + m
}

// Checked in order, most specific first.
var clockRanges = []clockRange{
	{hm(4, 0), hm(4, 59), GoldenHourBeforeSunrise},
	{hm(5, 0), hm(8, 0), Sunrise},
	{hm(8, 1), hm(17, 0), Daylight},
	{hm(17, 1), hm(17, 59), GoldenHourBeforeSunset},
	{hm(18, 0), hm(19, 0), Sunset},
	{hm(19, 1), hm(3, 59), Night},
}

// ClassifyClock buckets a UTC time of day into fixed windows.
func ClassifyClock(t time.Time) Condition {
	t = t.UTC()
	minute := hm(t.Hour(), t.Minute())
	for _, r := range clockRanges {
		if r.contains(minute) {
			return r.Condition
		}
	}
	return Night
}

// ClockClassifier classifies by the sample's UTC time of day only.
type ClockClassifier struct{}

func (ClockClassifier) Classify(s Sample) Condition {
	return ClassifyClock(s.Time)
}

func (ClockClassifier) Name() string {
	return "clock"
}

// ClassifierByName returns the strategy registered under name.
func ClassifierByName(name string) (Classifier, bool) {
	switch name {
	case "elevation":
		return ElevationClassifier{}, true
	case "clock":
		return ClockClassifier{}, true
	default:
		return nil, false
	}
}
