package sun

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/geo"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

// synthetic builds samples 15 minutes apart with the given elevations.
func synthetic(elevations ...float64) []Sample {
	samples := make([]Sample, len(elevations))
	for i, e := range elevations {
		samples[i] = Sample{
			Waypoint: path.Waypoint{
				Coordinate: geo.Coordinate{Lat: float64(i), Lon: float64(i)},
				Time:       start.Add(time.Duration(i) * 15 * time.Minute),
				Progress:   float64(i) / float64(len(elevations)-1),
			},
			Elevation: e,
			Condition: ClassifyElevation(e),
		}
	}
	return samples
}

func TestClassifyElevationSweep(t *testing.T) {
	var transitions []float64
	var order []Condition

	prev := ClassifyElevation(-90)
	order = append(order, prev)
	for tenth := -900; tenth <= 900; tenth++ {
		e := float64(tenth) / 10
		c := ClassifyElevation(e)
		if c != prev {
			transitions = append(transitions, e)
			order = append(order, c)
			prev = c
		}
	}

	assert.Equal(t, []float64{0, 6, 10}, transitions)
	assert.Equal(t, []Condition{Night, Twilight, GoldenHour, Daylight}, order)
}

func TestClassifyElevationBoundaries(t *testing.T) {
	assert.Equal(t, Night, ClassifyElevation(-0.0001))
	assert.Equal(t, Twilight, ClassifyElevation(0))
	assert.Equal(t, Twilight, ClassifyElevation(5.999))
	assert.Equal(t, GoldenHour, ClassifyElevation(6))
	assert.Equal(t, GoldenHour, ClassifyElevation(9.999))
	assert.Equal(t, Daylight, ClassifyElevation(10))
}

func TestClassifyClock(t *testing.T) {
	cases := []struct {
		hour, minute int
		want         Condition
	}{
		{0, 0, Night},
		{3, 59, Night},
		{4, 0, GoldenHourBeforeSunrise},
		{4, 59, GoldenHourBeforeSunrise},
		{5, 0, Sunrise},
		{8, 0, Sunrise},
		{8, 1, Daylight},
		{12, 30, Daylight},
		{17, 0, Daylight},
		{17, 1, GoldenHourBeforeSunset},
		{17, 59, GoldenHourBeforeSunset},
		{18, 0, Sunset},
		{19, 0, Sunset},
		{19, 1, Night},
		{23, 59, Night},
	}
	for _, c := range cases {
		at := time.Date(2025, 8, 1, c.hour, c.minute, 30, 0, time.UTC)
		assert.Equal(t, c.want, ClassifyClock(at), at.Format("15:04"))
	}
}

func TestClassifyClockUsesUTC(t *testing.T) {
	// 05:30 IST is 00:00 UTC
	at := time.Date(2025, 8, 1, 5, 30, 0, 0, time.FixedZone("IST", 19800))
	assert.Equal(t, Night, ClassifyClock(at))
}

func TestClassifierByName(t *testing.T) {
	c, ok := ClassifierByName("clock")
	require.True(t, ok)
	assert.Equal(t, "clock", c.Name())

	c, ok = ClassifierByName("elevation")
	require.True(t, ok)
	assert.Equal(t, "elevation", c.Name())

	_, ok = ClassifierByName("tarot")
	assert.False(t, ok)
}

func TestDetectEventsKeepsFirstSunrise(t *testing.T) {
	samples := synthetic(-5, 2, -1, 3, -2, 4)
	ev := DetectEvents(samples)

	require.NotNil(t, ev.Sunrise)
	assert.Equal(t, 1, ev.Sunrise.Index)
	assert.Equal(t, samples[1].Time, ev.Sunrise.At.Time)
	assert.Equal(t, samples[1].Progress, ev.Sunrise.At.Progress)

	require.NotNil(t, ev.Sunset)
	assert.Equal(t, 2, ev.Sunset.Index)
}

func TestDetectEventsZeroElevationCountsAsBelow(t *testing.T) {
	ev := DetectEvents(synthetic(0, 0.5))
	require.NotNil(t, ev.Sunrise)
	assert.Nil(t, ev.Sunset)

	ev = DetectEvents(synthetic(0.5, 0))
	assert.Nil(t, ev.Sunrise)
	require.NotNil(t, ev.Sunset)
}

func TestDetectEventsNone(t *testing.T) {
	ev := DetectEvents(synthetic(20, 25, 30))
	assert.Nil(t, ev.Sunrise)
	assert.Nil(t, ev.Sunset)
	assert.Nil(t, ev.First())

	assert.Empty(t, DetectEvents(nil).Minutes)
}

func TestDetectEventsTallies(t *testing.T) {
	// night, twilight, golden, daylight, then the arrival sample
	ev := DetectEvents(synthetic(-10, 3, 7, 12, 40))

	assert.Equal(t, 15.0, ev.Minutes[Night])
	assert.Equal(t, 15.0, ev.Minutes[Twilight])
	assert.Equal(t, 30.0, ev.NightMinutes())
	assert.Equal(t, 15.0, ev.GoldenHourMinutes())
	assert.Equal(t, 15.0, ev.DayMinutes())
	assert.Equal(t, 15.0, ev.BelowHorizonMinutes)
}

func TestDetectEventsTalliesMatchFlightDuration(t *testing.T) {
	for _, d := range []time.Duration{10 * time.Minute, 50 * time.Minute, time.Hour} {
		points, err := path.NewSampler().BuildTimeline("DEL", "JAI", start, d)
		require.NoError(t, err)

		ev := DetectEvents(Observe(solar.Meeus{}, ElevationClassifier{}, points))
		total := ev.NightMinutes() + ev.GoldenHourMinutes() + ev.DayMinutes()
		assert.InDelta(t, d.Minutes(), total, 1e-9, "duration %s", d)
		assert.LessOrEqual(t, ev.BelowHorizonMinutes, d.Minutes())
	}
}

func TestEventsFirst(t *testing.T) {
	ev := DetectEvents(synthetic(10, -1, 5))
	require.NotNil(t, ev.First())
	assert.Equal(t, SunsetEvent, ev.First().Kind)

	ev = DetectEvents(synthetic(-1, 5, -1))
	assert.Equal(t, SunriseEvent, ev.First().Kind)
}

func TestObserveDelhiDawn(t *testing.T) {
	points, err := path.NewSampler().BuildTimeline("DEL", "JAI", start, time.Hour)
	require.NoError(t, err)

	samples := Observe(solar.Meeus{}, ElevationClassifier{}, points)
	require.Len(t, samples, len(points))
	for i := range samples {
		assert.Equal(t, points[i], samples[i].Waypoint)
	}
	ev := DetectEvents(samples)
	require.NotNil(t, ev.Sunrise)
	assert.Equal(t, 2, ev.Sunrise.Index)
	assert.Equal(t, 0.5, ev.Sunrise.At.Progress)
	assert.Nil(t, ev.Sunset)
}

func TestSampleJSON(t *testing.T) {
	s := synthetic(-3, 7)[1]
	s.Azimuth = geo.East

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":1,"lon":1,"time":"2025-08-01T00:15:00.000Z","progress":1,
		"azimuth":90,"elevation":7,"condition":"golden_hour"}`, string(raw))

	raw, err = json.Marshal(Event{Kind: SunriseEvent, At: s.Waypoint})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"sunrise","time":"2025-08-01T00:15:00.000Z","lat":1,"lon":1,"progress":1}`, string(raw))
}
