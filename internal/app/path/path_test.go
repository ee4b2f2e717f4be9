package path

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2025, 8, 1, 18, 0, 0, 0, time.UTC)

func assertMonotonic(t *testing.T, points []Waypoint) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		assert.True(t, points[i].Time.After(points[i-1].Time), "time at %d", i)
		assert.Greater(t, points[i].Progress, points[i-1].Progress, "progress at %d", i)
	}
}

func TestBuildPathShortHop(t *testing.T) {
	points, err := NewSampler().BuildPath("DEL", "jai", departure)
	require.NoError(t, err)

	require.Len(t, points, 5)
	assertMonotonic(t, points)

	first, last := points[0], points[len(points)-1]
	assert.InDelta(t, 28.5562, first.Lat, 1e-9)
	assert.InDelta(t, 77.1000, first.Lon, 1e-9)
	assert.InDelta(t, 26.8282, last.Lat, 1e-9)
	assert.InDelta(t, 75.8056, last.Lon, 1e-9)
	assert.Equal(t, 0.0, first.Progress)
	assert.Equal(t, 1.0, last.Progress)
	assert.Equal(t, departure, first.Time)

	// 230.56 km at 800 km/h
	assert.InDelta(t, (230.56 / 800 * time.Hour.Seconds()), last.Time.Sub(departure).Seconds(), 1)
}

func TestBuildPathLongHaulDensity(t *testing.T) {
	s := NewSampler()
	route, err := ResolveRoute("LHR", "JFK")
	require.NoError(t, err)

	points := s.SampleByDistance(route, departure)
	assert.Equal(t, int(route.DistanceKm()/50), len(points))
	assert.Greater(t, len(points), 100)
	assertMonotonic(t, points)
}

func TestBuildPathErrors(t *testing.T) {
	s := NewSampler()

	_, err := s.BuildPath("DEL", "del", departure)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = s.BuildPath("", "DEL", departure)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = s.BuildPath("DEL", "ZZZ", departure)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeAirportNotFound))
	assert.Contains(t, err.Error(), "ZZZ")
	assert.Contains(t, err.Error(), "DEL")

	_, err = s.BuildPath("YYY", "ZZZ", departure)
	assert.Contains(t, err.Error(), "YYY, ZZZ")
}

func TestBuildPathKeepsEndpointsWithLowMinimum(t *testing.T) {
	s := NewSampler()
	s.MinWaypoints = 1

	// JFK-EWR is about 34 km, below one spacing
	points, err := s.BuildPath("JFK", "EWR", departure)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assertMonotonic(t, points)
	assert.Equal(t, 0.0, points[0].Progress)
	assert.Equal(t, 1.0, points[1].Progress)
	assert.InDelta(t, -74.1745, points[1].Lon, 1e-9)
}

func TestBuildTimelineCadence(t *testing.T) {
	points, err := NewSampler().BuildTimeline("DEL", "JAI", departure, 2*time.Hour)
	require.NoError(t, err)

	require.Len(t, points, 9)
	assertMonotonic(t, points)
	for i, p := range points {
		assert.Equal(t, departure.Add(time.Duration(i)*15*time.Minute), p.Time)
	}
	assert.Equal(t, 1.0, points[8].Progress)
	assert.InDelta(t, 26.8282, points[8].Lat, 1e-9)
}

func TestBuildTimelineOffCadenceDuration(t *testing.T) {
	points, err := NewSampler().BuildTimeline("DEL", "JAI", departure, 50*time.Minute)
	require.NoError(t, err)

	// 0, 15, 30, 45 then the arrival at 50
	require.Len(t, points, 5)
	assertMonotonic(t, points)
	assert.InDelta(t, 45.0/50.0, points[3].Progress, 1e-12)
	assert.Equal(t, 1.0, points[4].Progress)
	assert.Equal(t, departure.Add(50*time.Minute), points[4].Time)
	assert.InDelta(t, 26.8282, points[4].Lat, 1e-9)
}

func TestBuildTimelineShorterThanCadence(t *testing.T) {
	points, err := NewSampler().BuildTimeline("DEL", "JAI", departure, 10*time.Minute)
	require.NoError(t, err)

	require.Len(t, points, 2)
	assert.Equal(t, 0.0, points[0].Progress)
	assert.Equal(t, 1.0, points[1].Progress)
	assert.Equal(t, departure.Add(10*time.Minute), points[1].Time)
}

func TestBuildTimelineRejectsNonPositiveDuration(t *testing.T) {
	_, err := NewSampler().BuildTimeline("DEL", "JAI", departure, 0)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
}

func TestWaypointJSON(t *testing.T) {
	w := Waypoint{Time: time.Date(2025, 8, 1, 18, 0, 0, 0, time.FixedZone("IST", 19800)), Progress: 0.5}
	w.Lat, w.Lon = 1.5, 2.5

	raw, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lat":1.5,"lon":2.5,"time":"2025-08-01T12:30:00.000Z","progress":0.5}`, string(raw))
}
