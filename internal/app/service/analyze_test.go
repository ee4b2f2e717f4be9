package service

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/francois-poidevin/flightsun/internal/app"
	"github.com/francois-poidevin/flightsun/internal/app/apperr"
	"github.com/francois-poidevin/flightsun/internal/app/path"
	"github.com/francois-poidevin/flightsun/internal/app/seat"
)

func newService(t *testing.T, opts Options) (*Service, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	svc, err := New(log, opts)
	require.NoError(t, err)
	return svc, hook
}

func minutes(m int) *int {
	return &m
}

func TestAnalyzeDelhiJaipurEvening(t *testing.T) {
	svc, _ := newService(t, Options{})

	a, err := svc.Analyze(context.Background(), app.Query{From: "DEL", To: "JAI", Departure: "2025-08-01T18:00:00.000Z"})
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(a.Path), 5)
	assert.InDelta(t, 28.5562, a.Path[0].Lat, 1e-9)
	assert.InDelta(t, 77.1000, a.Path[0].Lon, 1e-9)
	assert.InDelta(t, 26.8282, a.Path[len(a.Path)-1].Lat, 1e-6)
	assert.InDelta(t, 75.8056, a.Path[len(a.Path)-1].Lon, 1e-6)
	for i := 1; i < len(a.Path); i++ {
		assert.True(t, a.Path[i].Time.After(a.Path[i-1].Time))
	}
	require.Len(t, a.SunPositions, len(a.Path))

	// 23:30 local, the sun is far below the horizon along the whole path
	assert.Equal(t, seat.NoOptimalSeat, a.Recommendation)
	assert.Equal(t, seat.None, a.Seat.Side)
	assert.Equal(t, "2025-08-01T18:00:00.000Z", a.Departure)

	require.NotNil(t, a.EnhancedAnalysis)
	assert.True(t, a.EnhancedAnalysis.Fallback)
	assert.False(t, a.EnhancedAnalysis.WillSeeSunrise)
	assert.False(t, a.EnhancedAnalysis.WillSeeSunset)
	assert.False(t, a.EnhancedAnalysis.WillSeeNight)
}

func TestAnalyzeWithDuration(t *testing.T) {
	svc, _ := newService(t, Options{})

	a, err := svc.Analyze(context.Background(), app.Query{
		From: "del", To: "jai", Departure: "2025-08-01T00:00:00Z", DurationMinutes: minutes(60),
	})
	require.NoError(t, err)

	r := a.EnhancedAnalysis
	require.NotNil(t, r)
	assert.False(t, r.Fallback)
	assert.Equal(t, "clock", r.Classifier)
	assert.Len(t, r.Timeline, 5)
	assert.True(t, r.WillSeeSunrise)
	assert.True(t, r.WillSeeNight)
	assert.Equal(t, seat.Right, r.SeatSuggestion)
	assert.Equal(t, "DEL", a.From.Code)
}

func TestAnalyzeRejects(t *testing.T) {
	cases := []struct {
		name  string
		query app.Query
		code  apperr.Code
	}{
		{"identical codes", app.Query{From: "DEL", To: "del", Departure: "2025-08-01T18:00:00Z"}, apperr.CodeInvalidInput},
		{"unknown airport", app.Query{From: "ZZZ", To: "DEL", Departure: "2025-08-01T18:00:00Z"}, apperr.CodeAirportNotFound},
		{"missing from", app.Query{To: "DEL", Departure: "2025-08-01T18:00:00Z"}, apperr.CodeInvalidInput},
		{"malformed code", app.Query{From: "D3L", To: "JAI", Departure: "2025-08-01T18:00:00Z"}, apperr.CodeInvalidInput},
		{"bad departure", app.Query{From: "DEL", To: "JAI", Departure: "tonight"}, apperr.CodeInvalidInput},
		{"zero duration", app.Query{From: "DEL", To: "JAI", Departure: "2025-08-01T18:00:00Z", DurationMinutes: minutes(0)}, apperr.CodeInvalidInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc, hook := newService(t, Options{})
			_, err := svc.Analyze(context.Background(), c.query)
			require.Error(t, err)
			assert.Equal(t, c.code, apperr.CodeOf(err))

			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		})
	}
}

func TestAnalyzeUnknownAirportNamesIt(t *testing.T) {
	svc, _ := newService(t, Options{})
	_, err := svc.Analyze(context.Background(), app.Query{From: "DEL", To: "ZZZ", Departure: "2025-08-01T18:00:00Z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ZZZ")
}

func TestAnalyzeCache(t *testing.T) {
	q := app.Query{From: "TLS", To: "CDG", Departure: "2025-06-21T05:00:00Z", DurationMinutes: minutes(75)}

	cached, _ := newService(t, Options{CacheSize: 8})
	a1, err := cached.Analyze(context.Background(), q)
	require.NoError(t, err)
	a2, err := cached.Analyze(context.Background(), app.Query{From: "tls", To: "cdg", Departure: "2025-06-21T05:00", DurationMinutes: minutes(75)})
	require.NoError(t, err)
	assert.Same(t, a1, a2)

	uncached, _ := newService(t, Options{})
	b1, err := uncached.Analyze(context.Background(), q)
	require.NoError(t, err)
	b2, err := uncached.Analyze(context.Background(), q)
	require.NoError(t, err)
	assert.NotSame(t, b1, b2)
	assert.Equal(t, b1, b2)
}

func TestAnalyzeBatchKeepsOrder(t *testing.T) {
	svc, _ := newService(t, Options{BatchLimit: 2})

	queries := []app.Query{
		{From: "DEL", To: "JAI", Departure: "2025-08-01T18:00:00Z"},
		{From: "JAI", To: "DEL", Departure: "2025-08-01T18:00:00Z"},
		{From: "TLS", To: "CDG", Departure: "2025-08-01T06:00:00Z", DurationMinutes: minutes(80)},
	}
	results, err := svc.AnalyzeBatch(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "DEL", results[0].From.Code)
	assert.Equal(t, "JAI", results[1].From.Code)
	assert.Equal(t, "TLS", results[2].From.Code)
}

func TestAnalyzeBatchFailsAtomically(t *testing.T) {
	svc, _ := newService(t, Options{})

	results, err := svc.AnalyzeBatch(context.Background(), []app.Query{
		{From: "DEL", To: "JAI", Departure: "2025-08-01T18:00:00Z"},
		{From: "DEL", To: "ZZZ", Departure: "2025-08-01T18:00:00Z"},
	})
	assert.Nil(t, results)
	require.Error(t, err)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeAirportNotFound, appErr.Code)
	assert.Equal(t, 1, appErr.Details["index"])
}

func TestAnalyzeBatchBounds(t *testing.T) {
	svc, _ := newService(t, Options{})

	_, err := svc.AnalyzeBatch(context.Background(), nil)
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))

	_, err = svc.AnalyzeBatch(context.Background(), make([]app.Query, MaxBatchSize+1))
	assert.True(t, apperr.Is(err, apperr.CodeInvalidInput))
}

func TestSamplingConfiguration(t *testing.T) {
	assert.Equal(t, path.NewSampler(), SamplingConfiguration{}.Sampler())

	s := SamplingConfiguration{SpacingKm: 25, MinWaypoints: 8, GroundSpeedKmh: 900, CadenceMinutes: 5}.Sampler()
	assert.Equal(t, 25.0, s.SpacingKm)
	assert.Equal(t, 8, s.MinWaypoints)
	assert.Equal(t, 900.0, s.GroundSpeedKmh)
	assert.Equal(t, 5*time.Minute, s.Cadence)
}

func TestSamplingConfigurationValidate(t *testing.T) {
	assert.NoError(t, SamplingConfiguration{}.Validate())
	assert.NoError(t, SamplingConfiguration{SpacingKm: 50, MinWaypoints: 5, GroundSpeedKmh: 800, CadenceMinutes: 15}.Validate())
	assert.NoError(t, SamplingConfiguration{MinWaypoints: 2}.Validate())

	for name, c := range map[string]SamplingConfiguration{
		"single waypoint":  {MinWaypoints: 1},
		"negative minimum": {MinWaypoints: -3},
		"negative spacing": {SpacingKm: -1},
		"negative speed":   {GroundSpeedKmh: -800},
		"negative cadence": {CadenceMinutes: -15},
	} {
		assert.Error(t, c.Validate(), name)
	}
}

func TestAnalyzeShortHopWithSmallMinimum(t *testing.T) {
	log, _ := test.NewNullLogger()
	svc, err := New(log, Options{Sampler: SamplingConfiguration{MinWaypoints: 2}.Sampler()})
	require.NoError(t, err)

	a, err := svc.Analyze(context.Background(), app.Query{From: "JFK", To: "EWR", Departure: "2025-08-01T12:00:00Z"})
	require.NoError(t, err)
	require.Len(t, a.Path, 2)
	assert.Equal(t, 1.0, a.Path[1].Progress)
}
